package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/jobs"
)

// AuditCLI runs the customer-link audit in-process.
type AuditCLI struct {
	job *jobs.LinkAuditJob
}

// NewAuditCLI wires the audit against a snapshot source.
func NewAuditCLI(source analytics.Repository, logger *slog.Logger) *AuditCLI {
	return &AuditCLI{job: jobs.NewLinkAuditJob(source, logger, nil)}
}

type auditOutput struct {
	Clean  bool `json:"clean"`
	Result any  `json:"result"`
}

// Run audits the dataset and writes the findings to out as JSON. It reports
// whether the dataset was clean.
func (c *AuditCLI) Run(ctx context.Context, out io.Writer) (bool, error) {
	result, err := c.job.Audit(ctx)
	if err != nil {
		return false, err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(auditOutput{Clean: result.Clean(), Result: result}); err != nil {
		return false, err
	}
	return result.Clean(), nil
}
