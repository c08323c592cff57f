package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/customer"
	jobmetrics "github.com/silkroad-freight/freightboard/internal/jobs"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// AuditResult is the outcome of one customer-link audit.
type AuditResult struct {
	Report          customer.LinkReport     `json:"report"`
	Inconsistencies []waybill.Inconsistency `json:"inconsistencies"`
}

// Clean reports whether the audit found nothing to fix.
func (r AuditResult) Clean() bool {
	return r.Report.Clean() && len(r.Inconsistencies) == 0
}

// LinkAuditJob checks that every waybill resolves to exactly one customer and
// that waybill and node statuses agree. Findings are logged and exported as
// gauges; the job itself only fails when the snapshot cannot be loaded.
type LinkAuditJob struct {
	Source  analytics.Repository
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewLinkAuditJob wires dependencies for the audit handler.
func NewLinkAuditJob(source analytics.Repository, logger *slog.Logger, metrics *jobmetrics.Metrics) *LinkAuditJob {
	return &LinkAuditJob{Source: source, Logger: logger, Metrics: metrics}
}

// Handle processes customer-link audit tasks.
func (j *LinkAuditJob) Handle(ctx context.Context, _ *asynq.Task) (err error) {
	tracker := metricsOrDefault(j.metrics()).Track(TaskCustomerLinkAudit)
	defer func() {
		err = tracker.End(err)
	}()
	_, err = j.Audit(ctx)
	return err
}

func (j *LinkAuditJob) metrics() *jobmetrics.Metrics {
	if j == nil {
		return nil
	}
	return j.Metrics
}

// Audit runs the checks and returns the findings.
func (j *LinkAuditJob) Audit(ctx context.Context) (AuditResult, error) {
	if j == nil || j.Source == nil {
		return AuditResult{}, errors.New("link audit: source not configured")
	}
	logger := jobLogger(j.Logger, TaskCustomerLinkAudit)

	snap, err := j.Source.Snapshot(ctx)
	if err != nil {
		logger.Error("load snapshot", slog.Any("error", err))
		return AuditResult{}, err
	}

	var result AuditResult
	_, result.Report = customer.LinkWaybills(snap.Customers, snap.Waybills)
	for _, w := range snap.Waybills {
		result.Inconsistencies = append(result.Inconsistencies, waybill.CheckConsistency(w)...)
	}

	logIssues(logger, "unmatched", result.Report.Unmatched)
	logIssues(logger, "ambiguous", result.Report.Ambiguous)
	logIssues(logger, "dangling", result.Report.Dangling)
	for _, inc := range result.Inconsistencies {
		logger.Warn("waybill inconsistency",
			slog.String("waybill_no", inc.WaybillNo),
			slog.String("node_type", string(inc.NodeType)),
			slog.String("reason", inc.Reason))
	}

	m := j.Metrics
	m.SetLinkIssues("unmatched", len(result.Report.Unmatched))
	m.SetLinkIssues("ambiguous", len(result.Report.Ambiguous))
	m.SetLinkIssues("dangling", len(result.Report.Dangling))
	m.SetLinkIssues("inconsistent", len(result.Inconsistencies))

	logger.Info("link audit completed",
		slog.Int("waybills", len(snap.Waybills)),
		slog.Int("linked", result.Report.Linked),
		slog.Int("preset", result.Report.Preset),
		slog.Bool("clean", result.Clean()))
	return result, nil
}

func logIssues(logger *slog.Logger, kind string, issues []customer.LinkIssue) {
	for _, issue := range issues {
		logger.Warn("customer link issue",
			slog.String("kind", kind),
			slog.String("waybill_no", issue.WaybillNo),
			slog.String("customer_name", issue.CustomerName),
			slog.Any("candidates", issue.CandidateIDs))
	}
}
