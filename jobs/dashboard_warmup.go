package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/silkroad-freight/freightboard/internal/jobs"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

const warmupTimeout = 30 * time.Second

// Warmer recomputes cached panels.
type Warmer interface {
	Warmup(ctx context.Context, panels ...string) error
}

// DashboardWarmupJob pre-populates the panel cache.
type DashboardWarmupJob struct {
	Panels  Warmer
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewDashboardWarmupJob wires dependencies for the warmup handler.
func NewDashboardWarmupJob(panels Warmer, logger *slog.Logger, metrics *jobmetrics.Metrics) *DashboardWarmupJob {
	return &DashboardWarmupJob{Panels: panels, Logger: logger, Metrics: metrics}
}

// Handle processes dashboard warmup tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.Panels == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload DashboardWarmupPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("dashboard warmup: decode payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	tracker := metricsOrDefault(j.Metrics).Track(TaskDashboardWarmup)
	defer func() {
		err = tracker.End(err)
	}()

	logger := jobLogger(j.Logger, TaskDashboardWarmup)
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	if err := j.Panels.Warmup(ctx, payload.Panels...); err != nil {
		logger.Error("dashboard warmup failed", slog.Any("error", err))
		return err
	}
	logger.Info("dashboard warmup completed",
		slog.Any("panels", payload.Panels),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func metricsOrDefault(m *jobmetrics.Metrics) *jobmetrics.Metrics {
	if m != nil {
		return m
	}
	return defaultJobMetrics
}

func jobLogger(logger *slog.Logger, job string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("job", job))
}
