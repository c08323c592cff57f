package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	jobmetrics "github.com/silkroad-freight/freightboard/internal/jobs"
	"github.com/silkroad-freight/freightboard/internal/observability"
)

// NewWorkerMetrics builds the worker registry with the job collectors
// registered on it.
func NewWorkerMetrics() (*observability.Metrics, *jobmetrics.Metrics) {
	metrics := observability.NewMetrics()
	return metrics, jobmetrics.NewMetrics(metrics.Registerer())
}

// NewMetricsServer serves /metrics for the worker process. It returns nil when
// WORKER_METRICS_ADDR is empty.
func NewMetricsServer(cfg *Config, metrics *observability.Metrics) *http.Server {
	if cfg.WorkerMetricsAddr == "" {
		return nil
	}
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return &http.Server{
		Addr:              cfg.WorkerMetricsAddr,
		Handler:           r,
		ReadHeaderTimeout: cfg.AppReadTimeout,
		WriteTimeout:      cfg.AppWriteTimeout,
	}
}
