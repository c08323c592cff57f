package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/dashboard"
	"github.com/silkroad-freight/freightboard/internal/dataset"
	"github.com/silkroad-freight/freightboard/internal/observability"
	"github.com/silkroad-freight/freightboard/internal/waybill"
	"github.com/silkroad-freight/freightboard/jobs"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, dataset.KindMemory, cfg.Source())
	assert.Equal(t, waybill.OrderPrefix, cfg.Order())
	assert.Equal(t, waybill.PolicyMonotonic, cfg.Machine().Policy)
	assert.False(t, cfg.IsProduction())

	settings, err := cfg.PanelSettings()
	require.NoError(t, err)
	assert.Equal(t, 2880.0, settings.Thresholds[waybill.NodeTransit])
	assert.Equal(t, analytics.DefaultOperatorBands(), settings.OperatorBands)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"DATA_SOURCE":           "sqlite",
		"TRANSITION_POLICY":     "chaotic",
		"NODE_ORDER":            "random",
		"LOG_LEVEL":             "loud",
		"LOG_FORMAT":            "xml",
		"RATE_LIMIT_PER_MINUTE": "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}

	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "postgres")
		t.Setenv("PG_DSN", " ")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestLoggerHonoursFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&Config{LogFormat: "json", LogLevel: "warn"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", slog.String("waybill_no", "GF1"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "GF1", record["waybill_no"])
}

func TestRouterServesDashboardAndMetrics(t *testing.T) {
	src, err := dataset.NewMemorySource(dataset.Seed(), waybill.OrderPrefix)
	require.NoError(t, err)
	metrics := observability.NewMetrics()
	svc := analytics.NewService(src, nil, analytics.DefaultSettings())
	cfg := &Config{RateLimitPerMinute: 100}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	router := NewRouter(RouterParams{
		Logger:     logger,
		Config:     cfg,
		Dashboard:  dashboard.NewHandler(logger, svc, src, cfg.Machine(), metrics),
		JobHandler: jobs.NewHandler(nil, logger),
		Metrics:    metrics,
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/statuses", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/jobs/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"queue":"default","pending":0,"active":0,"retry":0,"scheduled":0}`, rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `freightboard_http_requests_total{code="200",route="/api/statuses"} 1`)
}

func TestTestModeFlag(t *testing.T) {
	t.Setenv(testModeEnv, "1")
	RefreshTestMode()
	assert.True(t, InTestMode())
	t.Setenv(testModeEnv, "0")
	RefreshTestMode()
	assert.False(t, InTestMode())
}

func TestBootstrapMemoryDefaults(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	cfg := &Config{DataSource: "memory", NodeOrder: "prefix"}

	src, err := OpenSource(ctx, cfg, logger)
	require.NoError(t, err)
	defer src.Close()
	snap, err := src.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Waybills, 5)

	assert.Nil(t, OpenCache(ctx, cfg, logger))
	cfg.RedisAddr = "127.0.0.1:1"
	assert.Nil(t, OpenCache(ctx, cfg, logger))

	var fetched []string
	svc, err := NewAnalytics(cfg, src, nil, func(panel string, _ bool) { fetched = append(fetched, panel) })
	require.NoError(t, err)
	_, err = svc.Process(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{analytics.PanelProcess}, fetched)

	cfg.ThresholdsFile = "/nonexistent/thresholds.yaml"
	_, err = NewAnalytics(cfg, src, nil, nil)
	assert.Error(t, err)
}

func TestOpenCacheConnects(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	client := OpenCache(context.Background(), &Config{RedisAddr: mr.Addr()}, logger)
	require.NotNil(t, client)
	defer client.Close()

	src, err := dataset.NewMemorySource(dataset.Seed(), waybill.OrderPrefix)
	require.NoError(t, err)
	svc, err := NewAnalytics(&Config{CacheTTL: time.Minute}, src, client, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Warmup(context.Background(), analytics.PanelNetwork))
	assert.NotEmpty(t, mr.Keys())
}

func TestWorkerMetricsExposeAuditGauges(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.WorkerMetricsAddr)

	metrics, jobMetrics := NewWorkerMetrics()
	src, err := dataset.NewMemorySource(dataset.Seed(), waybill.OrderPrefix)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, jobs.NewLinkAuditJob(src, logger, jobMetrics).Handle(context.Background(), nil))

	server := NewMetricsServer(cfg, metrics)
	require.NotNil(t, server)
	rr := httptest.NewRecorder()
	server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `freightboard_customer_link_issues{kind="unmatched"} 0`)
	assert.Contains(t, body, `freightboard_customer_link_issues{kind="inconsistent"} 0`)
	assert.Contains(t, body, `freightboard_jobs_total{job="`+jobs.TaskCustomerLinkAudit+`",status="success"} 1`)

	cfg.WorkerMetricsAddr = ""
	assert.Nil(t, NewMetricsServer(cfg, metrics))
}
