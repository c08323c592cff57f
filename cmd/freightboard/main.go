package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/silkroad-freight/freightboard/cmd/freightboard/cli"
	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/app"
	"github.com/silkroad-freight/freightboard/internal/dashboard"
	"github.com/silkroad-freight/freightboard/internal/dataset"
	"github.com/silkroad-freight/freightboard/internal/observability"
	"github.com/silkroad-freight/freightboard/jobs"
)

const usage = `usage: freightboard [command]

commands:
  serve                 run the HTTP API (default)
  seed                  replace the PostgreSQL dataset with the demo data
  audit                 check customer links and status consistency
  jobs trigger <task>   enqueue a background task
  jobs stats            print default queue counters
`

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}
	switch cmd {
	case "serve":
		err = serve(ctx, cfg, logger)
	case "seed":
		err = seed(ctx, cfg, logger)
	case "audit":
		err = audit(ctx, cfg, logger)
	case "jobs":
		err = jobsCommand(ctx, cfg, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error(cmd, slog.Any("error", err))
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	src, err := app.OpenSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open data source: %w", err)
	}
	defer src.Close()

	redisClient := app.OpenCache(ctx, cfg, logger)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	metrics := observability.NewMetrics()
	panels, err := app.NewAnalytics(cfg, src, redisClient, metrics.PanelFetch)
	if err != nil {
		return fmt.Errorf("init analytics: %w", err)
	}
	if redisClient != nil {
		cache := analytics.NewCache(redisClient, cfg.CacheTTL)
		if err := cache.ListenForInvalidation(ctx, analytics.BumpChannel); err != nil {
			logger.Warn("panel invalidation listener", slog.Any("error", err))
		}
	}

	params := app.RouterParams{
		Logger:    logger,
		Config:    cfg,
		Dashboard: dashboard.NewHandler(logger, panels, src, cfg.Machine(), metrics),
		Metrics:   metrics,
	}
	if redisClient != nil {
		opts, err := jobs.RedisOpts(cfg.RedisAddr)
		if err != nil {
			return err
		}
		inspector := asynq.NewInspector(opts)
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		params.JobHandler = jobs.NewHandler(inspector, logger)
	}
	router := app.NewRouter(params)

	server := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           router,
		ReadTimeout:       cfg.AppReadTimeout,
		ReadHeaderTimeout: cfg.AppReadTimeout,
		WriteTimeout:      cfg.AppWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("source", string(cfg.Source())))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func seed(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	if cfg.Source() != dataset.KindPostgres {
		return errors.New("seed requires DATA_SOURCE=postgres")
	}
	cfg.SeedIfEmpty = false
	src, err := app.OpenSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer src.Close()
	pg, ok := src.(*dataset.PostgresSource)
	if !ok {
		return errors.New("seed: unexpected source type")
	}
	if err := app.ImportSeed(ctx, pg, logger); err != nil {
		return err
	}
	return bumpPanels(ctx, cfg, logger)
}

// bumpPanels invalidates cached panels held by running API instances.
func bumpPanels(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	client := app.OpenCache(ctx, cfg, logger)
	if client == nil {
		return nil
	}
	defer func(c *redis.Client) { _ = c.Close() }(client)
	return analytics.NewCache(client, cfg.CacheTTL).Bump(ctx)
}

func audit(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	src, err := app.OpenSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer src.Close()
	clean, err := cli.NewAuditCLI(src, logger).Run(ctx, os.Stdout)
	if err != nil {
		return err
	}
	if !clean {
		return errors.New("audit found issues")
	}
	return nil
}

func jobsCommand(ctx context.Context, cfg *app.Config, args []string) error {
	opts, err := jobs.RedisOpts(cfg.RedisAddr)
	if err != nil {
		return err
	}
	c := cli.NewJobsCLI(opts)
	defer func() { _ = c.Close() }()

	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "trigger":
		if len(args) != 2 {
			return fmt.Errorf("jobs trigger: expected one of %v", jobs.TaskTypes())
		}
		info, err := c.Trigger(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("enqueued %s (%s) on %s\n", info.Type, info.ID, info.Queue)
		return nil
	case "stats":
		stats, err := c.InspectQueue()
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(stats)
	default:
		return fmt.Errorf("jobs: unknown subcommand %q", args[0])
	}
}
