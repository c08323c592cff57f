package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/dataset"
	"github.com/silkroad-freight/freightboard/internal/platform/cache"
	"github.com/silkroad-freight/freightboard/internal/platform/db"
)

// OpenSource connects the configured data source. A PostgreSQL source is
// migrated and, with SeedIfEmpty, loaded with the demo dataset.
func OpenSource(ctx context.Context, cfg *Config, logger *slog.Logger) (dataset.Source, error) {
	if cfg.Source() == dataset.KindMemory {
		logger.Info("using in-memory dataset")
		src, err := dataset.NewMemorySource(dataset.Seed(), cfg.Order())
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	pool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		return nil, err
	}
	src := dataset.NewPostgresSource(pool, cfg.Order())
	if err := src.Migrate(ctx); err != nil {
		src.Close()
		return nil, err
	}
	if !cfg.SeedIfEmpty {
		return src, nil
	}
	empty, err := src.Empty(ctx)
	if err != nil {
		src.Close()
		return nil, err
	}
	if empty {
		if err := ImportSeed(ctx, src, logger); err != nil {
			src.Close()
			return nil, err
		}
	}
	return src, nil
}

// ImportSeed links the demo waybills to their customers and replaces the
// stored dataset with them.
func ImportSeed(ctx context.Context, src *dataset.PostgresSource, logger *slog.Logger) error {
	seed := dataset.Seed()
	var report customer.LinkReport
	seed.Waybills, report = customer.LinkWaybills(seed.Customers, seed.Waybills)
	if !report.Clean() {
		return fmt.Errorf("seed: %d waybills without a unique customer",
			len(report.Unmatched)+len(report.Ambiguous)+len(report.Dangling))
	}
	if err := src.Import(ctx, seed); err != nil {
		return err
	}
	logger.Info("imported demo dataset",
		slog.Int("waybills", len(seed.Waybills)),
		slog.Int("customers", len(seed.Customers)))
	return nil
}

// OpenCache connects Redis for the panel cache. An empty REDIS_ADDR or an
// unreachable server yields a nil client and the panels are computed on
// every request.
func OpenCache(ctx context.Context, cfg *Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		logger.Info("panel cache disabled")
		return nil
	}
	client, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, panel cache disabled", slog.Any("error", err))
		return nil
	}
	return client
}

// NewAnalytics builds the panel service from configuration.
func NewAnalytics(cfg *Config, src analytics.Repository, client *redis.Client, onFetch func(string, bool)) (*analytics.Service, error) {
	settings, err := cfg.PanelSettings()
	if err != nil {
		return nil, err
	}
	settings.OnFetch = onFetch

	var panelCache *analytics.Cache
	if client != nil {
		panelCache = analytics.NewCache(client, cfg.CacheTTL)
	}
	return analytics.NewService(src, panelCache, settings), nil
}
