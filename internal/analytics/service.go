// Package analytics derives every dashboard number from a Snapshot. The
// aggregate functions are pure; Service adds caching over a Repository.
package analytics

import (
	"context"
	"fmt"

	"github.com/silkroad-freight/freightboard/internal/timeline"
)

// Settings tune the derived panels.
type Settings struct {
	Thresholds    timeline.Thresholds
	OperatorBands Bands
	SalesmanBands Bands
	// OnFetch is called after each panel lookup. Optional.
	OnFetch func(panel string, cacheHit bool)
}

// DefaultSettings returns the thresholds and bands used by the dashboard.
func DefaultSettings() Settings {
	return Settings{
		Thresholds:    timeline.DefaultThresholds(),
		OperatorBands: DefaultOperatorBands(),
		SalesmanBands: DefaultSalesmanBands(),
	}
}

// Service coordinates panel computation with the cache layer.
type Service struct {
	repo     Repository
	cache    *Cache
	settings Settings
}

// NewService wires a Repository with a Cache helper. A nil cache computes
// every panel on demand. Unset thresholds and bands take their defaults.
func NewService(repo Repository, cache *Cache, settings Settings) *Service {
	if settings.Thresholds == nil {
		settings.Thresholds = timeline.DefaultThresholds()
	}
	if settings.OperatorBands == (Bands{}) {
		settings.OperatorBands = DefaultOperatorBands()
	}
	if settings.SalesmanBands == (Bands{}) {
		settings.SalesmanBands = DefaultSalesmanBands()
	}
	return &Service{repo: repo, cache: cache, settings: settings}
}

// Settings returns the effective settings.
func (s *Service) Settings() Settings { return s.settings }

// Invalidate drops every cached panel.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}

// Panel names double as cache key segments.
const (
	PanelOverview  = "overview"
	PanelCustomers = "customers"
	PanelProcess   = "process"
	PanelTeam      = "team"
	PanelNetwork   = "network"
	PanelFinance   = "finance"
)

// Panels lists every cacheable panel.
func Panels() []string {
	return []string{PanelOverview, PanelCustomers, PanelProcess, PanelTeam, PanelNetwork, PanelFinance}
}

func fetchPanel[T any](ctx context.Context, s *Service, panel string, build func(Snapshot) T) (T, error) {
	var out T
	loader := func(ctx context.Context) (any, error) {
		snap, err := s.repo.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		return build(snap), nil
	}
	key, err := s.cache.BuildKey(ctx, "panel", panel)
	if err != nil {
		return out, err
	}
	hit, err := s.cache.FetchJSON(ctx, key, &out, loader)
	if err != nil {
		return out, fmt.Errorf("%s panel: %w", panel, err)
	}
	if s.settings.OnFetch != nil {
		s.settings.OnFetch(panel, hit)
	}
	return out, nil
}

// Warmup populates the given panels, or all of them when none are named.
func (s *Service) Warmup(ctx context.Context, panels ...string) error {
	if len(panels) == 0 {
		panels = Panels()
	}
	for _, p := range panels {
		var err error
		switch p {
		case PanelOverview:
			_, err = s.Overview(ctx)
		case PanelCustomers:
			_, err = s.Customers(ctx)
		case PanelProcess:
			_, err = s.Process(ctx)
		case PanelTeam:
			_, err = s.Team(ctx)
		case PanelNetwork:
			_, err = s.Network(ctx)
		case PanelFinance:
			_, err = s.Finance(ctx)
		default:
			err = fmt.Errorf("analytics: unknown panel %q", p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
