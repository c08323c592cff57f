package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/timeline"
)

type mockRepo struct {
	snap  Snapshot
	err   error
	calls int
}

func (m *mockRepo) Snapshot(ctx context.Context) (Snapshot, error) {
	m.calls++
	return m.snap, m.err
}

func newTestService(t *testing.T, repo Repository, settings Settings) (*Service, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(repo, NewCache(client, time.Minute), settings), client
}

func testSnapshot() Snapshot {
	return Snapshot{
		Customers: []customer.Customer{
			{ID: "1", Name: "新疆国际贸易有限公司", CooperationStatus: customer.CooperationActive, TotalAmount: 28500000, UnsettledAmount: 450000},
			{ID: "4", Name: "丝路货运代理", CooperationStatus: customer.CooperationSuspended, TotalAmount: 5600000, UnsettledAmount: 890000},
		},
		Countries: []CountryData{{Name: "Kazakhstan", Code: "KZ", InTransit: 35, Exited: 128, Exception: 3}},
		Exceptions: []ExceptionData{
			{Type: "超时", Count: 23, Percentage: 45},
			{Type: "单据问题", Count: 15, Percentage: 30},
			{Type: "换头", Count: 8, Percentage: 15},
			{Type: "其他", Count: 5, Percentage: 10},
		},
		NodeEfficiency: []timeline.NodeEfficiency{
			{Node: "装车", AvgTime: 45, Threshold: 60},
			{Node: "报关", AvgTime: 75, Threshold: 60},
		},
		Operators: []OperatorPerformance{{Name: "王强", OvertimeRate: 8, IsHighRisk: true}},
	}
}

func TestOverviewCaches(t *testing.T) {
	repo := &mockRepo{snap: testSnapshot()}
	var hits, misses int
	settings := DefaultSettings()
	settings.OnFetch = func(panel string, hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	}
	svc, _ := newTestService(t, repo, settings)
	ctx := context.Background()

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Customers.Total != 2 || overview.Exceptions != 51 {
		t.Fatalf("unexpected overview %+v", overview)
	}
	if repo.calls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.calls)
	}

	// Second call should hit cache.
	if _, err := svc.Overview(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected cached result, repo called %d times", repo.calls)
	}
	if hits != 1 || misses != 1 {
		t.Fatalf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}

	// Invalidation should trigger reload.
	if err := svc.Invalidate(ctx); err != nil {
		t.Fatalf("bump failed: %v", err)
	}
	repo.snap.Customers = repo.snap.Customers[:1]
	overview, err = svc.Overview(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Customers.Total != 1 {
		t.Fatalf("expected refreshed total 1 got %d", overview.Customers.Total)
	}
	if repo.calls != 2 {
		t.Fatalf("expected repo to refresh, calls %d", repo.calls)
	}
}

func TestPanelsWithoutCache(t *testing.T) {
	repo := &mockRepo{snap: testSnapshot()}
	svc := NewService(repo, nil, Settings{OperatorBands: DefaultOperatorBands(), SalesmanBands: DefaultSalesmanBands()})
	ctx := context.Background()

	process, err := svc.Process(ctx)
	if err != nil {
		t.Fatalf("process error: %v", err)
	}
	if len(process.Segments) != 4 || process.ExceptionTotal != 51 {
		t.Fatalf("unexpected segments %+v", process.Segments)
	}
	if !process.Reported[1].IsOverThreshold {
		t.Fatalf("expected customs declaration over threshold")
	}
	if process.MaxTime != 75 {
		t.Fatalf("expected max time 75 got %v", process.MaxTime)
	}

	team, err := svc.Team(ctx)
	if err != nil {
		t.Fatalf("team error: %v", err)
	}
	if !team.Operators[0].IsHighRisk || team.Operators[0].Band != BandWarning || team.Disagreements != 1 {
		t.Fatalf("unexpected team panel %+v", team)
	}

	customers, err := svc.Customers(ctx)
	if err != nil {
		t.Fatalf("customers error: %v", err)
	}
	if customers.UnsettledAmount.Value != 134 {
		t.Fatalf("expected 134万 unsettled got %v", customers.UnsettledAmount.Value)
	}
	if repo.calls != 3 {
		t.Fatalf("expected a snapshot per panel without cache, got %d", repo.calls)
	}
}

func TestPanelPropagatesRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	svc, _ := newTestService(t, &mockRepo{err: boom}, DefaultSettings())
	if _, err := svc.Finance(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestWarmupPopulatesEveryPanel(t *testing.T) {
	repo := &mockRepo{snap: testSnapshot()}
	svc, client := newTestService(t, repo, DefaultSettings())
	ctx := context.Background()

	if err := svc.Warmup(ctx); err != nil {
		t.Fatalf("warmup error: %v", err)
	}
	if repo.calls != len(Panels()) {
		t.Fatalf("expected %d loads got %d", len(Panels()), repo.calls)
	}
	keys, err := client.Keys(ctx, "freightboard:panel:*").Result()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != len(Panels()) {
		t.Fatalf("expected %d cached panels got %v", len(Panels()), keys)
	}

	if err := svc.Warmup(ctx, "weather"); err == nil {
		t.Fatalf("expected unknown panel error")
	}
}

func TestCacheVersionFollowsBumps(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	cache := NewCache(client, time.Minute)
	ctx := context.Background()

	first, err := cache.BuildKey(ctx, "panel", "team")
	if err != nil {
		t.Fatalf("build key: %v", err)
	}
	if first != "freightboard:panel:team:v1" {
		t.Fatalf("unexpected key %s", first)
	}
	if err := cache.Bump(ctx); err != nil {
		t.Fatalf("bump: %v", err)
	}
	second, _ := cache.BuildKey(ctx, "panel", "team")
	if second != "freightboard:panel:team:v2" {
		t.Fatalf("unexpected key after bump %s", second)
	}

	var nilCache *Cache
	key, err := nilCache.BuildKey(ctx, "panel", "team")
	if err != nil || key != "freightboard:panel:team" {
		t.Fatalf("nil cache key %q err %v", key, err)
	}
}
