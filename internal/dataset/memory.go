package dataset

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// MemorySource serves a snapshot held in process memory.
type MemorySource struct {
	mu    sync.RWMutex
	snap  analytics.Snapshot
	index map[string]int
}

// NewMemorySource validates snap and serves it.
func NewMemorySource(snap analytics.Snapshot, order waybill.OrderPolicy) (*MemorySource, error) {
	if err := Validate(snap, order); err != nil {
		return nil, err
	}
	m := &MemorySource{snap: cloneSnapshot(snap)}
	m.reindex()
	return m, nil
}

func (m *MemorySource) reindex() {
	m.index = make(map[string]int, len(m.snap.Waybills))
	for i, w := range m.snap.Waybills {
		m.index[w.WaybillNo] = i
	}
}

// Snapshot returns a copy of the held snapshot.
func (m *MemorySource) Snapshot(ctx context.Context) (analytics.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return analytics.Snapshot{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneSnapshot(m.snap), nil
}

// Waybill returns a copy of one waybill.
func (m *MemorySource) Waybill(ctx context.Context, waybillNo string) (waybill.Waybill, error) {
	if err := ctx.Err(); err != nil {
		return waybill.Waybill{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[waybillNo]
	if !ok {
		return waybill.Waybill{}, fmt.Errorf("%w: waybill %s", ErrNotFound, waybillNo)
	}
	return m.snap.Waybills[i].Clone(), nil
}

// SaveWaybill replaces a stored waybill or appends a new one.
func (m *MemorySource) SaveWaybill(ctx context.Context, w waybill.Waybill, expected time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[w.WaybillNo]
	if !ok {
		m.snap.Waybills = append(m.snap.Waybills, w.Clone())
		m.index[w.WaybillNo] = len(m.snap.Waybills) - 1
		return nil
	}
	if !m.snap.Waybills[i].UpdateTime.Equal(expected) {
		return fmt.Errorf("%w: waybill %s", ErrConflict, w.WaybillNo)
	}
	m.snap.Waybills[i] = w.Clone()
	return nil
}

// Close is a no-op.
func (m *MemorySource) Close() {}

func cloneSnapshot(s analytics.Snapshot) analytics.Snapshot {
	out := s
	if s.Waybills != nil {
		out.Waybills = make([]waybill.Waybill, len(s.Waybills))
		for i, w := range s.Waybills {
			out.Waybills[i] = w.Clone()
		}
	}
	out.Customers = slices.Clone(s.Customers)
	out.Countries = slices.Clone(s.Countries)
	out.Routes = slices.Clone(s.Routes)
	out.NodeEfficiency = slices.Clone(s.NodeEfficiency)
	out.Exceptions = slices.Clone(s.Exceptions)
	out.ExceptionOrders = slices.Clone(s.ExceptionOrders)
	out.Operators = slices.Clone(s.Operators)
	out.Salesmen = slices.Clone(s.Salesmen)
	out.Trend = slices.Clone(s.Trend)
	out.HighRiskOrders = slices.Clone(s.HighRiskOrders)
	return out
}
