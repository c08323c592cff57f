// Package dataset loads the dashboard snapshot from memory or PostgreSQL and
// persists waybill transitions.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

var (
	ErrNotFound        = errors.New("dataset: not found")
	ErrConflict        = errors.New("dataset: concurrent update")
	ErrInvalidSnapshot = errors.New("dataset: invalid snapshot")
)

// Source is the data boundary of the dashboard.
type Source interface {
	analytics.Repository
	// Waybill returns one waybill by its number.
	Waybill(ctx context.Context, waybillNo string) (waybill.Waybill, error)
	// SaveWaybill stores w when the stored copy still carries expected as its
	// update time, ErrConflict otherwise.
	SaveWaybill(ctx context.Context, w waybill.Waybill, expected time.Time) error
	Close()
}

// Kind names a Source implementation.
type Kind string

const (
	KindMemory   Kind = "memory"
	KindPostgres Kind = "postgres"
)

// ParseKind converts configuration input, defaulting to KindMemory.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case "", KindMemory:
		return KindMemory, nil
	case KindPostgres:
		return KindPostgres, nil
	default:
		return "", fmt.Errorf("dataset: unknown source %q", raw)
	}
}
