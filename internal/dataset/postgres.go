package dataset

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	platformdb "github.com/silkroad-freight/freightboard/internal/platform/db"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

//go:embed schema.sql
var schemaSQL string

// DB is the subset of pgxpool.Pool used by PostgresSource.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// PostgresSource stores waybills and customers as JSONB documents. Panel
// inputs such as routes and trends live in dashboard_panels, one row each.
type PostgresSource struct {
	db    DB
	pool  *pgxpool.Pool
	order waybill.OrderPolicy
}

// NewPostgresSource wraps an open pool.
func NewPostgresSource(pool *pgxpool.Pool, order waybill.OrderPolicy) *PostgresSource {
	return &PostgresSource{db: pool, pool: pool, order: order}
}

// Migrate creates the tables when missing.
func (p *PostgresSource) Migrate(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("dataset: migrate: %w", err)
	}
	return nil
}

// Empty reports whether no waybill has been stored yet.
func (p *PostgresSource) Empty(ctx context.Context) (bool, error) {
	var empty bool
	if err := p.db.QueryRow(ctx, `SELECT NOT EXISTS (SELECT 1 FROM waybills)`).Scan(&empty); err != nil {
		return false, fmt.Errorf("dataset: count waybills: %w", err)
	}
	return empty, nil
}

// Close releases the pool.
func (p *PostgresSource) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

const (
	panelStats           = "stats"
	panelCountries       = "countries"
	panelRoutes          = "routes"
	panelNodeEfficiency  = "node_efficiency"
	panelExceptions      = "exceptions"
	panelExceptionOrders = "exception_orders"
	panelOperators       = "operators"
	panelSalesmen        = "salesmen"
	panelTrend           = "trend"
	panelRisk            = "risk"
	panelHighRiskOrders  = "high_risk_orders"
)

func panelTargets(s *analytics.Snapshot) map[string]any {
	return map[string]any{
		panelStats:           &s.Stats,
		panelCountries:       &s.Countries,
		panelRoutes:          &s.Routes,
		panelNodeEfficiency:  &s.NodeEfficiency,
		panelExceptions:      &s.Exceptions,
		panelExceptionOrders: &s.ExceptionOrders,
		panelOperators:       &s.Operators,
		panelSalesmen:        &s.Salesmen,
		panelTrend:           &s.Trend,
		panelRisk:            &s.Risk,
		panelHighRiskOrders:  &s.HighRiskOrders,
	}
}

// Snapshot loads and validates every collection.
func (p *PostgresSource) Snapshot(ctx context.Context) (analytics.Snapshot, error) {
	var snap analytics.Snapshot

	if err := queryDocuments(ctx, p.db, `SELECT payload FROM customers ORDER BY id`, &snap.Customers); err != nil {
		return snap, fmt.Errorf("dataset: load customers: %w", err)
	}
	if err := queryDocuments(ctx, p.db, `SELECT payload FROM waybills ORDER BY waybill_no`, &snap.Waybills); err != nil {
		return snap, fmt.Errorf("dataset: load waybills: %w", err)
	}

	rows, err := p.db.Query(ctx, `SELECT name, payload FROM dashboard_panels`)
	if err != nil {
		return snap, fmt.Errorf("dataset: load panels: %w", err)
	}
	defer rows.Close()
	targets := panelTargets(&snap)
	for rows.Next() {
		var name string
		var payload []byte
		if err := rows.Scan(&name, &payload); err != nil {
			return snap, err
		}
		dest, ok := targets[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(payload, dest); err != nil {
			return snap, fmt.Errorf("dataset: decode panel %s: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}

	if err := Validate(snap, p.order); err != nil {
		return analytics.Snapshot{}, err
	}
	return snap, nil
}

func queryDocuments[T any](ctx context.Context, db DB, sql string, dest *[]T) error {
	rows, err := db.Query(ctx, sql)
	if err != nil {
		return err
	}
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return err
		}
		var v T
		if err := json.Unmarshal(payload, &v); err != nil {
			return err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	*dest = out
	return nil
}

// Waybill loads one waybill document.
func (p *PostgresSource) Waybill(ctx context.Context, waybillNo string) (waybill.Waybill, error) {
	var payload []byte
	err := p.db.QueryRow(ctx, `SELECT payload FROM waybills WHERE waybill_no = $1`, waybillNo).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return waybill.Waybill{}, fmt.Errorf("%w: waybill %s", ErrNotFound, waybillNo)
		}
		return waybill.Waybill{}, err
	}
	var w waybill.Waybill
	if err := json.Unmarshal(payload, &w); err != nil {
		return waybill.Waybill{}, fmt.Errorf("dataset: decode waybill %s: %w", waybillNo, err)
	}
	return w, nil
}

const upsertWaybill = `
	INSERT INTO waybills (waybill_no, customer_id, status, payload, update_time)
	VALUES ($1, NULLIF($2, ''), $3, $4, $5)
	ON CONFLICT (waybill_no) DO UPDATE
	SET customer_id = EXCLUDED.customer_id,
	    status = EXCLUDED.status,
	    payload = EXCLUDED.payload,
	    update_time = EXCLUDED.update_time
	WHERE waybills.update_time = $6
`

// SaveWaybill upserts a waybill guarded by its previous update time.
func (p *PostgresSource) SaveWaybill(ctx context.Context, w waybill.Waybill, expected time.Time) error {
	return saveWaybill(ctx, p.db, w, expected)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func saveWaybill(ctx context.Context, db execer, w waybill.Waybill, expected time.Time) error {
	// timestamptz keeps microseconds
	w.UpdateTime = w.UpdateTime.Truncate(time.Microsecond)
	payload, err := json.Marshal(w)
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, upsertWaybill,
		w.WaybillNo, w.CustomerID, string(w.Status), payload, w.UpdateTime, expected.Truncate(time.Microsecond))
	if err != nil {
		return mapPgError(fmt.Sprintf("waybill %s", w.WaybillNo), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: waybill %s", ErrConflict, w.WaybillNo)
	}
	return nil
}

func insertWaybill(ctx context.Context, db execer, w waybill.Waybill) error {
	w.UpdateTime = w.UpdateTime.Truncate(time.Microsecond)
	payload, err := json.Marshal(w)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `INSERT INTO waybills (waybill_no, customer_id, status, payload, update_time)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)`,
		w.WaybillNo, w.CustomerID, string(w.Status), payload, w.UpdateTime)
	if err != nil {
		return mapPgError(fmt.Sprintf("waybill %s", w.WaybillNo), err)
	}
	return nil
}

// Import replaces the stored dataset with snap in one transaction.
func (p *PostgresSource) Import(ctx context.Context, snap analytics.Snapshot) error {
	if err := Validate(snap, p.order); err != nil {
		return err
	}
	return platformdb.WithTx(ctx, p.db, func(tx pgx.Tx) error {
		for _, stmt := range []string{`DELETE FROM waybills`, `DELETE FROM customers`, `DELETE FROM dashboard_panels`} {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("dataset: import reset: %w", err)
			}
		}
		for _, c := range snap.Customers {
			payload, err := json.Marshal(c)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO customers (id, name, payload) VALUES ($1, $2, $3)`, c.ID, c.Name, payload); err != nil {
				return mapPgError("customer "+c.ID, err)
			}
		}
		for _, w := range snap.Waybills {
			if err := insertWaybill(ctx, tx, w); err != nil {
				return err
			}
		}
		for name, src := range panelTargets(&snap) {
			payload, err := json.Marshal(src)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO dashboard_panels (name, payload) VALUES ($1, $2)`, name, payload); err != nil {
				return mapPgError("panel "+name, err)
			}
		}
		return nil
	})
}

func mapPgError(subject string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s already exists", ErrConflict, subject)
		case "23503":
			return fmt.Errorf("%w: %s references a missing row: %s", ErrInvalidSnapshot, subject, pgErr.Detail)
		}
	}
	return fmt.Errorf("dataset: %s: %w", subject, err)
}
