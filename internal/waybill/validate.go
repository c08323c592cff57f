package waybill

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// OrderPolicy controls how strictly a node list must follow the canonical
// sequence.
type OrderPolicy string

const (
	// OrderPrefix requires a contiguous prefix of the canonical sequence.
	OrderPrefix OrderPolicy = "prefix"
	// OrderMonotonic requires canonical order but allows skipped stages.
	OrderMonotonic OrderPolicy = "monotonic"
)

// ParseOrderPolicy converts configuration input, defaulting to OrderPrefix.
func ParseOrderPolicy(raw string) (OrderPolicy, error) {
	switch OrderPolicy(raw) {
	case "", OrderPrefix:
		return OrderPrefix, nil
	case OrderMonotonic:
		return OrderMonotonic, nil
	default:
		return "", fmt.Errorf("waybill: unknown node order policy %q", raw)
	}
}

var (
	validateOnce sync.Once
	structCheck  *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		structCheck = validator.New(validator.WithRequiredStructEnabled())
	})
	return structCheck
}

// Validate fails fast on a malformed waybill. It is meant for the data layer
// boundary; a failure signals a bug in the feeding system, not an empty state.
func Validate(w Waybill, policy OrderPolicy) error {
	if len(w.Nodes) == 0 {
		return fmt.Errorf("waybill %s: %w", w.WaybillNo, ErrNoNodes)
	}
	if err := structValidator().Struct(w); err != nil {
		return fmt.Errorf("waybill %s: %w", w.WaybillNo, err)
	}
	if !w.Status.IsValid() {
		return fmt.Errorf("waybill %s: %w: %q", w.WaybillNo, ErrUnknownStatus, string(w.Status))
	}
	seen := make(map[NodeType]struct{}, len(w.Nodes))
	prev := -1
	for i, n := range w.Nodes {
		if !n.Type.IsValid() {
			return fmt.Errorf("waybill %s node %s: %w: %q", w.WaybillNo, n.ID, ErrUnknownNodeType, string(n.Type))
		}
		if !n.Status.IsValid() {
			return fmt.Errorf("waybill %s node %s: %w: %q", w.WaybillNo, n.ID, ErrUnknownNodeStatus, string(n.Status))
		}
		if _, dup := seen[n.Type]; dup {
			return fmt.Errorf("waybill %s: %w: %s", w.WaybillNo, ErrDuplicateNode, n.Type)
		}
		seen[n.Type] = struct{}{}

		rank := n.Type.Rank()
		switch policy {
		case OrderMonotonic:
			if rank <= prev {
				return fmt.Errorf("waybill %s: %w: %s at position %d", w.WaybillNo, ErrNodeOrder, n.Type, i)
			}
		default:
			if rank != i {
				return fmt.Errorf("waybill %s: %w: %s at position %d", w.WaybillNo, ErrNodeOrder, n.Type, i)
			}
		}
		prev = rank

		if n.Status == NodeException && w.Status != StatusException {
			return fmt.Errorf("waybill %s node %s: %w", w.WaybillNo, n.ID, ErrNodeInconsistency)
		}
		for _, d := range n.Documents {
			if !d.Type.IsValid() {
				return fmt.Errorf("waybill %s node %s: %w: %q", w.WaybillNo, n.ID, ErrUnknownDocument, string(d.Type))
			}
		}
	}
	for _, d := range w.Documents {
		if !d.Type.IsValid() {
			return fmt.Errorf("waybill %s: %w: %q", w.WaybillNo, ErrUnknownDocument, string(d.Type))
		}
	}
	return nil
}
