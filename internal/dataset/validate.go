package dataset

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

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

// Validate checks a snapshot before it is served. Every problem is reported,
// wrapped in ErrInvalidSnapshot.
func Validate(snap analytics.Snapshot, order waybill.OrderPolicy) error {
	var errs []error
	if err := structValidator().Struct(snap); err != nil {
		errs = append(errs, err)
	}

	waybillNos := make(map[string]struct{}, len(snap.Waybills))
	for _, w := range snap.Waybills {
		if _, dup := waybillNos[w.WaybillNo]; dup {
			errs = append(errs, fmt.Errorf("duplicate waybill %s", w.WaybillNo))
		}
		waybillNos[w.WaybillNo] = struct{}{}
		if err := waybill.Validate(w, order); err != nil {
			errs = append(errs, err)
		}
	}

	customerIDs := make(map[string]struct{}, len(snap.Customers))
	for _, c := range snap.Customers {
		if _, dup := customerIDs[c.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate customer %s", c.ID))
		}
		customerIDs[c.ID] = struct{}{}
		if err := c.CheckEnums(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, nt := range snap.NodeEfficiency {
		if nt.NodeType != "" && !nt.NodeType.IsValid() {
			errs = append(errs, fmt.Errorf("node efficiency %s: %w", nt.Node, waybill.ErrUnknownNodeType))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSnapshot, errors.Join(errs...))
}
