// Package customer holds the customer entity, its display styles and the
// linkage between customers and waybills.
package customer

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownCreditLevel = errors.New("customer: unknown credit level")
	ErrUnknownCooperation = errors.New("customer: unknown cooperation status")
	ErrNotFound           = errors.New("customer: not found")
)

// CreditLevel grades a customer's payment reliability.
type CreditLevel string

const (
	CreditA CreditLevel = "A"
	CreditB CreditLevel = "B"
	CreditC CreditLevel = "C"
	CreditD CreditLevel = "D"
)

// IsValid reports whether the credit level is known.
func (l CreditLevel) IsValid() bool {
	switch l {
	case CreditA, CreditB, CreditC, CreditD:
		return true
	}
	return false
}

// CooperationStatus tracks the business relationship state.
type CooperationStatus string

const (
	CooperationActive    CooperationStatus = "active"
	CooperationInactive  CooperationStatus = "inactive"
	CooperationSuspended CooperationStatus = "suspended"
)

// IsValid reports whether the cooperation status is known.
func (s CooperationStatus) IsValid() bool {
	switch s {
	case CooperationActive, CooperationInactive, CooperationSuspended:
		return true
	}
	return false
}

// Customer is a shipper account.
type Customer struct {
	ID                string            `json:"id" validate:"required"`
	Name              string            `json:"name" validate:"required"`
	Contact           string            `json:"contact"`
	Phone             string            `json:"phone"`
	Email             string            `json:"email" validate:"omitempty,email"`
	Address           string            `json:"address"`
	CreditLevel       CreditLevel       `json:"credit_level" validate:"required"`
	CooperationStatus CooperationStatus `json:"cooperation_status" validate:"required"`
	RegisterDate      time.Time         `json:"register_date"`
	TotalOrders       int               `json:"total_orders" validate:"gte=0"`
	TotalAmount       int64             `json:"total_amount" validate:"gte=0"`
	UnsettledAmount   int64             `json:"unsettled_amount" validate:"gte=0"`
	LastOrderDate     time.Time         `json:"last_order_date"`
	Remark            string            `json:"remark,omitempty"`
}

// CheckEnums returns an error when either enum field is outside the vocabulary.
func (c Customer) CheckEnums() error {
	if !c.CreditLevel.IsValid() {
		return fmt.Errorf("%w: customer %s: %q", ErrUnknownCreditLevel, c.ID, string(c.CreditLevel))
	}
	if !c.CooperationStatus.IsValid() {
		return fmt.Errorf("%w: customer %s: %q", ErrUnknownCooperation, c.ID, string(c.CooperationStatus))
	}
	return nil
}

// Find returns the customer with the given id.
func Find(customers []Customer, id string) (Customer, error) {
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return Customer{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
