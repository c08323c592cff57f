package analytics

import (
	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// CustomerStats counts customers by cooperation status and sums their amounts.
type CustomerStats struct {
	Total           int   `json:"total"`
	Active          int   `json:"active"`
	Inactive        int   `json:"inactive"`
	Suspended       int   `json:"suspended"`
	Unknown         int   `json:"unknown"`
	TotalAmount     int64 `json:"total_amount"`
	UnsettledAmount int64 `json:"unsettled_amount"`
}

// ComputeCustomerStats aggregates the whole customer list.
func ComputeCustomerStats(customers []customer.Customer) CustomerStats {
	var s CustomerStats
	for _, c := range customers {
		s.Total++
		switch c.CooperationStatus {
		case customer.CooperationActive:
			s.Active++
		case customer.CooperationInactive:
			s.Inactive++
		case customer.CooperationSuspended:
			s.Suspended++
		default:
			s.Unknown++
		}
		s.TotalAmount += c.TotalAmount
		s.UnsettledAmount += c.UnsettledAmount
	}
	return s
}

// CustomerOrders returns the waybills of a customer. A waybill carrying a
// CustomerID is matched on it; otherwise the customer name is compared. The
// result is empty, never nil, when the customer is unknown.
func CustomerOrders(id string, customers []customer.Customer, waybills []waybill.Waybill) []waybill.Waybill {
	out := []waybill.Waybill{}
	c, err := customer.Find(customers, id)
	if err != nil {
		return out
	}
	for _, w := range waybills {
		if w.CustomerID != "" {
			if w.CustomerID == c.ID {
				out = append(out, w)
			}
			continue
		}
		if w.CustomerName == c.Name {
			out = append(out, w)
		}
	}
	return out
}
