package query

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// WaybillSpec searches waybill number and customer name, optionally narrowed
// to one status.
func WaybillSpec(term, status string) Spec[waybill.Waybill] {
	return Spec[waybill.Waybill]{
		Term: term,
		Fields: []Field[waybill.Waybill]{
			{Name: "waybill_no", Get: func(w waybill.Waybill) string { return w.WaybillNo }},
			{Name: "customer_name", Get: func(w waybill.Waybill) string { return w.CustomerName }},
		},
		Matches: []Match[waybill.Waybill]{
			{Name: "status", Want: status, Get: func(w waybill.Waybill) string { return string(w.Status) }},
		},
	}
}

// CustomerSpec searches name, contact and phone, optionally narrowed by
// cooperation status and credit level. Phone numbers are matched verbatim.
func CustomerSpec(term, status, credit string) Spec[customer.Customer] {
	return Spec[customer.Customer]{
		Term: term,
		Fields: []Field[customer.Customer]{
			{Name: "name", Get: func(c customer.Customer) string { return c.Name }},
			{Name: "contact", Get: func(c customer.Customer) string { return c.Contact }},
			{Name: "phone", Get: func(c customer.Customer) string { return c.Phone }, Exact: true},
		},
		Matches: []Match[customer.Customer]{
			{Name: "status", Want: status, Get: func(c customer.Customer) string { return string(c.CooperationStatus) }},
			{Name: "credit", Want: credit, Get: func(c customer.Customer) string { return string(c.CreditLevel) }},
		},
	}
}

var waybillSorts = map[string]func(a, b waybill.Waybill) int{
	"waybill_no":    func(a, b waybill.Waybill) int { return strings.Compare(a.WaybillNo, b.WaybillNo) },
	"-update_time":  func(a, b waybill.Waybill) int { return b.UpdateTime.Compare(a.UpdateTime) },
	"-order_amount": func(a, b waybill.Waybill) int { return cmp.Compare(b.OrderAmount, a.OrderAmount) },
	"status":        func(a, b waybill.Waybill) int { return cmp.Compare(a.Status.Rank(), b.Status.Rank()) },
}

var customerSorts = map[string]func(a, b customer.Customer) int{
	"name":              func(a, b customer.Customer) int { return strings.Compare(a.Name, b.Name) },
	"-total_amount":     func(a, b customer.Customer) int { return cmp.Compare(b.TotalAmount, a.TotalAmount) },
	"-unsettled_amount": func(a, b customer.Customer) int { return cmp.Compare(b.UnsettledAmount, a.UnsettledAmount) },
	"credit_level":      func(a, b customer.Customer) int { return strings.Compare(string(a.CreditLevel), string(b.CreditLevel)) },
}

// WaybillSort resolves a sort key. An empty key keeps input order.
func WaybillSort(key string) (func(a, b waybill.Waybill) int, error) {
	if key == "" {
		return nil, nil
	}
	fn, ok := waybillSorts[key]
	if !ok {
		return nil, fmt.Errorf("query: unknown waybill sort %q", key)
	}
	return fn, nil
}

// CustomerSort resolves a sort key. An empty key keeps input order.
func CustomerSort(key string) (func(a, b customer.Customer) int, error) {
	if key == "" {
		return nil, nil
	}
	fn, ok := customerSorts[key]
	if !ok {
		return nil, fmt.Errorf("query: unknown customer sort %q", key)
	}
	return fn, nil
}
