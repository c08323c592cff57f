package analytics

import (
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// StatusCount is the number of waybills in one status.
type StatusCount struct {
	Status waybill.Status `json:"status"`
	Label  string         `json:"label"`
	Count  int            `json:"count"`
}

// WaybillCounts summarises a waybill collection.
type WaybillCounts struct {
	Total       int           `json:"total"`
	ByStatus    []StatusCount `json:"by_status"`
	InProgress  int           `json:"in_progress"`
	InTransit   int           `json:"in_transit"`
	Exited      int           `json:"exited"`
	Exceptions  int           `json:"exceptions"`
	Completed   int           `json:"completed"`
	Unknown     int           `json:"unknown"`
	OrderAmount int64         `json:"order_amount"`
}

// WaybillOverview counts waybills per status in canonical order. Waybills in
// an unknown status are counted under Unknown only.
func WaybillOverview(waybills []waybill.Waybill) WaybillCounts {
	counts := make(map[waybill.Status]int)
	var out WaybillCounts
	for _, w := range waybills {
		out.Total++
		out.OrderAmount += w.OrderAmount
		if !w.Status.IsValid() {
			out.Unknown++
			continue
		}
		counts[w.Status]++
		if !w.Status.IsTerminal() {
			out.InProgress++
		}
	}
	out.InTransit = counts[waybill.StatusInTransit]
	out.Exited = counts[waybill.StatusExited]
	out.Exceptions = counts[waybill.StatusException]
	out.Completed = counts[waybill.StatusCompleted]

	out.ByStatus = make([]StatusCount, 0, len(waybill.Statuses()))
	for _, s := range waybill.Statuses() {
		label, _ := s.Label()
		out.ByStatus = append(out.ByStatus, StatusCount{Status: s, Label: label, Count: counts[s]})
	}
	return out
}
