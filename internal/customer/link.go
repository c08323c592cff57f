package customer

import (
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// LinkIssue describes a waybill that could not be tied to exactly one customer.
type LinkIssue struct {
	WaybillNo    string   `json:"waybill_no"`
	CustomerName string   `json:"customer_name"`
	CandidateIDs []string `json:"candidate_ids,omitempty"`
}

// LinkReport is the outcome of LinkWaybills.
type LinkReport struct {
	Linked    int         `json:"linked"`
	Preset    int         `json:"preset"`
	Unmatched []LinkIssue `json:"unmatched"`
	Ambiguous []LinkIssue `json:"ambiguous"`
	Dangling  []LinkIssue `json:"dangling"`
}

// Clean reports whether every waybill resolved to exactly one customer.
func (r LinkReport) Clean() bool {
	return len(r.Unmatched) == 0 && len(r.Ambiguous) == 0 && len(r.Dangling) == 0
}

// LinkWaybills fills CustomerID on waybills that lack one by exact name match.
// Waybills that match no customer or several customers are reported and left
// unlinked. A preset CustomerID that names no customer is reported as dangling.
// The input slice is not modified.
func LinkWaybills(customers []Customer, waybills []waybill.Waybill) ([]waybill.Waybill, LinkReport) {
	byName := make(map[string][]string, len(customers))
	ids := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		byName[c.Name] = append(byName[c.Name], c.ID)
		ids[c.ID] = struct{}{}
	}

	report := LinkReport{
		Unmatched: []LinkIssue{},
		Ambiguous: []LinkIssue{},
		Dangling:  []LinkIssue{},
	}
	out := make([]waybill.Waybill, len(waybills))
	for i, w := range waybills {
		out[i] = w
		if w.CustomerID != "" {
			if _, ok := ids[w.CustomerID]; !ok {
				report.Dangling = append(report.Dangling, LinkIssue{
					WaybillNo:    w.WaybillNo,
					CustomerName: w.CustomerName,
					CandidateIDs: []string{w.CustomerID},
				})
				continue
			}
			report.Preset++
			continue
		}
		candidates := byName[w.CustomerName]
		switch len(candidates) {
		case 0:
			report.Unmatched = append(report.Unmatched, LinkIssue{WaybillNo: w.WaybillNo, CustomerName: w.CustomerName})
		case 1:
			out[i].CustomerID = candidates[0]
			report.Linked++
		default:
			report.Ambiguous = append(report.Ambiguous, LinkIssue{
				WaybillNo:    w.WaybillNo,
				CustomerName: w.CustomerName,
				CandidateIDs: append([]string(nil), candidates...),
			})
		}
	}
	return out, report
}
