package timeline

import (
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// NodeEfficiency is the average duration of one node type against its threshold.
type NodeEfficiency struct {
	Node            string           `json:"node"`
	NodeType        waybill.NodeType `json:"node_type,omitempty"`
	AvgTime         float64          `json:"avg_time"`
	Threshold       float64          `json:"threshold"`
	IsOverThreshold bool             `json:"is_over_threshold"`
	OverageMinutes  float64          `json:"overage_minutes"`
	Samples         int              `json:"samples,omitempty"`
	// NoThreshold marks node types without a configured threshold; they are
	// never over threshold.
	NoThreshold bool `json:"no_threshold,omitempty"`
}

func (r NodeEfficiency) evaluate() Evaluation {
	if r.NoThreshold {
		return Evaluation{}
	}
	return Evaluate(r.AvgTime, r.Threshold)
}

// EvaluateAll recomputes the threshold evaluation of every record.
func EvaluateAll(records []NodeEfficiency) []NodeEfficiency {
	out := make([]NodeEfficiency, len(records))
	for i, r := range records {
		ev := r.evaluate()
		r.IsOverThreshold = ev.IsOverThreshold
		r.OverageMinutes = ev.OverageMinutes
		out[i] = r
	}
	return out
}

// MaxTime is the largest average duration, 0 for an empty list.
func MaxTime(records []NodeEfficiency) float64 {
	var max float64
	for _, r := range records {
		if r.AvgTime > max {
			max = r.AvgTime
		}
	}
	return max
}

// Bar is one normalised bar of the efficiency chart.
type Bar struct {
	Node            string  `json:"node"`
	AvgTime         float64 `json:"avg_time"`
	Width           float64 `json:"width"`
	IsOverThreshold bool    `json:"is_over_threshold"`
}

// Bars normalises each record against MaxTime. Widths are 0 when every
// duration is 0.
func Bars(records []NodeEfficiency) []Bar {
	out := make([]Bar, 0, len(records))
	max := MaxTime(records)
	for _, r := range records {
		width := 0.0
		if max > 0 {
			width = r.AvgTime / max
		}
		out = append(out, Bar{
			Node:            r.Node,
			AvgTime:         r.AvgTime,
			Width:           width,
			IsOverThreshold: r.evaluate().IsOverThreshold,
		})
	}
	return out
}

// Durations returns the minutes spent on each completed node. A node's
// duration runs from the previous node's timestamp, or the loading time for
// the first node.
func Durations(w waybill.Waybill) map[waybill.NodeType]float64 {
	out := make(map[waybill.NodeType]float64)
	prev := w.LoadingTime
	for _, n := range w.Nodes {
		if n.Timestamp == nil {
			continue
		}
		if n.Status == waybill.NodeCompleted && !prev.IsZero() {
			minutes := n.Timestamp.Sub(prev).Minutes()
			if minutes >= 0 {
				out[n.Type] = minutes
			}
		}
		prev = *n.Timestamp
	}
	return out
}

// Efficiency averages node durations across waybills and evaluates them
// against thresholds. Node types without samples are omitted; node types
// without a threshold are reported with NoThreshold set.
func Efficiency(waybills []waybill.Waybill, thresholds Thresholds) []NodeEfficiency {
	sums := make(map[waybill.NodeType]float64)
	counts := make(map[waybill.NodeType]int)
	for _, w := range waybills {
		for nt, minutes := range Durations(w) {
			sums[nt] += minutes
			counts[nt]++
		}
	}

	out := make([]NodeEfficiency, 0, len(counts))
	for _, nt := range waybill.NodeTypes() {
		n := counts[nt]
		if n == 0 {
			continue
		}
		label, _ := nt.Label()
		threshold, ok := thresholds.For(nt)
		rec := NodeEfficiency{
			Node:        label,
			NodeType:    nt,
			AvgTime:     sums[nt] / float64(n),
			Threshold:   threshold,
			Samples:     n,
			NoThreshold: !ok,
		}
		ev := rec.evaluate()
		rec.IsOverThreshold = ev.IsOverThreshold
		rec.OverageMinutes = ev.OverageMinutes
		out = append(out, rec)
	}
	return out
}
