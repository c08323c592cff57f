package analytics

// Segment is one slice of the exception donut. Angles are in degrees,
// clockwise from 0.
type Segment struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Sweep      float64 `json:"sweep"`
	LargeArc   bool    `json:"large_arc"`
}

// ExceptionSegments lays the categories out consecutively. Each sweep is the
// category's share of the summed percentages times 360. A zero sum yields no
// segments. Negative percentages count as zero.
func ExceptionSegments(data []ExceptionData) []Segment {
	var total float64
	for _, d := range data {
		if d.Percentage > 0 {
			total += d.Percentage
		}
	}
	out := []Segment{}
	if total <= 0 {
		return out
	}
	var current float64
	for _, d := range data {
		pct := d.Percentage
		if pct < 0 {
			pct = 0
		}
		sweep := pct / total * 360
		out = append(out, Segment{
			Type:       d.Type,
			Count:      d.Count,
			Percentage: d.Percentage,
			StartAngle: current,
			EndAngle:   current + sweep,
			Sweep:      sweep,
			LargeArc:   sweep > 180,
		})
		current += sweep
	}
	return out
}

// ExceptionTotal sums the category counts.
func ExceptionTotal(data []ExceptionData) int {
	total := 0
	for _, d := range data {
		total += d.Count
	}
	return total
}

// OpenExceptionOrders returns the exception orders not yet resolved.
func OpenExceptionOrders(orders []ExceptionOrder) []ExceptionOrder {
	out := []ExceptionOrder{}
	for _, o := range orders {
		if o.Status != ExceptionResolved {
			out = append(out, o)
		}
	}
	return out
}
