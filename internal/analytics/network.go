package analytics

// RouteGrade is the efficiency grade of a route.
type RouteGrade string

const (
	GradeExcellent RouteGrade = "excellent"
	GradeGood      RouteGrade = "good"
	GradeFair      RouteGrade = "fair"
	GradePoor      RouteGrade = "poor"
)

// RouteBand grades a route efficiency percentage.
func RouteBand(efficiency float64) RouteGrade {
	switch {
	case efficiency >= 90:
		return GradeExcellent
	case efficiency >= 80:
		return GradeGood
	case efficiency >= 70:
		return GradeFair
	default:
		return GradePoor
	}
}

// GradedRoute is a route with its efficiency grade.
type GradedRoute struct {
	RouteData
	Grade RouteGrade `json:"grade"`
}

// GradeRoutes grades every route, keeping input order.
func GradeRoutes(routes []RouteData) []GradedRoute {
	out := make([]GradedRoute, 0, len(routes))
	for _, r := range routes {
		out = append(out, GradedRoute{RouteData: r, Grade: RouteBand(r.Efficiency)})
	}
	return out
}

// CountrySummary sums shipment counters across countries.
type CountrySummary struct {
	Countries int `json:"countries"`
	InTransit int `json:"in_transit"`
	Exited    int `json:"exited"`
	Exception int `json:"exception"`
}

// CountryTotals aggregates the per-country counters.
func CountryTotals(countries []CountryData) CountrySummary {
	var s CountrySummary
	for _, c := range countries {
		s.Countries++
		s.InTransit += c.InTransit
		s.Exited += c.Exited
		s.Exception += c.Exception
	}
	return s
}

// RouteSummary aggregates route order volume.
type RouteSummary struct {
	Routes             int     `json:"routes"`
	Orders             int     `json:"orders"`
	WeightedEfficiency float64 `json:"weighted_efficiency"`
}

// RouteTotals sums orders and computes the order-weighted efficiency, 0 when
// no route carries orders.
func RouteTotals(routes []RouteData) RouteSummary {
	var s RouteSummary
	var weighted float64
	for _, r := range routes {
		s.Routes++
		s.Orders += r.OrderCount
		weighted += r.Efficiency * float64(r.OrderCount)
	}
	if s.Orders > 0 {
		s.WeightedEfficiency = weighted / float64(s.Orders)
	}
	return s
}
