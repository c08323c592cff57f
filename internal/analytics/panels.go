package analytics

import (
	"context"

	"github.com/silkroad-freight/freightboard/internal/timeline"
)

// OverviewPanel is the headline row of the dashboard.
type OverviewPanel struct {
	Stats      DashboardStats `json:"stats"`
	Waybills   WaybillCounts  `json:"waybills"`
	Customers  CustomerStats  `json:"customers"`
	Countries  CountrySummary `json:"countries"`
	Routes     RouteSummary   `json:"routes"`
	Exceptions int            `json:"exceptions"`
}

// BuildOverview derives the overview from a snapshot.
func BuildOverview(snap Snapshot) OverviewPanel {
	return OverviewPanel{
		Stats:      snap.Stats,
		Waybills:   WaybillOverview(snap.Waybills),
		Customers:  ComputeCustomerStats(snap.Customers),
		Countries:  CountryTotals(snap.Countries),
		Routes:     RouteTotals(snap.Routes),
		Exceptions: ExceptionTotal(snap.Exceptions),
	}
}

// Overview returns the cached overview panel.
func (s *Service) Overview(ctx context.Context) (OverviewPanel, error) {
	return fetchPanel(ctx, s, PanelOverview, BuildOverview)
}

// CustomerPanel carries the customer stats with display amounts.
type CustomerPanel struct {
	Stats           CustomerStats `json:"stats"`
	TotalAmount     Scaled        `json:"total_amount"`
	UnsettledAmount Scaled        `json:"unsettled_amount"`
}

// BuildCustomers derives the customer panel.
func BuildCustomers(snap Snapshot) CustomerPanel {
	stats := ComputeCustomerStats(snap.Customers)
	return CustomerPanel{
		Stats:           stats,
		TotalAmount:     Format(float64(stats.TotalAmount), UnitYi, 2),
		UnsettledAmount: Format(float64(stats.UnsettledAmount), UnitWan, 0),
	}
}

// Customers returns the cached customer panel.
func (s *Service) Customers(ctx context.Context) (CustomerPanel, error) {
	return fetchPanel(ctx, s, PanelCustomers, BuildCustomers)
}

// ProcessPanel covers node efficiency and exceptions.
type ProcessPanel struct {
	Reported        []timeline.NodeEfficiency `json:"reported"`
	Measured        []timeline.NodeEfficiency `json:"measured"`
	Bars            []timeline.Bar            `json:"bars"`
	MaxTime         float64                   `json:"max_time"`
	Segments        []Segment                 `json:"segments"`
	ExceptionTotal  int                       `json:"exception_total"`
	ExceptionOrders []ExceptionOrder          `json:"exception_orders"`
	OpenExceptions  int                       `json:"open_exceptions"`
}

// BuildProcess derives the process panel. Reported records are re-evaluated
// rather than trusting their stored flag; Measured records come from the
// waybill node timestamps.
func BuildProcess(snap Snapshot, thresholds timeline.Thresholds) ProcessPanel {
	reported := timeline.EvaluateAll(snap.NodeEfficiency)
	orders := append([]ExceptionOrder{}, snap.ExceptionOrders...)
	return ProcessPanel{
		Reported:        reported,
		Measured:        timeline.Efficiency(snap.Waybills, thresholds),
		Bars:            timeline.Bars(reported),
		MaxTime:         timeline.MaxTime(reported),
		Segments:        ExceptionSegments(snap.Exceptions),
		ExceptionTotal:  ExceptionTotal(snap.Exceptions),
		ExceptionOrders: orders,
		OpenExceptions:  len(OpenExceptionOrders(orders)),
	}
}

// Process returns the cached process panel.
func (s *Service) Process(ctx context.Context) (ProcessPanel, error) {
	return fetchPanel(ctx, s, PanelProcess, func(snap Snapshot) ProcessPanel {
		return BuildProcess(snap, s.settings.Thresholds)
	})
}

// TeamPanel carries the classified scorecards.
type TeamPanel struct {
	Operators     []ClassifiedOperator `json:"operators"`
	Salesmen      []ClassifiedSalesman `json:"salesmen"`
	OperatorBands Bands                `json:"operator_bands"`
	SalesmanBands Bands                `json:"salesman_bands"`
	Disagreements int                  `json:"disagreements"`
}

// BuildTeam derives the team panel.
func BuildTeam(snap Snapshot, opBands, salesBands Bands) TeamPanel {
	p := TeamPanel{
		Operators:     ClassifyOperators(snap.Operators, opBands),
		Salesmen:      ClassifySalesmen(snap.Salesmen, salesBands),
		OperatorBands: opBands,
		SalesmanBands: salesBands,
	}
	for _, o := range p.Operators {
		if o.BandDisagrees {
			p.Disagreements++
		}
	}
	for _, sm := range p.Salesmen {
		if sm.BandDisagrees {
			p.Disagreements++
		}
	}
	return p
}

// Team returns the cached team panel.
func (s *Service) Team(ctx context.Context) (TeamPanel, error) {
	return fetchPanel(ctx, s, PanelTeam, func(snap Snapshot) TeamPanel {
		return BuildTeam(snap, s.settings.OperatorBands, s.settings.SalesmanBands)
	})
}

// NetworkPanel covers routes and destination countries.
type NetworkPanel struct {
	Routes        []GradedRoute  `json:"routes"`
	RouteTotals   RouteSummary   `json:"route_totals"`
	Countries     []CountryData  `json:"countries"`
	CountryTotals CountrySummary `json:"country_totals"`
}

// BuildNetwork derives the network panel.
func BuildNetwork(snap Snapshot) NetworkPanel {
	return NetworkPanel{
		Routes:        GradeRoutes(snap.Routes),
		RouteTotals:   RouteTotals(snap.Routes),
		Countries:     append([]CountryData{}, snap.Countries...),
		CountryTotals: CountryTotals(snap.Countries),
	}
}

// Network returns the cached network panel.
func (s *Service) Network(ctx context.Context) (NetworkPanel, error) {
	return fetchPanel(ctx, s, PanelNetwork, BuildNetwork)
}

// FinancePanel covers revenue trend and risk exposure.
type FinancePanel struct {
	Summary        Finance           `json:"summary"`
	Trend          []FinancialTrend  `json:"trend"`
	HighRiskOrders []StyledRiskOrder `json:"high_risk_orders"`
}

// BuildFinance derives the finance panel.
func BuildFinance(snap Snapshot) FinancePanel {
	return FinancePanel{
		Summary:        FinanceSummary(snap.Trend, snap.Risk),
		Trend:          append([]FinancialTrend{}, snap.Trend...),
		HighRiskOrders: StyleRiskOrders(snap.HighRiskOrders),
	}
}

// Finance returns the cached finance panel.
func (s *Service) Finance(ctx context.Context) (FinancePanel, error) {
	return fetchPanel(ctx, s, PanelFinance, BuildFinance)
}
