package analytics

import (
	"context"

	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/timeline"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// CountryData summarises shipments per destination country.
type CountryData struct {
	Name      string  `json:"name" validate:"required"`
	NameCN    string  `json:"name_cn"`
	Code      string  `json:"code" validate:"required,len=2"`
	InTransit int     `json:"in_transit" validate:"gte=0"`
	Exited    int     `json:"exited" validate:"gte=0"`
	Exception int     `json:"exception" validate:"gte=0"`
	Lat       float64 `json:"lat" validate:"latitude"`
	Lng       float64 `json:"lng" validate:"longitude"`
}

// RouteData describes one corridor and its performance.
type RouteData struct {
	ID            string  `json:"id" validate:"required"`
	From          string  `json:"from" validate:"required"`
	To            string  `json:"to" validate:"required"`
	FromLat       float64 `json:"from_lat" validate:"latitude"`
	FromLng       float64 `json:"from_lng" validate:"longitude"`
	ToLat         float64 `json:"to_lat" validate:"latitude"`
	ToLng         float64 `json:"to_lng" validate:"longitude"`
	Efficiency    float64 `json:"efficiency" validate:"gte=0,lte=100"`
	AvgTime       float64 `json:"avg_time" validate:"gte=0"`
	ExceptionRate float64 `json:"exception_rate" validate:"gte=0"`
	OrderCount    int     `json:"order_count" validate:"gte=0"`
}

// ExceptionData is one exception category of the distribution donut.
type ExceptionData struct {
	Type       string  `json:"type" validate:"required"`
	Count      int     `json:"count" validate:"gte=0"`
	Percentage float64 `json:"percentage" validate:"gte=0"`
}

// ExceptionOrderStatus is the handling state of an exception order.
type ExceptionOrderStatus string

const (
	ExceptionPending    ExceptionOrderStatus = "pending"
	ExceptionProcessing ExceptionOrderStatus = "processing"
	ExceptionResolved   ExceptionOrderStatus = "resolved"
)

// ExceptionOrder is a waybill with an open or resolved exception.
type ExceptionOrder struct {
	ID            string               `json:"id"`
	WaybillNo     string               `json:"waybill_no" validate:"required"`
	Route         string               `json:"route"`
	ExceptionType string               `json:"exception_type"`
	Description   string               `json:"description"`
	OccurTime     string               `json:"occur_time"`
	Status        ExceptionOrderStatus `json:"status" validate:"oneof=pending processing resolved"`
}

// OperatorPerformance is the operator scorecard. IsHighRisk is supplied by
// the data source and never recomputed.
type OperatorPerformance struct {
	ID             string  `json:"id"`
	Name           string  `json:"name" validate:"required"`
	OrderCount     int     `json:"order_count" validate:"gte=0"`
	AvgProcessTime float64 `json:"avg_process_time" validate:"gte=0"`
	OvertimeRate   float64 `json:"overtime_rate" validate:"gte=0"`
	IsHighRisk     bool    `json:"is_high_risk"`
}

// SalesmanPerformance is the salesman scorecard. IsHighRisk is supplied by
// the data source and never recomputed.
type SalesmanPerformance struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" validate:"required"`
	OrderScale    float64 `json:"order_scale" validate:"gte=0"`
	ExceptionRate float64 `json:"exception_rate" validate:"gte=0"`
	IsHighRisk    bool    `json:"is_high_risk"`
}

// FinancialTrend is one month of revenue and cost, in 万.
type FinancialTrend struct {
	Date    string  `json:"date" validate:"required"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// FinancialRisk holds the exposure totals, in 万.
type FinancialRisk struct {
	ExceptionLoss   float64 `json:"exception_loss"`
	UnsettledAmount float64 `json:"unsettled_amount"`
	OverdueAmount   float64 `json:"overdue_amount"`
}

// RiskLevel grades a high-risk order.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// HighRiskOrder is an order flagged for financial review.
type HighRiskOrder struct {
	ID         string    `json:"id"`
	WaybillNo  string    `json:"waybill_no" validate:"required"`
	RiskLevel  RiskLevel `json:"risk_level"`
	RiskReason string    `json:"risk_reason"`
	Amount     int64     `json:"amount" validate:"gte=0"`
}

// DashboardStats are the headline counters reported by the operations desk.
type DashboardStats struct {
	TodayOrders       int     `json:"today_orders"`
	TodayOrdersChange float64 `json:"today_orders_change"`
	InTransitVehicles int     `json:"in_transit_vehicles"`
	InTransitChange   float64 `json:"in_transit_change"`
	TotalRevenue      float64 `json:"total_revenue"`
	RevenueChange     float64 `json:"revenue_change"`
	ExceptionOrders   int     `json:"exception_orders"`
	ExceptionChange   float64 `json:"exception_change"`
	MonthOrders       int     `json:"month_orders"`
	YearOrders        int     `json:"year_orders"`
	ExitedVehicles    int     `json:"exited_vehicles"`
	GrossProfit       float64 `json:"gross_profit"`
	GrossMargin       float64 `json:"gross_margin"`
}

// Snapshot is the full input of the dashboard at a point in time. Functions in
// this package never modify a Snapshot.
type Snapshot struct {
	Stats           DashboardStats            `json:"stats"`
	Waybills        []waybill.Waybill         `json:"waybills" validate:"dive"`
	Customers       []customer.Customer       `json:"customers" validate:"dive"`
	Countries       []CountryData             `json:"countries" validate:"dive"`
	Routes          []RouteData               `json:"routes" validate:"dive"`
	NodeEfficiency  []timeline.NodeEfficiency `json:"node_efficiency"`
	Exceptions      []ExceptionData           `json:"exceptions" validate:"dive"`
	ExceptionOrders []ExceptionOrder          `json:"exception_orders" validate:"dive"`
	Operators       []OperatorPerformance     `json:"operators" validate:"dive"`
	Salesmen        []SalesmanPerformance     `json:"salesmen" validate:"dive"`
	Trend           []FinancialTrend          `json:"trend" validate:"dive"`
	Risk            FinancialRisk             `json:"risk"`
	HighRiskOrders  []HighRiskOrder           `json:"high_risk_orders" validate:"dive"`
}

// Repository exposes the dashboard data the service aggregates.
type Repository interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}
