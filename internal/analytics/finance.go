package analytics

// Finance is the finance panel headline, amounts in 万.
type Finance struct {
	Revenue      float64       `json:"revenue"`
	Cost         float64       `json:"cost"`
	Profit       float64       `json:"profit"`
	GrossMargin  float64       `json:"gross_margin"`
	Months       int           `json:"months"`
	RiskExposure float64       `json:"risk_exposure"`
	Risk         FinancialRisk `json:"risk"`
}

// FinanceSummary totals the trend and derives the gross margin percentage,
// 0 when there is no revenue.
func FinanceSummary(trend []FinancialTrend, risk FinancialRisk) Finance {
	f := Finance{Risk: risk, Months: len(trend)}
	for _, t := range trend {
		f.Revenue += t.Revenue
		f.Cost += t.Cost
		f.Profit += t.Profit
	}
	if f.Revenue != 0 {
		f.GrossMargin = f.Profit / f.Revenue * 100
	}
	f.RiskExposure = risk.ExceptionLoss + risk.UnsettledAmount + risk.OverdueAmount
	return f
}

// RiskBadge is the presentation of a risk level.
type RiskBadge struct {
	Level      string `json:"level"`
	Label      string `json:"label"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Border     string `json:"border"`
	Unknown    bool   `json:"unknown,omitempty"`
}

var riskBadges = map[RiskLevel]RiskBadge{
	RiskHigh:   {Label: "高风险", Background: "bg-red-100", Foreground: "text-red-700", Border: "border-red-200"},
	RiskMedium: {Label: "中风险", Background: "bg-yellow-100", Foreground: "text-yellow-700", Border: "border-yellow-200"},
	RiskLow:    {Label: "低风险", Background: "bg-green-100", Foreground: "text-green-700", Border: "border-green-200"},
}

// RiskStyle returns the badge of a risk level. Unknown levels get a neutral
// "未知" badge with Unknown set.
func RiskStyle(level string) RiskBadge {
	b, ok := riskBadges[RiskLevel(level)]
	if !ok {
		b = RiskBadge{Label: "未知", Background: "bg-gray-100", Foreground: "text-gray-700", Border: "border-gray-200", Unknown: true}
	}
	b.Level = level
	return b
}

// StyledRiskOrder is a high-risk order with its badge and scaled amount.
type StyledRiskOrder struct {
	HighRiskOrder
	Badge  RiskBadge `json:"badge"`
	Scaled Scaled    `json:"scaled"`
}

// StyleRiskOrders attaches badges and 万 amounts, keeping input order.
func StyleRiskOrders(orders []HighRiskOrder) []StyledRiskOrder {
	out := make([]StyledRiskOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, StyledRiskOrder{
			HighRiskOrder: o,
			Badge:         RiskStyle(string(o.RiskLevel)),
			Scaled:        Format(float64(o.Amount), UnitWan, 1),
		})
	}
	return out
}
