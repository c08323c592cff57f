package analytics

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

func TestComputeCustomerStats(t *testing.T) {
	assert.Equal(t, CustomerStats{}, ComputeCustomerStats(nil))

	stats := ComputeCustomerStats([]customer.Customer{
		{CooperationStatus: customer.CooperationActive, TotalAmount: 100, UnsettledAmount: 10},
		{CooperationStatus: customer.CooperationInactive, TotalAmount: 50},
		{CooperationStatus: customer.CooperationSuspended, TotalAmount: 25, UnsettledAmount: 5},
		{CooperationStatus: "archived", TotalAmount: 1},
	})
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Inactive)
	assert.Equal(t, 1, stats.Suspended)
	assert.Equal(t, 1, stats.Unknown)
	assert.Equal(t, int64(176), stats.TotalAmount)
	assert.Equal(t, int64(15), stats.UnsettledAmount)
}

func TestCustomerOrders(t *testing.T) {
	customers := []customer.Customer{
		{ID: "1", Name: "新疆国际贸易有限公司"},
		{ID: "2", Name: "中亚物流集团"},
		{ID: "7", Name: "西域贸易集团"},
	}
	waybills := []waybill.Waybill{
		{WaybillNo: "GF20240120001", CustomerName: "新疆国际贸易有限公司"},
		{WaybillNo: "GF20240120002", CustomerName: "中亚物流集团"},
		{WaybillNo: "GF20240120009", CustomerName: "改名后的公司", CustomerID: "2"},
		{WaybillNo: "GF20240120010", CustomerName: "中亚物流集团", CustomerID: "1"},
	}

	got := CustomerOrders("1", customers, waybills)
	require.Len(t, got, 2)
	assert.Equal(t, "GF20240120001", got[0].WaybillNo)
	assert.Equal(t, "GF20240120010", got[1].WaybillNo)

	got = CustomerOrders("2", customers, waybills)
	require.Len(t, got, 2)
	assert.Equal(t, "GF20240120002", got[0].WaybillNo)
	assert.Equal(t, "GF20240120009", got[1].WaybillNo)

	none := CustomerOrders("7", customers, waybills)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	missing := CustomerOrders("99", customers, waybills)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestExceptionSegments(t *testing.T) {
	segs := ExceptionSegments([]ExceptionData{
		{Type: "超时", Count: 23, Percentage: 45},
		{Type: "单据问题", Count: 15, Percentage: 30},
		{Type: "换头", Count: 8, Percentage: 15},
		{Type: "其他", Count: 5, Percentage: 10},
	})
	require.Len(t, segs, 4)
	want := []float64{162, 108, 54, 36}
	var start float64
	for i, s := range segs {
		assert.InDelta(t, want[i], s.Sweep, 1e-9)
		assert.InDelta(t, start, s.StartAngle, 1e-9)
		start += want[i]
	}
	assert.InDelta(t, 360, segs[3].EndAngle, 1e-6)
	assert.False(t, segs[0].LargeArc)

	assert.Empty(t, ExceptionSegments(nil))
	assert.Empty(t, ExceptionSegments([]ExceptionData{{Type: "x", Percentage: 0}}))
	assert.Equal(t, 0, ExceptionTotal(nil))
}

func TestExceptionSegmentsSumTo360(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("angles sum to 360 for any positive distribution", prop.ForAll(
		func(pcts []float64) bool {
			data := make([]ExceptionData, len(pcts))
			for i, p := range pcts {
				data[i] = ExceptionData{Type: "t", Percentage: p}
			}
			segs := ExceptionSegments(data)
			var sum float64
			for _, s := range segs {
				sum += s.Sweep
			}
			diff := sum - 360
			return diff < 1e-6 && diff > -1e-6
		},
		gen.SliceOfN(6, gen.Float64Range(0.1, 100)),
	))
	properties.TestingRun(t)
}

func TestMoneyScale(t *testing.T) {
	assert.InDelta(t, 45, ToWan(450000), 1e-9)
	assert.InDelta(t, 2.85, ToYi(285000000), 1e-9)
	assert.InDelta(t, 450000, ToWan(450000)*1e4, 1e-6)
	assert.Equal(t, 12.0, Scale(12, UnitYuan))
	assert.InDelta(t, 2.85, Scale(285000000, UnitYi), 1e-9)

	f := Format(285000000, UnitYi, 2)
	assert.Equal(t, UnitYi, f.Unit)
	assert.Contains(t, f.Display, "2.85")
	assert.Contains(t, f.Display, "亿")
	assert.Contains(t, Format(450000, UnitWan, -1).Display, "45万")
}

func TestBands(t *testing.T) {
	b := DefaultOperatorBands()
	require.NoError(t, b.Validate())
	assert.Equal(t, BandNormal, OperatorBand(5, b))
	assert.Equal(t, BandWarning, OperatorBand(8, b))
	assert.Equal(t, BandHigh, OperatorBand(8.1, b))

	s := DefaultSalesmanBands()
	assert.Equal(t, BandNormal, SalesmanBand(3, s))
	assert.Equal(t, BandWarning, SalesmanBand(4.2, s))
	assert.Equal(t, BandHigh, SalesmanBand(5.5, s))

	assert.Error(t, Bands{Normal: 5, Warning: 3}.Validate())
	bg, fg := BandStyle(BandHigh)
	assert.Equal(t, "bg-red-100", bg)
	assert.Equal(t, "text-red-700", fg)
}

func TestClassifyKeepsSuppliedFlag(t *testing.T) {
	ops := ClassifyOperators([]OperatorPerformance{
		{Name: "张小明", OvertimeRate: 5},
		{Name: "王强", OvertimeRate: 8, IsHighRisk: true},
		{Name: "陈静", OvertimeRate: 9},
	}, DefaultOperatorBands())
	require.Len(t, ops, 3)
	assert.False(t, ops[0].BandDisagrees)
	assert.True(t, ops[1].IsHighRisk)
	assert.Equal(t, BandWarning, ops[1].Band)
	assert.True(t, ops[1].BandDisagrees)
	assert.False(t, ops[2].IsHighRisk)
	assert.True(t, ops[2].BandDisagrees)

	sales := ClassifySalesmen([]SalesmanPerformance{{Name: "张伟", ExceptionRate: 5.5, IsHighRisk: true}}, DefaultSalesmanBands())
	assert.Equal(t, BandHigh, sales[0].Band)
	assert.False(t, sales[0].BandDisagrees)

	assert.Empty(t, ClassifyOperators(nil, DefaultOperatorBands()))
}

func TestRouteBandAndTotals(t *testing.T) {
	assert.Equal(t, GradeExcellent, RouteBand(92))
	assert.Equal(t, GradeExcellent, RouteBand(90))
	assert.Equal(t, GradeGood, RouteBand(85))
	assert.Equal(t, GradeFair, RouteBand(78))
	assert.Equal(t, GradePoor, RouteBand(69.9))

	totals := RouteTotals([]RouteData{{Efficiency: 80, OrderCount: 100}, {Efficiency: 90, OrderCount: 300}})
	assert.Equal(t, 400, totals.Orders)
	assert.InDelta(t, 87.5, totals.WeightedEfficiency, 1e-9)
	assert.Equal(t, RouteSummary{}, RouteTotals(nil))

	countries := CountryTotals([]CountryData{
		{InTransit: 35, Exited: 128, Exception: 3},
		{InTransit: 22, Exited: 89, Exception: 1},
	})
	assert.Equal(t, CountrySummary{Countries: 2, InTransit: 57, Exited: 217, Exception: 4}, countries)
	assert.Equal(t, CountrySummary{}, CountryTotals(nil))
}

func TestFinanceSummary(t *testing.T) {
	f := FinanceSummary([]FinancialTrend{
		{Date: "1月", Revenue: 980, Cost: 735, Profit: 245},
		{Date: "2月", Revenue: 1120, Cost: 840, Profit: 280},
	}, FinancialRisk{ExceptionLoss: 2.5, UnsettledAmount: 45, OverdueAmount: 12})
	assert.InDelta(t, 2100, f.Revenue, 1e-9)
	assert.InDelta(t, 525, f.Profit, 1e-9)
	assert.InDelta(t, 25, f.GrossMargin, 1e-9)
	assert.InDelta(t, 59.5, f.RiskExposure, 1e-9)

	empty := FinanceSummary(nil, FinancialRisk{})
	assert.Equal(t, 0.0, empty.GrossMargin)
	assert.Equal(t, 0, empty.Months)
}

func TestRiskStyle(t *testing.T) {
	assert.Equal(t, "高风险", RiskStyle("high").Label)
	assert.Equal(t, "中风险", RiskStyle("medium").Label)
	assert.Equal(t, "低风险", RiskStyle("low").Label)
	unknown := RiskStyle("severe")
	assert.True(t, unknown.Unknown)
	assert.Equal(t, "未知", unknown.Label)

	styled := StyleRiskOrders([]HighRiskOrder{{WaybillNo: "GF20240120001", RiskLevel: RiskHigh, Amount: 85000}})
	require.Len(t, styled, 1)
	assert.InDelta(t, 8.5, styled[0].Scaled.Value, 1e-9)
	assert.Equal(t, "高风险", styled[0].Badge.Label)
}

func TestWaybillOverview(t *testing.T) {
	empty := WaybillOverview(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Len(t, empty.ByStatus, len(waybill.Statuses()))

	o := WaybillOverview([]waybill.Waybill{
		{Status: waybill.StatusInTransit, OrderAmount: 45000},
		{Status: waybill.StatusSealed, OrderAmount: 32000},
		{Status: waybill.StatusExited, OrderAmount: 68000},
		{Status: waybill.StatusException, OrderAmount: 28000},
		{Status: "lost", OrderAmount: 1},
	})
	assert.Equal(t, 5, o.Total)
	assert.Equal(t, 1, o.InTransit)
	assert.Equal(t, 1, o.Exited)
	assert.Equal(t, 1, o.Exceptions)
	assert.Equal(t, 3, o.InProgress)
	assert.Equal(t, 1, o.Unknown)
	assert.Equal(t, int64(173001), o.OrderAmount)
}
