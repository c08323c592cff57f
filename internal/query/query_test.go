package query

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

func waybills() []waybill.Waybill {
	base := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	return []waybill.Waybill{
		{WaybillNo: "GF20240120001", CustomerName: "新疆国际贸易有限公司", Status: waybill.StatusInTransit, OrderAmount: 45000, UpdateTime: base.Add(5 * time.Hour)},
		{WaybillNo: "GF20240120002", CustomerName: "中亚物流集团", Status: waybill.StatusSealed, OrderAmount: 32000, UpdateTime: base.Add(2 * time.Hour)},
		{WaybillNo: "GF20240120003", CustomerName: "西北贸易公司", Status: waybill.StatusExited, OrderAmount: 68000, UpdateTime: base.Add(1 * time.Hour)},
		{WaybillNo: "gf20240120004", CustomerName: "Silk Road Forwarding", Status: waybill.StatusException, OrderAmount: 28000, UpdateTime: base.Add(4 * time.Hour)},
	}
}

func customers() []customer.Customer {
	return []customer.Customer{
		{ID: "1", Name: "新疆国际贸易有限公司", Contact: "张经理", Phone: "0991-8888888", CreditLevel: customer.CreditA, CooperationStatus: customer.CooperationActive, TotalAmount: 28500000},
		{ID: "4", Name: "丝路货运代理", Contact: "刘经理", Phone: "0993-7777777", CreditLevel: customer.CreditC, CooperationStatus: customer.CooperationSuspended, TotalAmount: 5600000},
		{ID: "7", Name: "Xiyu Trading", Contact: "Mr. SUN", Phone: "0995-4444444", CreditLevel: customer.CreditB, CooperationStatus: customer.CooperationInactive, TotalAmount: 4800000},
	}
}

func numbers(ws []waybill.Waybill) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.WaybillNo
	}
	return out
}

func TestWaybillFilter(t *testing.T) {
	all := waybills()

	got := Filter(all, WaybillSpec("GF2024012000", ""))
	assert.Len(t, got, 4, "term is case-insensitive")

	got = Filter(all, WaybillSpec("中亚", ""))
	assert.Equal(t, []string{"GF20240120002"}, numbers(got))

	got = Filter(all, WaybillSpec("silk road", "all"))
	assert.Equal(t, []string{"gf20240120004"}, numbers(got))

	got = Filter(all, WaybillSpec("GF", string(waybill.StatusExited)))
	assert.Equal(t, []string{"GF20240120003"}, numbers(got))

	got = Filter(all, WaybillSpec("中亚", string(waybill.StatusExited)))
	assert.Empty(t, got, "term and status are combined with AND")
}

func TestFilterInactiveSpecReturnsInput(t *testing.T) {
	all := waybills()
	got := Filter(all, WaybillSpec("", "all"))
	require.Len(t, got, len(all))
	assert.Same(t, &all[0], &got[0])

	got = Filter(all, WaybillSpec("", ""))
	assert.Same(t, &all[0], &got[0])
}

func TestCustomerFilter(t *testing.T) {
	all := customers()

	assert.Len(t, Filter(all, CustomerSpec("mr. sun", "", "")), 1)
	assert.Len(t, Filter(all, CustomerSpec("0993", "", "")), 1)
	assert.Len(t, Filter(all, CustomerSpec("经理", "", "")), 2)
	assert.Len(t, Filter(all, CustomerSpec("经理", "active", "")), 1)
	assert.Len(t, Filter(all, CustomerSpec("", "all", "C")), 1)
	assert.Empty(t, Filter(all, CustomerSpec("", "active", "B")))
}

func TestFilterIsIdempotent(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	terms := []string{"", "GF", "gf2024", "中亚", "贸易", "silk", "zzz"}
	statuses := []string{"", "all", "in_transit", "sealed", "exception", "lost"}

	properties.Property("filtering twice equals filtering once", prop.ForAll(
		func(ti, si int) bool {
			spec := WaybillSpec(terms[ti], statuses[si])
			once := Filter(waybills(), spec)
			twice := Filter(once, spec)
			return assert.ObjectsAreEqual(numbers(once), numbers(twice))
		},
		gen.IntRange(0, len(terms)-1),
		gen.IntRange(0, len(statuses)-1),
	))

	properties.Property("result preserves input order", prop.ForAll(
		func(ti int) bool {
			got := numbers(Filter(waybills(), WaybillSpec(terms[ti], "")))
			all := numbers(waybills())
			j := 0
			for _, no := range all {
				if j < len(got) && got[j] == no {
					j++
				}
			}
			return j == len(got)
		},
		gen.IntRange(0, len(terms)-1),
	))

	properties.TestingRun(t)
}

func TestSorted(t *testing.T) {
	all := waybills()
	byUpdate, err := WaybillSort("-update_time")
	require.NoError(t, err)
	got := Sorted(all, byUpdate)
	assert.Equal(t, []string{"GF20240120001", "gf20240120004", "GF20240120002", "GF20240120003"}, numbers(got))
	assert.Equal(t, "GF20240120001", all[0].WaybillNo)
	assert.Equal(t, "GF20240120002", all[1].WaybillNo, "input order untouched")

	none, err := WaybillSort("")
	require.NoError(t, err)
	assert.Equal(t, numbers(all), numbers(Sorted(all, none)))

	_, err = WaybillSort("colour")
	assert.Error(t, err)

	byAmount, err := CustomerSort("-total_amount")
	require.NoError(t, err)
	cs := Sorted(customers(), byAmount)
	assert.Equal(t, "1", cs[0].ID)
	assert.Equal(t, "7", cs[2].ID)
	_, err = CustomerSort("age")
	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, p := Paginate(items, 1, 2)
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, Pagination{Page: 1, PerPage: 2, Total: 5, TotalPages: 3}, p)

	page, _ = Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, page)

	page, p = Paginate(items, 9, 2)
	assert.Empty(t, page)
	assert.Equal(t, 9, p.Page)

	page, p = Paginate(items, 0, 0)
	assert.Len(t, page, 5)
	assert.Equal(t, DefaultPerPage, p.PerPage)

	_, p = Paginate(items, 1, 1000)
	assert.Equal(t, MaxPerPage, p.PerPage)

	page, p = Paginate([]int{}, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, p.TotalPages)

	for _, huge := range []int{math.MaxInt/2 + 2, math.MaxInt} {
		require.NotPanics(t, func() { page, p = Paginate([]int{1, 2, 3}, huge, 2) })
		assert.Empty(t, page)
		assert.Equal(t, huge, p.Page)
		assert.Equal(t, 2, p.TotalPages)
	}
}
