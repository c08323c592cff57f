package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silkroad-freight/freightboard/internal/waybill"
)

func TestCreditStyle(t *testing.T) {
	cases := map[string]string{"A": "优秀", "B": "良好", "C": "一般", "D": "较差"}
	for raw, label := range cases {
		s := CreditStyle(raw)
		assert.Equal(t, label, s.Label, raw)
		assert.False(t, s.Unknown)
		assert.Equal(t, raw, s.Value)
	}

	s := CreditStyle("E")
	assert.Equal(t, "未知", s.Label)
	assert.True(t, s.Unknown)
	assert.Equal(t, "bg-gray-100", s.Background)
}

func TestCooperationStyle(t *testing.T) {
	assert.Equal(t, "合作中", CooperationStyle("active").Label)
	assert.Equal(t, "未合作", CooperationStyle("inactive").Label)
	assert.Equal(t, "已暂停", CooperationStyle("suspended").Label)
	assert.Equal(t, "text-red-700", CooperationStyle("suspended").Foreground)

	unknown := CooperationStyle("")
	assert.True(t, unknown.Unknown)
	assert.Equal(t, "未知", unknown.Label)
}

func TestCheckEnums(t *testing.T) {
	c := Customer{ID: "1", CreditLevel: CreditA, CooperationStatus: CooperationActive}
	require.NoError(t, c.CheckEnums())

	c.CreditLevel = "Z"
	assert.ErrorIs(t, c.CheckEnums(), ErrUnknownCreditLevel)

	c.CreditLevel = CreditB
	c.CooperationStatus = "paused"
	assert.ErrorIs(t, c.CheckEnums(), ErrUnknownCooperation)
}

func TestFind(t *testing.T) {
	list := []Customer{{ID: "1", Name: "新疆国际贸易有限公司"}, {ID: "2", Name: "中亚物流集团"}}
	c, err := Find(list, "2")
	require.NoError(t, err)
	assert.Equal(t, "中亚物流集团", c.Name)

	_, err = Find(list, "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkWaybills(t *testing.T) {
	customers := []Customer{
		{ID: "1", Name: "新疆国际贸易有限公司"},
		{ID: "2", Name: "中亚物流集团"},
		{ID: "9", Name: "中亚物流集团"},
		{ID: "3", Name: "西北贸易公司"},
	}
	waybills := []waybill.Waybill{
		{WaybillNo: "GF1", CustomerName: "新疆国际贸易有限公司"},
		{WaybillNo: "GF2", CustomerName: "中亚物流集团"},
		{WaybillNo: "GF3", CustomerName: "无名公司"},
		{WaybillNo: "GF4", CustomerName: "西北贸易公司", CustomerID: "3"},
		{WaybillNo: "GF5", CustomerName: "西北贸易公司", CustomerID: "404"},
	}

	linked, report := LinkWaybills(customers, waybills)
	require.Len(t, linked, 5)
	assert.Equal(t, "1", linked[0].CustomerID)
	assert.Empty(t, linked[1].CustomerID)
	assert.Empty(t, linked[2].CustomerID)
	assert.Equal(t, "3", linked[3].CustomerID)

	assert.Equal(t, 1, report.Linked)
	assert.Equal(t, 1, report.Preset)
	require.Len(t, report.Ambiguous, 1)
	assert.ElementsMatch(t, []string{"2", "9"}, report.Ambiguous[0].CandidateIDs)
	require.Len(t, report.Unmatched, 1)
	assert.Equal(t, "GF3", report.Unmatched[0].WaybillNo)
	require.Len(t, report.Dangling, 1)
	assert.Equal(t, "GF5", report.Dangling[0].WaybillNo)
	assert.False(t, report.Clean())

	assert.Empty(t, waybills[0].CustomerID, "input must stay untouched")
}

func TestLinkWaybillsEmpty(t *testing.T) {
	linked, report := LinkWaybills(nil, nil)
	assert.Empty(t, linked)
	assert.True(t, report.Clean())
	assert.NotNil(t, report.Unmatched)
}
