package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/dataset"
	"github.com/silkroad-freight/freightboard/internal/platform/httpx"
	"github.com/silkroad-freight/freightboard/internal/waybill"
	_ "github.com/silkroad-freight/freightboard/testing"
)

type countingPanels struct {
	*analytics.Service
	invalidations int
}

func (p *countingPanels) Invalidate(ctx context.Context) error {
	p.invalidations++
	return p.Service.Invalidate(ctx)
}

type enumRecorder map[string]int

func (e enumRecorder) UnknownEnum(kind string) { e[kind]++ }

type fixture struct {
	router http.Handler
	panels *countingPanels
	source *dataset.MemorySource
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	src, err := dataset.NewMemorySource(dataset.Seed(), waybill.OrderPrefix)
	require.NoError(t, err)
	panels := &countingPanels{Service: analytics.NewService(src, nil, analytics.DefaultSettings())}
	machine := waybill.NewMachine(waybill.PolicyMonotonic, waybill.OrderPrefix)
	machine.Now = func() time.Time { return time.Date(2024, 1, 21, 9, 0, 0, 0, time.UTC) }

	h := NewHandler(nil, panels, src, machine, nil)
	r := chi.NewRouter()
	h.MountRoutes(r)
	return fixture{router: r, panels: panels, source: src}
}

func (f fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestListWaybills(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/api/waybills", "")
	require.Equal(t, http.StatusOK, rr.Code)
	all := decode[listResponse[waybillRow]](t, rr)
	assert.Len(t, all.Items, 5)
	assert.Equal(t, 5, all.Pagination.Total)
	assert.Equal(t, "GF20240120001", all.Items[0].WaybillNo)
	assert.Equal(t, "运输中", all.Items[0].Style.Label)

	rr = f.do(t, http.MethodGet, "/api/waybills?q=gf20240120003", "")
	one := decode[listResponse[waybillRow]](t, rr)
	require.Len(t, one.Items, 1)
	assert.Equal(t, "GF20240120003", one.Items[0].WaybillNo)

	rr = f.do(t, http.MethodGet, "/api/waybills?status=exception", "")
	exc := decode[listResponse[waybillRow]](t, rr)
	require.Len(t, exc.Items, 1)
	assert.Equal(t, waybill.StatusException, exc.Items[0].Status)

	rr = f.do(t, http.MethodGet, "/api/waybills?status=all&per_page=2&page=3", "")
	paged := decode[listResponse[waybillRow]](t, rr)
	assert.Len(t, paged.Items, 1)
	assert.Equal(t, 3, paged.Pagination.TotalPages)

	rr = f.do(t, http.MethodGet, "/api/waybills?sort=-order_amount", "")
	sorted := decode[listResponse[waybillRow]](t, rr)
	for i := 1; i < len(sorted.Items); i++ {
		assert.GreaterOrEqual(t, sorted.Items[i-1].OrderAmount, sorted.Items[i].OrderAmount)
	}
}

func TestListWaybillsRejectsBadParams(t *testing.T) {
	f := newFixture(t)
	for _, path := range []string{"/api/waybills?page=abc", "/api/waybills?per_page=0", "/api/waybills?sort=weight"} {
		rr := f.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		problem := decode[httpx.ProblemDetail](t, rr)
		assert.Equal(t, "Validation Failed", problem.Title)
	}

	rr := f.do(t, http.MethodGet, "/api/waybills?page=4611686018427387905&per_page=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[listResponse[waybillRow]](t, rr)
	assert.Empty(t, list.Items)
	assert.Equal(t, 4611686018427387905, list.Pagination.Page)
}

func TestWaybillDetailAndTimeline(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/api/waybills/GF20240120002", "")
	require.Equal(t, http.StatusOK, rr.Code)
	detail := decode[waybillDetail](t, rr)
	require.NotNil(t, detail.Stage)
	assert.Equal(t, waybill.StatusSealed, detail.Stage.Status)
	assert.Equal(t, waybill.NodeCustomsDeclaration, detail.Stage.ActiveNode)
	assert.Empty(t, detail.Issues)

	rr = f.do(t, http.MethodGet, "/api/waybills/GF20240120002/timeline", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var tl struct {
		Entries []struct {
			Label string `json:"label"`
			State string `json:"state"`
			Last  bool   `json:"last"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tl))
	require.Len(t, tl.Entries, 3)
	assert.Equal(t, "装车", tl.Entries[0].Label)
	assert.Equal(t, "done", tl.Entries[0].State)
	assert.True(t, tl.Entries[2].Last)

	rr = f.do(t, http.MethodGet, "/api/waybills/GF404", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = f.do(t, http.MethodGet, "/api/waybills/GF404/timeline", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTransitionPersistsAndInvalidates(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodPost, "/api/waybills/GF20240120002/transitions",
		`{"to":"customs_declaring","operator":"刘芳","location":"霍尔果斯海关"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	detail := decode[waybillDetail](t, rr)
	assert.Equal(t, waybill.StatusCustomsDeclaring, detail.Waybill.Status)
	assert.Equal(t, 1, f.panels.invalidations)

	stored, err := f.source.Waybill(context.Background(), "GF20240120002")
	require.NoError(t, err)
	assert.Equal(t, waybill.StatusCustomsDeclaring, stored.Status)
	node, ok := stored.NodeByType(waybill.NodeCustomsDeclaration)
	require.True(t, ok)
	assert.Equal(t, waybill.NodeProcessing, node.Status)
	assert.Equal(t, "霍尔果斯海关", node.Location)

	rr = f.do(t, http.MethodPost, "/api/waybills/GF20240120002/transitions", `{"to":"sealed","operator":"刘芳"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, 1, f.panels.invalidations)
}

func TestTransitionRejectsBadRequests(t *testing.T) {
	f := newFixture(t)
	cases := map[string]struct {
		path string
		body string
		want int
	}{
		"missing operator": {"/api/waybills/GF20240120002/transitions", `{"to":"exited"}`, http.StatusBadRequest},
		"unknown field":    {"/api/waybills/GF20240120002/transitions", `{"to":"exited","operator":"x","force":true}`, http.StatusBadRequest},
		"unknown status":   {"/api/waybills/GF20240120002/transitions", `{"to":"teleported","operator":"x"}`, http.StatusBadRequest},
		"backwards":        {"/api/waybills/GF20240120001/transitions", `{"to":"exited","operator":"x"}`, http.StatusConflict},
		"missing waybill":  {"/api/waybills/GF404/transitions", `{"to":"exited","operator":"x"}`, http.StatusNotFound},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := f.do(t, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.want, rr.Code, rr.Body.String())
		})
	}
	assert.Zero(t, f.panels.invalidations)
}

func TestCustomers(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/api/customers?status=active&credit=A", "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[listResponse[customerRow]](t, rr)
	ids := make([]string, 0, len(list.Items))
	for _, c := range list.Items {
		ids = append(ids, c.ID)
		assert.Equal(t, "优秀", c.CreditStyle.Label)
	}
	assert.Equal(t, []string{"1", "2", "5"}, ids)

	rr = f.do(t, http.MethodGet, "/api/customers?q=0991-8888888", "")
	byPhone := decode[listResponse[customerRow]](t, rr)
	require.Len(t, byPhone.Items, 1)
	assert.Equal(t, "1", byPhone.Items[0].ID)

	rr = f.do(t, http.MethodGet, "/api/customers/4", "")
	require.Equal(t, http.StatusOK, rr.Code)
	one := decode[customerRow](t, rr)
	assert.Equal(t, "已暂停", one.CooperationStyle.Label)

	rr = f.do(t, http.MethodGet, "/api/customers/99", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = f.do(t, http.MethodGet, "/api/customers/1/orders", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var orders struct {
		Orders []waybillRow `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &orders))
	require.Len(t, orders.Orders, 1)
	assert.Equal(t, "GF20240120001", orders.Orders[0].WaybillNo)

	rr = f.do(t, http.MethodGet, "/api/customers/links", "")
	require.Equal(t, http.StatusOK, rr.Code)
	report := decode[customer.LinkReport](t, rr)
	assert.Equal(t, 5, report.Linked)
	assert.True(t, report.Clean())

	rr = f.do(t, http.MethodGet, "/api/customers/stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decode[analytics.CustomerPanel](t, rr)
	assert.Equal(t, 8, stats.Stats.Total)
	assert.Equal(t, analytics.UnitYi, stats.TotalAmount.Unit)
}

func TestPanelsEndpoints(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/api/overview", "")
	require.Equal(t, http.StatusOK, rr.Code)
	overview := decode[overviewResponse](t, rr)
	assert.Equal(t, 5, overview.Overview.Waybills.Total)
	assert.Equal(t, 8, overview.Customers.Stats.Total)
	assert.Equal(t, 12, overview.Finance.Months)

	for _, path := range []string{"/api/process", "/api/team", "/api/network", "/api/finance", "/api/statuses"} {
		rr := f.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"), path)
	}

	rr = f.do(t, http.MethodGet, "/api/statuses", "")
	catalog := decode[catalogResponse](t, rr)
	assert.Len(t, catalog.Statuses, 13)
	assert.Len(t, catalog.NodeTypes, 6)
}

type failingSource struct {
	dataset.Source
}

func (failingSource) Snapshot(context.Context) (analytics.Snapshot, error) {
	return analytics.Snapshot{}, errors.New("connection refused")
}

func TestSourceFailureIsOpaque(t *testing.T) {
	src := failingSource{}
	h := NewHandler(nil, analytics.NewService(src, nil, analytics.DefaultSettings()), src, waybill.NewMachine(waybill.PolicyMonotonic, waybill.OrderPrefix), nil)
	r := chi.NewRouter()
	h.MountRoutes(r)

	for _, path := range []string{"/api/waybills", "/api/overview", "/api/process"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code, path)
		assert.NotContains(t, rr.Body.String(), "connection refused", path)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestUnknownEnumsAreCounted(t *testing.T) {
	rec := enumRecorder{}
	h := NewHandler(nil, nil, nil, nil, rec)

	row := h.styleCustomer(customer.Customer{ID: "x", CreditLevel: "Z", CooperationStatus: customer.CooperationActive})
	assert.True(t, row.CreditStyle.Unknown)
	assert.Equal(t, "未知", row.CreditStyle.Label)

	style := h.styleWaybill(waybill.Waybill{Status: "teleported"})
	assert.True(t, style.Unknown)

	assert.Equal(t, enumRecorder{"credit_level": 1, "waybill_status": 1}, rec)
}
