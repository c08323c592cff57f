// Package dashboard serves the freight dashboard JSON API.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/silkroad-freight/freightboard/internal/analytics"
	"github.com/silkroad-freight/freightboard/internal/customer"
	"github.com/silkroad-freight/freightboard/internal/dataset"
	"github.com/silkroad-freight/freightboard/internal/platform/httpx"
	"github.com/silkroad-freight/freightboard/internal/query"
	"github.com/silkroad-freight/freightboard/internal/timeline"
	"github.com/silkroad-freight/freightboard/internal/waybill"
)

const requestTimeout = 5 * time.Second

// PanelService is the cached panel contract used by the handler.
type PanelService interface {
	Overview(ctx context.Context) (analytics.OverviewPanel, error)
	Customers(ctx context.Context) (analytics.CustomerPanel, error)
	Process(ctx context.Context) (analytics.ProcessPanel, error)
	Team(ctx context.Context) (analytics.TeamPanel, error)
	Network(ctx context.Context) (analytics.NetworkPanel, error)
	Finance(ctx context.Context) (analytics.FinancePanel, error)
	Invalidate(ctx context.Context) error
}

// EnumCounter records enum values that fell back to the unknown style.
type EnumCounter interface {
	UnknownEnum(kind string)
}

// Handler coordinates HTTP requests for the dashboard.
type Handler struct {
	logger   *slog.Logger
	panels   PanelService
	source   dataset.Source
	machine  *waybill.Machine
	enums    EnumCounter
	validate *validator.Validate
}

// NewHandler constructs the dashboard handler. enums may be nil.
func NewHandler(logger *slog.Logger, panels PanelService, source dataset.Source, machine *waybill.Machine, enums EnumCounter) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:   logger,
		panels:   panels,
		source:   source,
		machine:  machine,
		enums:    enums,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

var errorRules = []httpx.Rule{
	{Target: dataset.ErrNotFound, Status: http.StatusNotFound, Title: "Not Found"},
	{Target: customer.ErrNotFound, Status: http.StatusNotFound, Title: "Not Found"},
	{Target: dataset.ErrConflict, Status: http.StatusConflict, Title: "Conflict"},
	{Target: waybill.ErrTerminalStatus, Status: http.StatusConflict, Title: "Terminal Status"},
	{Target: waybill.ErrInvalidTransition, Status: http.StatusConflict, Title: "Invalid Transition"},
	{Target: waybill.ErrUnknownStatus, Status: http.StatusBadRequest, Title: "Unknown Status"},
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, _, ok := httpx.Classify(err, errorRules...)
	if !ok || status >= http.StatusInternalServerError {
		h.logger.Error("dashboard request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	httpx.RespondError(w, err, errorRules...)
}

func (h *Handler) countUnknown(kind string, unknown bool) {
	if unknown && h.enums != nil {
		h.enums.UnknownEnum(kind)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if _, err := h.source.Snapshot(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusServiceUnavailable, "Service Unavailable", "data source unavailable")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// overviewResponse combines the headline panels loaded concurrently.
type overviewResponse struct {
	Overview  analytics.OverviewPanel `json:"overview"`
	Customers analytics.CustomerPanel `json:"customers"`
	Finance   analytics.Finance       `json:"finance"`
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var resp overviewResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		panel, err := h.panels.Overview(gctx)
		resp.Overview = panel
		return err
	})
	g.Go(func() error {
		panel, err := h.panels.Customers(gctx)
		resp.Customers = panel
		return err
	})
	g.Go(func() error {
		panel, err := h.panels.Finance(gctx)
		resp.Finance = panel.Summary
		return err
	})
	if err := g.Wait(); err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, resp)
}

type nodeTypeInfo struct {
	Value waybill.NodeType `json:"value"`
	Label string           `json:"label"`
}

type catalogResponse struct {
	Statuses  []waybill.Style `json:"statuses"`
	NodeTypes []nodeTypeInfo  `json:"node_types"`
}

func (h *Handler) handleStatuses(w http.ResponseWriter, r *http.Request) {
	var resp catalogResponse
	for _, s := range waybill.Statuses() {
		style, _ := waybill.StyleOf(string(s))
		resp.Statuses = append(resp.Statuses, style)
	}
	for _, nt := range waybill.NodeTypes() {
		label, _ := nt.Label()
		resp.NodeTypes = append(resp.NodeTypes, nodeTypeInfo{Value: nt, Label: label})
	}
	httpx.JSON(w, http.StatusOK, resp)
}

type waybillRow struct {
	waybill.Waybill
	Style waybill.Style `json:"style"`
}

type listResponse[T any] struct {
	Items      []T              `json:"items"`
	Pagination query.Pagination `json:"pagination"`
}

func (h *Handler) styleWaybill(wb waybill.Waybill) waybill.Style {
	style, err := waybill.StyleOf(string(wb.Status))
	h.countUnknown("waybill_status", err != nil)
	return style
}

func (h *Handler) handleWaybills(w http.ResponseWriter, r *http.Request) {
	params, err := parseList(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	sortFn, err := query.WaybillSort(params.Sort)
	if err != nil {
		h.respondError(w, r, validationError(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := h.source.Snapshot(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	matched := query.Filter(snap.Waybills, query.WaybillSpec(params.Term, r.URL.Query().Get("status")))
	if sortFn != nil {
		matched = query.Sorted(matched, sortFn)
	}
	page, pagination := query.Paginate(matched, params.Page, params.PerPage)
	rows := make([]waybillRow, 0, len(page))
	for _, wb := range page {
		rows = append(rows, waybillRow{Waybill: wb, Style: h.styleWaybill(wb)})
	}
	httpx.JSON(w, http.StatusOK, listResponse[waybillRow]{Items: rows, Pagination: pagination})
}

type waybillDetail struct {
	Waybill waybill.Waybill         `json:"waybill"`
	Style   waybill.Style           `json:"style"`
	Stage   *waybill.StageInfo      `json:"stage,omitempty"`
	Issues  []waybill.Inconsistency `json:"issues,omitempty"`
}

func (h *Handler) detail(wb waybill.Waybill) waybillDetail {
	out := waybillDetail{
		Waybill: wb,
		Style:   h.styleWaybill(wb),
		Issues:  waybill.CheckConsistency(wb),
	}
	if stage, err := waybill.Stage(wb); err == nil {
		out.Stage = &stage
	}
	return out
}

func (h *Handler) handleWaybill(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	wb, err := h.source.Waybill(ctx, chi.URLParam(r, "no"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.detail(wb))
}

func (h *Handler) handleTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	wb, err := h.source.Waybill(ctx, chi.URLParam(r, "no"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"waybill_no": wb.WaybillNo,
		"entries":    timeline.Entries(wb.Nodes),
	})
}

type transitionRequest struct {
	To       string `json:"to" validate:"required"`
	Operator string `json:"operator" validate:"required,max=64"`
	Location string `json:"location" validate:"max=128"`
	Remark   string `json:"remark" validate:"max=512"`
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, r, validationError(err))
		return
	}
	to, err := waybill.ParseStatus(req.To)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	current, err := h.source.Waybill(ctx, chi.URLParam(r, "no"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	next, err := h.machine.Transition(current, to, waybill.Event{
		Operator: req.Operator,
		Location: req.Location,
		Remark:   req.Remark,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.source.SaveWaybill(ctx, next, current.UpdateTime); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.panels.Invalidate(ctx); err != nil {
		h.logger.Warn("panel invalidation failed", slog.String("waybill_no", next.WaybillNo), slog.Any("error", err))
	}
	h.logger.Info("waybill transitioned",
		slog.String("waybill_no", next.WaybillNo),
		slog.String("from", string(current.Status)),
		slog.String("to", string(next.Status)),
		slog.String("operator", req.Operator))
	httpx.JSON(w, http.StatusOK, h.detail(next))
}

type customerRow struct {
	customer.Customer
	CreditStyle      customer.Style `json:"credit_style"`
	CooperationStyle customer.Style `json:"cooperation_style"`
}

func (h *Handler) styleCustomer(c customer.Customer) customerRow {
	row := customerRow{
		Customer:         c,
		CreditStyle:      customer.CreditStyle(string(c.CreditLevel)),
		CooperationStyle: customer.CooperationStyle(string(c.CooperationStatus)),
	}
	h.countUnknown("credit_level", row.CreditStyle.Unknown)
	h.countUnknown("cooperation_status", row.CooperationStyle.Unknown)
	return row
}

func (h *Handler) handleCustomers(w http.ResponseWriter, r *http.Request) {
	params, err := parseList(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	sortFn, err := query.CustomerSort(params.Sort)
	if err != nil {
		h.respondError(w, r, validationError(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := h.source.Snapshot(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	values := r.URL.Query()
	matched := query.Filter(snap.Customers, query.CustomerSpec(params.Term, values.Get("status"), values.Get("credit")))
	if sortFn != nil {
		matched = query.Sorted(matched, sortFn)
	}
	page, pagination := query.Paginate(matched, params.Page, params.PerPage)
	rows := make([]customerRow, 0, len(page))
	for _, c := range page {
		rows = append(rows, h.styleCustomer(c))
	}
	httpx.JSON(w, http.StatusOK, listResponse[customerRow]{Items: rows, Pagination: pagination})
}

func (h *Handler) handleCustomerStats(w http.ResponseWriter, r *http.Request) {
	servePanel(w, r, h, h.panels.Customers)
}

func (h *Handler) handleCustomerLinks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := h.source.Snapshot(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	_, report := customer.LinkWaybills(snap.Customers, snap.Waybills)
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) loadCustomer(w http.ResponseWriter, r *http.Request) (customer.Customer, analytics.Snapshot, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := h.source.Snapshot(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return customer.Customer{}, snap, false
	}
	c, err := customer.Find(snap.Customers, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return customer.Customer{}, snap, false
	}
	return c, snap, true
}

func (h *Handler) handleCustomer(w http.ResponseWriter, r *http.Request) {
	c, _, ok := h.loadCustomer(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, h.styleCustomer(c))
}

func (h *Handler) handleCustomerOrders(w http.ResponseWriter, r *http.Request) {
	c, snap, ok := h.loadCustomer(w, r)
	if !ok {
		return
	}
	orders := analytics.CustomerOrders(c.ID, snap.Customers, snap.Waybills)
	rows := make([]waybillRow, 0, len(orders))
	for _, wb := range orders {
		rows = append(rows, waybillRow{Waybill: wb, Style: h.styleWaybill(wb)})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"customer_id": c.ID, "orders": rows})
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	servePanel(w, r, h, h.panels.Process)
}

func (h *Handler) handleTeam(w http.ResponseWriter, r *http.Request) {
	servePanel(w, r, h, h.panels.Team)
}

func (h *Handler) handleNetwork(w http.ResponseWriter, r *http.Request) {
	servePanel(w, r, h, h.panels.Network)
}

func (h *Handler) handleFinance(w http.ResponseWriter, r *http.Request) {
	servePanel(w, r, h, h.panels.Finance)
}

func servePanel[T any](w http.ResponseWriter, r *http.Request, h *Handler, load func(context.Context) (T, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	panel, err := load(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, panel)
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", httpx.ErrValidation, describeField(verrs[0]))
	}
	return fmt.Errorf("%w: %v", httpx.ErrValidation, err)
}

func describeField(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Field() + " failed " + fe.Tag() + "=" + fe.Param()
	}
	return fe.Field() + " failed " + fe.Tag()
}
