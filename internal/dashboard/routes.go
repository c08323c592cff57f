package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/silkroad-freight/freightboard/internal/platform/httpx"
)

// transitionsPerMinute caps writes per client address.
const transitionsPerMinute = 30

// MountRoutes registers the dashboard endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(transitionsPerMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			httpx.Problem(w, http.StatusTooManyRequests, "Too Many Requests", "transition rate limit exceeded")
		}),
	)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/overview", h.handleOverview)
		r.Get("/statuses", h.handleStatuses)

		r.Route("/waybills", func(r chi.Router) {
			r.Get("/", h.handleWaybills)
			r.Get("/{no}", h.handleWaybill)
			r.Get("/{no}/timeline", h.handleTimeline)
			r.With(limiter).Post("/{no}/transitions", h.handleTransition)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.handleCustomers)
			r.Get("/stats", h.handleCustomerStats)
			r.Get("/links", h.handleCustomerLinks)
			r.Get("/{id}", h.handleCustomer)
			r.Get("/{id}/orders", h.handleCustomerOrders)
		})

		r.Get("/process", h.handleProcess)
		r.Get("/team", h.handleTeam)
		r.Get("/network", h.handleNetwork)
		r.Get("/finance", h.handleFinance)
	})
}
