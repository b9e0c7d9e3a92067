// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes registers the admin dashboard totals.
func Routes(r chi.Router, h *Handler, mw shared.Middleware) {
	r.With(mw.RequireAdmin()).Get("/dashboard-stats", h.Stats)
}
