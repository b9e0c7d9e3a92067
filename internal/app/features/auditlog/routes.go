// internal/app/features/auditlog/routes.go
package auditlog

import (
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes registers the audit viewer. It is admin only.
func Routes(r chi.Router, h *Handler, mw shared.Middleware) {
	r.With(mw.RequireAdmin()).Get("/audit-events", h.ServeList)
}
