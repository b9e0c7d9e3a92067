// internal/app/features/contact/routes.go
package contact

import (
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler, mw shared.Middleware) {
	r.With(mw.RateLimit()).Post("/contact-us", h.Submit)
}
