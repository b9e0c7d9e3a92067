// internal/app/features/fundings/routes.go
package fundings

import (
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes registers the payment and funding endpoints on r.
func Routes(r chi.Router, h *Handler, mw shared.Middleware) {
	r.With(mw.RateLimit()).Post("/create-payment-intent", h.CreatePaymentIntent)
	r.With(mw.RateLimit()).Post("/fundings", h.Record)
	r.With(mw.RequireAdmin()).Get("/fundings", h.List)
}
