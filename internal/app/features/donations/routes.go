// internal/app/features/donations/routes.go
package donations

import (
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes registers the donation endpoints on r.
func Routes(r chi.Router, h *Handler, mw shared.Middleware) {
	r.Post("/createDonation", h.Create)

	r.Get("/donation-requests", h.List)
	r.Get("/donation-requests/{id}", h.Get)

	r.Get("/myDonations", h.ListMine)
	r.Get("/myDonations/{id}", h.Get)
	r.Patch("/myDonations/{id}", h.Update)
	r.Delete("/myDonations/{id}", h.Delete)

	r.Patch("/donations/{id}", h.UpdateStatus)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAdmin())
		r.Get("/all-donations", h.ListAll)
		r.Get("/allDonations", h.ListAllUnfiltered)
		r.Patch("/donation/assign-donor/{donationId}", h.AssignDonor)
	})

	r.Get("/random-donors", h.RandomDonors)
}
