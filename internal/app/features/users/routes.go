// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes registers the user directory endpoints on r.
func Routes(r chi.Router, h *Handler, mw shared.Middleware) {
	r.With(mw.RateLimit()).Post("/users", h.Register)
	r.Get("/users/donor/{email}", h.DonorProfile)
	r.Get("/users/{email}", h.Get)
	r.Patch("/users/{email}", h.UpdateOwnProfile)
	r.Get("/users/{email}/role", h.Role)

	r.Get("/allUsers/active-donors", h.ActiveDonors)
	r.With(mw.RequireAdmin()).Get("/allUsers", h.List)
	r.With(mw.RequireAdmin()).Patch("/allUsers/{id}", h.AdminUpdate)

	r.Get("/donors", h.FindDonors)
}
