// internal/app/features/blogs/routes.go
package blogs

import (
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes registers the blog endpoints on r. Editing and deleting posts is
// reserved for administrators.
func Routes(r chi.Router, h *Handler, mw shared.Middleware) {
	r.Post("/blogs", h.Create)
	r.Get("/blogs", h.List)
	r.Get("/published-blogs", h.Published)

	r.With(mw.RequireAdmin()).Patch("/blogs/{id}", h.Update)
	r.With(mw.RequireAdmin()).Delete("/blogs/{id}", h.Delete)
}
