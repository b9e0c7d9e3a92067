// internal/app/features/health/routes.go
package health

import "github.com/go-chi/chi/v5"

// Routes registers the liveness banner and the database health check.
func Routes(r chi.Router, h *Handler) {
	r.Get("/", h.Root)
	r.Get("/health", h.Serve)
}
