// internal/app/features/shared/routing.go
package shared

import "net/http"

// Middleware carries the route guards features attach to their endpoints.
// Nil fields pass requests through unchanged.
type Middleware struct {
	// Admin rejects callers without the admin token.
	Admin func(http.Handler) http.Handler
	// Limit rate limits public writes per client IP.
	Limit func(http.Handler) http.Handler
}

// RequireAdmin returns the admin guard.
func (m Middleware) RequireAdmin() func(http.Handler) http.Handler {
	return orPass(m.Admin)
}

// RateLimit returns the public write limiter.
func (m Middleware) RateLimit() func(http.Handler) http.Handler {
	return orPass(m.Limit)
}

func orPass(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
