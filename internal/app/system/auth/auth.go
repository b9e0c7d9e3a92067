// Package auth gates administrative routes behind a shared admin token.
//
// End-user identity is established by the front end's identity provider;
// this service only distinguishes "admin caller" from everyone else.
package auth

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

// HeaderAdminToken carries the admin token on gated requests.
const HeaderAdminToken = "X-Admin-Token"

// Gate checks admin tokens. A Gate with an empty token lets every request
// through; NewGate logs a warning when that happens.
type Gate struct {
	token []byte
	log   *zap.Logger

	// OnReject, when set, is called for every rejected request.
	OnReject func(r *http.Request)
}

// NewGate builds a Gate for token.
func NewGate(token string, logger *zap.Logger) *Gate {
	if token == "" {
		logger.Warn("admin_token is empty; administrative routes are NOT protected")
	}
	return &Gate{token: []byte(token), log: logger}
}

// Enabled reports whether the gate enforces a token.
func (g *Gate) Enabled() bool { return len(g.token) > 0 }

// RequireAdmin rejects requests whose X-Admin-Token does not match.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		got := []byte(r.Header.Get(HeaderAdminToken))
		if subtle.ConstantTimeCompare(got, g.token) != 1 {
			g.log.Warn("admin token mismatch",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr))
			if g.OnReject != nil {
				g.OnReject(r)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized","message":"admin token required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
