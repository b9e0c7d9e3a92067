package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		header   string
		wantCode int
	}{
		{"disabled gate allows anyone", "", "", http.StatusOK},
		{"matching token", "s3cret", "s3cret", http.StatusOK},
		{"missing token", "s3cret", "", http.StatusUnauthorized},
		{"wrong token", "s3cret", "guess", http.StatusUnauthorized},
		{"prefix of token", "s3cret", "s3c", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(tt.token, zap.NewNop())
			req := httptest.NewRequest("GET", "/allUsers", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAdminToken, tt.header)
			}
			rec := httptest.NewRecorder()

			g.RequireAdmin(okHandler()).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	if NewGate("", zap.NewNop()).Enabled() {
		t.Error("empty token should disable the gate")
	}
	if !NewGate("x", zap.NewNop()).Enabled() {
		t.Error("non-empty token should enable the gate")
	}
}

func TestRequireAdmin_OnReject(t *testing.T) {
	g := NewGate("s3cret", zap.NewNop())
	var rejected []string
	g.OnReject = func(r *http.Request) { rejected = append(rejected, r.URL.Path) }

	h := g.RequireAdmin(okHandler())

	bad := httptest.NewRequest("GET", "/dashboard-stats", nil)
	h.ServeHTTP(httptest.NewRecorder(), bad)

	good := httptest.NewRequest("GET", "/dashboard-stats", nil)
	good.Header.Set(HeaderAdminToken, "s3cret")
	h.ServeHTTP(httptest.NewRecorder(), good)

	if len(rejected) != 1 || rejected[0] != "/dashboard-stats" {
		t.Errorf("rejected = %v, want one /dashboard-stats", rejected)
	}
}
