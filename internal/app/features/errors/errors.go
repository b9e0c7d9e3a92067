// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorLogger writes JSON error responses and logs the failures an
// operator needs to see (internal and payment provider errors). Client
// mistakes are logged at debug level only.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// Write sends err as {"error": kind, "message": text}. Errors that are not
// *apierr.Error are reported as internal errors.
func (l *ErrorLogger) Write(w http.ResponseWriter, r *http.Request, err error) {
	e := apierr.From(err)
	fields := []zap.Field{
		zap.String("kind", string(e.Kind)),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	}
	switch e.Kind {
	case apierr.KindInternal:
		l.Log.Error(e.Message, append(fields, zap.Error(e.Err))...)
	case apierr.KindPaymentProvider:
		l.Log.Warn("payment provider error", append(fields, zap.String("provider_message", e.Message), zap.Error(e.Err))...)
	default:
		l.Log.Debug(e.Message, fields...)
	}
	apierr.Write(w, e)
}

// LogServerError logs err and answers with a generic 500.
func (l *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	l.Write(w, r, apierr.Internal(msg, err))
}

// Handler serves the router's fallback responses.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound answers unknown routes with a JSON 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	apierr.Write(w, apierr.NotFound("Route not found"))
}

// MethodNotAllowed answers a known path with an unsupported verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_, _ = w.Write([]byte(`{"error":"method_not_allowed","message":"Method not allowed"}`))
}
