// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/roktosheba/internal/app/store/audit"
	"github.com/dalemusser/roktosheba/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Destinations for a category of events.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off"
)

// Config holds audit logging configuration, one mode per category.
type Config struct {
	Admin    string
	Security string
}

// Logger records audit events to MongoDB (via audit.Store) and/or zap.
// A nil *Logger is a no-op, which keeps handler tests simple.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.TargetID != "" {
		fields = append(fields, zap.String("target_id", event.TargetID))
	}
	if event.TargetEmail != "" {
		fields = append(fields, zap.String("target_email", event.TargetEmail))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records event according to the mode configured for its category.
// Storage failures are logged and never returned; auditing must not fail
// the request it describes.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	mode := ModeAll
	switch event.Category {
	case audit.CategoryAdmin:
		mode = l.config.Admin
	case audit.CategorySecurity:
		mode = l.config.Security
	}
	if mode == "" {
		mode = ModeAll
	}
	if mode == ModeOff {
		return
	}

	if mode == ModeAll || mode == ModeLog {
		l.logToZap(event)
	}
	if mode == ModeAll || mode == ModeDB {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func fromRequest(r *http.Request, category, eventType string) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
	}
}

// --- Admin Events ---

// UserUpdated logs an administrative change to a user.
func (l *Logger) UserUpdated(ctx context.Context, r *http.Request, userID string, fieldsChanged []string) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventUserUpdated)
	e.TargetID = userID
	e.Details = map[string]string{"fields_changed": strings.Join(fieldsChanged, ",")}
	l.Log(ctx, e)
}

// DonorAssigned logs a donor being assigned to a donation request.
func (l *Logger) DonorAssigned(ctx context.Context, r *http.Request, donationID, donorEmail string) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventDonorAssigned)
	e.TargetID = donationID
	e.TargetEmail = donorEmail
	l.Log(ctx, e)
}

// DonationStatusChanged logs a donation request moving to status.
func (l *Logger) DonationStatusChanged(ctx context.Context, r *http.Request, donationID, status string) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventDonationStatusChanged)
	e.TargetID = donationID
	e.Details = map[string]string{"status": status}
	l.Log(ctx, e)
}

// BlogUpdated logs an edit to a blog post.
func (l *Logger) BlogUpdated(ctx context.Context, r *http.Request, blogID string, fieldsChanged []string) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventBlogUpdated)
	e.TargetID = blogID
	e.Details = map[string]string{"fields_changed": strings.Join(fieldsChanged, ",")}
	l.Log(ctx, e)
}

// BlogDeleted logs a blog post being deleted.
func (l *Logger) BlogDeleted(ctx context.Context, r *http.Request, blogID string) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventBlogDeleted)
	e.TargetID = blogID
	l.Log(ctx, e)
}

// --- Security Events ---

// AdminTokenRejected logs a request to an admin route without a valid token.
func (l *Logger) AdminTokenRejected(ctx context.Context, r *http.Request) {
	e := fromRequest(r, audit.CategorySecurity, audit.EventAdminTokenRejected)
	e.Success = false
	e.FailureReason = "missing or invalid admin token"
	e.Details = map[string]string{"method": r.Method, "path": r.URL.Path}
	l.Log(ctx, e)
}
