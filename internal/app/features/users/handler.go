// internal/app/features/users/handler.go
package users

import (
	uierrors "github.com/dalemusser/roktosheba/internal/app/features/errors"
	"github.com/dalemusser/roktosheba/internal/app/system/auditlog"
	"github.com/dalemusser/roktosheba/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the user directory endpoints.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Metrics  *metrics.Metrics
}

// NewHandler constructs a users Handler bound to db.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: audit,
		Metrics:  m,
	}
}
