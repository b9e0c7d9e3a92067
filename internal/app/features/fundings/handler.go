// internal/app/features/fundings/handler.go
package fundings

import (
	uierrors "github.com/dalemusser/roktosheba/internal/app/features/errors"
	"github.com/dalemusser/roktosheba/internal/app/system/metrics"
	"github.com/dalemusser/roktosheba/internal/app/system/payments"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves payment intents and the funding ledger.
type Handler struct {
	DB       *mongo.Database
	Payments payments.Provider
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	Metrics  *metrics.Metrics
}

// NewHandler constructs a fundings Handler. provider creates the payment
// intents; it is Stripe in production.
func NewHandler(db *mongo.Database, provider payments.Provider, errLog *uierrors.ErrorLogger, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Payments: provider,
		Log:      logger,
		ErrLog:   errLog,
		Metrics:  m,
	}
}
