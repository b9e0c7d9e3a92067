// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	uierrors "github.com/dalemusser/roktosheba/internal/app/features/errors"
	metricsstore "github.com/dalemusser/roktosheba/internal/app/store/metrics"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
	}
}

// Stats handles GET /dashboard-stats. Totals are computed on every call.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "dashboard stats")
	defer cancel()

	counts, err := metricsstore.FetchDashboardCounts(ctx, h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "dashboard stats failed", err)
		return
	}
	jsonio.OK(w, counts)
}
