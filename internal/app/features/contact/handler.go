// internal/app/features/contact/handler.go
package contact

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/roktosheba/internal/app/features/errors"
	contactstore "github.com/dalemusser/roktosheba/internal/app/store/contacts"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/metrics"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB      *mongo.Database
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
	Metrics *metrics.Metrics
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Log:     logger,
		ErrLog:  errLog,
		Metrics: m,
	}
}

type submitRequest struct {
	Name      string `json:"name" validate:"required,max=120" label:"Name"`
	Email     string `json:"email" validate:"required,emailaddr" label:"Email"`
	Telephone string `json:"telephone" validate:"max=40" label:"Telephone"`
	Message   string `json:"message" validate:"required,max=5000" label:"Message"`
}

func (q *submitRequest) Normalize() {
	q.Name = normalize.Name(q.Name)
	q.Email = normalize.Email(q.Email)
	q.Telephone = normalize.QueryParam(q.Telephone)
	q.Message = strings.TrimSpace(q.Message)
}

// Submit handles POST /contact-us. The message is stored as sent and is
// never rendered as HTML here.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "submit contact message")
	defer cancel()

	m, err := contactstore.New(h.DB).Create(ctx, models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Telephone: req.Telephone,
		Message:   req.Message,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "store contact message failed", err)
		return
	}

	h.Metrics.IncContactMessages()
	jsonio.OK(w, jsonio.Inserted(m.ID))
}
