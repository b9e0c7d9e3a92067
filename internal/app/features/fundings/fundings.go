// internal/app/features/fundings/fundings.go
package fundings

import (
	"errors"
	"net/http"

	fundingstore "github.com/dalemusser/roktosheba/internal/app/store/fundings"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/app/system/payments"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.uber.org/zap"
)

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "create payment intent")
	defer cancel()

	intent, err := h.Payments.CreateIntent(ctx, req.AmountInCents)
	if err != nil {
		h.Metrics.IncPaymentIntents("error")
		var pe *payments.ProviderError
		if errors.As(err, &pe) {
			h.ErrLog.Write(w, r, apierr.PaymentProvider(pe.Message, err))
			return
		}
		h.ErrLog.LogServerError(w, r, "create payment intent failed", err)
		return
	}

	h.Metrics.IncPaymentIntents("ok")
	h.Log.Info("payment intent created",
		zap.String("payment_intent_id", intent.ID),
		zap.Int64("amount_cents", req.AmountInCents))
	jsonio.OK(w, intentResponse{ClientSecret: intent.ClientSecret})
}

// Record handles POST /fundings.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "record funding")
	defer cancel()

	f, err := fundingstore.New(h.DB).Create(ctx, models.Funding{
		UserID:          req.UserID,
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		Amount:          req.Amount,
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "record funding failed", err)
		return
	}

	h.Metrics.IncFundingsRecorded()
	jsonio.OK(w, jsonio.Inserted(f.ID))
}

// List handles GET /fundings?page=&limit=. Pages start at 0 like every
// other list.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pg := paging.Parse(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list fundings")
	defer cancel()

	items, total, err := fundingstore.New(h.DB).List(ctx, pg)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list fundings failed", err)
		return
	}
	jsonio.OK(w, fundingList{Fundings: items, TotalCount: total, Page: pg.Page, Limit: pg.Limit})
}
