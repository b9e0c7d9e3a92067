// internal/app/features/donations/item.go
package donations

import (
	"errors"
	"net/http"

	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func donationID(r *http.Request, param string) (primitive.ObjectID, error) {
	return jsonio.ParseID(chi.URLParam(r, param), "donation id")
}

// Get handles GET /donation-requests/{id} and GET /myDonations/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := donationID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get donation")
	defer cancel()

	d, err := donationstore.New(h.DB).Get(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apierr.NotFound("Donation request not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get donation failed", err)
		return
	}
	jsonio.OK(w, d)
}

// Update handles PATCH /myDonations/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := donationID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	var req updateRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update donation")
	defer cancel()

	res, err := donationstore.New(h.DB).Update(ctx, id, req.update())
	if errors.Is(err, donationstore.ErrNothingToUpdate) {
		h.ErrLog.Write(w, r, apierr.BadRequest("No fields to update."))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update donation failed", err)
		return
	}
	if res.MatchedCount == 0 {
		h.ErrLog.Write(w, r, apierr.NotFound("Donation request not found"))
		return
	}
	if req.Status != nil {
		h.AuditLog.DonationStatusChanged(ctx, r, id.Hex(), normalize.Status(*req.Status))
	}
	jsonio.OK(w, jsonio.Updated(res))
}

// Delete handles DELETE /myDonations/{id}. Deleting a missing request is
// reported as deletedCount 0, not an error.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := donationID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete donation")
	defer cancel()

	n, err := donationstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete donation failed", err)
		return
	}
	jsonio.OK(w, jsonio.Deleted(n))
}

// UpdateStatus handles PATCH /donations/{id}. Setting the current status
// again succeeds with modifiedCount 0.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := donationID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	var req statusRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update donation status")
	defer cancel()

	res, err := donationstore.New(h.DB).UpdateStatus(ctx, id, req.Status)
	if errors.Is(err, donationstore.ErrNothingToUpdate) {
		h.ErrLog.Write(w, r, apierr.BadRequest("Status is required."))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update donation status failed", err)
		return
	}
	if res.MatchedCount > 0 {
		h.AuditLog.DonationStatusChanged(ctx, r, id.Hex(), req.Status)
	}
	jsonio.OK(w, jsonio.Updated(res))
}
