// internal/app/features/donations/assign.go
package donations

import (
	"errors"
	"net/http"

	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	userstore "github.com/dalemusser/roktosheba/internal/app/store/users"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AssignDonor handles PATCH /donation/assign-donor/{donationId}.
func (h *Handler) AssignDonor(w http.ResponseWriter, r *http.Request) {
	id, err := donationID(r, "donationId")
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	var req assignRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "assign donor")
	defer cancel()

	donor, err := userstore.New(h.DB).ActiveDonorByEmail(ctx, req.DonorEmail)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apierr.NotFound("Donor not found or inactive"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load donor failed", err)
		return
	}

	err = donationstore.NewAssigner(h.DB, h.Log, h.Metrics).Assign(ctx, id, *donor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apierr.NotFound("Donation request not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "assign donor failed", err)
		return
	}

	h.Metrics.IncDonorsAssigned()
	h.AuditLog.DonorAssigned(ctx, r, id.Hex(), donor.Email)
	h.Log.Info("donor assigned",
		zap.String("donation_id", id.Hex()),
		zap.String("donor_id", donor.ID.Hex()))
	jsonio.OK(w, messageResponse{Message: "Donor assigned successfully."})
}

// RandomDonors handles GET /random-donors: a sample of active donors from
// the user directory.
func (h *Handler) RandomDonors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "random donors")
	defer cancel()

	donors, err := userstore.New(h.DB).SampleActiveDonors(ctx, RandomDonorCount)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "random donors failed", err)
		return
	}
	jsonio.OK(w, donors)
}
