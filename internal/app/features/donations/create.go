// internal/app/features/donations/create.go
package donations

import (
	"net/http"

	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Create handles POST /createDonation.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create donation")
	defer cancel()

	d, err := donationstore.New(h.DB).Create(ctx, req.donation())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create donation failed", err)
		return
	}

	h.Metrics.IncDonationsCreated()
	h.Log.Info("donation request created",
		zap.String("donation_id", d.ID.Hex()),
		zap.String("blood_group", d.BloodGroup))
	jsonio.OK(w, jsonio.Inserted(d.ID))
}
