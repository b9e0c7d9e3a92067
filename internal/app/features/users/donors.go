// internal/app/features/users/donors.go
package users

import (
	"net/http"
	"strings"

	userstore "github.com/dalemusser/roktosheba/internal/app/store/users"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ActiveDonors handles GET /allUsers/active-donors.
func (h *Handler) ActiveDonors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "active donors")
	defer cancel()

	donors, err := userstore.New(h.DB).ActiveDonors(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list active donors failed", err)
		return
	}
	jsonio.OK(w, donors)
}

// FindDonors handles GET /donors?bloodGroup=&district=&upazila=.
func (h *Handler) FindDonors(w http.ResponseWriter, r *http.Request) {
	q := userstore.DonorQuery{
		BloodGroup: bloodGroupParam(r),
		District:   query.Get(r, "district"),
		Upazila:    query.Get(r, "upazila"),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "find donors")
	defer cancel()

	donors, err := userstore.New(h.DB).FindDonors(ctx, q)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find donors failed", err)
		return
	}
	jsonio.OK(w, donors)
}

// bloodGroupParam reads bloodGroup (or blood_group) from the query. An
// unencoded "+" arrives as a space ("A " for "A+") and is restored.
func bloodGroupParam(r *http.Request) string {
	q := r.URL.Query()
	raw := q.Get("bloodGroup")
	if raw == "" {
		raw = q.Get("blood_group")
	}
	if strings.HasSuffix(raw, " ") {
		raw = strings.TrimRight(raw, " ") + "+"
	}
	return strings.TrimSpace(raw)
}
