// internal/app/features/donations/list.go
package donations

import (
	"net/http"

	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// List handles GET /donation-requests?status=. The result is not paginated.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := normalize.Filter(query.Get(r, "status"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list donations")
	defer cancel()

	items, err := donationstore.New(h.DB).List(ctx, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list donations failed", err)
		return
	}
	jsonio.OK(w, items)
}

// ListMine handles GET /myDonations?email=&status=&page=&limit=.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(query.Get(r, "email"))
	if email == "" {
		h.ErrLog.Write(w, r, apierr.BadRequest("Email is required."))
		return
	}
	status := normalize.Filter(query.Get(r, "status"))
	pg := paging.Parse(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list my donations")
	defer cancel()

	items, total, err := donationstore.New(h.DB).ListByRequester(ctx, email, status, pg)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list my donations failed", err)
		return
	}
	jsonio.OK(w, donationList{Donations: items, TotalCount: total, Page: pg.Page, Limit: pg.Limit})
}

// ListAll handles GET /all-donations?page=&limit=&status=.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.listAll(w, r, normalize.Filter(query.Get(r, "status")))
}

// ListAllUnfiltered handles GET /allDonations?page=&limit=, which ignores
// any status parameter.
func (h *Handler) ListAllUnfiltered(w http.ResponseWriter, r *http.Request) {
	h.listAll(w, r, "")
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request, status string) {
	pg := paging.Parse(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list all donations")
	defer cancel()

	items, total, err := donationstore.New(h.DB).ListAll(ctx, status, pg)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list all donations failed", err)
		return
	}
	jsonio.OK(w, donationList{Donations: items, TotalCount: total, Page: pg.Page, Limit: pg.Limit})
}
