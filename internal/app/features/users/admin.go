// internal/app/features/users/admin.go
package users

import (
	"errors"
	"net/http"

	userstore "github.com/dalemusser/roktosheba/internal/app/store/users"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
)

// List handles GET /allUsers?page=&limit=&status=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pg := paging.Parse(r)
	status := normalize.Filter(query.Get(r, "status"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	items, total, err := userstore.New(h.DB).List(ctx, status, pg)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users failed", err)
		return
	}
	jsonio.OK(w, userList{Users: items, TotalCount: total, Page: pg.Page, Limit: pg.Limit})
}

// AdminUpdate handles PATCH /allUsers/{id}.
func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := jsonio.ParseID(chi.URLParam(r, "id"), "user id")
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	var req adminUpdateRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "admin update user")
	defer cancel()

	res, err := userstore.New(h.DB).UpdateByID(ctx, id, userstore.AdminUpdate{
		ProfileUpdate: userstore.ProfileUpdate{
			Name:       req.Name,
			Avatar:     req.Avatar,
			BloodGroup: req.BloodGroup,
			District:   req.District,
			Upazila:    req.Upazila,
		},
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Status: req.Status,
	})
	switch {
	case errors.Is(err, userstore.ErrNothingToUpdate):
		h.ErrLog.Write(w, r, apierr.BadRequest("No fields to update."))
		return
	case errors.Is(err, userstore.ErrDuplicateEmail):
		h.ErrLog.Write(w, r, apierr.Conflict("Email already registered"))
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "admin update user failed", err)
		return
	}
	if res.MatchedCount == 0 {
		h.ErrLog.Write(w, r, apierr.NotFound("User not found"))
		return
	}

	h.AuditLog.UserUpdated(ctx, r, id.Hex(), req.changedFields())
	jsonio.OK(w, jsonio.Updated(res))
}
