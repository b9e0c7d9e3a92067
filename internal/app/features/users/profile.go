// internal/app/features/users/profile.go
package users

import (
	"errors"
	"net/http"

	userstore "github.com/dalemusser/roktosheba/internal/app/store/users"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

func emailParam(r *http.Request) (string, error) {
	email := normalize.Email(chi.URLParam(r, "email"))
	if email == "" {
		return "", apierr.BadRequest("Email is required.")
	}
	return email, nil
}

// Get handles GET /users/{email}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get user")
	defer cancel()

	u, err := userstore.New(h.DB).GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apierr.NotFound("User not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get user failed", err)
		return
	}
	jsonio.OK(w, u)
}

// Role handles GET /users/{email}/role.
func (h *Handler) Role(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get user role")
	defer cancel()

	u, err := userstore.New(h.DB).GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apierr.NotFound("User not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get user role failed", err)
		return
	}

	role := u.Role
	if role == "" {
		role = models.RoleUser
	}
	jsonio.OK(w, roleResponse{Role: role})
}

// UpdateOwnProfile handles PATCH /users/{email}. Only name, avatar,
// blood group, district and upazila can change here.
func (h *Handler) UpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	var req profileRequest
	if err := jsonio.BindLenient(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update profile")
	defer cancel()

	res, err := userstore.New(h.DB).UpdateProfile(ctx, email, userstore.ProfileUpdate{
		Name:       req.Name,
		Avatar:     req.Avatar,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
	})
	if errors.Is(err, userstore.ErrNothingToUpdate) {
		h.ErrLog.Write(w, r, apierr.BadRequest("No valid fields to update."))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update profile failed", err)
		return
	}
	if res.MatchedCount == 0 {
		h.ErrLog.Write(w, r, apierr.NotFound("User not found"))
		return
	}
	jsonio.OK(w, jsonio.Updated(res))
}

// DonorProfile handles GET /users/donor/{email}.
func (h *Handler) DonorProfile(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "donor profile")
	defer cancel()

	p, err := userstore.New(h.DB).DonorProfile(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.Write(w, r, apierr.NotFound("Donor not found"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "donor profile failed", err)
		return
	}
	jsonio.OK(w, p)
}
