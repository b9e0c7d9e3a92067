// internal/app/features/users/register.go
package users

import (
	"errors"
	"net/http"

	userstore "github.com/dalemusser/roktosheba/internal/app/store/users"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.uber.org/zap"
)

// Register handles POST /users.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	if req.Role == models.RoleAdmin {
		h.ErrLog.Write(w, r, apierr.BadRequest(`Role "admin" cannot be self-assigned.`))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "register user")
	defer cancel()

	u, err := userstore.New(h.DB).Create(ctx, req.user())
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		h.ErrLog.Write(w, r, apierr.Conflict("Email already registered"))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "register user failed", err)
		return
	}

	h.Metrics.IncUsersRegistered()
	h.Log.Info("user registered", zap.String("user_id", u.ID.Hex()), zap.String("role", u.Role))
	jsonio.OK(w, jsonio.Inserted(u.ID))
}
