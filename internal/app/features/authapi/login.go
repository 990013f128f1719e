package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles POST /auth/login. Unknown email, a Google-only
// account with no password, and a wrong password all return the same 401
// so the endpoint does not confirm which addresses are registered.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Log.Error("login: lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	if user.PasswordHash == nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	resp, err := h.tokenResponseFor(user)
	if err != nil {
		h.Log.Error("login: token signing failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}
	httpjson.Respond(w, http.StatusOK, resp)
}
