package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister handles POST /auth/register. It creates a password
// account and signs the caller in immediately.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("register: bcrypt failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	hashStr := string(hash)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hashStr,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.Log.Error("register: create user failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	resp, err := h.tokenResponseFor(user)
	if err != nil {
		h.Log.Error("register: token signing failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	httpjson.Respond(w, http.StatusOK, resp)
}
