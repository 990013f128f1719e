package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/googleauth"
	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.uber.org/zap"
)

type googleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// HandleGoogle handles POST /auth/google. The id_token is verified against
// Google's tokeninfo endpoint, then the account is found or created by
// email. A Google account carries no password hash, so it can never sign
// in through /auth/login.
func (h *Handler) HandleGoogle(w http.ResponseWriter, r *http.Request) {
	var req googleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := h.Google.Verify(r.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, googleauth.ErrNotConfigured):
			httpjson.Error(w, http.StatusBadRequest, "Google OAuth is not configured")
		case errors.Is(err, googleauth.ErrTokenRejected):
			httpjson.Error(w, http.StatusUnauthorized, "Invalid Google token")
		default:
			h.Log.Error("google auth: verification unavailable", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "Failed to verify Google token")
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		// Existing account: refresh the stored picture when the provider
		// presents a different one.
		if identity.Picture != nil && (user.Picture == nil || *user.Picture != *identity.Picture) {
			if err := h.Users.UpdatePicture(ctx, user.ID, identity.Picture); err != nil {
				h.Log.Error("google auth: picture update failed", zap.Error(err))
				httpjson.Error(w, http.StatusInternalServerError, "Failed to sign in")
				return
			}
			user.Picture = identity.Picture
		}
	case errors.Is(err, userstore.ErrNotFound):
		user, err = h.Users.Create(ctx, models.User{
			Email:   identity.Email,
			Name:    identity.Name,
			Picture: identity.Picture,
		})
		if err != nil {
			h.Log.Error("google auth: create user failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "Failed to sign in")
			return
		}
	default:
		h.Log.Error("google auth: lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	resp, err := h.tokenResponseFor(user)
	if err != nil {
		h.Log.Error("google auth: token signing failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}
	httpjson.Respond(w, http.StatusOK, resp)
}
