package authapi

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// HandleRefresh handles POST /auth/refresh. A valid refresh token whose
// subject still resolves to a user yields a brand-new token pair. Prior
// refresh tokens stay valid until they expire; there is no revocation
// list.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.Tokens.VerifyRefresh(req.RefreshToken)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	userID, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "User not found")
		return
	}

	resp, err := h.tokenResponseFor(user)
	if err != nil {
		h.Log.Error("refresh: token signing failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to refresh tokens")
		return
	}
	httpjson.Respond(w, http.StatusOK, resp)
}
