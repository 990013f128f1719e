// internal/app/features/authapi/handler.go
package authapi

import (
	"time"

	"github.com/dalemusser/taskhub/internal/app/system/googleauth"
	"github.com/dalemusser/taskhub/internal/app/system/token"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the auth feature. The
// per-endpoint handlers (register, login, google, refresh, me) all draw
// from it.
type Handler struct {
	Users  *userstore.Store
	Tokens *token.Manager
	Google *googleauth.Verifier
	Log    *zap.Logger
}

// NewHandler constructs an auth Handler. It is typically called from the
// bootstrap BuildHandler function.
func NewHandler(users *userstore.Store, tokens *token.Manager, google *googleauth.Verifier, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		Tokens: tokens,
		Google: google,
		Log:    logger,
	}
}

// userResponse is the public projection of a user record. The password
// hash never leaves the store layer.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt,
	}
}

// tokenResponse is returned by every endpoint that signs the caller in.
type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         userResponse `json:"user"`
}

func (h *Handler) tokenResponseFor(u models.User) (tokenResponse, error) {
	access, refresh, err := h.Tokens.Pair(u.ID.Hex())
	if err != nil {
		return tokenResponse{}, err
	}
	return tokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         toUserResponse(u),
	}, nil
}
