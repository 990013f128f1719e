// Package auth carries the authenticated user through the request context
// and provides the bearer-token guard applied to protected routes.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/taskhub/internal/app/system/httpjson"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/app/system/token"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated user and a "found?" flag. The user
// is present only on routes behind Guard.RequireSignedIn.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*models.User)
	return u, ok
}

// WithTestUser injects a user into the request context, bypassing the
// guard. For handler tests only.
func WithTestUser(r *http.Request, u *models.User) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// UserFetcher loads a fresh user record for each authenticated request, so
// profile changes and deleted accounts take effect immediately rather than
// living on inside a still-valid token.
type UserFetcher interface {
	FetchByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Guard verifies bearer access tokens and resolves them to user records.
type Guard struct {
	Users  UserFetcher
	Tokens *token.Manager
	Log    *zap.Logger
}

// NewGuard constructs a Guard.
func NewGuard(users UserFetcher, tokens *token.Manager, logger *zap.Logger) *Guard {
	return &Guard{Users: users, Tokens: tokens, Log: logger}
}

// RequireSignedIn extracts and verifies the Authorization: Bearer token,
// loads the referenced user, and injects it into the request context.
// A missing header or bad token is a 401; a token whose subject no longer
// resolves to a user record is also a 401.
func (g *Guard) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		sub, err := g.Tokens.VerifyAccess(raw)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		userID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			// Subject is not a valid ObjectID; fail closed.
			httpjson.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		u, err := g.Users.FetchByID(ctx, userID)
		if err != nil {
			g.Log.Warn("access token references missing user", zap.String("user_id", sub))
			httpjson.Error(w, http.StatusUnauthorized, "User not found")
			return
		}

		next.ServeHTTP(w, withUser(r, u))
	})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	tok, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(tok) == "" {
		return "", false
	}
	return strings.TrimSpace(tok), true
}
