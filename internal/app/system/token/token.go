// Package token issues and verifies the signed bearer credentials used by
// the API: short-lived access tokens and longer-lived refresh tokens.
//
// The two token kinds are signed with distinct secrets and carry a "typ"
// claim, so a leaked refresh token can never be replayed as an access
// credential (and vice versa) even if one secret is compromised.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes.
const (
	AccessTTL  = 30 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// ErrInvalidToken is returned for any verification failure: bad signature,
// expired token, or a token of the wrong type.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the JWT claims carried by both token kinds. Subject is the
// user's ID in hex.
type Claims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens. It is stateless; all durable state
// lives in the tokens themselves.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
}

// NewManager creates a Manager with the two signing secrets.
func NewManager(accessSecret, refreshSecret string) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

// IssueAccess signs a 30-minute access token for the given user ID.
func (m *Manager) IssueAccess(userID string) (string, error) {
	return m.issue(userID, typeAccess, AccessTTL, m.accessSecret)
}

// IssueRefresh signs a 7-day refresh token for the given user ID.
func (m *Manager) IssueRefresh(userID string) (string, error) {
	return m.issue(userID, typeRefresh, RefreshTTL, m.refreshSecret)
}

// Pair issues a matching access and refresh token for the given user ID.
func (m *Manager) Pair(userID string) (access, refresh string, err error) {
	if access, err = m.IssueAccess(userID); err != nil {
		return "", "", err
	}
	if refresh, err = m.IssueRefresh(userID); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// VerifyAccess validates an access token and returns its subject user ID.
func (m *Manager) VerifyAccess(tok string) (string, error) {
	return m.verify(tok, typeAccess, m.accessSecret)
}

// VerifyRefresh validates a refresh token and returns its subject user ID.
func (m *Manager) VerifyRefresh(tok string) (string, error) {
	return m.verify(tok, typeRefresh, m.refreshSecret)
}

func (m *Manager) issue(userID, typ string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *Manager) verify(tok, wantType string, secret []byte) (string, error) {
	parsed, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.TokenType != wantType || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
