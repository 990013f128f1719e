// Package googleauth validates client-supplied Google ID tokens against
// Google's tokeninfo endpoint. Unlike a full OAuth authorization-code flow,
// the client already holds the ID token; the server's only job is to check
// that Google vouches for it and that it was minted for this application.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Outbound verification timeout. The request must fail fast rather than
// hold the login request open when Google is unreachable.
const verifyTimeout = 10 * time.Second

var (
	// ErrNotConfigured means no Google client ID is configured; the
	// Google login path is disabled.
	ErrNotConfigured = errors.New("google sign-in is not configured")

	// ErrTokenRejected means Google rejected the token or it was minted
	// for a different application.
	ErrTokenRejected = errors.New("google rejected the id token")

	// ErrUnavailable means the verification endpoint could not be
	// reached (network error or timeout).
	ErrUnavailable = errors.New("google token verification unavailable")
)

// Identity is the subset of the tokeninfo response the application uses.
type Identity struct {
	Email   string
	Name    string
	Picture *string
}

// Verifier checks ID tokens for a single OAuth client ID.
type Verifier struct {
	ClientID string
	Log      *zap.Logger

	// Endpoint overrides the tokeninfo URL; tests point it at a local server.
	Endpoint string

	client *http.Client
}

// NewVerifier creates a Verifier for the given client ID. An empty client
// ID produces a Verifier whose Verify always fails with ErrNotConfigured.
func NewVerifier(clientID string, logger *zap.Logger) *Verifier {
	return &Verifier{
		ClientID: clientID,
		Log:      logger,
		Endpoint: tokeninfoURL,
		client:   &http.Client{Timeout: verifyTimeout},
	}
}

// Configured reports whether a client ID is set.
func (v *Verifier) Configured() bool {
	return v.ClientID != ""
}

// Verify sends the ID token to the tokeninfo endpoint and returns the
// asserted identity. The audience claim must match the configured client
// ID; a token minted for another application is rejected.
func (v *Verifier) Verify(ctx context.Context, idToken string) (Identity, error) {
	if !v.Configured() {
		return Identity{}, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	u := v.Endpoint + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Identity{}, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		v.Log.Error("tokeninfo request failed", zap.Error(err))
		return Identity{}, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.Log.Warn("tokeninfo rejected id token", zap.Int("status", resp.StatusCode))
		return Identity{}, ErrTokenRejected
	}

	var info struct {
		Aud     string `json:"aud"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		v.Log.Error("tokeninfo response decode failed", zap.Error(err))
		return Identity{}, ErrUnavailable
	}

	if info.Aud != v.ClientID {
		v.Log.Warn("id token audience mismatch", zap.String("aud", info.Aud))
		return Identity{}, ErrTokenRejected
	}

	id := Identity{Email: info.Email, Name: info.Name}
	if id.Name == "" {
		id.Name = localPart(info.Email)
	}
	if info.Picture != "" {
		id.Picture = &info.Picture
	}
	return id, nil
}

// localPart returns the portion of an email address before the "@".
func localPart(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}
