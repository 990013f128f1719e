package googleauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	v := NewVerifier("test-client-id", zap.NewNop())
	v.Endpoint = srv.URL
	return v
}

func TestVerify_Success(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id_token"); got != "tok-123" {
			t.Errorf("id_token: got %q, want %q", got, "tok-123")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"aud":"test-client-id","email":"alice@example.com","name":"Alice","picture":"https://img/p.png"}`))
	})

	id, err := v.Verify(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if id.Email != "alice@example.com" {
		t.Errorf("email: got %q", id.Email)
	}
	if id.Name != "Alice" {
		t.Errorf("name: got %q", id.Name)
	}
	if id.Picture == nil || *id.Picture != "https://img/p.png" {
		t.Errorf("picture: got %v", id.Picture)
	}
}

func TestVerify_NameDefaultsToLocalPart(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"aud":"test-client-id","email":"bob@example.com"}`))
	})

	id, err := v.Verify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if id.Name != "bob" {
		t.Errorf("name: got %q, want %q", id.Name, "bob")
	}
	if id.Picture != nil {
		t.Errorf("picture: got %v, want nil", id.Picture)
	}
}

func TestVerify_AudienceMismatch(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"aud":"some-other-app","email":"alice@example.com"}`))
	})

	if _, err := v.Verify(context.Background(), "tok"); err != ErrTokenRejected {
		t.Errorf("expected ErrTokenRejected, got %v", err)
	}
}

func TestVerify_Non200(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	if _, err := v.Verify(context.Background(), "tok"); err != ErrTokenRejected {
		t.Errorf("expected ErrTokenRejected, got %v", err)
	}
}

func TestVerify_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // shut down immediately so the request fails to connect

	v := NewVerifier("test-client-id", zap.NewNop())
	v.Endpoint = srv.URL

	if _, err := v.Verify(context.Background(), "tok"); err != ErrUnavailable {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestVerify_NotConfigured(t *testing.T) {
	v := NewVerifier("", zap.NewNop())
	if _, err := v.Verify(context.Background(), "tok"); err != ErrNotConfigured {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
