package authapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/googleauth"
	"github.com/dalemusser/taskhub/internal/app/system/token"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, db *mongo.Database) *Handler {
	t.Helper()
	tokens := token.NewManager("test-access-secret", "test-refresh-secret")
	return NewHandler(userstore.New(db), tokens, googleauth.NewVerifier("", zap.NewNop()), zap.NewNop())
}

func TestHandleRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	rec := httptest.NewRecorder()
	r := testutil.JSONRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": "secret123",
	})
	h.HandleRegister(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp tokenResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens in response")
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type: got %q", resp.TokenType)
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("user email: got %q", resp.User.Email)
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	body := map[string]string{"email": "dup@example.com", "name": "First", "password": "secret123"}
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/register", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("first register: got %d", rec.Code)
	}

	// Different casing, same account.
	body["email"] = "DUP@example.com"
	body["name"] = "Second"
	rec = httptest.NewRecorder()
	h.HandleRegister(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/register", body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second register: got %d, want 400", rec.Code)
	}

	var errResp map[string]string
	testutil.DecodeJSON(t, rec, &errResp)
	if errResp["error"] != "Email already registered" {
		t.Errorf("error: got %q", errResp["error"])
	}
}

func TestHandleRegister_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	rec := httptest.NewRecorder()
	h.HandleRegister(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"email": "not-an-email", "name": "X", "password": "secret123",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad email: got %d, want 400", rec.Code)
	}
}

func TestHandleLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUserWithPassword(ctx, "Alice", "alice@example.com", "secret123")

	rec := httptest.NewRecorder()
	h.HandleLogin(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp tokenResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.User.Name != "Alice" {
		t.Errorf("user name: got %q", resp.User.Name)
	}
}

func TestHandleLogin_Rejections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUserWithPassword(ctx, "Alice", "alice@example.com", "secret123")
	fixtures.CreateUser(ctx, "Google Greg", "greg@example.com") // no password

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"unknown email", "nobody@example.com", "secret123"},
		{"wrong password", "alice@example.com", "wrong"},
		{"password-less account", "greg@example.com", "anything"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleLogin(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/login", map[string]string{
				"email": tt.email, "password": tt.pass,
			}))
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401", rec.Code)
			}
			var errResp map[string]string
			testutil.DecodeJSON(t, rec, &errResp)
			if errResp["error"] != "Invalid email or password" {
				t.Errorf("error: got %q", errResp["error"])
			}
		})
	}
}

func TestHandleGoogle_NotConfigured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db) // verifier has no client ID

	rec := httptest.NewRecorder()
	h.HandleGoogle(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/google", map[string]string{
		"id_token": "whatever",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	var errResp map[string]string
	testutil.DecodeJSON(t, rec, &errResp)
	if errResp["error"] != "Google OAuth is not configured" {
		t.Errorf("error: got %q", errResp["error"])
	}
}

func TestHandleGoogle_FindOrCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	tokeninfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"aud":"client-1","email":"gina@example.com","name":"Gina","picture":"https://img/g.png"}`))
	}))
	t.Cleanup(tokeninfo.Close)

	h.Google = googleauth.NewVerifier("client-1", zap.NewNop())
	h.Google.Endpoint = tokeninfo.URL

	// First sign-in creates the account.
	rec := httptest.NewRecorder()
	h.HandleGoogle(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/google", map[string]string{"id_token": "tok"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("first sign-in: got %d, body %s", rec.Code, rec.Body.String())
	}
	var resp tokenResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.User.Email != "gina@example.com" {
		t.Errorf("email: got %q", resp.User.Email)
	}
	firstID := resp.User.ID

	// Second sign-in finds the same account.
	rec = httptest.NewRecorder()
	h.HandleGoogle(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/google", map[string]string{"id_token": "tok"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("second sign-in: got %d", rec.Code)
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.User.ID != firstID {
		t.Errorf("expected same account, got %q then %q", firstID, resp.User.ID)
	}
}

func TestHandleRefresh(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com")
	refresh, err := h.Tokens.IssueRefresh(user.ID.Hex())
	if err != nil {
		t.Fatalf("IssueRefresh failed: %v", err)
	}

	rec := httptest.NewRecorder()
	h.HandleRefresh(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": refresh,
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp tokenResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected a fresh token pair")
	}
}

func TestHandleRefresh_Rejections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com")

	// An access token is not a refresh token.
	access, err := h.Tokens.IssueAccess(user.ID.Hex())
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}
	rec := httptest.NewRecorder()
	h.HandleRefresh(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": access,
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("access-as-refresh: got %d, want 401", rec.Code)
	}

	// Garbage token.
	rec = httptest.NewRecorder()
	h.HandleRefresh(rec, testutil.JSONRequest(t, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": "garbage",
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: got %d, want 401", rec.Code)
	}
}

func TestServeMe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com")

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	h.ServeMe(rec, auth.WithTestUser(r, &user))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp userResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.ID != user.ID.Hex() {
		t.Errorf("id: got %q, want %q", resp.ID, user.ID.Hex())
	}
}
