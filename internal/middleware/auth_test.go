package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stockroom/stockroom/internal/auth"
)

func newTestTokenManager(t *testing.T, ttl time.Duration) *auth.TokenManager {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret-for-middleware", ttl)
	if err != nil {
		t.Fatalf("create token manager: %v", err)
	}
	return tokens
}

func newAuthTestHandler(t *testing.T, tokens *auth.TokenManager) (http.Handler, *string) {
	t.Helper()

	var seenPrincipal string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPrincipal = auth.MustPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	cfg := AuthConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tokens: tokens,
	}
	return Auth(cfg)(next), &seenPrincipal
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := newTestTokenManager(t, time.Hour)
	handler, seenPrincipal := newAuthTestHandler(t, tokens)

	token, err := tokens.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if *seenPrincipal != "user-123" {
		t.Errorf("expected principal user-123, got %q", *seenPrincipal)
	}
}

func TestAuth_Rejections(t *testing.T) {
	tokens := newTestTokenManager(t, time.Hour)
	handler, _ := newAuthTestHandler(t, tokens)

	otherTokens, err := auth.NewTokenManager("different-secret-for-middleware", time.Hour)
	if err != nil {
		t.Fatalf("create token manager: %v", err)
	}
	wrongSecret, err := otherTokens.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	expiredTokens := newTestTokenManager(t, time.Millisecond)
	expired, err := expiredTokens.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "empty bearer", header: "Bearer "},
		{name: "malformed token", header: "Bearer not.a.token"},
		{name: "wrong secret", header: "Bearer " + wrongSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assertAuthRejection(t, rec)
		})
	}

	t.Run("expired token", func(t *testing.T) {
		expiredHandler, _ := newAuthTestHandler(t, expiredTokens)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		rec := httptest.NewRecorder()

		expiredHandler.ServeHTTP(rec, req)

		assertAuthRejection(t, rec)
	})
}

// assertAuthRejection verifies a 401 with the single undifferentiated
// auth failure body. Missing, malformed, tampered and expired tokens
// must be indistinguishable to the caller.
func assertAuthRejection(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "Invalid or missing token" {
		t.Errorf("unexpected error message: %q", response["error"])
	}
	if response["code"] != "UNAUTHORIZED" {
		t.Errorf("unexpected code: %q", response["code"])
	}
}
