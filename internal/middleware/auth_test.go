package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/finprime/finprime-backend/internal/response"
	"github.com/finprime/finprime-backend/pkg/logger"
)

func testMiddleware(secret []byte) *Middleware {
	rh := response.New(slog.New(logger.NewTestHandler(slog.LevelError)))
	return NewMiddleware(secret, rh)
}

func signToken(t *testing.T, secret []byte, userID int64, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	secret := []byte("test-secret")
	m := testMiddleware(secret)

	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := m.Auth(next)

	token := signToken(t, secret, 42, time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if gotUserID != 42 {
		t.Fatalf("userID = %d, want 42", gotUserID)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	secret := []byte("test-secret")
	m := testMiddleware(secret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run")
	})
	handler := m.Auth(next)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other-secret"), 42, time.Now().Add(time.Hour))},
		{"expired", "Bearer " + signToken(t, secret, 42, time.Now().Add(-time.Hour))},
		{"zero user id", "Bearer " + signToken(t, secret, 0, time.Now().Add(time.Hour))},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tc.name, rr.Code)
		}
		// Rejections go through the shared error envelope.
		if !strings.Contains(rr.Body.String(), `"code":"unauthorized"`) {
			t.Errorf("%s: body = %s, want unauthorized envelope", tc.name, rr.Body.String())
		}
	}
}

func TestUserIDMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := UserID(req.Context()); id != 0 {
		t.Fatalf("userID = %d, want 0 for unauthenticated context", id)
	}
}
