package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/response"
)

type Middleware struct {
	JWTSecret       []byte
	ResponseHandler response.ResponseHandler
}

func NewMiddleware(secret []byte, rh response.ResponseHandler) *Middleware {
	return &Middleware{JWTSecret: secret, ResponseHandler: rh}
}

// context key
type contextKey string

const UserIDKey contextKey = "userId"

type accessClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Main middleware
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if header == "" {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("missing Authorization header"))
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("invalid Authorization header"))
			return
		}

		tokenStr := parts[1]

		claims := &accessClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.JWTSecret, nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to extract the authenticated user id
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(UserIDKey).(int64)
	return id
}
