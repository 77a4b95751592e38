package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/phonetrace/phonetrace/internal/auth"
	"github.com/phonetrace/phonetrace/internal/http/respond"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// accountIDKey is the context key for the authenticated account id.
	accountIDKey contextKey = "account_id"
	// usernameKey is the context key for the authenticated username.
	usernameKey contextKey = "username"
)

// GetAccountID extracts the authenticated account id from the context.
// Returns 0 if the request was not authenticated.
func GetAccountID(ctx context.Context) int64 {
	id, _ := ctx.Value(accountIDKey).(int64)
	return id
}

// GetUsername extracts the authenticated username from the context.
// Returns empty string if not found.
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// RequireAuth wraps a handler with JWT bearer-token validation. It extracts
// the token from the Authorization header, validates it, and adds the account
// id and username to the request context. Requests without a valid token get
// a 401 and never reach the handler.
func RequireAuth(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respond.Error(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respond.Error(w, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, claims.AccountID)
		ctx = context.WithValue(ctx, usernameKey, claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuthFunc is RequireAuth for bare handler funcs.
func RequireAuthFunc(jwtManager *auth.JWTManager, next http.HandlerFunc) http.Handler {
	return RequireAuth(jwtManager, next)
}
