package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/stockwise/pkg/auth"
	"github.com/shashiranjanraj/stockwise/pkg/cache"
	"github.com/shashiranjanraj/stockwise/pkg/response"
)

type userIDKey struct{}
type roleKey struct{}

// BlacklistKey is the Redis key holding a revoked token. Logout stores the
// token here for its remaining lifetime; Auth rejects blacklisted tokens.
func BlacklistKey(token string) string {
	return "stockwise:token:blacklist:" + token
}

// BearerToken extracts the raw token from the Authorization header, or ""
// when absent.
func BearerToken(r *http.Request) string {
	return strings.Replace(r.Header.Get("Authorization"), "Bearer ", "", 1)
}

// Auth validates the Bearer token, rejects revoked tokens, and stores the
// authenticated user's ID and role in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)

		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		if cache.Has(BlacklistKey(token)) {
			response.Error(w, http.StatusUnauthorized, "Token revoked")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
		ctx = context.WithValue(ctx, roleKey{}, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromCtx returns the authenticated user's ID, or 0 when the request
// did not pass through Auth.
func UserIDFromCtx(ctx context.Context) uint {
	id, _ := ctx.Value(userIDKey{}).(uint)
	return id
}

// RoleFromCtx returns the authenticated user's role, or "" when the request
// did not pass through Auth.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey{}).(string)
	return role
}
