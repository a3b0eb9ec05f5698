package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/yoofibh/webtech-dlc/internal/auth"
	domainerrors "github.com/yoofibh/webtech-dlc/internal/errors"
	"github.com/yoofibh/webtech-dlc/internal/service"
)

// ctxKey is the type for context keys to avoid collisions.
type ctxKey string

// claimsKey is the context key for the authenticated token claims.
const claimsKey ctxKey = "claims"

// GetClaims returns the authenticated token claims from context.
// Returns an unauthenticated error if no valid token was presented.
func GetClaims(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, domainerrors.Unauthenticated("authentication required")
	}
	return claims, nil
}

// RequireAdmin validates the user is authenticated and has the admin role.
func RequireAdmin(ctx context.Context) (*auth.Claims, error) {
	claims, err := GetClaims(ctx)
	if err != nil {
		return nil, err
	}
	if !claims.IsAdmin() {
		return nil, domainerrors.Forbidden("admin access required")
	}
	return claims, nil
}

// setClaims stores the token claims in context.
func setClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// authMiddleware returns a middleware that validates Bearer tokens and
// stores their claims in context. Requests without a valid token continue
// anonymously; handlers use GetClaims or RequireAdmin to enforce access.
func authMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.Verify(authHeader[7:])
			if err != nil {
				// Invalid token - continue anonymously (handler will
				// reject if auth required)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaims(r.Context(), claims)))
		})
	}
}
