package auth

import (
	"context"
	"net/http"
	"strings"

	"carrental/internal/service"
)

type TokenValidator interface {
	ValidateToken(token string) (*service.AdminClaims, error)
}

type ctxKey struct{}

// AdminAuthMiddleware rejects requests without a valid admin bearer token
// and stores the token claims in the request context.
func AdminAuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			claims, err := validator.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
		})
	}
}

// AdminFromContext returns the claims stored by AdminAuthMiddleware.
func AdminFromContext(ctx context.Context) (*service.AdminClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*service.AdminClaims)
	return claims, ok
}
