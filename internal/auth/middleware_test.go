package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"carrental/internal/service"

	"github.com/stretchr/testify/assert"
)

type staticValidator struct{}

func (staticValidator) ValidateToken(token string) (*service.AdminClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &service.AdminClaims{AdminID: 7, Email: "ops@example.com"}, nil
}

func TestAdminAuthMiddleware(t *testing.T) {
	var seen *service.AdminClaims
	h := AdminAuthMiddleware(staticValidator{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = AdminFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"good token", "Bearer good", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/reset", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
	if assert.NotNil(t, seen) {
		assert.Equal(t, 7, seen.AdminID)
	}
}
