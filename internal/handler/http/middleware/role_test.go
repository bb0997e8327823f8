package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/payroll-backend-go/internal/domain/user"
	"github.com/staffledger/payroll-backend-go/internal/pkg/jwt"
)

func newGuardedRouter(t *testing.T, svc jwt.Service, gate func(http.Handler) http.Handler) *chi.Mux {
	t.Helper()

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired(svc.JWTAuth()))
	r.Group(func(r chi.Router) {
		r.Use(gate)
		r.Get("/guarded", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func mintToken(t *testing.T, svc jwt.Service, role user.Role) string {
	t.Helper()

	employeeID := "emp-1"
	token, _, err := svc.GenerateAccessToken("user-1", &employeeID, "company-1", role)
	require.NoError(t, err)
	return token
}

func TestRequireManager(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret-key", "15m")
	router := newGuardedRouter(t, svc, RequireManager)

	tests := []struct {
		name string
		role user.Role
		want int
	}{
		{"manager allowed", user.RoleManager, http.StatusOK},
		{"owner allowed", user.RoleOwner, http.StatusOK},
		{"employee forbidden", user.RoleEmployee, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set("Authorization", "Bearer "+mintToken(t, svc, tt.role))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireOwner(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret-key", "15m")
	router := newGuardedRouter(t, svc, RequireOwner)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, svc, user.RoleManager))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, svc, user.RoleOwner))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret-key", "15m")
	router := newGuardedRouter(t, svc, RequireManager)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
