package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/dinehub/pkg/auth"
	"github.com/shashiranjanraj/dinehub/pkg/middleware"
	"github.com/stretchr/testify/assert"
)

func TestAdminGate(t *testing.T) {
	h := Admin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	cases := []struct {
		name   string
		claims *auth.Claims
		want   int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"user", &auth.Claims{Roles: []string{auth.RoleUser}}, http.StatusForbidden},
		{"admin", &auth.Claims{Roles: []string{auth.RoleAdmin}}, http.StatusCreated},
		{"both", &auth.Claims{Roles: []string{auth.RoleUser, auth.RoleAdmin}}, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/menucategories", nil)
			if tc.claims != nil {
				req = req.WithContext(middleware.WithClaims(req.Context(), tc.claims))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestHasRoleAcceptsAnyListedRole(t *testing.T) {
	h := HasRole("manager", auth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for roles, want := range map[string]int{
		"manager": http.StatusNoContent,
		"user":    http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{Roles: []string{roles}}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, roles)
	}
}
