// Package rbac gates routes on the roles carried in the bearer token.
package rbac

import (
	"net/http"

	"github.com/shashiranjanraj/dinehub/pkg/auth"
	"github.com/shashiranjanraj/dinehub/pkg/collection"
	"github.com/shashiranjanraj/dinehub/pkg/middleware"
	"github.com/shashiranjanraj/dinehub/pkg/response"
)

// HasRole allows the request when the caller holds any of roles.
// middleware.Auth must run first; without claims the caller gets 401.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			held, ok := middleware.RolesFromCtx(r)
			if !ok {
				response.Unauthorized(w)
				return
			}
			for _, role := range roles {
				if collection.Contains(held, func(h string) bool { return h == role }) {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w)
		})
	}
}

// Admin is HasRole(auth.RoleAdmin).
func Admin(next http.Handler) http.Handler {
	return HasRole(auth.RoleAdmin)(next)
}
