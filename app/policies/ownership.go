// Package policies holds the authorization rules applied before mutations.
package policies

import (
	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/pkg/auth"
)

// CanManage allows the actor to mutate a resource owned by ownerID when
// the actor is that owner or holds the admin role.
func CanManage(actor *auth.Claims, ownerID uuid.UUID) bool {
	if actor == nil {
		return false
	}
	if actor.HasRole(auth.RoleAdmin) {
		return true
	}
	subject, err := uuid.Parse(actor.Subject)
	if err != nil {
		return false
	}
	return subject == ownerID
}
