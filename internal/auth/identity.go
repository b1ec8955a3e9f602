package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taha-arar/blog/internal/model"
)

// Identity is the principal resolved for a request. Only active
// accounts ever become identities, the middleware drops inactive ones
// before this point.
type Identity struct {
	ID    int64
	Email string
	Role  model.Role
}

// Authorities renders the identity's role as authority strings
func (i Identity) Authorities() []string {
	return []string{i.Role.Authority()}
}

// HasAnyRole checks membership of the identity's role in the given set
func (i Identity) HasAnyRole(roles ...model.Role) bool {
	for _, role := range roles {
		if i.Role == role {
			return true
		}
	}
	return false
}

// identityKey is the request-scoped slot for the resolved identity.
// Identity travels with the request, never in process-wide state.
const identityKey = "auth:identity"

// SetIdentity attaches the identity to the request
func SetIdentity(c *fiber.Ctx, identity *Identity) {
	c.Locals(identityKey, identity)
}

// IdentityFrom returns the request identity, if any
func IdentityFrom(c *fiber.Ctx) (*Identity, bool) {
	identity, ok := c.Locals(identityKey).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}
