package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/taha-arar/blog/internal/auth"
)

// Require gates a route behind a declarative requirement. It turns a
// policy deny into the matching authorization error, everything else is
// left to the handler.
func Require(requirement auth.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, _ := auth.IdentityFrom(c)

		var ownerID int64
		if requirement.NeedsOwner() {
			// Ownership routes address the resource through the id
			// path segment.
			if id, err := strconv.ParseInt(c.Params("id"), 10, 64); err == nil {
				ownerID = id
			}
		}

		decision := auth.Decide(identity, requirement, ownerID)
		if decision.Allowed {
			return c.Next()
		}

		if decision.Reason == auth.DenyUnauthenticated {
			return auth.ErrUnauthenticated
		}
		return auth.ErrInsufficientRole
	}
}
