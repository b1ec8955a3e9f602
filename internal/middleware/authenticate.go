package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/model"
)

// lookupTimeout bounds the principal lookup, a timed out lookup is
// treated the same as an unknown subject.
const lookupTimeout = 5 * time.Second

// PrincipalLookup resolves the token subject into a stored principal
type PrincipalLookup interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// Authenticate resolves the session cookie into a request identity. It
// runs before every route handler and never rejects a request on its
// own: any failure, from a bad cookie to an inactive account, downgrades
// the request to anonymous and lets the authorization gate decide.
func Authenticate(cookies *auth.CookieTransport, tokens auth.TokenService, users PrincipalLookup, logger auth.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := auth.IdentityFrom(c); ok {
			return c.Next()
		}

		token, ok := cookies.TokenFromRequest(c)
		if !ok {
			return c.Next()
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			logger.Warn("could not verify session token", "error", err, "path", c.Path())
			return c.Next()
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), lookupTimeout)
		defer cancel()

		user, err := users.GetByEmail(ctx, claims.Subject())
		if err != nil {
			if errors.IsNotFound(err) {
				logger.Warn("token subject has no principal", "subject", claims.Subject())
			} else {
				logger.Error("principal lookup failed", "error", err, "subject", claims.Subject())
			}
			return c.Next()
		}

		if !user.IsActive {
			logger.Warn("token presented for inactive principal", "subject", user.Email)
			return c.Next()
		}

		identity := &auth.Identity{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		}
		auth.SetIdentity(c, identity)
		logger.Debug("request authenticated", "subject", user.Email, "authorities", identity.Authorities())

		return c.Next()
	}
}
