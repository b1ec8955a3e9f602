package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the verified claim set read out of a session token.
// Claims are only reachable through this interface after signature
// verification succeeded.
type AuthClaims interface {
	Subject() string
	Authorities() []string
	HasAuthority(authority string) bool
	IssuedAt() time.Time
	Expires() time.Time
}

// JWTClaims is the concrete claim set carried by session tokens
type JWTClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim, the principal's username
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Authorities returns the role claims as authority strings
func (c *JWTClaims) Authorities() []string {
	return c.Roles
}

// HasAuthority checks if the claim set carries a specific authority
func (c *JWTClaims) HasAuthority(authority string) bool {
	for _, role := range c.Roles {
		if role == authority {
			return true
		}
	}
	return false
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}
