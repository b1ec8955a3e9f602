package auth

import (
	"github.com/gofiber/fiber/v2"
)

// CookieTransport maps session tokens to and from the HTTP cookie that
// carries them. Every attribute except the value is environment
// configuration, fixed at process start.
type CookieTransport struct {
	cfg Config
}

// NewCookieTransport creates a new CookieTransport
func NewCookieTransport(cfg Config) *CookieTransport {
	return &CookieTransport{cfg: cfg}
}

// SessionCookie builds the Set-Cookie value for a live session token
func (t *CookieTransport) SessionCookie(token string) *fiber.Cookie {
	return t.cookie(token)
}

// ClearCookie builds the Set-Cookie value that makes the browser drop
// the session token. Attributes match the live cookie, only the value
// is emptied.
func (t *CookieTransport) ClearCookie() *fiber.Cookie {
	return t.cookie("")
}

// TokenFromRequest returns the value of the first request cookie whose
// name matches the configured cookie name and whose value is non empty.
func (t *CookieTransport) TokenFromRequest(c *fiber.Ctx) (string, bool) {
	token := c.Cookies(t.cfg.GetCookieName())
	if token == "" {
		return "", false
	}
	return token, true
}

func (t *CookieTransport) cookie(value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     t.cfg.GetCookieName(),
		Value:    value,
		HTTPOnly: true,
		Secure:   t.cfg.GetCookieSecure(),
		SameSite: t.cfg.GetCookieSameSite(),
		Path:     t.cfg.GetCookiePath(),
		// TODO: MaxAge takes seconds but GetTokenExpiration is minutes,
		// the browser drops the cookie well before the token expires.
		MaxAge: t.cfg.GetTokenExpiration(),
	}
}
