package auth

// testConfig satisfies Config with fixed values for tests
type testConfig struct {
	key      string
	minutes  int
	name     string
	secure   bool
	sameSite string
	path     string
}

func newTestConfig() testConfig {
	return testConfig{
		key:      "test-signing-key-0123456789",
		minutes:  30,
		name:     "ACCESS_TOKEN",
		secure:   false,
		sameSite: "Lax",
		path:     "/",
	}
}

func (c testConfig) GetSigningKey() string     { return c.key }
func (c testConfig) GetTokenExpiration() int   { return c.minutes }
func (c testConfig) GetCookieName() string     { return c.name }
func (c testConfig) GetCookieSecure() bool     { return c.secure }
func (c testConfig) GetCookieSameSite() string { return c.sameSite }
func (c testConfig) GetCookiePath() string     { return c.path }
