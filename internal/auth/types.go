package auth

import "fmt"

// Logger is the minimal logging surface auth components need. Callers
// plug in their own implementation via the With* options.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds the auth options read once at process start.
type Config interface {
	GetSigningKey() string
	// GetTokenExpiration returns the token TTL in minutes.
	GetTokenExpiration() int
	GetCookieName() string
	GetCookieSecure() bool
	GetCookieSameSite() string
	GetCookiePath() string
}

// DefaultLogger returns the stdout fallback logger
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Debug(msg string, args ...any) { d.print("DBG", msg, args...) }
func (d defLogger) Info(msg string, args ...any)  { d.print("INF", msg, args...) }
func (d defLogger) Warn(msg string, args ...any)  { d.print("WRN", msg, args...) }
func (d defLogger) Error(msg string, args ...any) { d.print("ERR", msg, args...) }

func (d defLogger) print(level, msg string, args ...any) {
	fmt.Printf("[%s] AUTH %s %v\n", level, msg, args)
}
