package config

import (
	"github.com/caarlos0/env/v10"
)

// Config is the process configuration, read from the environment once
// at startup and read-only afterwards.
type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"file:blog.db?_pragma=foreign_keys(1)"`

	JWTSecret         string `env:"JWT_SECRET,required,notEmpty"`
	ExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES" envDefault:"30"`

	CookieName     string `env:"JWT_COOKIE_NAME" envDefault:"ACCESS_TOKEN"`
	CookieSecure   bool   `env:"JWT_COOKIE_SECURE" envDefault:"false"`
	CookieSameSite string `env:"JWT_COOKIE_SAME_SITE" envDefault:"Lax"`
	CookiePath     string `env:"JWT_COOKIE_PATH" envDefault:"/"`

	SuperadminEmail    string `env:"SUPERADMIN_EMAIL" envDefault:"anais@blog.com"`
	SuperadminPassword string `env:"SUPERADMIN_PASSWORD" envDefault:"anais123"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Getters implementing the auth.Config interface.

func (c *Config) GetSigningKey() string { return c.JWTSecret }

// GetTokenExpiration returns the token TTL in minutes
func (c *Config) GetTokenExpiration() int { return c.ExpirationMinutes }

func (c *Config) GetCookieName() string     { return c.CookieName }
func (c *Config) GetCookieSecure() bool     { return c.CookieSecure }
func (c *Config) GetCookieSameSite() string { return c.CookieSameSite }
func (c *Config) GetCookiePath() string     { return c.CookiePath }
