// Package config loads service configuration from defaults, an optional YAML
// file and HACKFEST_* environment variables.
package config

import (
	"fmt"
	"time"
)

type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr     string `koanf:"addr"`
	LogLevel string `koanf:"log_level"`

	MongoURI string `koanf:"mongodb_uri"`
	DBName   string `koanf:"db_name"`

	// JWTSecret signs admin session tokens; AdminPassword is the shared
	// password exchanged for one.
	JWTSecret          string        `koanf:"jwt_secret"`
	AdminPassword      string        `koanf:"admin_password"`
	AdminTokenTTL      time.Duration `koanf:"admin_token_ttl"`
	LoginRatePerMinute int           `koanf:"login_rate_per_minute"`

	// Email is only logged when ResendAPIKey is empty.
	ResendAPIKey string `koanf:"resend_api_key"`
	FromEmail    string `koanf:"from_email"`

	ClassifierURL     string        `koanf:"classifier_url"`
	ClassifierAPIKey  string        `koanf:"classifier_api_key"`
	ClassifierTimeout time.Duration `koanf:"classifier_timeout"`

	AllowedOrigins []string `koanf:"allowed_origins"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:               ":8080",
		LogLevel:           "info",
		DBName:             "hackfest",
		AdminTokenTTL:      12 * time.Hour,
		LoginRatePerMinute: 5,
		FromEmail:          "Hackfest <noreply@hackfest.dev>",
		ClassifierTimeout:  30 * time.Second,
		AllowedOrigins:     []string{"*"},
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MongoURI == "":
		return fmt.Errorf("%w: mongodb_uri is required", ErrInvalidConfig)
	case c.JWTSecret == "":
		return fmt.Errorf("%w: jwt_secret is required", ErrInvalidConfig)
	case c.AdminPassword == "":
		return fmt.Errorf("%w: admin_password is required", ErrInvalidConfig)
	case c.LoginRatePerMinute < 1:
		return fmt.Errorf("%w: login_rate_per_minute must be positive", ErrInvalidConfig)
	}
	return nil
}
