package session

import (
	"os"
	"strconv"
	"strings"
	"time"

	"taskd/cmd/security/token"
)

// Config defines runtime configuration for the session subsystem.
//
// It controls token entropy and the credential cookie attributes. Note that
// CookieMaxAge only bounds the cookie's client-side lifetime; the server
// never re-checks session age.
type Config struct {
	// TokenBytes is the number of random bytes behind each session token.
	TokenBytes int

	// CookieName is the credential cookie's name.
	CookieName string

	// CookieMaxAge is the advisory client-side cookie lifetime.
	CookieMaxAge time.Duration

	// CookieSecure marks the cookie Secure (HTTPS-only deployments).
	CookieSecure bool
}

// DefaultConfig returns a secure default configuration suitable for development.
func DefaultConfig() Config {
	return Config{
		TokenBytes:   token.DefaultBytes,
		CookieName:   "taskd_session",
		CookieMaxAge: 24 * time.Hour,
		CookieSecure: false,
	}
}

// LoadConfigFromEnv loads session configuration from environment variables.
//
// Optional:
//   - TASKD_SESSION_TOKEN_BYTES (16..64)
//   - TASKD_SESSION_COOKIE_NAME
//   - TASKD_SESSION_COOKIE_MAX_AGE (Go duration string)
//   - TASKD_SESSION_COOKIE_SECURE
//
// Returns ErrConfig if configuration is invalid.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("TASKD_SESSION_TOKEN_BYTES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < token.MinBytes || n > 64 {
			return Config{}, ErrConfig
		}
		cfg.TokenBytes = n
	}

	if v := strings.TrimSpace(os.Getenv("TASKD_SESSION_COOKIE_NAME")); v != "" {
		cfg.CookieName = v
	}

	if v := strings.TrimSpace(os.Getenv("TASKD_SESSION_COOKIE_MAX_AGE")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, ErrConfig
		}
		cfg.CookieMaxAge = d
	}

	if v := strings.TrimSpace(os.Getenv("TASKD_SESSION_COOKIE_SECURE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, ErrConfig
		}
		cfg.CookieSecure = b
	}

	return cfg, nil
}
