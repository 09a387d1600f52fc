package session

import (
	"testing"
	"time"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.CookieName != "taskd_session" {
		t.Fatalf("unexpected cookie name %q", cfg.CookieName)
	}
	if cfg.CookieMaxAge != 24*time.Hour {
		t.Fatalf("unexpected cookie max-age %v", cfg.CookieMaxAge)
	}
	if cfg.TokenBytes != 32 {
		t.Fatalf("unexpected token bytes %d", cfg.TokenBytes)
	}
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("TASKD_SESSION_COOKIE_NAME", "sid")
	t.Setenv("TASKD_SESSION_COOKIE_MAX_AGE", "1h")
	t.Setenv("TASKD_SESSION_TOKEN_BYTES", "48")
	t.Setenv("TASKD_SESSION_COOKIE_SECURE", "true")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.CookieName != "sid" || cfg.CookieMaxAge != time.Hour || cfg.TokenBytes != 48 || !cfg.CookieSecure {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigFromEnv_RejectsWeakTokens(t *testing.T) {
	t.Setenv("TASKD_SESSION_TOKEN_BYTES", "8")

	if _, err := LoadConfigFromEnv(); err != ErrConfig {
		t.Fatalf("expected ErrConfig for sub-128-bit tokens, got %v", err)
	}
}
