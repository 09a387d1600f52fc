package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr string
	LogLevel string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	DatabaseURL    string
	DBMaxConns     int32
	DBMinConns     int32
	MigrateOnStart bool

	// If true:
	// - /readyz returns 503 unless DB is configured and reachable.
	ReadinessRequireDB bool

	// CORS origin allow-list. Credentialed cross-origin requests are only
	// honored for these origins; empty disables cross-origin access.
	CORSAllowedOrigins []string
	CORSMaxAgeSeconds  int
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr: EnvString("TASKD_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel: EnvString("TASKD_LOG_LEVEL", "info"),

		ReadHeaderTimeout: EnvDuration("TASKD_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("TASKD_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("TASKD_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("TASKD_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("TASKD_HTTP_MAX_HEADER_BYTES", 1<<20),

		DatabaseURL:    EnvString("TASKD_DATABASE_URL", ""),
		DBMaxConns:     EnvInt32("TASKD_DB_MAX_CONNS", 10),
		DBMinConns:     EnvInt32("TASKD_DB_MIN_CONNS", 0),
		MigrateOnStart: EnvBool("TASKD_DB_MIGRATE", true),

		ReadinessRequireDB: EnvBool("TASKD_READINESS_REQUIRE_DB", false),

		CORSAllowedOrigins: EnvStringSlice("TASKD_CORS_ALLOWED_ORIGINS", nil),
		CORSMaxAgeSeconds:  EnvInt("TASKD_CORS_MAX_AGE_SECONDS", 300),
	}
}
