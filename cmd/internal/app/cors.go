package app

import (
	"net/http"

	"github.com/go-chi/cors"
)

// WithCORS applies the credentialed CORS policy. Session cookies only flow
// cross-origin for explicitly allow-listed origins; an empty allow-list
// leaves cross-origin requests without CORS headers entirely.
func WithCORS(next http.Handler, cfg Config) http.Handler {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return next
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           cfg.CORSMaxAgeSeconds,
	})(next)
}
