package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"curp/internal/platform/config"
)

// CORS admits browser calls from the configured origin only. Credentialed
// requests are allowed and preflight answers are cached for cfg.MaxAge.
func CORS(cfg config.CORS) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           int(cfg.MaxAge.Seconds()),
	})
}
