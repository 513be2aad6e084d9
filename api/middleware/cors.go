package middleware

import (
	"net/http"

	"github.com/carewell-health/carewell-backend/pkg/config"
	"github.com/go-chi/cors"
)

// CORS returns middleware that applies the configured allowed-origin policy.
// Credentials stay enabled because the session rides an httpOnly cookie.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
