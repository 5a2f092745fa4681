package middleware

import (
	"net/http"

	"budget-backend/internal/config"

	"github.com/rs/cors"
)

// CORS builds the cross-origin handler from config.
func CORS(cfg *config.Config, next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		AllowCredentials: true,
	})
	return c.Handler(next)
}
