package middleware

import (
	"github.com/rs/cors"
)

// SetupCORS lets browser dashboards read the probe and metrics endpoints.
// Credentials are never allowed since nothing is authenticated.
func (mw *Middleware) SetupCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   mw.cfg.Cors.AllowedOrigins,
		AllowedMethods:   mw.cfg.Cors.AllowedMethods,
		AllowedHeaders:   mw.cfg.Cors.AllowedHeaders,
		AllowCredentials: false,
		MaxAge:           mw.cfg.Cors.MaxAge,
	})
}
