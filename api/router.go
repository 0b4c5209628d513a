package api

import (
	"kube_probe_api/api/health"
	"kube_probe_api/api/info"
	"kube_probe_api/api/middleware"
	"kube_probe_api/config"
	"kube_probe_api/metrics"
	"kube_probe_api/services"
	"kube_probe_api/structs"

	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

// App wires the router. Everything with state (config, services, metrics
// recorder) is passed in so tests can build isolated instances.
func App(cfg *structs.Config, svc *services.ServiceManager, recorder *metrics.Recorder) chi.Router {
	r := chi.NewRouter()

	// create loggers
	mwLogger := config.NewLogger(cfg, false)
	standardLogger := config.NewLogger(cfg, true)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, recorder)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)

	// Observability. Metrics sits outside Recoverer so panics show up as 500s.
	r.Use(mw.Metrics())
	r.Use(mw.Logger())
	r.Use(chiware.Recoverer)

	// Security
	r.Use(mw.SecurityHeaders())
	r.Use(mw.SetupCORS().Handler)

	// Register all routes
	NewRouterManager(
		info.NewInfoRoutesManager(standardLogger, svc.InfoService),
		health.NewHealthRoutesManager(standardLogger, svc.HealthService, recorder),
	).RegisterRoutes(r)

	return r
}
