package health

import (
	"kube_probe_api/metrics"
	"kube_probe_api/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthRoutesManager struct {
	logger        *gecho.Logger
	healthService *services.HealthService
	recorder      *metrics.Recorder
}

func NewHealthRoutesManager(logger *gecho.Logger, healthService *services.HealthService, recorder *metrics.Recorder) *HealthRoutesManager {
	return &HealthRoutesManager{
		logger:        logger,
		healthService: healthService,
		recorder:      recorder,
	}
}

func (hrm *HealthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/health", hrm.GetLiveness)
	r.Get("/readiness", hrm.GetReadiness)

	// Prometheus metrics endpoint; scrapes are counted in
	// promhttp_metric_handler_requests_total on the same registry.
	r.Method("GET", "/metrics", promhttp.InstrumentMetricHandler(
		hrm.recorder.Registry(),
		http.HandlerFunc(hrm.GetMetrics),
	))
}
