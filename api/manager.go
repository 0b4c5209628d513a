package api

import (
	"kube_probe_api/api/health"
	"kube_probe_api/api/info"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	infoRoutes   *info.InfoRoutesManager
	healthRoutes *health.HealthRoutesManager
}

func NewRouterManager(
	infoRoutes *info.InfoRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		infoRoutes:   infoRoutes,
		healthRoutes: healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.infoRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
