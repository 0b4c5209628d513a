package info

import (
	"kube_probe_api/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type InfoRoutesManager struct {
	logger      *gecho.Logger
	infoService *services.InfoService
}

func NewInfoRoutesManager(logger *gecho.Logger, infoService *services.InfoService) *InfoRoutesManager {
	return &InfoRoutesManager{
		logger:      logger,
		infoService: infoService,
	}
}

func (irm *InfoRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/", irm.GetInfo)
}
