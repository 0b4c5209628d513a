package services

import (
	"kube_probe_api/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	InfoService   *InfoService
	HealthService *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config) *ServiceManager {
	return &ServiceManager{
		InfoService:   NewInfoService(logger, cfg),
		HealthService: NewHealthService(logger, cfg),
	}
}
