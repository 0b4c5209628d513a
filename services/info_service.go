package services

import (
	"kube_probe_api/structs"
	"os"

	"github.com/MonkyMars/gecho"
)

const (
	unknownHostname = "unknown"
	infoMessage     = "Kubernetes Production API - Running"
)

type InfoService struct {
	logger *gecho.Logger
	info   structs.InfoResponse
}

// NewInfoService resolves the hostname once. Inside Kubernetes this is the
// pod name.
func NewInfoService(logger *gecho.Logger, cfg *structs.Config) *InfoService {
	return newInfoService(logger, cfg, os.Hostname)
}

func newInfoService(logger *gecho.Logger, cfg *structs.Config, hostname func() (string, error)) *InfoService {
	host, err := hostname()
	if err != nil || host == "" {
		logger.Warn("Could not resolve hostname, using fallback",
			gecho.Field("error", err),
			gecho.Field("fallback", unknownHostname),
		)
		host = unknownHostname
	}

	return &InfoService{
		logger: logger,
		info: structs.InfoResponse{
			Environment: cfg.Server.Environment,
			Version:     cfg.Server.Version,
			Hostname:    host,
			Message:     infoMessage,
		},
	}
}

func (is *InfoService) GetInfo() structs.InfoResponse {
	return is.info
}
