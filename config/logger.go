package config

import (
	"kube_probe_api/structs"

	"github.com/MonkyMars/gecho"
)

// NewLogger builds a gecho logger honouring LOG_LEVEL.
func NewLogger(cfg *structs.Config, showCaller bool) *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(showCaller),
		gecho.WithLogLevel(gecho.ParseLogLevel(cfg.Server.LogLevel)),
	))
}
