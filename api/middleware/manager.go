package middleware

import (
	"kube_probe_api/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// RequestObserver receives one call per completed request.
// *metrics.Recorder is the production implementation.
type RequestObserver interface {
	Observe(method, path string, status int, elapsed time.Duration) error
}

type Middleware struct {
	cfg      *structs.Config
	logger   *gecho.Logger
	recorder RequestObserver
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, recorder RequestObserver) *Middleware {
	return &Middleware{
		cfg:      cfg,
		logger:   logger,
		recorder: recorder,
	}
}
