package health

import (
	"errors"
	"kube_probe_api/handling"
	"kube_probe_api/lib"
	"net/http"
)

// GetLiveness backs the liveness probe and must stay free of I/O.
func (hrm *HealthRoutesManager) GetLiveness(w http.ResponseWriter, r *http.Request) {
	if err := lib.WriteJSON(w, http.StatusOK, hrm.healthService.GetLiveness()); err != nil {
		handling.HandleError(err, "Failed to write liveness response", hrm.logger, w)
	}
}

// GetReadiness answers 503 when any registered check fails.
func (hrm *HealthRoutesManager) GetReadiness(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	readiness, err := hrm.healthService.GetReadiness(r.Context())
	if err != nil {
		if !errors.Is(err, lib.ErrNotReady) {
			handling.HandleError(err, "Readiness evaluation failed", hrm.logger, w)
			return
		}
		status = http.StatusServiceUnavailable
	}

	if err := lib.WriteJSON(w, status, readiness); err != nil {
		handling.HandleError(err, "Failed to write readiness response", hrm.logger, w)
	}
}
