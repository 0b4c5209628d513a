package health

import (
	"kube_probe_api/handling"
	"kube_probe_api/metrics"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (hrm *HealthRoutesManager) GetMetrics(w http.ResponseWriter, r *http.Request) {
	body, err := hrm.recorder.Render()
	if err != nil {
		handling.HandleError(err, "Failed to render metrics", hrm.logger, w)
		return
	}

	w.Header().Set("Content-Type", metrics.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		hrm.logger.Debug("Metrics scrape aborted", gecho.Field("error", err))
	}
}
