package info

import (
	"kube_probe_api/handling"
	"kube_probe_api/lib"
	"net/http"
)

// GetInfo reports which environment, version and pod answered.
func (irm *InfoRoutesManager) GetInfo(w http.ResponseWriter, r *http.Request) {
	if err := lib.WriteJSON(w, http.StatusOK, irm.infoService.GetInfo()); err != nil {
		handling.HandleError(err, "Failed to write info response", irm.logger, w)
	}
}
