package structs

// InfoResponse is the body of GET /.
type InfoResponse struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Hostname    string `json:"hostname"`
	Message     string `json:"message"`
}

// StatusResponse is the body of the liveness and readiness probes.
// Checks is only populated when readiness fails.
type StatusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not ready"
)
