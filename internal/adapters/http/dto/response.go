// Package dto holds the request and response shapes of the inbound HTTP
// adapter: form decoding, health payloads and RFC 9457 error bodies.
package dto

// Health status values.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps each
// checker name to "ok" or its failure message.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ToReadinessResponse summarizes health check results. The second return
// value reports whether every check passed.
func ToReadinessResponse(results map[string]error) (ReadinessResponse, bool) {
	checks := make(map[string]string, len(results))
	healthy := true

	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = StatusOK
	}

	status := StatusReady
	if !healthy {
		status = StatusNotReady
	}

	return ReadinessResponse{Status: status, Checks: checks}, healthy
}
