package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.LivenessResponse{Status: dto.StatusOK})
}

// Readiness handles GET /health/ready. Returns 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, healthy := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, resp)
}
