package handlers

import (
	"net/http"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/dto"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 otherwise. A full form session store fails readiness so load
// balancers stop sending new forms.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	respond(w, r, status, resp)
}
