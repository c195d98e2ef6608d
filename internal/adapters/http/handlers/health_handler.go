package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]bool
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
// Failures of the checkers named in optional (e.g., "webhook") report the
// service as degraded but still ready, so a failing downstream never takes
// the service out of rotation.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	set := make(map[string]bool, len(optional))
	for _, name := range optional {
		set[name] = true
	}
	return &HealthHandler{registry: registry, optional: set}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if every required check
// passes, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	ready, degraded := true, false
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		if h.optional[name] {
			degraded = true
		} else {
			ready = false
		}
	}

	status, code := statusReady, http.StatusOK
	switch {
	case !ready:
		status, code = statusNotReady, http.StatusServiceUnavailable
	case degraded:
		status = statusDegraded
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
