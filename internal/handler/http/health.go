package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/utils"
	"github.com/MKhiriev/go-circuit-runner/models"
)

// getHealth reports the backend identity and the last probe result. A failed
// probe turns the response into 503 so load balancers can react.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	response := models.HealthResponse{
		Status:  models.HealthOK,
		Backend: info.Backend,
		Method:  string(info.Method),
	}

	if h.health != nil {
		probe := h.health.Status()
		response.Status = probe.State()
		response.LastError = probe.Err
		if !probe.CheckedAt.IsZero() {
			response.LastProbe = probe.CheckedAt.UTC().Format(time.RFC3339)
		}
	}

	status := http.StatusOK
	if response.Status == models.HealthDegraded {
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, response, status)
}
