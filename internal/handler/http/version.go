package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-circuit-runner/internal/utils"
)

// getServerVersion answers with the bare version string, or with the full
// [models.AppInfo] document when the caller accepts JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	appInfo := h.services.AppInfoService

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		utils.WriteJSON(w, appInfo.GetAppInfo(r.Context()), http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(appInfo.GetAppVersion(r.Context())))
}
