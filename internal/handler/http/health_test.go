package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	checked := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		health     HealthReporter
		wantStatus int
		want       models.HealthResponse
	}{
		{
			name:       "no probe configured",
			health:     nil,
			wantStatus: http.StatusOK,
			want:       models.HealthResponse{Status: "ok", Backend: "statevector_simulator", Method: "statevector"},
		},
		{
			name:       "probe not run yet",
			health:     stubHealth{},
			wantStatus: http.StatusOK,
			want:       models.HealthResponse{Status: "starting", Backend: "statevector_simulator", Method: "statevector"},
		},
		{
			name:       "healthy probe",
			health:     stubHealth{status: models.ProbeStatus{Healthy: true, CheckedAt: checked}},
			wantStatus: http.StatusOK,
			want: models.HealthResponse{
				Status: "ok", Backend: "statevector_simulator", Method: "statevector",
				LastProbe: "2026-03-01T12:00:00Z",
			},
		},
		{
			name:       "failed probe",
			health:     stubHealth{status: models.ProbeStatus{CheckedAt: checked, Err: "simulator backend unavailable"}},
			wantStatus: http.StatusServiceUnavailable,
			want: models.HealthResponse{
				Status: "degraded", Backend: "statevector_simulator", Method: "statevector",
				LastProbe: "2026-03-01T12:00:00Z", LastError: "simulator backend unavailable",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newHandlerWithStubs(&stubSimulationService{}, tt.health, config.StructuredConfig{}).Init()

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var got models.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
