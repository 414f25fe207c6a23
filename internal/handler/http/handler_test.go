package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	health := stubHealth{}
	cfg := config.StructuredConfig{
		App:    config.App{HashKey: "key"},
		Server: config.Server{RequestTimeout: 3 * time.Second},
	}

	h := NewHandler(svcs, health, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, health, h.health)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "key", h.hashKey)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.NotNil(t, h.validator)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/run-circuit"},
	{http.MethodPost, "/api/circuits/run"},
	{http.MethodGet, "/api/version/"},
	{http.MethodGet, "/health"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newHandlerWithStubs(&stubSimulationService{result: successResult(), defaultShots: 1024}, nil, config.StructuredConfig{}).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// an empty POST body is rejected with 400, which still proves the route exists
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_AlternateRunRoutesAreNotServed(t *testing.T) {
	router := newHandlerWithStubs(&stubSimulationService{}, nil, config.StructuredConfig{}).Init()

	for _, path := range []string{"/run-circuit-modern", "/run-circuit-legacy", "/api/nonexistent"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newHandlerWithStubs(&stubSimulationService{}, nil, config.StructuredConfig{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/run-circuit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, codeNotFound, body.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newHandlerWithStubs(&stubSimulationService{}, nil, config.StructuredConfig{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
