package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-circuit-runner/internal/app"
	"github.com/MKhiriev/go-circuit-runner/internal/circuit"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/internal/simulator"
	"github.com/MKhiriev/go-circuit-runner/internal/validators"
	"github.com/MKhiriev/go-circuit-runner/models"
)

const (
	codeInvalidCircuit     = "invalid_circuit"
	codeInvalidShotCount   = "invalid_shot_count"
	codeInvalidMethod      = "invalid_method"
	codeInvalidRequest     = "invalid_request"
	codeBackendUnavailable = "backend_unavailable"
	codeInternal           = "internal_error"
	codeNotFound           = "not_found"
)

type apiError struct {
	status int
	code   string
}

var errorStatusMap = map[error]apiError{
	circuit.ErrInvalidCircuit: {http.StatusBadRequest, codeInvalidCircuit},

	simulator.ErrInvalidShotCount: {http.StatusBadRequest, codeInvalidShotCount},
	service.ErrInvalidShotCount:   {http.StatusBadRequest, codeInvalidShotCount},
	service.ErrShotCountTooLarge:  {http.StatusBadRequest, codeInvalidShotCount},
	ErrInvalidShotsParam:          {http.StatusBadRequest, codeInvalidShotCount},
	validators.ErrInvalidShots:    {http.StatusBadRequest, codeInvalidShotCount},

	service.ErrUnsupportedMethod:         {http.StatusBadRequest, codeInvalidMethod},
	simulator.ErrUnknownSimulationMethod: {http.StatusBadRequest, codeInvalidMethod},

	ErrInvalidRequestBody: {http.StatusBadRequest, codeInvalidRequest},

	simulator.ErrBackendUnavailable: {http.StatusServiceUnavailable, codeBackendUnavailable},
}

func statusFromError(err error) apiError {
	for target, apiErr := range errorStatusMap {
		if errors.Is(err, target) {
			return apiErr
		}
	}
	return apiError{http.StatusInternalServerError, codeInternal}
}

// errorResponse renders err for the caller. Client errors carry the error
// text so the caller can fix the request; server errors only carry a fixed
// message, the detail goes to the log.
func errorResponse(err error) (models.ErrorResponse, int) {
	apiErr := statusFromError(err)

	message := err.Error()
	switch apiErr.code {
	case codeBackendUnavailable:
		message = app.MsgBackendUnavailable
	case codeInternal:
		message = app.MsgInternalServerError
	}

	return models.ErrorResponse{
		Status:  models.StatusError,
		Code:    apiErr.code,
		Message: message,
	}, apiErr.status
}
