package grpc

import (
	"errors"

	"github.com/MKhiriev/go-circuit-runner/internal/app"
	"github.com/MKhiriev/go-circuit-runner/internal/circuit"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/internal/simulator"
	"github.com/MKhiriev/go-circuit-runner/internal/validators"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	circuit.ErrInvalidCircuit:            codes.InvalidArgument,
	simulator.ErrInvalidShotCount:        codes.InvalidArgument,
	simulator.ErrUnknownSimulationMethod: codes.InvalidArgument,
	service.ErrInvalidShotCount:          codes.InvalidArgument,
	service.ErrShotCountTooLarge:         codes.InvalidArgument,
	service.ErrUnsupportedMethod:         codes.InvalidArgument,
	validators.ErrInvalidShots:           codes.InvalidArgument,

	simulator.ErrBackendUnavailable: codes.Unavailable,
}

// toStatus converts a service error into a gRPC status. Only
// InvalidArgument carries the error text.
func toStatus(err error) error {
	code := codes.Internal
	for target, c := range errorCodeMap {
		if errors.Is(err, target) {
			code = c
			break
		}
	}

	switch code {
	case codes.InvalidArgument:
		return status.Error(code, err.Error())
	case codes.Unavailable:
		return status.Error(code, app.MsgBackendUnavailable)
	default:
		return status.Error(code, app.MsgInternalServerError)
	}
}
