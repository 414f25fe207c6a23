package config

import "errors"

// Validation errors returned by the validate methods when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSimulatorConfigs indicates inconsistent simulator limits
	// (for example, a default shot count above the maximum).
	ErrInvalidSimulatorConfigs = errors.New("invalid simulator configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative probe interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
