// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the circuit
// runner. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the response signing key
	// and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Simulator holds the single simulator backend configuration.
	Simulator Simulator `envPrefix:"SIMULATOR_"`

	// Adapter holds the terminal client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign response bodies (HashSHA256
	// header). Signing is disabled when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090"). gRPC is disabled when
	// empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Simulator configures the one simulator backend the process runs.
type Simulator struct {
	// Method is the simulation method, "default" or "statevector".
	// Env: SIMULATOR_METHOD
	Method string `env:"METHOD"`

	// DefaultShots is used when a request does not specify a shot count.
	// Env: SIMULATOR_DEFAULT_SHOTS
	DefaultShots int `env:"DEFAULT_SHOTS"`

	// MaxShots caps the shot count a single request may ask for.
	// Env: SIMULATOR_MAX_SHOTS
	MaxShots int `env:"MAX_SHOTS"`

	// MaxQubits caps the state vector size (2^MaxQubits amplitudes).
	// Env: SIMULATOR_MAX_QUBITS
	MaxQubits int `env:"MAX_QUBITS"`

	// Parallelism is the number of goroutines sampling shots concurrently.
	// Env: SIMULATOR_PARALLELISM
	Parallelism int `env:"PARALLELISM"`

	// Seed fixes the random source; zero means seeded from the clock.
	// Env: SIMULATOR_SEED
	Seed uint64 `env:"SEED"`
}

// Adapter holds the terminal client's connection settings.
type Adapter struct {
	// HTTPAddress is the base URL of the circuit runner server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ProbeInterval is how often the backend probe runs a canonical
	// simulation.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeShots is the shot count used by each probe run.
	// Env: WORKERS_PROBE_SHOTS
	ProbeShots int `env:"PROBE_SHOTS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
