package config

import (
	"runtime"
	"time"
)

const (
	DefaultHTTPAddress    = "0.0.0.0:8080"
	DefaultRequestTimeout = 30 * time.Second

	DefaultMethod         = "default"
	DefaultShots          = 1024
	DefaultMaxShots       = 1_000_000
	DefaultMaxQubits      = 16
	DefaultAdapterURL     = "http://localhost:8080"
	DefaultProbeShots     = 64
	DefaultAdapterTimeout = 15 * time.Second
	DefaultProbeEvery     = time.Minute
)

// defaultConfig returns the lowest-priority source. Every field left unset
// by env, flags and JSON is taken from here.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Simulator: Simulator{
			Method:       DefaultMethod,
			DefaultShots: DefaultShots,
			MaxShots:     DefaultMaxShots,
			MaxQubits:    DefaultMaxQubits,
			Parallelism:  runtime.NumCPU(),
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterURL,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			ProbeInterval: DefaultProbeEvery,
			ProbeShots:    DefaultProbeShots,
		},
	}
}
