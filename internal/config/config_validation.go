// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Limits are only compared when both sides are set, so a partially merged
// config (e.g. in tests) is accepted as long as it is self-consistent.
func (cfg *StructuredConfig) validate() error {
	sim := cfg.Simulator
	if sim.DefaultShots < 0 || sim.MaxShots < 0 || sim.MaxQubits < 0 || sim.Parallelism < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidSimulatorConfigs)
	}
	if sim.MaxShots > 0 && sim.DefaultShots > sim.MaxShots {
		return fmt.Errorf("%w: default shots %d exceed max shots %d",
			ErrInvalidSimulatorConfigs, sim.DefaultShots, sim.MaxShots)
	}

	if cfg.Workers.ProbeInterval < 0 || cfg.Workers.ProbeShots < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
