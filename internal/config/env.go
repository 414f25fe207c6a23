// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the `env` and `envPrefix`
// tags on [StructuredConfig]. The simulation method is case-insensitive, so
// SIMULATOR_METHOD=StateVector is accepted.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Simulator.Method = strings.ToLower(strings.TrimSpace(cfg.Simulator.Method))

	return nil
}
