// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the process-level transport lifecycle: every configured
// listener is started by RunServer and released by Shutdown.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Shutdown stops all transports, draining in-flight simulations.
	Shutdown()
}
