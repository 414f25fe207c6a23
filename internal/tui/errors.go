// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-circuit-runner/internal/adapter"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrServiceUnavailable) {
		return "Simulator backend is unavailable, try again later"
	}
	if errors.Is(err, adapter.ErrInvalidSignature) {
		return "Response signature mismatch, check the hash key"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or server unavailable"
	}

	return err.Error()
}
