package tui

import (
	"github.com/MKhiriev/go-circuit-runner/models"
)

type runDoneMsg struct {
	resp models.RunCircuitResponse
	err  error
}

type versionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
