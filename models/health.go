package models

import "time"

// Health status values.
const (
	HealthOK       = "ok"
	HealthStarting = "starting"
	HealthDegraded = "degraded"
)

// ProbeStatus is the outcome of the most recent backend probe.
type ProbeStatus struct {
	// Healthy is true when the last probe produced a valid histogram.
	Healthy bool

	// CheckedAt is zero until the first probe finishes.
	CheckedAt time.Time

	// Err holds the last probe error, empty when Healthy.
	Err string
}

// State maps the probe outcome to one of the health status values.
func (p ProbeStatus) State() string {
	switch {
	case p.CheckedAt.IsZero():
		return HealthStarting
	case p.Healthy:
		return HealthOK
	default:
		return HealthDegraded
	}
}
