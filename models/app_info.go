package models

// AppInfo describes the running server: its version and the single
// simulator backend it was started with.
type AppInfo struct {
	Version string           `json:"version"`
	Backend string           `json:"backend"`
	Method  SimulationMethod `json:"method"`
}
