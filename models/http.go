package models

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RunCircuitRequest is the JSON body accepted by the circuit submission
// endpoint.
type RunCircuitRequest struct {
	// Circuit is the circuit to run.
	Circuit

	// Shots is the number of trials. Zero means the server default.
	Shots int `json:"shots,omitempty"`
}

// RunCircuitResponse is the payload returned for a successful simulation.
type RunCircuitResponse struct {
	// Status is always StatusSuccess.
	Status string `json:"status"`

	// RunID identifies the invocation; it also appears in server logs.
	RunID string `json:"run_id,omitempty"`

	// Method is the resolved simulation method used by the backend.
	Method SimulationMethod `json:"method,omitempty"`

	// ShotsRun is the number of executed shots.
	ShotsRun int `json:"shots_run"`

	// CircuitDescription is a human-readable summary of the circuit.
	CircuitDescription string `json:"circuit_description"`

	// QASM is set only for submitted circuits.
	QASM string `json:"qasm,omitempty"`

	// MeasurementCounts maps each observed bitstring to its count.
	MeasurementCounts Counts `json:"measurement_counts"`
}

// NewRunCircuitResponse converts a pipeline result into its wire form.
func NewRunCircuitResponse(result SimulationResult) RunCircuitResponse {
	return RunCircuitResponse{
		Status:             StatusSuccess,
		RunID:              result.RunID,
		Method:             result.Method,
		ShotsRun:           result.ShotsRun,
		CircuitDescription: result.CircuitDescription,
		MeasurementCounts:  result.Counts,
	}
}

// ErrorResponse is the structured body returned for any failed request.
// Code is stable and machine readable; Message is safe to show to callers.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse reports the state of the most recent backend probe.
type HealthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Method    string `json:"method"`
	LastProbe string `json:"last_probe,omitempty"`
	LastError string `json:"last_error,omitempty"`
}
