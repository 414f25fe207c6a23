package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-circuit-runner/internal/circuit"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/utils"
	"github.com/MKhiriev/go-circuit-runner/internal/validators"
	"github.com/MKhiriev/go-circuit-runner/models"
)

// maxCircuitBody bounds the submitted circuit document.
const maxCircuitBody = 1 << 20

// runCircuit serves GET /run-circuit: it runs the one-qubit superposition
// circuit with the requested (or default) shot count.
func (h *Handler) runCircuit(w http.ResponseWriter, r *http.Request) {
	simulation := h.services.SimulationService
	query := r.URL.Query()

	if err := simulation.CheckMethod(query.Get("method")); err != nil {
		h.writeError(w, r, err)
		return
	}

	shots, err := parseShots(query.Get("shots"), simulation.DefaultShots())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := simulation.RunSuperposition(r.Context(), shots)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewRunCircuitResponse(result), http.StatusOK)
}

// submitCircuit serves POST /api/circuits/run: it runs a caller-supplied
// circuit and includes its OpenQASM rendering in the response.
func (h *Handler) submitCircuit(w http.ResponseWriter, r *http.Request) {
	var req models.RunCircuitRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCircuitBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	if err := h.validator.Validate(r.Context(), req, validators.FieldShots); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(r.Context(), req.Circuit); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", circuit.ErrInvalidCircuit, err))
		return
	}

	simulation := h.services.SimulationService
	shots := req.Shots
	if shots == 0 {
		shots = simulation.DefaultShots()
	}

	result, err := simulation.Simulate(r.Context(), req.Circuit, shots)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response := models.NewRunCircuitResponse(result)
	response.QASM = result.QASM
	utils.WriteJSON(w, response, http.StatusOK)
}

func parseShots(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	shots, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShotsParam, raw)
	}
	return shots, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body, status := errorResponse(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("code", body.Code).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", body.Code).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
