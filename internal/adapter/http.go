package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/utils"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [CircuitRunnerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// When appCfg.HashKey is set every response must carry a valid HashSHA256
// header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (CircuitRunnerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RunCircuit implements [CircuitRunnerAdapter] via GET /run-circuit.
func (h *httpServerAdapter) RunCircuit(ctx context.Context, shots int) (models.RunCircuitResponse, error) {
	var result models.RunCircuitResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result)
	if shots > 0 {
		req.SetQueryParam("shots", strconv.Itoa(shots))
	}

	resp, err := req.Get("/run-circuit")
	if err != nil {
		return models.RunCircuitResponse{}, fmt.Errorf("run circuit request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.RunCircuitResponse{}, err
	}

	h.logger.Debug().
		Str("run_id", result.RunID).
		Int("shots_run", result.ShotsRun).
		Msg("circuit run received")

	return result, nil
}

// SubmitCircuit implements [CircuitRunnerAdapter] via POST /api/circuits/run.
func (h *httpServerAdapter) SubmitCircuit(ctx context.Context, req models.RunCircuitRequest) (models.RunCircuitResponse, error) {
	var result models.RunCircuitResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/circuits/run")
	if err != nil {
		return models.RunCircuitResponse{}, fmt.Errorf("submit circuit request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.RunCircuitResponse{}, err
	}

	return result, nil
}

// GetServerVersion implements [CircuitRunnerAdapter] via GET /api/version/.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// GetHealth implements [CircuitRunnerAdapter] via GET /health. A degraded
// server answers 503 with a health body, which is returned alongside
// ErrServiceUnavailable.
func (h *httpServerAdapter) GetHealth(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		SetError(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return health, err
	}

	return health, nil
}

// checkResponse verifies the body signature before mapping the status code,
// so a tampered error body is reported as such.
func (h *httpServerAdapter) checkResponse(resp *resty.Response) error {
	if h.hashKey != "" {
		signature := resp.Header().Get(utils.HashHeader)
		if !utils.VerifyHash(resp.Body(), signature, h.hashKey) {
			return fmt.Errorf("%w: %s %s", ErrInvalidSignature, resp.Request.Method, resp.Request.URL)
		}
	}

	return mapHTTPError(resp)
}
