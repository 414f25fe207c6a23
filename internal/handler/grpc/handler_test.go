package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/internal/simulator"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// newTestConn starts an in-memory gRPC server around the real pipeline and
// returns a client connection plus the handler.
func newTestConn(t *testing.T) (*grpc.ClientConn, *Handler) {
	t.Helper()

	cfg := config.StructuredConfig{
		App:       config.App{Version: "test"},
		Simulator: config.Simulator{DefaultShots: 64, MaxShots: 10_000, Seed: 3, Parallelism: 2},
	}
	backend, err := simulator.GetDefaultBackend(cfg.Simulator)
	require.NoError(t, err)
	services, err := service.NewServices(backend, cfg, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, cfg.Simulator.MaxQubits, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryInterceptor()))
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, h
}

func invoke(ctx context.Context, conn *grpc.ClientConn, req *RunCircuitRequest, opts ...grpc.CallOption) (*models.RunCircuitResponse, error) {
	var resp models.RunCircuitResponse
	opts = append(opts, grpc.CallContentSubtype(CodecName))
	if err := conn.Invoke(ctx, RunCircuitMethod, req, &resp, opts...); err != nil {
		return nil, err
	}
	return &resp, nil
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// ─────────────────────────────────────────────
// RunCircuit
// ─────────────────────────────────────────────

func TestRunCircuit_Superposition(t *testing.T) {
	conn, _ := newTestConn(t)

	resp, err := invoke(testContext(t), conn, &RunCircuitRequest{Shots: 1024})
	require.NoError(t, err)

	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, 1024, resp.ShotsRun)
	assert.Equal(t, 1024, resp.MeasurementCounts.Total())
	assert.Empty(t, resp.QASM)
	for _, key := range resp.MeasurementCounts.Keys() {
		assert.Contains(t, []string{"0", "1"}, key)
	}
}

func TestRunCircuit_DefaultShots(t *testing.T) {
	conn, _ := newTestConn(t)

	resp, err := invoke(testContext(t), conn, &RunCircuitRequest{})
	require.NoError(t, err)
	assert.Equal(t, 64, resp.ShotsRun)
}

func TestRunCircuit_CustomCircuit(t *testing.T) {
	conn, _ := newTestConn(t)

	c := &models.Circuit{
		QubitCount: 1,
		BitCount:   1,
		Operations: []models.Operation{
			{Kind: models.OperationGate, Gate: models.GatePauliX, Qubit: 0},
			{Kind: models.OperationMeasure, Qubit: 0, Bit: 0},
		},
	}

	resp, err := invoke(testContext(t), conn, &RunCircuitRequest{Shots: 10, Circuit: c})
	require.NoError(t, err)
	assert.Equal(t, models.Counts{"1": 10}, resp.MeasurementCounts)
	assert.Contains(t, resp.QASM, "x q[0];")
}

func TestRunCircuit_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  *RunCircuitRequest
		want codes.Code
	}{
		{name: "negative shots", req: &RunCircuitRequest{Shots: -1}, want: codes.InvalidArgument},
		{name: "too many shots", req: &RunCircuitRequest{Shots: 10_001}, want: codes.InvalidArgument},
		{name: "unsupported method", req: &RunCircuitRequest{Method: "mps"}, want: codes.InvalidArgument},
		{
			name: "invalid circuit",
			req:  &RunCircuitRequest{Circuit: &models.Circuit{QubitCount: 1, BitCount: 1}},
			want: codes.InvalidArgument,
		},
		{
			name: "qubit count above backend limit",
			req: &RunCircuitRequest{Circuit: &models.Circuit{
				QubitCount: 17,
				BitCount:   1,
				Operations: []models.Operation{{Kind: models.OperationMeasure, Qubit: 0, Bit: 0}},
			}},
			want: codes.InvalidArgument,
		},
		{
			name: "huge bit count",
			req: &RunCircuitRequest{Circuit: &models.Circuit{
				QubitCount: 1,
				BitCount:   1 << 30,
				Operations: []models.Operation{{Kind: models.OperationMeasure, Qubit: 0, Bit: 0}},
			}},
			want: codes.InvalidArgument,
		},
	}

	conn, _ := newTestConn(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := invoke(testContext(t), conn, tt.req)
			assert.Nil(t, resp)
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestRunCircuit_EchoesTraceID(t *testing.T) {
	conn, _ := newTestConn(t)

	ctx := metadata.AppendToOutgoingContext(testContext(t), TraceIDMetadataKey, "grpc-trace")
	var header metadata.MD
	_, err := invoke(ctx, conn, &RunCircuitRequest{Shots: 1}, grpc.Header(&header))
	require.NoError(t, err)

	assert.Equal(t, []string{"grpc-trace"}, header.Get(TraceIDMetadataKey))
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth_FollowsProbe(t *testing.T) {
	conn, h := newTestConn(t)
	client := healthpb.NewHealthClient(conn)
	ctx := testContext(t)

	check := func() healthpb.HealthCheckResponse_ServingStatus {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
		require.NoError(t, err)
		return resp.GetStatus()
	}

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check())

	h.UpdateHealth(models.ProbeStatus{Healthy: true, CheckedAt: time.Now()})
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check())

	h.UpdateHealth(models.ProbeStatus{CheckedAt: time.Now(), Err: "down"})
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check())
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestToStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    codes.Code
		message string
	}{
		{name: "shots", err: service.ErrShotCountTooLarge, code: codes.InvalidArgument, message: service.ErrShotCountTooLarge.Error()},
		{name: "backend", err: simulator.ErrBackendUnavailable, code: codes.Unavailable, message: "simulator backend is unavailable, retry later"},
		{name: "empty multiset", err: service.ErrEmptyMultiset, code: codes.Internal, message: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(toStatus(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.message, st.Message())
		})
	}
}

func TestJSONCodec(t *testing.T) {
	codec := jsonCodec{}
	assert.Equal(t, "json", codec.Name())

	data, err := codec.Marshal(&RunCircuitRequest{Shots: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"shots":5}`, string(data))

	var req RunCircuitRequest
	require.NoError(t, codec.Unmarshal([]byte(`{"shots":7,"method":"default"}`), &req))
	assert.Equal(t, RunCircuitRequest{Shots: 7, Method: "default"}, req)
}
