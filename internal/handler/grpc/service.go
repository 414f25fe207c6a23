package grpc

import (
	"context"

	"github.com/MKhiriev/go-circuit-runner/models"
	"google.golang.org/grpc"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "circuitrunner.v1.CircuitRunner"

	// RunCircuitMethod is the full method path used with ClientConn.Invoke.
	RunCircuitMethod = "/" + ServiceName + "/RunCircuit"
)

// RunCircuitRequest is the gRPC request message. A nil Circuit runs the
// one-qubit superposition circuit; zero Shots means the server default.
type RunCircuitRequest struct {
	Shots   int             `json:"shots,omitempty"`
	Method  string          `json:"method,omitempty"`
	Circuit *models.Circuit `json:"circuit,omitempty"`
}

// CircuitRunnerServer is the server API of the circuit runner service.
type CircuitRunnerServer interface {
	RunCircuit(ctx context.Context, req *RunCircuitRequest) (*models.RunCircuitResponse, error)
}

// ServiceDesc describes the circuit runner service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CircuitRunnerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunCircuit",
			Handler:    runCircuitHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func runCircuitHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RunCircuitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CircuitRunnerServer).RunCircuit(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RunCircuitMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CircuitRunnerServer).RunCircuit(ctx, req.(*RunCircuitRequest))
	}
	return interceptor(ctx, in, info, handler)
}
