package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TraceIDMetadataKey is the incoming metadata key holding the caller's trace ID.
const TraceIDMetadataKey = "x-trace-id"

// UnaryInterceptor attaches a trace ID and a child logger to the context
// and writes one access log line per call, mirroring the HTTP middleware.
func (h *Handler) UnaryInterceptor() grpc.UnaryServerInterceptor {
	ids := utils.NewUUIDGenerator()

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		traceID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(TraceIDMetadataKey); len(values) > 0 {
				traceID = values[0]
			}
		}
		if traceID == "" {
			traceID = ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = l.WithContext(utils.WithTraceID(ctx, traceID))
		_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, traceID))

		start := time.Now()
		resp, err := handler(ctx, req)

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}
