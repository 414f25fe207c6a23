// Package utils provides general-purpose helpers shared by the server and
// the terminal client: request trace IDs in context, HMAC response
// signatures, JSON response writing, the resty client factory and run ID
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored here
// cannot collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key under which the request trace ID is
// stored. Both the HTTP and the gRPC transport set it.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx and whether one was
// present.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
