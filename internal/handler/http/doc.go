// Package http implements the HTTP transport of the circuit runner.
//
// It wires the chi router, the request handlers and the middleware chain.
// Request tracing, access logging, response compression, response signing
// and request timeouts are handled here before a request reaches the
// simulation service. Every failure is rendered as a models.ErrorResponse
// with a stable machine-readable code.
package http
