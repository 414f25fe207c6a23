// Package server runs the circuit runner's transport servers.
//
// An HTTP server (chi router from handler/http) and a gRPC server (the
// CircuitRunner service plus grpc.health.v1) are started for every configured
// address. Both stop gracefully on SIGTERM, SIGINT or SIGQUIT; in-flight
// simulations get the HTTP shutdown timeout to finish.
package server
