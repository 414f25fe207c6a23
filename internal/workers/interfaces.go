// Package workers runs the server's background jobs.
//
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers together, and the BackendProbe that periodically runs a
// small simulation to keep the health status current.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutine and return.
// Stop blocks until that goroutine has exited and is safe to call on a worker
// that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
