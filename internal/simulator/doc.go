// Package simulator executes circuit descriptors and returns the raw outcome
// multiset.
//
// There is exactly one way to obtain a backend: [GetDefaultBackend]. It
// resolves the configured simulation method, checks the engine limits and
// returns an immutable [Backend] handle. The handle is meant to be created
// once at process start and shared by every request; Execute keeps all of
// its state on the stack, so concurrent calls need no locking and nothing
// has to be torn down before exit.
package simulator
