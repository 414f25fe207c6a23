// Package circuit builds and renders circuit descriptors.
//
// [Builder] assembles a [models.Circuit] operation by operation and validates
// it on Build. [BuildSuperpositionCircuit] returns the canonical one-qubit
// circuit (Hadamard followed by measurement) served by the /run-circuit
// endpoint. [Describe] and [QASM] render a circuit for humans and for
// OpenQASM 2.0 tooling respectively.
package circuit
