package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidQubitCount    = errors.New("qubit count must be positive")
	ErrInvalidBitCount      = errors.New("bit count must be positive")
	ErrTooManyQubits        = errors.New("qubit count exceeds limit")
	ErrTooManyBits          = errors.New("bit count exceeds limit")
	ErrEmptyOperations      = errors.New("operations list cannot be empty")
	ErrUnknownOperation     = errors.New("unknown operation kind")
	ErrUnknownGate          = errors.New("unknown gate")
	ErrQubitOutOfRange      = errors.New("qubit index out of range")
	ErrBitOutOfRange        = errors.New("bit index out of range")
	ErrGateAfterMeasurement = errors.New("gate applied to an already measured qubit")
	ErrQubitMeasuredTwice   = errors.New("qubit measured more than once")
	ErrNoMeasurements       = errors.New("circuit has no measurements")
	ErrInvalidShots         = errors.New("shot count cannot be negative")
)
