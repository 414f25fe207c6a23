package circuit

import "errors"

// ErrInvalidCircuit wraps every validation failure reported by Build.
var ErrInvalidCircuit = errors.New("invalid circuit")
