package circuit

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-circuit-runner/models"
)

var gateNames = map[models.GateKind]string{
	models.GateHadamard: "Hadamard",
	models.GatePauliX:   "Pauli-X",
	models.GatePauliY:   "Pauli-Y",
	models.GatePauliZ:   "Pauli-Z",
	models.GatePhaseS:   "S",
	models.GatePhaseT:   "T",
}

// Describe renders c as a one-line human readable summary, e.g.
// "1 qubit, 1 classical bit: Hadamard on q0, measure q0 -> c0".
func Describe(c models.Circuit) string {
	steps := make([]string, 0, len(c.Operations))
	for _, op := range c.Operations {
		switch op.Kind {
		case models.OperationGate:
			name, ok := gateNames[op.Gate]
			if !ok {
				name = string(op.Gate)
			}
			steps = append(steps, fmt.Sprintf("%s on q%d", name, op.Qubit))
		case models.OperationMeasure:
			steps = append(steps, fmt.Sprintf("measure q%d -> c%d", op.Qubit, op.Bit))
		}
	}

	return fmt.Sprintf("%s, %s: %s",
		plural(c.QubitCount, "qubit"),
		plural(c.BitCount, "classical bit"),
		strings.Join(steps, ", "))
}

// QASM renders c as an OpenQASM 2.0 program using single q and c registers.
func QASM(c models.Circuit) string {
	var sb strings.Builder

	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.QubitCount)
	fmt.Fprintf(&sb, "creg c[%d];\n", c.BitCount)

	for _, op := range c.Operations {
		switch op.Kind {
		case models.OperationGate:
			fmt.Fprintf(&sb, "%s q[%d];\n", op.Gate, op.Qubit)
		case models.OperationMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", op.Qubit, op.Bit)
		}
	}

	return sb.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
