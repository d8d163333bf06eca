package problemgen

import "fmt"

// Operator identifies an arithmetic operation.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
)

// Symbol returns the display symbol for the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	default:
		return "+"
	}
}

// String returns the operator name.
func (o Operator) String() string {
	switch o {
	case OpSubtract:
		return "subtraction"
	case OpMultiply:
		return "multiplication"
	default:
		return "addition"
	}
}

// Question is a single arithmetic problem. Immutable once generated.
type Question struct {
	Num1     int
	Num2     int
	Operator Operator
	Answer   int
}

// Text returns the question as display text, e.g. "3 + 4 = ?".
func (q Question) Text() string {
	return fmt.Sprintf("%d %s %d = ?", q.Num1, q.Operator.Symbol(), q.Num2)
}
