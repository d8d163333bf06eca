package problemgen

import (
	"math/rand"

	"starmath/internal/config"
)

// Generator produces arithmetic questions and answer options. It is a
// pure function of its RNG: two generators seeded identically produce
// the same questions.
type Generator struct {
	cfg config.Config
	rng *rand.Rand
}

// New creates a Generator with the given configuration and RNG.
func New(cfg config.Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate produces a question for the given level and enabled operator
// set. An empty operator set falls back to addition; callers should
// prevent that, but the generator never fails.
func (g *Generator) Generate(level int, ops []Operator) Question {
	op := g.pickOperator(ops)
	maxNum := g.operandMax(level, op)

	switch op {
	case OpSubtract:
		a := g.rng.Intn(maxNum) + 1
		b := g.rng.Intn(maxNum) + 1
		// Larger operand first so the answer is never negative.
		if b > a {
			a, b = b, a
		}
		return Question{Num1: a, Num2: b, Operator: OpSubtract, Answer: a - b}
	case OpMultiply:
		a := g.rng.Intn(maxNum) + 1
		b := g.rng.Intn(maxNum) + 1
		return Question{Num1: a, Num2: b, Operator: OpMultiply, Answer: a * b}
	default:
		a := g.rng.Intn(maxNum) + 1
		b := g.rng.Intn(maxNum) + 1
		return Question{Num1: a, Num2: b, Operator: OpAdd, Answer: a + b}
	}
}

func (g *Generator) pickOperator(ops []Operator) Operator {
	if len(ops) == 0 {
		return OpAdd
	}
	return ops[g.rng.Intn(len(ops))]
}

// operandMax returns the upper operand bound for a level and operator.
// Multiplication keeps a small range at every level so products stay
// checkable by a child.
func (g *Generator) operandMax(level int, op Operator) int {
	if op == OpMultiply {
		return g.cfg.MultiplyMax
	}
	if level >= g.cfg.TierBThreshold {
		return g.cfg.TierBMax
	}
	return g.cfg.TierAMax
}
