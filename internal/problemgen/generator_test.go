package problemgen

import (
	"math/rand"
	"testing"

	"starmath/internal/config"
)

func testGenerator(seed int64) *Generator {
	return New(config.Default(), rand.New(rand.NewSource(seed)))
}

func TestGenerateAddition(t *testing.T) {
	for _, level := range []int{1, 5, 10, 11, 20} {
		g := testGenerator(42)
		for i := 0; i < 200; i++ {
			q := g.Generate(level, []Operator{OpAdd})
			if q.Operator != OpAdd {
				t.Fatalf("level %d: operator = %v, want OpAdd", level, q.Operator)
			}
			if q.Num1+q.Num2 != q.Answer {
				t.Errorf("level %d: %d + %d != %d", level, q.Num1, q.Num2, q.Answer)
			}
			max := 10
			if level >= 11 {
				max = 20
			}
			if q.Num1 < 1 || q.Num1 > max || q.Num2 < 1 || q.Num2 > max {
				t.Errorf("level %d: operands %d,%d outside [1,%d]", level, q.Num1, q.Num2, max)
			}
		}
	}
}

func TestGenerateSubtractionNeverNegative(t *testing.T) {
	for _, level := range []int{1, 10, 11, 20} {
		g := testGenerator(7)
		for i := 0; i < 200; i++ {
			q := g.Generate(level, []Operator{OpSubtract})
			if q.Answer < 0 {
				t.Fatalf("level %d: negative answer %d for %d - %d", level, q.Answer, q.Num1, q.Num2)
			}
			if q.Num1-q.Num2 != q.Answer {
				t.Errorf("level %d: %d - %d != %d", level, q.Num1, q.Num2, q.Answer)
			}
			if q.Num2 > q.Num1 {
				t.Errorf("level %d: operands not ordered: %d < %d", level, q.Num1, q.Num2)
			}
		}
	}
}

func TestGenerateMultiplicationRange(t *testing.T) {
	// Multiplication ignores the level tier: operands stay in [1,9].
	for _, level := range []int{1, 11, 20} {
		g := testGenerator(99)
		for i := 0; i < 200; i++ {
			q := g.Generate(level, []Operator{OpMultiply})
			if q.Num1 < 1 || q.Num1 > 9 || q.Num2 < 1 || q.Num2 > 9 {
				t.Errorf("level %d: operands %d,%d outside [1,9]", level, q.Num1, q.Num2)
			}
			if q.Num1*q.Num2 != q.Answer {
				t.Errorf("level %d: %d * %d != %d", level, q.Num1, q.Num2, q.Answer)
			}
		}
	}
}

func TestGenerateEmptyOperatorsFallsBackToAddition(t *testing.T) {
	g := testGenerator(1)
	q := g.Generate(3, nil)
	if q.Operator != OpAdd {
		t.Errorf("operator = %v, want OpAdd fallback", q.Operator)
	}
	if q.Num1+q.Num2 != q.Answer {
		t.Errorf("%d + %d != %d", q.Num1, q.Num2, q.Answer)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	g1 := testGenerator(123)
	g2 := testGenerator(123)
	for i := 0; i < 50; i++ {
		q1 := g1.Generate(5, []Operator{OpAdd, OpSubtract, OpMultiply})
		q2 := g2.Generate(5, []Operator{OpAdd, OpSubtract, OpMultiply})
		if q1 != q2 {
			t.Fatalf("question %d diverged: %+v vs %+v", i, q1, q2)
		}
	}
}

func TestQuestionText(t *testing.T) {
	tests := []struct {
		q    Question
		want string
	}{
		{Question{Num1: 3, Num2: 4, Operator: OpAdd, Answer: 7}, "3 + 4 = ?"},
		{Question{Num1: 9, Num2: 2, Operator: OpSubtract, Answer: 7}, "9 - 2 = ?"},
		{Question{Num1: 6, Num2: 7, Operator: OpMultiply, Answer: 42}, "6 × 7 = ?"},
	}
	for _, tt := range tests {
		if got := tt.q.Text(); got != tt.want {
			t.Errorf("Text() = %q, want %q", got, tt.want)
		}
	}
}
