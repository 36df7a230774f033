// Package puzzle generates and evaluates the arithmetic challenges handed out to miners
// and computes the time-decayed reward paid on redemption.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
)

// Operand bounds, inclusive.
const (
	LeftMin  = 100
	LeftMax  = 999
	RightMin = 10
	RightMax = 99
)

// Operator is one of the three supported binary operators.
type Operator byte

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
)

var operators = []Operator{Add, Subtract, Multiply}

// ErrMalformedExpression is returned for any text outside the "operand operator operand" grammar.
var ErrMalformedExpression = errors.New("malformed expression")

// Expression is a single binary operation on two non-negative integer operands.
type Expression struct {
	Left  int64
	Op    Operator
	Right int64
}

// String renders the expression without spaces, e.g. "523*47".
func (e Expression) String() string {
	return fmt.Sprintf("%d%c%d", e.Left, e.Op, e.Right)
}

// Evaluate computes the canonical answer.
func (e Expression) Evaluate() (int64, error) {
	switch e.Op {
	case Add:
		return e.Left + e.Right, nil
	case Subtract:
		return e.Left - e.Right, nil
	case Multiply:
		return e.Left * e.Right, nil
	}
	return 0, fmt.Errorf("%w: unsupported operator %q", ErrMalformedExpression, e.Op)
}

// Parse reads text restricted to "operand operator operand". Operands are unsigned
// decimal integers of at most 9 digits; surrounding whitespace is ignored.
func Parse(text string) (Expression, error) {
	s := strings.TrimSpace(text)

	// The first operand is unsigned, so the operator is the first rune that is
	// neither a digit nor a space.
	i := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != ' ' })
	if i <= 0 || i == len(s)-1 {
		return Expression{}, fmt.Errorf("%w: %q", ErrMalformedExpression, text)
	}

	op := Operator(s[i])
	if op != Add && op != Subtract && op != Multiply {
		return Expression{}, fmt.Errorf("%w: unsupported operator %q", ErrMalformedExpression, s[i])
	}

	left, err := parseOperand(strings.TrimSpace(s[:i]))
	if err != nil {
		return Expression{}, fmt.Errorf("%w: %q", ErrMalformedExpression, text)
	}
	right, err := parseOperand(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return Expression{}, fmt.Errorf("%w: %q", ErrMalformedExpression, text)
	}

	return Expression{Left: left, Op: op, Right: right}, nil
}

func parseOperand(s string) (int64, error) {
	if s == "" || len(s) > 9 {
		return 0, ErrMalformedExpression
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrMalformedExpression
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

// Evaluate parses and evaluates text in one step.
func Evaluate(text string) (int64, error) {
	expr, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return expr.Evaluate()
}

// Generator produces random expressions within the operand bounds.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a generator drawing from src. A nil src uses the runtime's
// automatically seeded source.
func NewGenerator(src rand.Source) *Generator {
	g := &Generator{}
	if src != nil {
		g.rnd = rand.New(src)
	}
	return g
}

// Generate returns a fresh expression.
func (g *Generator) Generate() Expression {
	if g.rnd == nil {
		return Expression{
			Left:  int64(LeftMin + rand.IntN(LeftMax-LeftMin+1)),
			Op:    operators[rand.IntN(len(operators))],
			Right: int64(RightMin + rand.IntN(RightMax-RightMin+1)),
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return Expression{
		Left:  int64(LeftMin + g.rnd.IntN(LeftMax-LeftMin+1)),
		Op:    operators[g.rnd.IntN(len(operators))],
		Right: int64(RightMin + g.rnd.IntN(RightMax-RightMin+1)),
	}
}
