package formula

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

// ErrUnsupportedOperator indicates an operator other than + - * /.
var ErrUnsupportedOperator = errors.New("unsupported operator")

// Operator is a binary arithmetic operator.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

// ParseOperator validates an operator token.
func ParseOperator(token string) (Operator, error) {
	if len(token) == 1 {
		switch op := Operator(token[0]); op {
		case Add, Sub, Mul, Div:
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, token)
}

// Apply computes a op b with IEEE semantics; division by zero gives ±Inf or NaN.
func (op Operator) Apply(a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	}
	panic(fmt.Sprintf("formula: invalid operator %q", byte(op)))
}

func (op Operator) String() string {
	return string(op)
}

// Source resolves a cell address to its display value.
type Source interface {
	Display(address string) (string, error)
}

// Evaluate folds operands strictly left to right with no precedence:
// ((v0 op0 v1) op1 v2) ... Address operands are read through src and parsed
// with ParseNumber; integer operands are constants.
func Evaluate(tokens parser.Tokens, src Source) (float64, error) {
	if len(tokens.Operands) != len(tokens.Operators)+1 {
		return 0, fmt.Errorf("formula: %d operands for %d operators", len(tokens.Operands), len(tokens.Operators))
	}

	result, err := operandValue(tokens.Operands[0], src)
	if err != nil {
		return 0, err
	}

	for i, token := range tokens.Operators {
		op, err := ParseOperator(token)
		if err != nil {
			return 0, err
		}
		v, err := operandValue(tokens.Operands[i+1], src)
		if err != nil {
			return 0, err
		}
		result = op.Apply(result, v)
	}

	return result, nil
}

func operandValue(operand string, src Source) (float64, error) {
	if parser.IsNumber(operand) {
		return ParseNumber(operand), nil
	}
	text, err := src.Display(operand)
	if err != nil {
		return 0, err
	}
	return ParseNumber(text), nil
}
