package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/efp"
)

// ErrMalformedFunction indicates aggregate syntax that is not NAME(start:end).
var ErrMalformedFunction = errors.New("malformed function")

// Aggregate names a range function.
type Aggregate string

const (
	// AggregateSum adds every cell of the range.
	AggregateSum Aggregate = "SUM"
	// AggregateAverage divides the sum of the range by its cell count.
	AggregateAverage Aggregate = "AVERAGE"
)

// Call is a parsed aggregate invocation such as SUM(A1:B4).
type Call struct {
	Func  Aggregate
	Range string
}

// IsAggregate reports whether a formula body starts with a known aggregate
// name. Case is ignored.
func IsAggregate(body string) bool {
	upper := strings.ToUpper(body)
	return strings.HasPrefix(upper, string(AggregateSum)) ||
		strings.HasPrefix(upper, string(AggregateAverage))
}

// ParseCall parses an aggregate body (no leading "="). The argument must be
// a single range operand; the range itself is validated by ParseRange.
func ParseCall(body string) (Call, error) {
	ps := efp.ExcelParser()
	tokens := ps.Parse(body)
	if len(tokens) != 3 {
		return Call{}, fmt.Errorf("%w: %q", ErrMalformedFunction, body)
	}

	open, arg, closing := tokens[0], tokens[1], tokens[2]
	if open.TType != efp.TokenTypeFunction || open.TSubType != efp.TokenSubTypeStart {
		return Call{}, fmt.Errorf("%w: %q: expected function call", ErrMalformedFunction, body)
	}
	if closing.TType != efp.TokenTypeFunction || closing.TSubType != efp.TokenSubTypeStop {
		return Call{}, fmt.Errorf("%w: %q: missing ')'", ErrMalformedFunction, body)
	}
	if arg.TType != efp.TokenTypeOperand || arg.TSubType != efp.TokenSubTypeRange {
		return Call{}, fmt.Errorf("%w: %q: argument must be a range", ErrMalformedFunction, body)
	}

	name := Aggregate(strings.ToUpper(open.TValue))
	switch name {
	case AggregateSum, AggregateAverage:
	default:
		return Call{}, fmt.Errorf("%w: unknown function %q", ErrMalformedFunction, open.TValue)
	}

	return Call{Func: name, Range: arg.TValue}, nil
}
