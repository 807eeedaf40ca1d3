package gridcalc

import (
	"fmt"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/graph"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/store"
)

var (
	// ErrMalformedAddress indicates an address that does not parse.
	ErrMalformedAddress = parser.ErrMalformedAddress
	// ErrUnknownCell indicates an address outside the grid.
	ErrUnknownCell = store.ErrUnknownCell
	// ErrInvalidRange indicates a malformed or inverted range.
	ErrInvalidRange = parser.ErrInvalidRange
	// ErrMalformedFunction indicates unrecognized aggregate syntax.
	ErrMalformedFunction = parser.ErrMalformedFunction
	// ErrUnsupportedOperator indicates an operator outside + - * /.
	ErrUnsupportedOperator = formula.ErrUnsupportedOperator
	// ErrCyclicDependency indicates a reference loop or an over-long chain.
	ErrCyclicDependency = graph.ErrCycle
)

// Stage names the step of the edit pipeline that failed.
type Stage string

const (
	StageResolve   Stage = "resolve"
	StageParse     Stage = "parse"
	StageEvaluate  Stage = "evaluate"
	StagePropagate Stage = "propagate"
)

// EditError represents a rejected edit. The grid is left as it was before
// the edit.
type EditError struct {
	Address string
	Text    string
	Stage   Stage
	Err     error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("edit %s = %q (%s): %v", e.Address, e.Text, e.Stage, e.Err)
}

func (e *EditError) Unwrap() error {
	return e.Err
}

// NewEditError creates a new EditError.
func NewEditError(address, text string, stage Stage, err error) *EditError {
	return &EditError{
		Address: address,
		Text:    text,
		Stage:   stage,
		Err:     err,
	}
}
