package gridcalc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

// Kind is the evaluation path chosen for an edit.
type Kind int

const (
	// KindLiteral stores the text as both raw and display value.
	KindLiteral Kind = iota
	// KindPlain evaluates a left-to-right operator chain.
	KindPlain
	// KindAggregate expands SUM or AVERAGE over a range.
	KindAggregate
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPlain:
		return "plain"
	case KindAggregate:
		return "aggregate"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Classify reports which evaluation path text takes without resolving it.
func Classify(text string) Kind {
	if !strings.HasPrefix(text, "=") {
		return KindLiteral
	}
	if parser.IsAggregate(formulaBody(text)) {
		return KindAggregate
	}
	return KindPlain
}

// plan is a classified edit with every reference resolved.
type plan struct {
	kind       Kind
	raw        string
	expr       string
	tokens     parser.Tokens
	call       parser.Call
	count      int
	precedents []models.Coord
}

// formulaBody strips the leading "=" and any whitespace.
func formulaBody(text string) string {
	return strings.Join(strings.Fields(strings.TrimPrefix(text, "=")), "")
}

// classify parses text and resolves every operand against the grid, so a
// plan that comes back without error can only fail evaluation through its
// source.
func (e *Engine) classify(text string) (*plan, error) {
	p := &plan{kind: Classify(text), raw: text}
	if p.kind == KindLiteral {
		return p, nil
	}

	body := formulaBody(text)
	switch p.kind {
	case KindAggregate:
		call, err := parser.ParseCall(body)
		if err != nil {
			return nil, err
		}
		addresses, err := e.expandRange(call.Range)
		if err != nil {
			return nil, err
		}
		p.call = call
		p.count = len(addresses)
		p.expr = strings.Join(addresses, "+")
	default:
		p.expr = body
	}

	p.tokens = parser.Tokenize(p.expr)
	for _, op := range p.tokens.Operators {
		if _, err := formula.ParseOperator(op); err != nil {
			return nil, err
		}
	}

	seen := make(map[models.Coord]struct{})
	for _, operand := range p.tokens.Operands {
		if parser.IsNumber(operand) {
			continue
		}
		cell, err := e.grid.Get(operand)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[cell.Coord()]; dup {
			continue
		}
		seen[cell.Coord()] = struct{}{}
		p.precedents = append(p.precedents, cell.Coord())
	}

	return p, nil
}

// expandRange checks both corners of expr against the grid before listing
// its addresses, so an oversized range never gets enumerated.
func (e *Engine) expandRange(expr string) ([]string, error) {
	r, err := parser.ParseRange(expr)
	if errors.Is(err, parser.ErrAddressOutOfRange) {
		return nil, fmt.Errorf("%w: %w", ErrUnknownCell, err)
	}
	if err != nil {
		return nil, err
	}

	bounds := e.grid.Bounds()
	start, end := models.Coord{Col: r.C1, Row: r.R1}, models.Coord{Col: r.C2, Row: r.R2}
	if !bounds.Contains(start) || !bounds.Contains(end) {
		return nil, fmt.Errorf("%w: range %q exceeds the grid", ErrUnknownCell, expr)
	}

	return parser.Addresses(r)
}
