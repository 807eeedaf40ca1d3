package parser

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// ErrInvalidRange indicates a range expression that cannot be expanded.
var ErrInvalidRange = errors.New("invalid range")

// ParseRange parses a range string like A1:D10 into bounds. Exactly one ':'
// is required and the start must not lie right of or below the end.
func ParseRange(expr string) (models.Range, error) {
	parts := strings.Split(expr, ":")
	if len(parts) != 2 {
		return models.Range{}, fmt.Errorf("%w: %q: want exactly one ':'", ErrInvalidRange, expr)
	}

	startCol, startRow, err := ParseAddress(parts[0])
	if err != nil {
		return models.Range{}, fmt.Errorf("%w: start of %q: %w", ErrInvalidRange, expr, err)
	}

	endCol, endRow, err := ParseAddress(parts[1])
	if err != nil {
		return models.Range{}, fmt.Errorf("%w: end of %q: %w", ErrInvalidRange, expr, err)
	}

	if startCol > endCol || startRow > endRow {
		return models.Range{}, fmt.Errorf("%w: %q: start is after end", ErrInvalidRange, expr)
	}

	return models.Range{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}

// Cells iterates the coordinates of r, columns as the outer loop and rows
// as the inner loop.
func Cells(r models.Range) iter.Seq[models.Coord] {
	return func(yield func(models.Coord) bool) {
		for col := r.C1; col <= r.C2; col++ {
			for row := r.R1; row <= r.R2; row++ {
				if !yield(models.Coord{Col: col, Row: row}) {
					return
				}
			}
		}
	}
}

// Addresses lists every address covered by r in column-major order,
// e.g. A1:B2 gives A1, A2, B1, B2.
func Addresses(r models.Range) ([]string, error) {
	addresses := make([]string, 0, r.Count())
	for c := range Cells(r) {
		address, err := FormatAddress(c.Col, c.Row)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}
