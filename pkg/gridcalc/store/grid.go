// Package store owns the fixed-size grid of cells.
package store

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

const (
	// Rows is the number of grid rows including the header row.
	Rows = 101
	// Cols is the number of grid columns including the header column.
	Cols = 101
)

// ErrUnknownCell indicates a well-formed address outside the grid.
var ErrUnknownCell = errors.New("unknown cell")

// Grid owns every cell of the sheet. It is allocated once and never resized.
// Setters only mutate; recalculation is the engine's job.
type Grid struct {
	cells [][]models.Cell // [row][col]
}

// New allocates a grid with labelled header cells and empty editable cells.
func New() *Grid {
	g := &Grid{cells: make([][]models.Cell, Rows)}
	for row := 0; row < Rows; row++ {
		g.cells[row] = make([]models.Cell, Cols)
		for col := 0; col < Cols; col++ {
			cell := &g.cells[row][col]
			cell.Col = col
			cell.Row = row

			switch {
			case row == 0 && col == 0:
				cell.IsHeader = true
			case row == 0:
				cell.IsHeader = true
				cell.Display = parser.ColumnLabel(col)
			case col == 0:
				cell.IsHeader = true
				cell.Display = strconv.Itoa(row)
			default:
				// 1..100 is always formattable
				cell.Address, _ = parser.FormatAddress(col, row)
			}
		}
	}
	return g
}

// Bounds returns the editable area of the grid.
func (g *Grid) Bounds() models.Range {
	return models.Range{R1: 1, C1: 1, R2: Rows - 1, C2: Cols - 1}
}

// Get resolves an address to the owned cell.
func (g *Grid) Get(address string) (*models.Cell, error) {
	col, row, err := parser.ParseAddress(address)
	if errors.Is(err, parser.ErrAddressOutOfRange) {
		return nil, fmt.Errorf("%w: %w", ErrUnknownCell, err)
	}
	if err != nil {
		return nil, err
	}
	cell, err := g.Lookup(models.Coord{Col: col, Row: row})
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCell, address)
	}
	return cell, nil
}

// Lookup returns the editable cell at c.
func (g *Grid) Lookup(c models.Coord) (*models.Cell, error) {
	if !g.Bounds().Contains(c) {
		return nil, fmt.Errorf("%w: column %d row %d", ErrUnknownCell, c.Col, c.Row)
	}
	return &g.cells[c.Row][c.Col], nil
}

// At returns a snapshot of any cell, headers included.
func (g *Grid) At(col, row int) (models.CellSnapshot, bool) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return models.CellSnapshot{}, false
	}
	return g.cells[row][col].Snapshot(), true
}

// SetRaw overwrites the entered text of a cell.
func (g *Grid) SetRaw(address, text string) error {
	cell, err := g.Get(address)
	if err != nil {
		return err
	}
	cell.Raw = text
	return nil
}

// SetExpr overwrites the evaluated formula body of a cell.
func (g *Grid) SetExpr(address, expr string) error {
	cell, err := g.Get(address)
	if err != nil {
		return err
	}
	cell.Expr = expr
	return nil
}

// SetDisplay overwrites the display value other formulas read.
func (g *Grid) SetDisplay(address, text string) error {
	cell, err := g.Get(address)
	if err != nil {
		return err
	}
	cell.Display = text
	return nil
}

// Cells iterates the editable cells in row-major order.
func (g *Grid) Cells() iter.Seq[*models.Cell] {
	return func(yield func(*models.Cell) bool) {
		for row := 1; row < Rows; row++ {
			for col := 1; col < Cols; col++ {
				if !yield(&g.cells[row][col]) {
					return
				}
			}
		}
	}
}
