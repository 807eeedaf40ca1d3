// Package models defines data structures shared by the grid engine.
package models

// Coord identifies a grid position by 1-based column and row.
// Header cells live at column 0 or row 0.
type Coord struct {
	Col int
	Row int
}

// Cell is a single grid position owned by the store.
type Cell struct {
	// Col is the column index (1-based, 0 for the header column).
	Col int
	// Row is the row index (1-based, 0 for the header row).
	Row int
	// Address is the textual address, e.g. "B3". Empty for header cells.
	Address string
	// IsHeader marks label cells in row 0 and column 0. It never changes.
	IsHeader bool
	// Raw is the text as last entered, formulas included with the leading "=".
	Raw string
	// Expr is the evaluated formula body without "=". Aggregates hold the
	// synthesized "+" chain. Empty for literals.
	Expr string
	// Display is the value shown to the user and read by other formulas.
	Display string
}

// Coord returns the cell's position.
func (c *Cell) Coord() Coord {
	return Coord{Col: c.Col, Row: c.Row}
}

// Snapshot returns a read-only copy of the cell.
func (c *Cell) Snapshot() CellSnapshot {
	return CellSnapshot{
		Address:  c.Address,
		Col:      c.Col,
		Row:      c.Row,
		Raw:      c.Raw,
		Display:  c.Display,
		IsHeader: c.IsHeader,
	}
}

// CellSnapshot is a detached view of a cell for rendering and selection.
type CellSnapshot struct {
	Address  string `json:"address,omitempty"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	Raw      string `json:"raw,omitempty"`
	Display  string `json:"display"`
	IsHeader bool   `json:"header,omitempty"`
}

// IsFormula reports whether the cell was last assigned a formula.
func (c CellSnapshot) IsFormula() bool {
	return len(c.Raw) > 0 && c.Raw[0] == '='
}
