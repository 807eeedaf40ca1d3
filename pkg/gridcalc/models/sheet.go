package models

// CellRow represents a single grid row of non-empty cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column letters to display values.
	C map[string]string `json:"c"`
	// Raw maps column letters to entered text, only for formula cells.
	Raw map[string]string `json:"raw,omitempty"`
}

// GridData represents the non-empty contents of a grid.
type GridData struct {
	// Used is the bounding box of non-empty cells, nil for an empty grid.
	Used *Range `json:"used,omitempty"`
	// Cells is the number of non-empty cells.
	Cells int `json:"cells,omitempty"`
	// Rows contains the non-empty rows in ascending order.
	Rows []CellRow `json:"rows,omitempty"`
}
