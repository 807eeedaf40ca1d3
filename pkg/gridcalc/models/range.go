package models

// Range represents inclusive cell coordinate bounds.
type Range struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Count returns the number of cells covered by the range.
func (r Range) Count() int {
	if r.R2 < r.R1 || r.C2 < r.C1 {
		return 0
	}
	return (r.R2 - r.R1 + 1) * (r.C2 - r.C1 + 1)
}

// Contains reports whether c lies inside the range.
func (r Range) Contains(c Coord) bool {
	return c.Row >= r.R1 && c.Row <= r.R2 && c.Col >= r.C1 && c.Col <= r.C2
}
