package store

import "github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"

// UsedRange finds the bounding box of non-empty editable cells. A cell is
// non-empty when either its entered text or its display value is set.
// The second result is false for an empty grid.
func (g *Grid) UsedRange() (models.Range, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for cell := range g.Cells() {
		if isEmpty(cell) {
			continue
		}
		if minRow < 0 || cell.Row < minRow {
			minRow = cell.Row
		}
		if maxRow < 0 || cell.Row > maxRow {
			maxRow = cell.Row
		}
		if minCol < 0 || cell.Col < minCol {
			minCol = cell.Col
		}
		if maxCol < 0 || cell.Col > maxCol {
			maxCol = cell.Col
		}
	}

	if minRow < 0 {
		return models.Range{}, false
	}
	return models.Range{R1: minRow, C1: minCol, R2: maxRow, C2: maxCol}, true
}

// CountNonEmpty counts non-empty cells within r.
func (g *Grid) CountNonEmpty(r models.Range) int {
	count := 0
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			cell, err := g.Lookup(models.Coord{Col: col, Row: row})
			if err == nil && !isEmpty(cell) {
				count++
			}
		}
	}
	return count
}

func isEmpty(cell *models.Cell) bool {
	return cell.Raw == "" && cell.Display == ""
}
