// Package output serializes engine results as JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// ToJSON marshals v, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// SnapshotToJSON serializes the non-empty contents of a grid.
func SnapshotToJSON(data *models.GridData, pretty bool) ([]byte, error) {
	return ToJSON(data, pretty)
}

// UpdatesToJSON serializes the cells touched by edits. A nil slice is
// written as an empty array.
func UpdatesToJSON(updates []models.Update, pretty bool) ([]byte, error) {
	if updates == nil {
		updates = []models.Update{}
	}
	return ToJSON(updates, pretty)
}

// CellToJSON serializes a single cell view.
func CellToJSON(cell *models.CellSnapshot, pretty bool) ([]byte, error) {
	return ToJSON(cell, pretty)
}
