// Package workbook moves grid contents in and out of xlsx files.
package workbook

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/store"
)

// ExtractEdits reads a sheet as a list of edits in row-major order.
// Formula cells become "=" + formula, other non-empty cells their raw value.
// Cells outside the editable grid are ignored.
func ExtractEdits(f *excelize.File, sheetName string) ([]models.Edit, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var edits []models.Edit
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if rowNum >= store.Rows {
			break
		}

		for colIdx := 0; colIdx < width; colIdx++ {
			colNum := colIdx + 1
			if colNum >= store.Cols {
				break
			}

			var cellValue string
			if colIdx < len(row) {
				cellValue = row[colIdx]
			}

			cellName, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				return nil, err
			}

			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, err
			}

			switch {
			case formula != "":
				edits = append(edits, models.Edit{Address: cellName, Text: "=" + formula})
			case cellValue != "":
				edits = append(edits, models.Edit{Address: cellName, Text: cellValue})
			}
		}
	}

	return edits, nil
}
