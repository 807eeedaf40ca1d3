package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/store"
)

const (
	// ValuesSheet holds display values.
	ValuesSheet = "Values"
	// FormulasSheet holds the entered text of every non-empty cell.
	FormulasSheet = "Formulas"
)

// Build writes the used range of g into a new workbook. Numeric display
// values are stored as numbers, everything else as strings.
func Build(g *store.Grid) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ValuesSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(FormulasSheet); err != nil {
		f.Close()
		return nil, err
	}

	for cell := range g.Cells() {
		if cell.Raw == "" && cell.Display == "" {
			continue
		}

		if formula.IsNumeric(cell.Display) {
			err := f.SetCellValue(ValuesSheet, cell.Address, formula.ParseNumber(cell.Display))
			if err != nil {
				f.Close()
				return nil, err
			}
		} else if err := f.SetCellStr(ValuesSheet, cell.Address, cell.Display); err != nil {
			f.Close()
			return nil, err
		}

		if err := f.SetCellStr(FormulasSheet, cell.Address, cell.Raw); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// Export saves g to an xlsx file at path.
func Export(g *store.Grid, path string) error {
	f, err := Build(g)
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// Write streams g as an xlsx document to w.
func Write(g *store.Grid, w io.Writer) error {
	f, err := Build(g)
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}
	defer f.Close()

	return f.Write(w)
}
