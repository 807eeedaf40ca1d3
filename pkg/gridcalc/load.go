package gridcalc

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/workbook"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// LoadWorkbook builds an engine by replaying the cells of one xlsx sheet as
// edits. An empty sheet name selects the first sheet.
func LoadWorkbook(path, sheetName string, opts Options) (*Engine, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if sheetName == "" {
		if len(sheetList) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		sheetName = sheetList[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	edits, err := workbook.ExtractEdits(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}

	e := New(opts)
	if _, err := e.Apply(edits); err != nil {
		return nil, fmt.Errorf("replaying sheet %q: %w", sheetName, err)
	}
	e.log.Info().Str("path", path).Str("sheet", sheetName).Int("edits", len(edits)).Msg("workbook loaded")

	return e, nil
}
