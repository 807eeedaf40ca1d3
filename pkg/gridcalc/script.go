package gridcalc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

// Edit is a single cell change read from a script or workbook.
type Edit = models.Edit

// ParseEdits reads one edit per line in the form "<address> <text>".
// Blank lines and lines starting with '#' are skipped. Well-formed addresses
// are upper-cased; others are kept as written for the engine to reject. Text
// keeps its inner spacing; an address alone assigns the empty string.
func ParseEdits(r io.Reader) ([]models.Edit, error) {
	var edits []models.Edit

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		address, text := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			address, text = line[:i], line[i+1:]
		}

		if canonical, err := parser.NormalizeAddress(address); err == nil {
			address = canonical
		}

		edits = append(edits, models.Edit{
			Address: address,
			Text:    strings.TrimSpace(text),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading edits: %w", err)
	}

	return edits, nil
}
