// Package parser provides formula and cell address parsing utilities.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedAddress indicates text that is not a column-letters plus row-number address.
var ErrMalformedAddress = errors.New("malformed address")

// ErrAddressOutOfRange indicates a well-formed address whose column or row
// cannot be represented at all, e.g. "ZZZZ1".
var ErrAddressOutOfRange = errors.New("address out of range")

var addressPattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// ParseAddress converts an address such as "B3" or "aa12" into 1-based
// column and row indexes. Columns use bijective base-26 (A=1, Z=26, AA=27).
// Bounds against a particular grid are not checked here, but columns past
// XFD and rows that overflow int fail with ErrAddressOutOfRange.
func ParseAddress(address string) (col, row int, err error) {
	m := addressPattern.FindStringSubmatch(address)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedAddress, address)
	}

	col, err = excelize.ColumnNameToNumber(strings.ToUpper(m[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrAddressOutOfRange, address, err)
	}

	row, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: row too large", ErrAddressOutOfRange, address)
	}

	return col, row, nil
}

// FormatAddress is the inverse of ParseAddress.
func FormatAddress(col, row int) (string, error) {
	if row < 1 {
		return "", fmt.Errorf("%w: row %d", ErrMalformedAddress, row)
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", fmt.Errorf("%w: column %d: %v", ErrMalformedAddress, col, err)
	}
	return name + strconv.Itoa(row), nil
}

// ColumnLabel returns the header label for a column, or "" if col is out of range.
func ColumnLabel(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	return name
}

// NormalizeAddress upper-cases the column letters of a well-formed address.
func NormalizeAddress(address string) (string, error) {
	col, row, err := ParseAddress(address)
	if err != nil {
		return "", err
	}
	return FormatAddress(col, row)
}
