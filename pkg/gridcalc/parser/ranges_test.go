package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

func TestAddresses(t *testing.T) {
	tests := []struct {
		expr     string
		expected []string
	}{
		{"A1:B2", []string{"A1", "A2", "B1", "B2"}},
		{"A1:A1", []string{"A1"}},
		{"A1:A3", []string{"A1", "A2", "A3"}},
		{"B2:D2", []string{"B2", "C2", "D2"}},
		{"z1:aa2", []string{"Z1", "Z2", "AA1", "AA2"}},
	}

	for _, tt := range tests {
		r, err := ParseRange(tt.expr)
		require.NoError(t, err, tt.expr)
		result, err := Addresses(r)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.expected, result, tt.expr)
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, expr := range []string{"A1B2", "B1:A2", "A2:A1", "A1:ZZ", "A1:B2:C3", ":A1", "A1:"} {
		_, err := ParseRange(expr)
		assert.ErrorIs(t, err, ErrInvalidRange, "expr %q", expr)
	}

	_, err := ParseRange("A1:ZZ")
	assert.ErrorIs(t, err, ErrMalformedAddress)

	_, err = ParseRange("A1:ZZZZ1")
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.ErrorIs(t, err, ErrAddressOutOfRange)
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("B2:D10")
	require.NoError(t, err)
	assert.Equal(t, models.Range{R1: 2, C1: 2, R2: 10, C2: 4}, r)
	assert.Equal(t, 27, r.Count())
}

func TestCellsStopsEarly(t *testing.T) {
	var seen []models.Coord
	for c := range Cells(models.Range{R1: 1, C1: 1, R2: 3, C2: 3}) {
		seen = append(seen, c)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []models.Coord{{Col: 1, Row: 1}, {Col: 1, Row: 2}}, seen)
}
