package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

func TestNewHeaders(t *testing.T) {
	g := New()

	corner, ok := g.At(0, 0)
	require.True(t, ok)
	assert.True(t, corner.IsHeader)
	assert.Equal(t, "", corner.Display)

	colHeader, ok := g.At(27, 0)
	require.True(t, ok)
	assert.True(t, colHeader.IsHeader)
	assert.Equal(t, "AA", colHeader.Display)

	rowHeader, ok := g.At(0, 42)
	require.True(t, ok)
	assert.True(t, rowHeader.IsHeader)
	assert.Equal(t, "42", rowHeader.Display)

	cell, ok := g.At(2, 3)
	require.True(t, ok)
	assert.False(t, cell.IsHeader)
	assert.Equal(t, "B3", cell.Address)
	assert.Equal(t, "", cell.Display)

	_, ok = g.At(Cols, 0)
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	g := New()

	cell, err := g.Get("b3")
	require.NoError(t, err)
	assert.Equal(t, "B3", cell.Address)
	assert.Equal(t, models.Coord{Col: 2, Row: 3}, cell.Coord())

	last, err := g.Get("CV100")
	require.NoError(t, err)
	assert.Equal(t, 100, last.Col)

	for _, address := range []string{"CW1", "A101", "A0", "ZZ99", "ZZZZ1", "A99999999999999999999"} {
		_, err := g.Get(address)
		assert.ErrorIs(t, err, ErrUnknownCell, address)
	}

	_, err = g.Get("1A")
	assert.ErrorIs(t, err, parser.ErrMalformedAddress)
}

func TestSetters(t *testing.T) {
	g := New()

	require.NoError(t, g.SetRaw("A1", "=B1+B2"))
	require.NoError(t, g.SetExpr("A1", "B1+B2"))
	require.NoError(t, g.SetDisplay("A1", "7"))

	cell, err := g.Get("A1")
	require.NoError(t, err)
	assert.Equal(t, "=B1+B2", cell.Raw)
	assert.Equal(t, "B1+B2", cell.Expr)
	assert.Equal(t, "7", cell.Display)
	assert.True(t, cell.Snapshot().IsFormula())

	assert.ErrorIs(t, g.SetRaw("A101", "x"), ErrUnknownCell)
	assert.ErrorIs(t, g.SetDisplay("?", "x"), parser.ErrMalformedAddress)
}

func TestCells(t *testing.T) {
	g := New()

	count := 0
	var first, last *models.Cell
	for cell := range g.Cells() {
		if first == nil {
			first = cell
		}
		last = cell
		count++
	}

	assert.Equal(t, (Rows-1)*(Cols-1), count)
	assert.Equal(t, "A1", first.Address)
	assert.Equal(t, "CV100", last.Address)
}

func TestUsedRange(t *testing.T) {
	g := New()

	_, ok := g.UsedRange()
	assert.False(t, ok)

	require.NoError(t, g.SetRaw("B2", "x"))
	require.NoError(t, g.SetDisplay("B2", "x"))
	require.NoError(t, g.SetDisplay("D5", "NaN"))

	used, ok := g.UsedRange()
	require.True(t, ok)
	assert.Equal(t, models.Range{R1: 2, C1: 2, R2: 5, C2: 4}, used)
	assert.Equal(t, 2, g.CountNonEmpty(used))
}
