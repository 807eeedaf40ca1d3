package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

var (
	a1 = models.Coord{Col: 1, Row: 1}
	a2 = models.Coord{Col: 1, Row: 2}
	a3 = models.Coord{Col: 1, Row: 3}
	b1 = models.Coord{Col: 2, Row: 1}
	c1 = models.Coord{Col: 3, Row: 1}
	d1 = models.Coord{Col: 4, Row: 1}
)

func TestSetPrecedents(t *testing.T) {
	g := New()
	g.SetPrecedents(a3, []models.Coord{a2, a1})

	assert.Equal(t, []models.Coord{a1, a2}, g.Precedents(a3))
	assert.Equal(t, []models.Coord{a3}, g.Dependents(a1))
	assert.Equal(t, []models.Coord{a3}, g.Dependents(a2))
	assert.Equal(t, 3, g.NodeCount())

	// replacing drops the old edges
	g.SetPrecedents(a3, []models.Coord{b1})
	assert.Empty(t, g.Dependents(a1))
	assert.Equal(t, []models.Coord{a3}, g.Dependents(b1))
	assert.Equal(t, 2, g.NodeCount())

	g.SetPrecedents(a3, nil)
	assert.Equal(t, 0, g.NodeCount())
}

func TestFindCycle(t *testing.T) {
	g := New()
	g.SetPrecedents(a2, []models.Coord{a1})
	g.SetPrecedents(a3, []models.Coord{a2})

	c, loop := g.FindCycle(a1, []models.Coord{a1})
	assert.True(t, loop)
	assert.Equal(t, a1, c)

	c, loop = g.FindCycle(a1, []models.Coord{b1, a3})
	assert.True(t, loop)
	assert.Equal(t, a3, c)

	_, loop = g.FindCycle(b1, []models.Coord{a3})
	assert.False(t, loop)

	assert.True(t, g.DependsOn(a3, a1))
	assert.False(t, g.DependsOn(a1, a3))
}

func TestCalculationOrder(t *testing.T) {
	g := New()
	g.SetPrecedents(a2, []models.Coord{a1})
	g.SetPrecedents(a3, []models.Coord{a2})
	g.SetPrecedents(b1, []models.Coord{a1})

	order, err := g.CalculationOrder(a1, 0)
	require.NoError(t, err)
	assert.Equal(t, []models.Coord{b1, a2, a3}, order)

	order, err = g.CalculationOrder(a3, 0)
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestCalculationOrderDiamond(t *testing.T) {
	g := New()
	g.SetPrecedents(b1, []models.Coord{a1})
	g.SetPrecedents(c1, []models.Coord{a1})
	g.SetPrecedents(d1, []models.Coord{b1, c1})

	order, err := g.CalculationOrder(a1, 0)
	require.NoError(t, err)
	assert.Equal(t, []models.Coord{b1, c1, d1}, order)
}

func TestCalculationOrderDepth(t *testing.T) {
	g := New()
	g.SetPrecedents(a2, []models.Coord{a1})
	g.SetPrecedents(a3, []models.Coord{a2})

	_, err := g.CalculationOrder(a1, 1)
	assert.ErrorIs(t, err, ErrCycle)

	_, err = g.CalculationOrder(a1, 2)
	assert.NoError(t, err)
}

func TestCalculationOrderCycle(t *testing.T) {
	g := New()
	// a cycle can only exist if FindCycle was bypassed
	g.SetPrecedents(a2, []models.Coord{a1})
	g.SetPrecedents(a1, []models.Coord{a2})

	_, err := g.CalculationOrder(a1, 0)
	assert.ErrorIs(t, err, ErrCycle)
}
