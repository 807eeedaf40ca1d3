package gridcalc

import (
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

// edit stages every cell change of one OnEdit call. Nothing reaches the
// grid until commit, so a failed edit leaves no trace.
type edit struct {
	engine *Engine
	staged map[models.Coord]*models.Cell
	order  []models.Coord
}

func newEdit(e *Engine) *edit {
	return &edit{
		engine: e,
		staged: make(map[models.Coord]*models.Cell),
	}
}

// Display implements formula.Source, reading staged values first.
func (ed *edit) Display(address string) (string, error) {
	cell, err := ed.engine.grid.Get(address)
	if err != nil {
		return "", err
	}
	return ed.current(cell).Display, nil
}

func (ed *edit) current(cell *models.Cell) *models.Cell {
	if staged, ok := ed.staged[cell.Coord()]; ok {
		return staged
	}
	return cell
}

func (ed *edit) stage(cell *models.Cell) *models.Cell {
	c := cell.Coord()
	if staged, ok := ed.staged[c]; ok {
		return staged
	}
	staged := *cell
	ed.staged[c] = &staged
	ed.order = append(ed.order, c)
	return &staged
}

// apply evaluates p and stages the result for cell.
func (ed *edit) apply(cell *models.Cell, p *plan) error {
	display := p.raw
	if p.kind != KindLiteral {
		v, err := formula.Evaluate(p.tokens, ed)
		if err != nil {
			return err
		}
		if p.kind == KindAggregate && p.call.Func == parser.AggregateAverage {
			v = formula.Div.Apply(v, float64(p.count))
		}
		display = formula.FormatNumber(v)
	}

	staged := ed.stage(cell)
	staged.Raw = p.raw
	staged.Expr = p.expr
	staged.Display = display
	return nil
}

// commit writes staged cells to the grid in the order they were touched.
func (ed *edit) commit() error {
	grid := ed.engine.grid
	for _, c := range ed.order {
		staged := ed.staged[c]
		if err := grid.SetRaw(staged.Address, staged.Raw); err != nil {
			return err
		}
		if err := grid.SetExpr(staged.Address, staged.Expr); err != nil {
			return err
		}
		if err := grid.SetDisplay(staged.Address, staged.Display); err != nil {
			return err
		}
	}
	return nil
}

func (ed *edit) updates() []models.Update {
	updates := make([]models.Update, 0, len(ed.order))
	for _, c := range ed.order {
		staged := ed.staged[c]
		updates = append(updates, models.Update{Address: staged.Address, Display: staged.Display})
	}
	return updates
}
