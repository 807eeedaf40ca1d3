package gridcalc

import (
	"fmt"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// propagate re-derives every cell that transitively reads origin from its
// own entered text. Each dependent is evaluated once, after all of its
// affected precedents.
func (ed *edit) propagate(origin models.Coord) error {
	e := ed.engine
	order, err := e.deps.CalculationOrder(origin, e.opts.EffectiveMaxDepth())
	if err != nil {
		return err
	}

	for _, c := range order {
		cell, err := e.grid.Lookup(c)
		if err != nil {
			return err
		}
		p, err := e.classify(ed.current(cell).Raw)
		if err != nil {
			return fmt.Errorf("recalculating %s: %w", cell.Address, err)
		}
		if err := ed.apply(cell, p); err != nil {
			return fmt.Errorf("recalculating %s: %w", cell.Address, err)
		}
		e.log.Debug().
			Str("address", cell.Address).
			Str("display", ed.current(cell).Display).
			Msg("recalculated dependent")
	}

	return nil
}
