package gridcalc

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/graph"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/store"
)

// Engine classifies, evaluates and propagates edits on one grid.
// It is not safe for concurrent use; edits run to completion one at a time.
type Engine struct {
	grid *store.Grid
	deps *graph.Graph
	opts Options
	log  zerolog.Logger
}

// New creates an engine over a freshly allocated grid.
func New(opts Options) *Engine {
	return &Engine{
		grid: store.New(),
		deps: graph.New(),
		opts: opts,
		log:  opts.EffectiveLogger(),
	}
}

// Grid returns the underlying cell store.
func (e *Engine) Grid() *store.Grid {
	return e.grid
}

// OnEdit commits text to the cell at address and recalculates every cell
// that depends on it. It returns the touched cells in evaluation order,
// the edited cell first. On error the grid is unchanged and the error is an
// *EditError.
func (e *Engine) OnEdit(address, text string) ([]models.Update, error) {
	target, err := e.grid.Get(address)
	if err != nil {
		return nil, e.reject(address, text, StageResolve, err)
	}

	p, err := e.classify(text)
	if err != nil {
		return nil, e.reject(target.Address, text, StageParse, err)
	}
	e.log.Debug().Str("address", target.Address).Stringer("kind", p.kind).Msg("classified edit")

	if c, loop := e.deps.FindCycle(target.Coord(), p.precedents); loop {
		ref, _ := parser.FormatAddress(c.Col, c.Row)
		err := fmt.Errorf("%w: %s refers back to %s", ErrCyclicDependency, ref, target.Address)
		return nil, e.reject(target.Address, text, StageParse, err)
	}

	ed := newEdit(e)
	if err := ed.apply(target, p); err != nil {
		return nil, e.reject(target.Address, text, StageEvaluate, err)
	}
	if err := ed.propagate(target.Coord()); err != nil {
		return nil, e.reject(target.Address, text, StagePropagate, err)
	}
	if err := ed.commit(); err != nil {
		return nil, e.reject(target.Address, text, StagePropagate, err)
	}
	e.deps.SetPrecedents(target.Coord(), p.precedents)

	updates := ed.updates()
	e.log.Debug().
		Str("address", target.Address).
		Int("touched", len(updates)).
		Int("graph_nodes", e.deps.NodeCount()).
		Msg("edit committed")
	return updates, nil
}

func (e *Engine) reject(address, text string, stage Stage, err error) error {
	e.log.Warn().Str("address", address).Str("stage", string(stage)).Err(err).Msg("edit rejected")
	return NewEditError(address, text, stage, err)
}

// Apply runs edits in order and stops at the first failure. Updates of the
// edits that succeeded are returned along with the error.
func (e *Engine) Apply(edits []models.Edit) ([]models.Update, error) {
	var all []models.Update
	for _, ed := range edits {
		updates, err := e.OnEdit(ed.Address, ed.Text)
		if err != nil {
			return all, err
		}
		all = append(all, updates...)
	}
	return all, nil
}

// GetCell returns a read-only view of the cell at address.
func (e *Engine) GetCell(address string) (models.CellSnapshot, error) {
	cell, err := e.grid.Get(address)
	if err != nil {
		return models.CellSnapshot{}, err
	}
	return cell.Snapshot(), nil
}

// Display returns the display value of the cell at address.
func (e *Engine) Display(address string) (string, error) {
	cell, err := e.grid.Get(address)
	if err != nil {
		return "", err
	}
	return cell.Display, nil
}

// Dependents lists the addresses that read address directly.
func (e *Engine) Dependents(address string) ([]string, error) {
	cell, err := e.grid.Get(address)
	if err != nil {
		return nil, err
	}
	return addresses(e.deps.Dependents(cell.Coord())), nil
}

// Precedents lists the addresses that address reads directly.
func (e *Engine) Precedents(address string) ([]string, error) {
	cell, err := e.grid.Get(address)
	if err != nil {
		return nil, err
	}
	return addresses(e.deps.Precedents(cell.Coord())), nil
}

// Snapshot returns the non-empty rows of the grid within its used range.
func (e *Engine) Snapshot() models.GridData {
	used, ok := e.grid.UsedRange()
	if !ok {
		return models.GridData{}
	}

	data := models.GridData{Used: &used, Cells: e.grid.CountNonEmpty(used)}
	for row := used.R1; row <= used.R2; row++ {
		cellRow := models.CellRow{R: row, C: make(map[string]string)}
		for col := used.C1; col <= used.C2; col++ {
			cell, ok := e.grid.At(col, row)
			if !ok || (cell.Raw == "" && cell.Display == "") {
				continue
			}
			label := parser.ColumnLabel(col)
			cellRow.C[label] = cell.Display
			if cell.IsFormula() {
				if cellRow.Raw == nil {
					cellRow.Raw = make(map[string]string)
				}
				cellRow.Raw[label] = cell.Raw
			}
		}
		if len(cellRow.C) > 0 {
			data.Rows = append(data.Rows, cellRow)
		}
	}
	return data
}

func addresses(coords []models.Coord) []string {
	result := make([]string, 0, len(coords))
	for _, c := range coords {
		if address, err := parser.FormatAddress(c.Col, c.Row); err == nil {
			result = append(result, address)
		}
	}
	return result
}
