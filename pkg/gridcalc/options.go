// Package gridcalc evaluates cell formulas on a fixed grid and propagates
// every change to the cells that depend on it.
package gridcalc

import (
	"github.com/rs/zerolog"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/store"
)

// DefaultMaxDepth bounds a propagation chain. No acyclic chain can be longer
// than the number of cells in the grid.
const DefaultMaxDepth = store.Rows * store.Cols

// Options configures engine behavior.
type Options struct {
	// MaxDepth bounds the dependency chain walked for one edit. Exceeding it
	// fails the edit with ErrCyclicDependency. If zero, DefaultMaxDepth is used.
	MaxDepth int
	// Logger receives engine events. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultOptions returns default engine options.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
	}
}

// EffectiveMaxDepth returns the propagation depth bound.
func (o Options) EffectiveMaxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

// EffectiveLogger returns the configured logger or a no-op one.
func (o Options) EffectiveLogger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}
