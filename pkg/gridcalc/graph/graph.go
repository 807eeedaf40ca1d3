// Package graph tracks which cells reference which, so a change only
// revisits the cells that actually depend on it.
package graph

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// ErrCycle indicates a reference chain that leads back to its origin.
var ErrCycle = errors.New("cyclic dependency")

// Node represents a cell in the dependency graph.
type Node struct {
	Coord models.Coord

	Precedents map[models.Coord]*Node // cells this cell reads
	Dependents map[models.Coord]*Node // cells that read this cell
}

// Graph manages cell dependencies and recalculation order.
type Graph struct {
	nodes map[models.Coord]*Node
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{nodes: make(map[models.Coord]*Node)}
}

func (g *Graph) getOrCreate(c models.Coord) *Node {
	if node, ok := g.nodes[c]; ok {
		return node
	}
	node := &Node{
		Coord:      c,
		Precedents: make(map[models.Coord]*Node),
		Dependents: make(map[models.Coord]*Node),
	}
	g.nodes[c] = node
	return node
}

// cleanupIfEmpty drops a node with no edges left.
func (g *Graph) cleanupIfEmpty(c models.Coord) {
	node, ok := g.nodes[c]
	if !ok {
		return
	}
	if len(node.Precedents) > 0 || len(node.Dependents) > 0 {
		return
	}
	delete(g.nodes, c)
}

// SetPrecedents replaces the cells c reads. An empty list clears them.
func (g *Graph) SetPrecedents(c models.Coord, precedents []models.Coord) {
	g.ClearPrecedents(c)
	if len(precedents) == 0 {
		return
	}

	node := g.getOrCreate(c)
	for _, p := range precedents {
		precedent := g.getOrCreate(p)
		node.Precedents[p] = precedent
		precedent.Dependents[c] = node
	}
}

// ClearPrecedents removes every outgoing reference of c.
func (g *Graph) ClearPrecedents(c models.Coord) {
	node, ok := g.nodes[c]
	if !ok {
		return
	}
	for p, precedent := range node.Precedents {
		delete(precedent.Dependents, c)
		delete(node.Precedents, p)
		g.cleanupIfEmpty(p)
	}
	g.cleanupIfEmpty(c)
}

// Precedents returns the cells c reads, in row-major order.
func (g *Graph) Precedents(c models.Coord) []models.Coord {
	node, ok := g.nodes[c]
	if !ok {
		return nil
	}
	return sorted(node.Precedents)
}

// Dependents returns the cells reading c, in row-major order.
func (g *Graph) Dependents(c models.Coord) []models.Coord {
	node, ok := g.nodes[c]
	if !ok {
		return nil
	}
	return sorted(node.Dependents)
}

// DependsOn reports whether from reads to, directly or transitively.
func (g *Graph) DependsOn(from, to models.Coord) bool {
	visited := make(map[models.Coord]struct{})
	var walk func(c models.Coord) bool
	walk = func(c models.Coord) bool {
		if _, seen := visited[c]; seen {
			return false
		}
		visited[c] = struct{}{}

		node, ok := g.nodes[c]
		if !ok {
			return false
		}
		for p := range node.Precedents {
			if p == to || walk(p) {
				return true
			}
		}
		return false
	}
	return walk(from)
}

// FindCycle checks whether giving c the precedents would close a loop and
// returns the offending precedent.
func (g *Graph) FindCycle(c models.Coord, precedents []models.Coord) (models.Coord, bool) {
	for _, p := range precedents {
		if p == c || g.DependsOn(p, c) {
			return p, true
		}
	}
	return models.Coord{}, false
}

// CalculationOrder lists every transitive dependent of origin so that each
// cell comes after all of its affected precedents. The walk is depth-first
// over dependents; maxDepth bounds the chain length. Origin is excluded.
func (g *Graph) CalculationOrder(origin models.Coord, maxDepth int) ([]models.Coord, error) {
	// three states: unvisited (not in map), visiting (false), visited (true)
	state := make(map[models.Coord]bool)
	var postorder []models.Coord

	var visit func(c models.Coord, depth int) error
	visit = func(c models.Coord, depth int) error {
		if maxDepth > 0 && depth > maxDepth {
			return fmt.Errorf("%w: chain from column %d row %d exceeds depth %d", ErrCycle, origin.Col, origin.Row, maxDepth)
		}
		state[c] = false

		deps := g.Dependents(c)
		// reversed so that earlier siblings come first once the postorder is flipped
		for i := len(deps) - 1; i >= 0; i-- {
			dep := deps[i]
			if done, seen := state[dep]; seen {
				if !done {
					return fmt.Errorf("%w: column %d row %d", ErrCycle, dep.Col, dep.Row)
				}
				continue
			}
			if err := visit(dep, depth+1); err != nil {
				return err
			}
		}

		state[c] = true
		postorder = append(postorder, c)
		return nil
	}

	if err := visit(origin, 0); err != nil {
		return nil, err
	}

	// drop origin (last in postorder) and reverse
	order := make([]models.Coord, 0, len(postorder)-1)
	for i := len(postorder) - 2; i >= 0; i-- {
		order = append(order, postorder[i])
	}
	return order, nil
}

// NodeCount returns the number of cells with at least one edge.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func sorted(set map[models.Coord]*Node) []models.Coord {
	result := make([]models.Coord, 0, len(set))
	for c := range set {
		result = append(result, c)
	}
	slices.SortFunc(result, func(a, b models.Coord) int {
		if n := cmp.Compare(a.Row, b.Row); n != 0 {
			return n
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return result
}
