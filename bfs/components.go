package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/glyphcover/core"
)

// Components partitions g into connected components.
//
// Each component is sorted ascending; components are ordered by their
// smallest member. Isolated vertices form singleton components.
//
// WithContext and WithOnVisit are honored. WithMaxDepth (d > 0) and
// WithFilterNeighbor would cut components apart, so they are rejected with
// ErrOptionViolation.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: Components does not accept MaxDepth (%d)", ErrOptionViolation, o.MaxDepth)
	}
	if o.filtered {
		return nil, fmt.Errorf("%w: Components does not accept FilterNeighbor", ErrOptionViolation)
	}

	var (
		seen  = make(map[string]bool, g.VertexCount())
		comps [][]string
	)
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		w := newWalker(g, o, 0)
		w.enqueue(id, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := w.res.Order
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
