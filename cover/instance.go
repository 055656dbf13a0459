package cover

import "github.com/katalvlaran/glyphcover/core"

// instance is a dense, index-based view of one component with looped vertices
// and their edges already removed.
type instance struct {
	ids    []string       // sorted vertex IDs
	index  map[string]int // id → position in ids
	weight []int64        // weight[i] of ids[i]
	edges  [][2]int       // non-loop edges in adjacency order, see walkEdges
}

// walkEdges calls fn once per undirected edge {u,v} in adjacency order:
// vertices in insertion order, each vertex's neighbors in the order their first
// shared edge was added, skipping neighbors already walked. u is always the
// vertex being walked, so it is the endpoint inserted first. A self-loop is
// reported as (u,u) at its position among u's neighbors.
func walkEdges(g *core.Graph, fn func(u, v string) error) error {
	walked := make(map[string]struct{}, g.VertexCount())
	for _, u := range g.InsertionOrder() {
		incident, err := g.IncidentEdges(u)
		if err != nil {
			return err
		}
		reported := make(map[string]struct{}, len(incident))
		for _, e := range incident {
			v := e.Other(u)
			if _, done := walked[v]; done {
				continue
			}
			if _, dup := reported[v]; dup {
				continue // parallel edge
			}
			reported[v] = struct{}{}
			if err = fn(u, v); err != nil {
				return err
			}
		}
		walked[u] = struct{}{}
	}

	return nil
}

// newInstance projects sub onto the vertices not in forced.
// Edges touching a forced vertex are already covered and are skipped.
func newInstance(sub *core.Graph, forced map[string]struct{}) (*instance, error) {
	in := &instance{index: make(map[string]int)}
	var (
		id  string
		w   int64
		err error
	)
	for _, id = range sub.Vertices() {
		if _, skip := forced[id]; skip {
			continue
		}
		if w, err = sub.VertexWeight(id); err != nil {
			return nil, err
		}
		in.index[id] = len(in.ids)
		in.ids = append(in.ids, id)
		in.weight = append(in.weight, w)
	}

	err = walkEdges(sub, func(a, b string) error {
		u, okU := in.index[a]
		v, okV := in.index[b]
		if okU && okV && u != v {
			in.edges = append(in.edges, [2]int{u, v})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return in, nil
}

// size is the number of vertices left to decide.
func (in *instance) size() int { return len(in.ids) }

// pick converts a selection mask into IDs.
func (in *instance) pick(chosen []bool) []string {
	var out []string
	for i, ok := range chosen {
		if ok {
			out = append(out, in.ids[i])
		}
	}

	return out
}
