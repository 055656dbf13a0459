// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Degree, IncidentEdges) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - IncidentEdges() returns edges in insertion order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
// A vertex with a self-loop lists itself.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of distinct neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	row := g.adjacency[id]
	ids := make([]string, 0, len(row))
	var (
		nbr    string
		bucket map[string]struct{}
	)
	for nbr, bucket = range row {
		if len(bucket) > 0 {
			ids = append(ids, nbr)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// IncidentEdges returns every edge touching id in insertion order.
// A self-loop appears once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		out    []*Edge
		bucket map[string]struct{}
		eid    string
	)
	for _, bucket = range g.adjacency[id] {
		for eid = range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sortBySeq(out)

	return out, nil
}

// Degree returns the number of edge endpoints at id.
// A self-loop contributes 2, following the usual handshake convention.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		deg    int
		nbr    string
		bucket map[string]struct{}
	)
	for nbr, bucket = range g.adjacency[id] {
		if nbr == id {
			deg += 2 * len(bucket)
			continue
		}
		deg += len(bucket)
	}

	return deg, nil
}

// ensureBucket makes adjacency[id] non-nil. Caller holds muEdgeAdj.
func ensureBucket(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// link registers e in adjacency, mirrored for non-loops. Caller holds muEdgeAdj.
func link(g *Graph, e *Edge) {
	put(g, e.From, e.To, e.ID)
	if !e.IsLoop() {
		put(g, e.To, e.From, e.ID)
	}
}

func put(g *Graph, u, v, eid string) {
	ensureBucket(g, u)
	if g.adjacency[u][v] == nil {
		g.adjacency[u][v] = make(map[string]struct{})
	}
	g.adjacency[u][v][eid] = struct{}{}
}

// unlink removes e from adjacency and drops emptied buckets. Caller holds muEdgeAdj.
func unlink(g *Graph, e *Edge) {
	drop(g, e.From, e.To, e.ID)
	if !e.IsLoop() {
		drop(g, e.To, e.From, e.ID)
	}
}

func drop(g *Graph, u, v, eid string) {
	bucket := g.adjacency[u][v]
	if bucket == nil {
		return
	}
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacency[u], v)
	}
}
