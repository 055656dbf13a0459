// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to and returns its ID.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex (default weight).
//  3. Lock muEdgeAdj, check the multi-edge policy (either orientation counts).
//  4. Generate eid atomically, store the edge, link adjacency (mirror for non-loops).
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	seq, eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, seq: seq}
	g.edges[eid] = e
	link(g, e)

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	unlink(g, e)

	return nil
}

// HasEdge reports whether at least one edge joins from and to, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// HasLoop reports whether id carries a self-loop.
func (g *Graph) HasLoop(id string) bool {
	return g.HasEdge(id, id)
}

// GetEdge returns the edge with the given ID.
// Errors: ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Returned pointers reference the live catalog; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID reserves the next sequence number and renders it as "e<N>".
// Safe for concurrent callers.
func nextEdgeID(g *Graph) (uint64, string) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return n, string(buf)
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
