// File: methods_clone.go
// Role: Deep copies (Clone) and vertex-induced subgraphs (InducedSubgraph).
// Determinism:
//   - Copies keep edge IDs and vertex/edge insertion order; both counters carry over
//     so edges added to a copy never collide with the source's IDs.
// Concurrency:
//   - Source is read under muVert then muEdgeAdj read locks; the copy is private until returned.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: flags, vertices, edges, and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := g.emptyLike()
	var (
		id string
		v  *Vertex
	)
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Weight: v.Weight, seq: v.seq}
		ensureBucket(clone, id)
	}
	var e *Edge
	for _, e = range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, seq: e.seq}
		clone.edges[ne.ID] = ne
		link(clone, ne)
	}

	return clone
}

// InducedSubgraph returns a new Graph holding the given vertices and every edge
// with both endpoints among them. Duplicate IDs are tolerated.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound for bad IDs.
//
// Complexity: O(|ids| + Σdeg).
func (g *Graph) InducedSubgraph(ids []string) (*Graph, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	sub := g.emptyLike()
	var id string
	for _, id = range ids {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		v, ok := g.vertices[id]
		if !ok {
			return nil, ErrVertexNotFound
		}
		sub.vertices[id] = &Vertex{ID: v.ID, Weight: v.Weight, seq: v.seq}
		ensureBucket(sub, id)
	}

	var (
		nbr    string
		bucket map[string]struct{}
		eid    string
	)
	for id = range sub.vertices {
		for nbr, bucket = range g.adjacency[id] {
			if _, in := sub.vertices[nbr]; !in {
				continue
			}
			for eid = range bucket {
				if _, seen := sub.edges[eid]; seen {
					continue
				}
				e := g.edges[eid]
				ne := &Edge{ID: e.ID, From: e.From, To: e.To, seq: e.seq}
				sub.edges[eid] = ne
				link(sub, ne)
			}
		}
	}

	return sub, nil
}

// emptyLike allocates a graph with g's flags and edge counter. Caller holds g's read locks.
func (g *Graph) emptyLike() *Graph {
	opts := make([]GraphOption, 0, 2)
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	out := NewGraph(opts...)
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	out.nextVertex = g.nextVertex

	return out
}
