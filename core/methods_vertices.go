// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - InsertionOrder() returns IDs in the order they were first added.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Apply options to a candidate and validate its weight (ErrBadWeight).
//   - Stage 3: Under muVert write lock, check presence; if missing, register the candidate.
//   - Stage 4: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op and does NOT change its weight.
//     Use SetVertexWeight to re-weight.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrBadWeight: if an option set a weight <= 0.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	v := &Vertex{ID: id, Weight: DefaultVertexWeight}
	var opt VertexOption
	for _, opt = range opts {
		opt(v)
	}
	if v.Weight <= 0 {
		return ErrBadWeight
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.nextVertex++
	v.seq = g.nextVertex
	g.vertices[id] = v

	g.muEdgeAdj.Lock()
	ensureBucket(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// VertexWeight returns the cover cost of id.
// Complexity: O(1).
func (g *Graph) VertexWeight(id string) (int64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return v.Weight, nil
}

// SetVertexWeight replaces the cover cost of an existing vertex.
// Complexity: O(1).
func (g *Graph) SetVertexWeight(id string, w int64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if w <= 0 {
		return ErrBadWeight
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Weight = w

	return nil
}

// RemoveVertex deletes the vertex and every incident edge.
//
// Implementation:
//   - Stage 1: Validate ID; lock muVert then muEdgeAdj.
//   - Stage 2: Walk adjacency[id] buckets, dropping each incident edge from the
//     catalog and from the neighbor's mirrored bucket.
//   - Stage 3: Drop the vertex and its adjacency row.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	var (
		nbr    string
		bucket map[string]struct{}
		eid    string
	)
	for nbr, bucket = range g.adjacency[id] {
		for eid = range bucket {
			delete(g.edges, eid)
		}
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// InsertionOrder returns all vertex IDs in the order AddVertex (or AddEdge)
// first created them. Removed vertices drop out; re-adding one moves it last.
// Complexity: O(V·log V).
func (g *Graph) InsertionOrder() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	vs := make([]*Vertex, 0, len(g.vertices))
	var v *Vertex
	for _, v = range g.vertices {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].seq < vs[j].seq })
	ids := make([]string, len(vs))
	for i := range vs {
		ids[i] = vs[i].ID
	}

	return ids
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// TotalWeight returns the sum of vertex weights over ids.
// Unknown IDs yield ErrVertexNotFound.
func (g *Graph) TotalWeight(ids []string) (int64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	var (
		sum int64
		id  string
	)
	for _, id = range ids {
		v, ok := g.vertices[id]
		if !ok {
			return 0, ErrVertexNotFound
		}
		sum += v.Weight
	}

	return sum, nil
}
