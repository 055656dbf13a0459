// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// This file declares Vertex, Edge, Graph, GraphOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// DefaultVertexWeight is the weight assigned to vertices added without WithVertexWeight.
const DefaultVertexWeight int64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-positive vertex weight.
	ErrBadWeight = errors.New("core: vertex weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Weight is the cost of selecting this vertex into a cover. Always > 0.
	Weight int64

	// seq is the insertion sequence number; it orders InsertionOrder().
	seq uint64
}

// Edge represents an undirected connection between two vertices.
//
// From and To keep the orientation the edge was added with; it carries no
// meaning beyond reproducible logs. From == To marks a self-loop.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// seq is the insertion sequence number backing ID; it orders Edges().
	seq uint64
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to id. For a loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// VertexOption configures a vertex when it is first added.
type VertexOption func(v *Vertex)

// WithVertexWeight sets the cover cost of a new vertex.
// Non-positive values are rejected by AddVertex with ErrBadWeight.
func WithVertexWeight(w int64) VertexOption {
	return func(v *Vertex) { v.Weight = w }
}

// Graph is the core in-memory undirected graph.
//
// muVert protects the vertices map; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags (immutable after NewGraph)
	allowLoops bool
	allowMulti bool

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	nextVertex uint64             // vertex insertion counter, guarded by muVert
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v][Edge.ID] = struct{}{}, mirrored for u != v
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, loops and parallel edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool { return g.allowMulti }
