// Package core provides a thread-safe, in-memory undirected Graph used as the
// incompatibility graph of a glyph set.
//
// The Graph G = (V,E) carries:
//
//   - Positive integer vertex weights (WithVertexWeight; default 1), consumed by
//     weighted vertex cover solvers.
//   - Undirected edges mirrored in a nested adjacency map:
//     adjacency[u][v][edgeID] = struct{}{} and adjacency[v][u][edgeID] = struct{}{}
//   - Optional self-loops (WithLoops) and parallel edges (WithMultiEdges).
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//	Vertices()     // sorted lexicographically
//	NeighborIDs()  // unique, sorted lexicographically
//	Edges()        // insertion order
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error // O(1)
//	HasVertex(id string) bool                        // O(1)
//	VertexWeight(id string) (int64, error)           // O(1)
//	RemoveVertex(id string) error                    // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1) amortized
//	RemoveEdge(edgeID string) error                     // O(1)
//	HasEdge(from, to string) bool                       // O(1), orientation-free
//	GetEdge(edgeID string) (*Edge, error)               // O(1)
//
//	// Queries
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Degree(id string) (int, error)           // loops count twice
//	HasLoop(id string) bool                  // O(1)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//
//	// Copies
//	Clone() *Graph                                  // O(V+E)
//	InducedSubgraph(ids []string) (*Graph, error)   // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-positive vertex weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
