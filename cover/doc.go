// Package cover provides vertex cover solvers over a core.Graph.
//
// A vertex cover C ⊆ V touches every edge: for each {u,v} ∈ E, u ∈ C or v ∈ C.
// Minimising Σ w(v) over C is NP-hard; this package offers:
//
//   - LocalRatio: Bar-Yehuda–Even local-ratio pricing, a 2-approximation for
//     weighted covers. Default. Each uncovered edge takes its cheaper endpoint
//     (the first-inserted one on ties) and charges that cost to the other.
//     It walks the whole graph in vertex insertion order, loops in place, and
//     so reproduces networkx's min_weighted_vertex_cover on the same input.
//     Complexity: O(V + E)
//
//   - Matching: both endpoints of a maximal matching, a 2-approximation for
//     unit weights (weights are ignored when choosing, but reported).
//     Complexity: O(V + E)
//
//   - Greedy: repeatedly removes the vertex with the highest remaining
//     degree per unit weight, an H(Δ)-approximation that is often tighter in
//     practice on sparse graphs.
//     Complexity: O(V·(V log V + E))
//
//   - Exact: branch and bound on bitmasks, seeded with the LocalRatio cover.
//     Components above Options.MaxExactVertices are rejected.
//     Complexity: O(2^k) per component of k vertices (k ≤ 64)
//
//   - Auto: Exact for components up to MaxExactVertices, LocalRatio beyond.
//
// The other solvers run once per connected component (see bfs.Components) and
// the partial covers are merged. Self-loops cannot be covered by anything but
// their own vertex, so those solvers place looped vertices in the cover first.
// LocalRatio also always covers a looped vertex, when its loop is reached.
//
// Results are deterministic: edges are consumed in adjacency order (vertex
// insertion order, then each vertex's edges in insertion order).
package cover
