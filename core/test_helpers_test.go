// Package core_test contains shared fixtures for the core graph tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphcover/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common sizes for concurrency tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// newSquare builds the 4-cycle A–B–C–D–A with loops enabled.
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	mustEdge(t, g, VertexA, VertexB)
	mustEdge(t, g, VertexB, VertexC)
	mustEdge(t, g, VertexC, VertexD)
	mustEdge(t, g, VertexD, VertexA)

	return g
}

// mustEdge adds from–to and fails the test on error.
func mustEdge(t *testing.T, g *core.Graph, from, to string) string {
	t.Helper()
	eid, err := g.AddEdge(from, to)
	require.NoError(t, err, "AddEdge(%s,%s)", from, to)

	return eid
}

// edgeIDs maps edges to their IDs, keeping order.
func edgeIDs(es []*core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}

	return out
}
