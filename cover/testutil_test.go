package cover_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphcover/core"
)

// allAlgorithms lists every solver exercised by property tests.
var allAlgorithms = []struct {
	name string
}{
	{"local-ratio"}, {"greedy"}, {"matching"}, {"exact"}, {"auto"},
}

// build creates a loop-enabled graph from "u-v" edge pairs.
func build(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// randomGraph builds a G(n,p) graph with a fixed seed; vertex i is "v%02d".
func randomGraph(t *testing.T, seed int64, n int, p float64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%02d", i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_, err := g.AddEdge(fmt.Sprintf("v%02d", i), fmt.Sprintf("v%02d", j))
				require.NoError(t, err)
			}
		}
	}

	return g
}
