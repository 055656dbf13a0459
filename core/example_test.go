package core_test

import (
	"fmt"

	"github.com/katalvlaran/glyphcover/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph(core.WithLoops())

	// Edges auto-add their endpoints.
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "C")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B–A exists?", g.HasEdge("B", "A"))
	deg, _ := g.Degree("C")
	fmt.Println("deg(C):", deg)

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B–A exists? true
	// deg(C): 3
	// After removing B: [A C] 1
}
