package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/glyphcover/bfs"
	"github.com/katalvlaran/glyphcover/core"
)

// chain builds v0–v1–…–vn.
func chain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleDepths covers a simple cycle and checks depths.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "D")
	_, _ = g.AddEdge("D", "A")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
	if path, _ := res.PathTo("C"); !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v", path)
	}
	if _, err := res.PathTo("Z"); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_MaxDepthAndFilter verifies depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(2)
	if res, _ := bfs.BFS(g, "v0", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"v0", "v1"}) {
		t.Errorf("MaxDepth=1: got %v", res.Order)
	}
	if res, _ := bfs.BFS(g, "v0", bfs.WithMaxDepth(0)); len(res.Order) != 3 {
		t.Errorf("MaxDepth=0: got %v", res.Order)
	}
	res, _ := bfs.BFS(g, "v0", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "v1" && nbr == "v2")
	}))
	if want := []string{"v0", "v1"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopVisitedOnce ensures that loops do not enqueue twice.
func TestBFS_SelfLoopVisitedOnce(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A")
	_, _ = g.AddEdge("A", "B")
	res, _ := bfs.BFS(g, "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop: got %v; want %v", res.Order, want)
	}
}

func TestBFS_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS(chain(3), "v0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "v2" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(chain(100), "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
	if _, err := bfs.Components(chain(3), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Components: want context.Canceled, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("d", "b")
	_, _ = g.AddEdge("b", "f")
	_, _ = g.AddEdge("a", "e")
	_, _ = g.AddEdge("g", "g")
	_ = g.AddVertex("c")

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"a", "e"}, {"b", "d", "f"}, {"c"}, {"g"}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	if _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	empty, err := bfs.Components(core.NewGraph())
	if err != nil || len(empty) != 0 {
		t.Errorf("empty graph: got %v, %v", empty, err)
	}
}

func TestComponents_RejectsPartitioningOptions(t *testing.T) {
	g := chain(4)
	if _, err := bfs.Components(g, bfs.WithMaxDepth(1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("MaxDepth: want ErrOptionViolation, got %v", err)
	}
	keep := func(_, _ string) bool { return false }
	if _, err := bfs.Components(g, bfs.WithFilterNeighbor(keep)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("FilterNeighbor: want ErrOptionViolation, got %v", err)
	}

	var visited int
	comps, err := bfs.Components(g, bfs.WithMaxDepth(0), bfs.WithOnVisit(func(string, int) error {
		visited++
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 1 || visited != 5 {
		t.Errorf("chain(4): got %d components, %d visits; want 1, 5", len(comps), visited)
	}
}
