// Package cover - unified dispatcher for vertex cover solvers.
//
// Solve splits the graph into connected components, places looped vertices in
// the cover, routes each remaining component to the requested algorithm and
// merges the partial covers. LocalRatio skips the split and prices the whole
// graph in one ordered pass.
package cover

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/glyphcover/bfs"
	"github.com/katalvlaran/glyphcover/core"
)

// Solve computes a vertex cover of g.
//
// Contracts:
//   - g must be non-nil; it is not mutated.
//   - The returned Cover is always a valid cover of g.
//
// Errors: ErrGraphNil, ErrUnsupportedAlgorithm, ErrBadOption,
// ErrComponentTooLarge (Exact only), or the context error.
//
// Complexity: O(V log V + E) for decomposition plus the per-component cost
// of the chosen algorithm (see doc.go).
func Solve(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	// Stage 1: a self-loop is only covered by its own vertex.
	forced := make(map[string]struct{})
	for _, e := range g.Edges() {
		if e.IsLoop() {
			forced[e.From] = struct{}{}
		}
	}

	// Stage 2: decompose.
	comps, err := bfs.Components(g, bfs.WithContext(ctx))
	if err != nil {
		return Result{}, err
	}

	// Stage 3: LocalRatio walks the whole graph in insertion order and
	// reaches loops in place, so its cover does not depend on the split.
	if opts.Algo == LocalRatio {
		chosen, err := localRatioGraph(ctx, g)
		if err != nil {
			return Result{}, err
		}
		return finish(g, chosen, opts.Algo, len(comps), len(forced))
	}

	// Stage 4: solve each component.
	chosen := make([]string, 0, len(forced))
	for id := range forced {
		chosen = append(chosen, id)
	}
	for _, comp := range comps {
		if len(comp) < 2 {
			continue // isolated vertex or lone loop: nothing left to cover
		}
		part, err := solveComponent(ctx, g, comp, forced, opts)
		if err != nil {
			return Result{}, err
		}
		chosen = append(chosen, part...)
	}

	return finish(g, chosen, opts.Algo, len(comps), len(forced))
}

// finish sorts the cover and prices it.
func finish(g *core.Graph, chosen []string, algo Algorithm, comps, forced int) (Result, error) {
	sort.Strings(chosen)
	w, err := g.TotalWeight(chosen)
	if err != nil {
		return Result{}, err
	}

	return newResult(chosen, w, algo, comps, forced), nil
}

// solveComponent routes one component to its solver.
func solveComponent(ctx context.Context, g *core.Graph, comp []string, forced map[string]struct{}, opts Options) ([]string, error) {
	sub, err := g.InducedSubgraph(comp)
	if err != nil {
		return nil, err
	}

	if opts.Algo == Greedy {
		return greedyCover(ctx, sub, forced)
	}

	in, err := newInstance(sub, forced)
	if err != nil {
		return nil, err
	}
	if len(in.edges) == 0 {
		return nil, nil
	}

	switch opts.Algo {
	case Matching:
		return in.pick(maximalMatching(in)), nil
	case Exact:
		if in.size() > opts.MaxExactVertices {
			return nil, fmt.Errorf("%w: %d vertices (limit %d) around %q",
				ErrComponentTooLarge, in.size(), opts.MaxExactVertices, in.ids[0])
		}
		return exactCover(ctx, in)
	case Auto:
		if in.size() <= opts.MaxExactVertices {
			return exactCover(ctx, in)
		}
		return in.pick(localRatio(in)), nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

func newResult(ids []string, w int64, algo Algorithm, comps, forced int) Result {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return Result{Cover: ids, Weight: w, Algo: algo, Components: comps, Forced: forced, set: set}
}
