package cover

import (
	"context"

	"github.com/katalvlaran/glyphcover/core"
)

// localRatio runs Bar-Yehuda–Even pricing over in.edges.
//
// For each edge {u,v} with neither endpoint chosen, the cheaper endpoint by
// residual cost (u on ties) is chosen and its residual is charged to the
// other endpoint. A vertex whose residual reaches zero is only chosen when a
// later edge picks it. Weight(C) ≤ 2·OPT.
//
// Complexity: O(V + E).
func localRatio(in *instance) []bool {
	residual := make([]int64, len(in.weight))
	copy(residual, in.weight)
	chosen := make([]bool, len(residual))

	var (
		e    [2]int
		u, v int
	)
	for _, e = range in.edges {
		u, v = e[0], e[1]
		if chosen[u] || chosen[v] {
			continue
		}
		if residual[u] <= residual[v] {
			chosen[u] = true
			residual[v] -= residual[u]
		} else {
			chosen[v] = true
			residual[u] -= residual[v]
		}
	}

	return chosen
}

// localRatioGraph applies the localRatio rule to the whole of g in
// walkEdges order, self-loops included at their position. Letters inserted
// in file order therefore get the same cover as the networkx
// min_weighted_vertex_cover routine run on the same graph.
func localRatioGraph(ctx context.Context, g *core.Graph) ([]string, error) {
	residual := make(map[string]int64, g.VertexCount())
	chosen := make(map[string]struct{})

	err := walkEdges(g, func(u, v string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, in := chosen[u]; in {
			return nil
		}
		if _, in := chosen[v]; in {
			return nil
		}
		ru, err := cost(g, residual, u)
		if err != nil {
			return err
		}
		rv, err := cost(g, residual, v)
		if err != nil {
			return err
		}
		if ru <= rv {
			chosen[u] = struct{}{}
			residual[v] = rv - ru
		} else {
			chosen[v] = struct{}{}
			residual[u] = ru - rv
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(chosen))
	for id := range chosen {
		out = append(out, id)
	}

	return out, nil
}

// cost returns the residual of id, seeding it from the vertex weight.
func cost(g *core.Graph, residual map[string]int64, id string) (int64, error) {
	if r, ok := residual[id]; ok {
		return r, nil
	}
	w, err := g.VertexWeight(id)
	if err != nil {
		return 0, err
	}
	residual[id] = w

	return w, nil
}
