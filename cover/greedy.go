package cover

import (
	"context"

	"github.com/katalvlaran/glyphcover/core"
)

// greedyCover repeatedly removes the vertex maximising degree/weight from a
// private clone of sub until no edge is left. Ties go to the smallest ID.
//
// Looped vertices (forced) are removed up front: their edges are covered.
//
// Complexity: O(V·(V log V + E)); each round rescans the remaining vertices.
func greedyCover(ctx context.Context, sub *core.Graph, forced map[string]struct{}) ([]string, error) {
	work := sub.Clone()
	for id := range forced {
		if work.HasVertex(id) {
			if err := work.RemoveVertex(id); err != nil {
				return nil, err
			}
		}
	}

	var out []string
	for work.EdgeCount() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		best, err := heaviestVertex(work)
		if err != nil {
			return nil, err
		}
		if err = work.RemoveVertex(best); err != nil {
			return nil, err
		}
		out = append(out, best)
	}

	return out, nil
}

// heaviestVertex returns the vertex with the largest degree per unit weight.
// Ratios are compared by cross-multiplication to stay in integers.
func heaviestVertex(g *core.Graph) (string, error) {
	var (
		best    string
		bestDeg int64
		bestW   int64 = 1
	)
	for _, id := range g.Vertices() {
		deg, err := g.Degree(id)
		if err != nil {
			return "", err
		}
		if deg == 0 {
			continue
		}
		w, err := g.VertexWeight(id)
		if err != nil {
			return "", err
		}
		if best == "" || int64(deg)*bestW > bestDeg*w {
			best, bestDeg, bestW = id, int64(deg), w
		}
	}

	return best, nil
}
