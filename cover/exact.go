package cover

import (
	"context"
	"math/bits"
)

// ctxCheckEvery is the number of search nodes between cancellation checks.
const ctxCheckEvery = 1 << 10

// exactSolver holds branch-and-bound state for one component (≤ 64 vertices).
type exactSolver struct {
	ctx    context.Context
	adj    []uint64 // adj[u] = neighbor mask of u
	weight []int64
	best   int64
	bestAt uint64
	nodes  int
}

// exactCover returns a minimum-weight cover of in.
//
// Search: pick the lowest vertex u with an uncovered incident edge and branch
// on "u ∈ C" versus "N(u) ⊆ C". The incumbent is seeded with the LocalRatio
// cover, so pruning is effective from the first node.
func exactCover(ctx context.Context, in *instance) ([]string, error) {
	n := in.size()
	s := &exactSolver{
		ctx:    ctx,
		adj:    make([]uint64, n),
		weight: in.weight,
	}
	for _, e := range in.edges {
		s.adj[e[0]] |= 1 << uint(e[1])
		s.adj[e[1]] |= 1 << uint(e[0])
	}

	seed := localRatio(in)
	for i, ok := range seed {
		if ok {
			s.bestAt |= 1 << uint(i)
			s.best += in.weight[i]
		}
	}

	if err := s.search(0, 0); err != nil {
		return nil, err
	}

	chosen := make([]bool, n)
	for m := s.bestAt; m != 0; m &= m - 1 {
		chosen[bits.TrailingZeros64(m)] = true
	}

	return in.pick(chosen), nil
}

func (s *exactSolver) search(chosen uint64, w int64) error {
	s.nodes++
	if s.nodes%ctxCheckEvery == 0 {
		if err := s.ctx.Err(); err != nil {
			return err
		}
	}
	if w >= s.best {
		return nil
	}

	u := -1
	for i := range s.adj {
		if chosen&(1<<uint(i)) == 0 && s.adj[i]&^chosen != 0 {
			u = i
			break
		}
	}
	if u < 0 {
		s.best, s.bestAt = w, chosen
		return nil
	}

	if err := s.search(chosen|1<<uint(u), w+s.weight[u]); err != nil {
		return err
	}

	nb := s.adj[u] &^ chosen
	nw := w
	for m := nb; m != 0; m &= m - 1 {
		nw += s.weight[bits.TrailingZeros64(m)]
	}

	return s.search(chosen|nb, nw)
}
