package cover

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for cover solvers.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("cover: graph is nil")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("cover: unsupported algorithm")

	// ErrComponentTooLarge is returned by Exact when a component exceeds MaxExactVertices.
	ErrComponentTooLarge = errors.New("cover: component too large for exact search")

	// ErrBadOption is returned for out-of-range Options fields.
	ErrBadOption = errors.New("cover: invalid option")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// LocalRatio is the Bar-Yehuda–Even weighted 2-approximation.
	LocalRatio Algorithm = iota
	// Greedy removes the max degree-per-weight vertex until no edge remains.
	Greedy
	// Matching takes both endpoints of a maximal matching.
	Matching
	// Exact runs branch and bound per component.
	Exact
	// Auto uses Exact on small components and LocalRatio elsewhere.
	Auto
)

var algorithmNames = [...]string{
	LocalRatio: "local-ratio",
	Greedy:     "greedy",
	Matching:   "matching",
	Exact:      "exact",
	Auto:       "auto",
}

// String returns the CLI/config name of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a name (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range algorithmNames {
		if s == n {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// maxBitmaskVertices bounds Exact: one uint64 mask per component.
const maxBitmaskVertices = 64

// DefaultMaxExactVertices is the default component size limit for Exact and Auto.
const DefaultMaxExactVertices = 24

// Options configures Solve.
type Options struct {
	// Algo selects the solver.
	Algo Algorithm

	// MaxExactVertices bounds the component size handled by Exact (1..64).
	MaxExactVertices int

	// Ctx allows cancellation of long searches. Nil means context.Background().
	Ctx context.Context
}

// DefaultOptions returns LocalRatio with DefaultMaxExactVertices.
func DefaultOptions() Options {
	return Options{
		Algo:             LocalRatio,
		MaxExactVertices: DefaultMaxExactVertices,
		Ctx:              context.Background(),
	}
}

func (o Options) validate() error {
	if o.Algo < 0 || int(o.Algo) >= len(algorithmNames) {
		return fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(o.Algo))
	}
	if o.MaxExactVertices < 1 || o.MaxExactVertices > maxBitmaskVertices {
		return fmt.Errorf("%w: MaxExactVertices must be in [1,%d], got %d",
			ErrBadOption, maxBitmaskVertices, o.MaxExactVertices)
	}

	return nil
}

// Result is the outcome of Solve.
type Result struct {
	// Cover lists the selected vertices, sorted ascending.
	Cover []string

	// Weight is the sum of vertex weights over Cover.
	Weight int64

	// Algo is the algorithm that was requested.
	Algo Algorithm

	// Components is the number of connected components of the input graph.
	Components int

	// Forced counts the vertices placed in Cover because of a self-loop.
	Forced int

	set map[string]struct{}
}

// Contains reports whether id is in the cover.
func (r Result) Contains(id string) bool {
	_, ok := r.set[id]
	return ok
}

// Len returns the number of vertices in the cover.
func (r Result) Len() int { return len(r.Cover) }
