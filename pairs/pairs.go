// Package pairs turns the presence or absence of pair-data files into an
// incompatibility graph.
//
// For an ordered letter list L, every ordered pair (a,b) ∈ L×L, self pairs
// included, is probed at Pattern with {a} and {b} substituted. A missing file
// means the pair is incompatible and yields the undirected edge {a,b}; a
// missing self pair yields a self-loop. (a,b) and (b,a) collapse into one edge,
// stored with the earlier letter as From. Edges are added in row-major pair
// order, so each letter's neighbors keep the order they were first found in.
package pairs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/glyphcover/core"
)

// Defaults mirror the layout produced by the pair generator.
const (
	DefaultDir     = "public/pairs"
	DefaultPattern = "{a}-{b}.dat"
)

const (
	placeholderA = "{a}"
	placeholderB = "{b}"
)

// Sentinel errors for pair probing.
var (
	// ErrBadPattern is returned when a pattern lacks {a} or {b}.
	ErrBadPattern = errors.New("pairs: pattern must contain {a} and {b}")

	// ErrFSNil is returned when no filesystem is supplied.
	ErrFSNil = errors.New("pairs: filesystem is nil")

	// ErrBadWorkers is returned for a negative worker count.
	ErrBadWorkers = errors.New("pairs: workers must be >= 0")
)

// Stats summarises one Build.
type Stats struct {
	Probed  int // ordered pairs checked
	Missing int // ordered pairs without a file
	Edges   int // undirected edges in the graph, loops included
	Loops   int // letters incompatible with themselves
}

// Prober checks pair files inside a filesystem rooted at the pairs directory.
type Prober struct {
	fsys    fs.FS
	pattern string
	workers int
	log     *zap.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithPattern sets the file name pattern; it must contain {a} and {b}.
func WithPattern(pattern string) Option {
	return func(p *Prober) { p.pattern = pattern }
}

// WithWorkers bounds concurrent stat calls. Zero means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(p *Prober) { p.workers = n }
}

// WithLogger attaches a logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Prober) {
		if l != nil {
			p.log = l
		}
	}
}

// NewProber validates options and returns a Prober over fsys.
func NewProber(fsys fs.FS, opts ...Option) (*Prober, error) {
	if fsys == nil {
		return nil, ErrFSNil
	}
	p := &Prober{fsys: fsys, pattern: DefaultPattern, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	if !strings.Contains(p.pattern, placeholderA) || !strings.Contains(p.pattern, placeholderB) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, p.pattern)
	}
	if p.workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, p.workers)
	}
	if p.workers == 0 {
		p.workers = runtime.NumCPU()
	}

	return p, nil
}

// Path returns the file name probed for the ordered pair (a,b).
func (p *Prober) Path(a, b string) string {
	return strings.NewReplacer(placeholderA, a, placeholderB, b).Replace(p.pattern)
}

// Exists reports whether the pair file for (a,b) is present.
// A not-exist error means false; any other stat error is returned.
func (p *Prober) Exists(a, b string) (bool, error) {
	name := p.Path(a, b)
	_, err := fs.Stat(p.fsys, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("pairs: stat %s: %w", name, err)
	}
}

// Build probes every ordered pair of names and returns the incompatibility graph.
//
// Every name becomes a vertex, so letters with no incompatibilities are kept.
// Probing runs on at most Workers goroutines; the first error cancels the rest.
// Edges are inserted in row-major pair order, independent of scheduling.
func (p *Prober) Build(ctx context.Context, names []string) (*core.Graph, Stats, error) {
	g := core.NewGraph(core.WithLoops())
	for _, n := range names {
		if err := g.AddVertex(n); err != nil {
			return nil, Stats{}, fmt.Errorf("pairs: letter %q: %w", n, err)
		}
	}

	n := len(names)
	missing := make([]bool, n*n)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if egCtx.Err() != nil {
				break
			}
			idx, a, b := i*n+j, names[i], names[j]
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				ok, err := p.Exists(a, b)
				if err != nil {
					return err
				}
				missing[idx] = !ok
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	st := Stats{Probed: n * n}
	for idx, miss := range missing {
		if !miss {
			continue
		}
		st.Missing++
		i, j := idx/n, idx%n
		if i > j {
			i, j = j, i // From is the letter that comes first
		}
		a, b := names[i], names[j]
		if g.HasEdge(a, b) {
			continue // (b,a) already recorded
		}
		if _, err := g.AddEdge(a, b); err != nil {
			return nil, Stats{}, fmt.Errorf("pairs: edge %s-%s: %w", a, b, err)
		}
		if a == b {
			st.Loops++
		}
		p.log.Debug("incompatible pair", zap.String("a", a), zap.String("b", b))
	}
	st.Edges = g.EdgeCount()

	p.log.Info("pair graph built",
		zap.Int("letters", n),
		zap.Int("probed", st.Probed),
		zap.Int("missing", st.Missing),
		zap.Int("edges", st.Edges),
		zap.Int("loops", st.Loops),
	)

	return g, st, nil
}
