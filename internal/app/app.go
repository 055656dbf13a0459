// Package app wires letters, pair probing and cover solving into one run.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/glyphcover/cover"
	"github.com/katalvlaran/glyphcover/internal/config"
	"github.com/katalvlaran/glyphcover/letters"
	"github.com/katalvlaran/glyphcover/pairs"
)

// ErrInvalidCover signals a solver returned a set that misses an edge.
var ErrInvalidCover = errors.New("app: solver returned an invalid cover")

// Report summarises a run.
type Report struct {
	Letters []string // letters considered, after exclusions, in file order
	Safe    []string // letters outside the cover, in file order
	Cover   cover.Result
	Pairs   pairs.Stats
}

// Run executes the pipeline described by cfg and writes the safe subset to out.
//
// Stages: load letters → drop exclusions → probe pair files → solve → verify → print.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger, out io.Writer) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	set, err := letters.Load(cfg.Letters)
	if err != nil {
		return nil, err
	}
	if len(cfg.Exclude) > 0 {
		before := set.Len()
		set = set.Without(cfg.Exclude...)
		log.Debug("letters excluded", zap.Int("dropped", before-set.Len()), zap.Strings("exclude", cfg.Exclude))
	}
	names := set.Names()
	log.Info("letters loaded", zap.String("path", cfg.Letters), zap.Int("count", len(names)))

	if _, err := os.Stat(cfg.PairsDir); errors.Is(err, fs.ErrNotExist) {
		// Every pair is then missing and nothing is safe; this is not an error.
		log.Warn("pairs directory does not exist", zap.String("dir", cfg.PairsDir))
	}

	prober, err := pairs.NewProber(os.DirFS(cfg.PairsDir),
		pairs.WithPattern(cfg.Pattern),
		pairs.WithWorkers(cfg.Workers),
		pairs.WithLogger(log.Named("pairs")),
	)
	if err != nil {
		return nil, err
	}
	g, st, err := prober.Build(ctx, names)
	if err != nil {
		return nil, err
	}

	algo, err := cover.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	opts := cover.DefaultOptions()
	opts.Algo = algo
	opts.MaxExactVertices = cfg.MaxExact
	opts.Ctx = ctx
	res, err := cover.Solve(g, opts)
	if err != nil {
		return nil, err
	}
	if !cover.IsCover(g, res.Cover) {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidCover, algo)
	}

	safe := cover.Complement(names, res)
	log.Info("cover computed",
		zap.Stringer("algorithm", algo),
		zap.Int("components", res.Components),
		zap.Int("cover", res.Len()),
		zap.Int64("weight", res.Weight),
		zap.Int("forced", res.Forced),
		zap.Int("safe", len(safe)),
	)

	if err := write(out, cfg.Output, safe); err != nil {
		return nil, err
	}

	return &Report{Letters: names, Safe: safe, Cover: res, Pairs: st}, nil
}

func write(out io.Writer, format string, safe []string) error {
	switch format {
	case config.OutputJSON:
		if err := json.NewEncoder(out).Encode(safe); err != nil {
			return fmt.Errorf("app: write output: %w", err)
		}
	default:
		for _, l := range safe {
			if _, err := fmt.Fprintln(out, l); err != nil {
				return fmt.Errorf("app: write output: %w", err)
			}
		}
	}

	return nil
}
