// Command glyphcover prints the letters that can be kept together without any
// missing pair file, by complementing a vertex cover of the incompatibility graph.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/glyphcover/cover"
	"github.com/katalvlaran/glyphcover/internal/app"
	"github.com/katalvlaran/glyphcover/internal/config"
	"github.com/katalvlaran/glyphcover/internal/logging"
)

// flags mirrors the command line; only flags the user set override the config.
type flags struct {
	configPath string
	letters    string
	pairsDir   string
	pattern    string
	algorithm  string
	workers    int
	exclude    []string
	output     string
	maxExact   int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "glyphcover",
		Short: "Print the letters whose pair files are all present",
		Long: `glyphcover reads the letter set from a JSON object, probes the pair
directory for every ordered letter pair and treats each missing file as an
incompatibility. It then computes a small vertex cover of the incompatibility
graph and prints every letter outside that cover, one per line, in the order
the letters appear in the JSON file.

Algorithms: local-ratio (default), greedy, matching, exact, auto.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log, f.verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Debug("configuration resolved",
				zap.String("letters", cfg.Letters),
				zap.String("pairs_dir", cfg.PairsDir),
				zap.String("pattern", cfg.Pattern),
				zap.String("algorithm", cfg.Algorithm),
				zap.Int("workers", cfg.Workers),
			)

			_, err = app.Run(cmd.Context(), cfg, logger, cmd.OutOrStdout())
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.StringVar(&f.letters, "letters", "", "letters JSON file (default letters.json)")
	fl.StringVar(&f.pairsDir, "pairs-dir", "", "directory holding pair files (default public/pairs)")
	fl.StringVar(&f.pattern, "pattern", "", "pair file name with {a} and {b} placeholders (default {a}-{b}.dat)")
	fl.StringVar(&f.algorithm, "algorithm", "", "cover algorithm: local-ratio, greedy, matching, exact, auto")
	fl.IntVar(&f.workers, "workers", 0, "concurrent file probes, 0 uses every CPU")
	fl.StringSliceVar(&f.exclude, "exclude", nil, "letters to drop before probing (repeatable or comma separated)")
	fl.StringVarP(&f.output, "output", "o", "", "output format: text or json")
	fl.IntVar(&f.maxExact, "max-exact", cover.DefaultMaxExactVertices, "largest component solved exactly by exact/auto")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveConfig layers defaults, the config file, the environment and changed flags.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("letters") {
		cfg.Letters = f.letters
	}
	if changed("pairs-dir") {
		cfg.PairsDir = f.pairsDir
	}
	if changed("pattern") {
		cfg.Pattern = f.pattern
	}
	if changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("max-exact") {
		cfg.MaxExact = f.maxExact
	}

	return cfg, cfg.Validate()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "glyphcover:", err)
		stop()
		os.Exit(1)
	}
}
