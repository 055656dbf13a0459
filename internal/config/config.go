// Package config loads glyphcover settings from YAML, environment variables
// and defaults, in increasing order of precedence below CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glyphcover/cover"
	"github.com/katalvlaran/glyphcover/pairs"
)

// Output formats for the safe subset.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Log encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Environment overrides.
const (
	EnvLetters   = "GLYPHCOVER_LETTERS"
	EnvPairsDir  = "GLYPHCOVER_PAIRS_DIR"
	EnvAlgorithm = "GLYPHCOVER_ALGORITHM"
	EnvWorkers   = "GLYPHCOVER_WORKERS"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every knob of a run.
type Config struct {
	Letters   string        `yaml:"letters"`    // path to letters.json
	PairsDir  string        `yaml:"pairs_dir"`  // directory holding pair files
	Pattern   string        `yaml:"pattern"`    // pair file name, {a} and {b} substituted
	Exclude   []string      `yaml:"exclude"`    // letters dropped before probing
	Algorithm string        `yaml:"algorithm"`  // local-ratio, greedy, matching, exact, auto
	MaxExact  int           `yaml:"max_exact"`  // component size limit for exact search
	Workers   int           `yaml:"workers"`    // concurrent stat calls, 0 = NumCPU
	Output    string        `yaml:"output"`     // text or json
	Log       LoggingConfig `yaml:"log"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the settings for a letters.json next to a public/pairs tree.
func Default() Config {
	return Config{
		Letters:   "letters.json",
		PairsDir:  pairs.DefaultDir,
		Pattern:   pairs.DefaultPattern,
		Algorithm: cover.LocalRatio.String(),
		MaxExact:  cover.DefaultMaxExactVertices,
		Output:    OutputText,
		Log: LoggingConfig{
			Level:  "info",
			Format: FormatJSON,
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLetters); v != "" {
		c.Letters = v
	}
	if v := os.Getenv(EnvPairsDir); v != "" {
		c.PairsDir = v
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks field ranges and enum values.
func (c Config) Validate() error {
	if c.Letters == "" {
		return fmt.Errorf("%w: letters path is empty", ErrInvalid)
	}
	if c.PairsDir == "" {
		return fmt.Errorf("%w: pairs_dir is empty", ErrInvalid)
	}
	if !strings.Contains(c.Pattern, "{a}") || !strings.Contains(c.Pattern, "{b}") {
		return fmt.Errorf("%w: pattern %q must contain {a} and {b}", ErrInvalid, c.Pattern)
	}
	if _, err := cover.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.MaxExact < 1 || c.MaxExact > 64 {
		return fmt.Errorf("%w: max_exact must be in [1,64], got %d", ErrInvalid, c.MaxExact)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalid, OutputText, OutputJSON, c.Output)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	switch c.Log.Format {
	case FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("%w: log format must be %q or %q, got %q", ErrInvalid, FormatJSON, FormatConsole, c.Log.Format)
	}

	return nil
}
