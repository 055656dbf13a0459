package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphcover/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "letters.json", cfg.Letters)
	assert.Equal(t, "public/pairs", cfg.PairsDir)
	assert.Equal(t, "{a}-{b}.dat", cfg.Pattern)
	assert.Equal(t, "local-ratio", cfg.Algorithm)
	assert.Empty(t, cfg.Exclude)
}

func TestLoadFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glyphcover.yaml")
	yml := `
letters: glyphs.json
exclude: [lower_i, lower_j, upper_Xi]
algorithm: auto
workers: 4
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "glyphs.json", cfg.Letters)
	assert.Equal(t, []string{"lower_i", "lower_j", "upper_Xi"}, cfg.Exclude)
	assert.Equal(t, "auto", cfg.Algorithm)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.FormatJSON, cfg.Log.Format, "unset nested field keeps default")
	assert.Equal(t, "public/pairs", cfg.PairsDir)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1"), 0o644))
	_, err = config.Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLetters, "env.json")
	t.Setenv(config.EnvPairsDir, "/tmp/pairs")
	t.Setenv(config.EnvAlgorithm, "greedy")
	t.Setenv(config.EnvWorkers, "3")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.Letters)
	assert.Equal(t, "/tmp/pairs", cfg.PairsDir)
	assert.Equal(t, "greedy", cfg.Algorithm)
	assert.Equal(t, 3, cfg.Workers)

	t.Setenv(config.EnvWorkers, "many")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty letters":  func(c *config.Config) { c.Letters = "" },
		"empty dir":      func(c *config.Config) { c.PairsDir = "" },
		"pattern":        func(c *config.Config) { c.Pattern = "{a}.dat" },
		"algorithm":      func(c *config.Config) { c.Algorithm = "annealing" },
		"max exact low":  func(c *config.Config) { c.MaxExact = 0 },
		"max exact high": func(c *config.Config) { c.MaxExact = 65 },
		"workers":        func(c *config.Config) { c.Workers = -2 },
		"output":         func(c *config.Config) { c.Output = "xml" },
		"log level":      func(c *config.Config) { c.Log.Level = "loud" },
		"log format":     func(c *config.Config) { c.Log.Format = "logfmt" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
