package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/katalvlaran/lvmc/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvmc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoad_Defaults runs from an empty directory so no file is found.
func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Estimate.Samples)
	assert.Equal(t, int64(0), cfg.Estimate.Seed)
	assert.Equal(t, runtime.NumCPU(), cfg.Estimate.Workers)
	assert.Equal(t, 4096, cfg.Estimate.ChunkSize)
	assert.Equal(t, "text", cfg.Estimate.Format)
	assert.Equal(t, []int{100, 1_000, 10_000, 100_000, 1_000_000}, cfg.Converge.Sizes)
	assert.Equal(t, 20, cfg.Converge.Trials)
	assert.Empty(t, cfg.DB.Path)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
estimate:
  samples: 5000
  seed: 7
  format: json
converge:
  sizes: [10, 20]
  trials: 3
db:
  path: /tmp/runs.db
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Estimate.Samples)
	assert.Equal(t, int64(7), cfg.Estimate.Seed)
	assert.Equal(t, "json", cfg.Estimate.Format)
	assert.Equal(t, []int{10, 20}, cfg.Converge.Sizes)
	assert.Equal(t, 3, cfg.Converge.Trials)
	assert.Equal(t, "/tmp/runs.db", cfg.DB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 4096, cfg.Estimate.ChunkSize, "unset keys keep defaults")
}

// TestLoad_Precedence checks flag > env > file > default.
func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "estimate:\n  samples: 100\n  seed: 1\n  workers: 2\n")
	t.Setenv("LVMC_ESTIMATE_SEED", "99")
	t.Setenv("LVMC_ESTIMATE_WORKERS", "3")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("samples", 0, "")
	flags.Int64("seed", 0, "")
	flags.Int("workers", 0, "")
	require.NoError(t, flags.Parse([]string{"--seed=123"}))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Estimate.Samples, "file beats an unchanged flag")
	assert.Equal(t, int64(123), cfg.Estimate.Seed, "changed flag beats env")
	assert.Equal(t, 3, cfg.Estimate.Workers, "env beats file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "estimate:\n  samples: 0\n")
	_, err := config.Load(path, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	base, err := config.Load("", nil)
	require.NoError(t, err)
	require.NoError(t, base.Validate())

	cases := map[string]func(*config.Config){
		"negative workers": func(c *config.Config) { c.Estimate.Workers = -1 },
		"negative chunk":   func(c *config.Config) { c.Estimate.ChunkSize = -1 },
		"seed below -1":    func(c *config.Config) { c.Estimate.Seed = -2 },
		"bad format":       func(c *config.Config) { c.Estimate.Format = "xml" },
		"no sizes":         func(c *config.Config) { c.Converge.Sizes = nil },
		"zero size":        func(c *config.Config) { c.Converge.Sizes = []int{10, 0} },
		"zero trials":      func(c *config.Config) { c.Converge.Trials = 0 },
		"bad level":        func(c *config.Config) { c.Log.Level = "loud" },
		"bad log format":   func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			c.Converge.Sizes = append([]int(nil), base.Converge.Sizes...)
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
