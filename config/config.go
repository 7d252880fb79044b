// Package config loads lvmc settings from defaults, an optional YAML file,
// LVMC_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. LVMC_ESTIMATE_SAMPLES.
const EnvPrefix = "LVMC"

// RandomSeed asks the CLI for a time-derived seed instead of a fixed one.
const RandomSeed int64 = -1

type EstimateConfig struct {
	Samples    int    `mapstructure:"samples"`
	Seed       int64  `mapstructure:"seed"`
	Workers    int    `mapstructure:"workers"`
	ChunkSize  int    `mapstructure:"chunk_size"`
	KeepPoints bool   `mapstructure:"keep_points"`
	Format     string `mapstructure:"format"`
}

type ConvergeConfig struct {
	Sizes  []int `mapstructure:"sizes"`
	Trials int   `mapstructure:"trials"`
}

type DBConfig struct {
	Path string `mapstructure:"path"` // empty disables run history
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the fully resolved configuration.
type Config struct {
	Estimate EstimateConfig `mapstructure:"estimate"`
	Converge ConvergeConfig `mapstructure:"converge"`
	DB       DBConfig       `mapstructure:"db"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// FlagKeys maps command-line flag names to configuration keys. Load binds
// every flag of the given set that appears here.
var FlagKeys = map[string]string{
	"samples":     "estimate.samples",
	"seed":        "estimate.seed",
	"workers":     "estimate.workers",
	"chunk-size":  "estimate.chunk_size",
	"keep-points": "estimate.keep_points",
	"format":      "estimate.format",
	"sizes":       "converge.sizes",
	"trials":      "converge.trials",
	"db":          "db.path",
	"addr":        "server.addr",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("estimate.samples", 1000)
	v.SetDefault("estimate.seed", 0)
	v.SetDefault("estimate.workers", runtime.NumCPU())
	v.SetDefault("estimate.chunk_size", 4096)
	v.SetDefault("estimate.keep_points", false)
	v.SetDefault("estimate.format", "text")
	v.SetDefault("converge.sizes", []int{100, 1_000, 10_000, 100_000, 1_000_000})
	v.SetDefault("converge.trials", 20)
	v.SetDefault("db.path", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load resolves the configuration.
//
// Parameters:
//   - path: explicit YAML file; when empty, "lvmc.yaml" is looked up in the
//     working directory and $HOME/.config/lvmc, and a missing file is not an error.
//   - flags: optional flag set; only flags the user changed override lower layers.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("lvmc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "lvmc"))
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("reading config file : %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"text", "json"}
	valueFormats = []string{"text", "json", "yaml"}
)

// Validate reports the first out-of-range setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Estimate.Samples <= 0:
		return fmt.Errorf("%w: estimate.samples must be positive, got %d", ErrInvalidConfig, c.Estimate.Samples)
	case c.Estimate.Workers < 0:
		return fmt.Errorf("%w: estimate.workers must be ≥ 0, got %d", ErrInvalidConfig, c.Estimate.Workers)
	case c.Estimate.ChunkSize < 0:
		return fmt.Errorf("%w: estimate.chunk_size must be ≥ 0, got %d", ErrInvalidConfig, c.Estimate.ChunkSize)
	case c.Estimate.Seed < RandomSeed:
		return fmt.Errorf("%w: estimate.seed must be ≥ -1, got %d", ErrInvalidConfig, c.Estimate.Seed)
	case !slices.Contains(valueFormats, strings.ToLower(c.Estimate.Format)):
		return fmt.Errorf("%w: estimate.format %q", ErrInvalidConfig, c.Estimate.Format)
	case len(c.Converge.Sizes) == 0:
		return fmt.Errorf("%w: converge.sizes is empty", ErrInvalidConfig)
	case c.Converge.Trials <= 0:
		return fmt.Errorf("%w: converge.trials must be positive, got %d", ErrInvalidConfig, c.Converge.Trials)
	case !slices.Contains(logLevels, strings.ToLower(c.Log.Level)):
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	case !slices.Contains(logFormats, strings.ToLower(c.Log.Format)):
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	for _, n := range c.Converge.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: converge.sizes entry %d must be positive", ErrInvalidConfig, n)
		}
	}
	return nil
}
