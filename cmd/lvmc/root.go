package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/lvmc/config"
	"github.com/katalvlaran/lvmc/store"
	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree. Each call returns a fresh tree so
// tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "lvmc",
		Short:         "Monte Carlo estimation of π",
		Long:          "lvmc samples points in the square [-1,1)² and estimates π from the share that lands inside the unit circle.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a YAML config file (default: ./lvmc.yaml or ~/.config/lvmc/lvmc.yaml)")
	pf.String("db", "", "SQLite file for run history (empty disables it)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	env := &cmdEnv{configPath: &configPath}
	root.AddCommand(
		newEstimateCmd(env),
		newConvergeCmd(env),
		newHistoryCmd(env),
		newServeCmd(env),
		newDrillCmd(),
	)
	return root
}

// cmdEnv carries what every subcommand resolves before running.
type cmdEnv struct {
	configPath *string
}

// load resolves configuration for cmd, whose flag set already includes the
// inherited persistent flags, and builds a logger writing to stderr.
func (e *cmdEnv) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(*e.configPath, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, newLogger(cfg.Log, cmd.ErrOrStderr()), nil
}

// openStore returns nil when run history is disabled.
func openStore(cfg config.Config, logger *slog.Logger) (*store.Repository, error) {
	if cfg.DB.Path == "" {
		return nil, nil
	}
	db, err := store.Open(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening run history: %w", err)
	}
	logger.Debug("Run history opened", "path", cfg.DB.Path)
	return store.NewRepository(db), nil
}

func newLogger(lc config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// resolveSeed turns config.RandomSeed into a time-derived seed.
func resolveSeed(seed int64) int64 {
	if seed == config.RandomSeed {
		return time.Now().UnixNano()
	}
	return seed
}
