package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvmc/convergence"
	"github.com/spf13/cobra"
)

func newConvergeCmd(env *cmdEnv) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "converge",
		Short: "Measure how the estimate error shrinks with the sample count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := env.load(cmd)
			if err != nil {
				return err
			}

			study := convergence.Config{
				Sizes:   cfg.Converge.Sizes,
				Trials:  cfg.Converge.Trials,
				Seed:    resolveSeed(cfg.Estimate.Seed),
				Workers: cfg.Estimate.Workers,
			}
			logger.Info("Convergence study started", "sizes", study.Sizes, "trials", study.Trials)

			rows, err := convergence.Study(cmd.Context(), study)
			if err != nil {
				return err
			}
			for _, r := range rows {
				logger.Debug("Convergence row", "n", r.N, "mean_abs_error", r.MeanAbsError, "stddev", r.StdDev)
			}

			if out == "" || out == "-" {
				return convergence.WriteCSV(cmd.OutOrStdout(), rows)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := convergence.WriteCSV(f, rows); err != nil {
				f.Close()
				return err
			}
			logger.Info("Convergence table written", "path", out, "rows", len(rows))
			return f.Close()
		},
	}

	f := cmd.Flags()
	f.IntSlice("sizes", []int{100, 1_000, 10_000, 100_000, 1_000_000}, "sample counts to study")
	f.Int("trials", 20, "independent runs per sample count")
	f.Int64("seed", 0, "base seed; 0 uses the default seed, -1 derives one from the clock")
	f.Int("workers", 0, "concurrent trials (default: number of CPUs)")
	f.StringVarP(&out, "out", "o", "", "CSV output file (default: stdout)")
	return cmd
}
