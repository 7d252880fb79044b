package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/katalvlaran/lvmc/export"
	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/katalvlaran/lvmc/store"
	"github.com/spf13/cobra"
)

func newEstimateCmd(env *cmdEnv) *cobra.Command {
	var (
		pointsOut string
		progress  bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate π from n random samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := env.load(cmd)
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(cfg.Estimate.Format)
			if err != nil {
				return err
			}

			opts := montecarlo.Options{
				Seed:       resolveSeed(cfg.Estimate.Seed),
				Workers:    cfg.Estimate.Workers,
				ChunkSize:  cfg.Estimate.ChunkSize,
				KeepPoints: cfg.Estimate.KeepPoints || pointsOut != "",
			}
			n := cfg.Estimate.Samples

			repo, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			if repo != nil {
				defer repo.Close()
			}

			var bar *pb.ProgressBar
			if progress {
				chunk := opts.ChunkSize
				if chunk == 0 {
					chunk = montecarlo.DefaultChunkSize
				}
				bar = pb.New((n + chunk - 1) / chunk)
				bar.SetWriter(cmd.ErrOrStderr())
				bar.Start()
				opts.OnChunk = func(done, _ int) { bar.SetCurrent(int64(done)) }
			}

			est, err := montecarlo.NewEstimator(opts)
			if err != nil {
				return err
			}
			used := est.Options()
			logger.Debug("Estimating", "samples", n, "seed", used.Seed, "workers", used.Workers, "chunk_size", used.ChunkSize)

			start := time.Now()
			run, err := est.Estimate(cmd.Context(), n)
			took := time.Since(start)
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				return fmt.Errorf("estimating π: %w", err)
			}
			logger.Info("Estimate completed", "samples", run.N, "estimate", run.Estimate, "duration", took)

			summary := export.Summarize(run)
			summary.Seed = used.Seed
			summary.Workers = used.Workers
			summary.DurationMS = float64(took.Microseconds()) / 1000

			if repo != nil {
				rec, err := repo.SaveRun(cmd.Context(), store.Record{
					Samples:  run.N,
					Inside:   run.Inside,
					Estimate: run.Estimate,
					AbsError: run.AbsError(),
					Seed:     used.Seed,
					Workers:  used.Workers,
					Duration: took,
				})
				if err != nil {
					return err
				}
				summary.ID = rec.ID.String()
			}

			if pointsOut != "" {
				if err := writePoints(pointsOut, run); err != nil {
					return err
				}
				logger.Info("Points written", "path", pointsOut, "points", len(run.Points))
			}
			return export.Encode(cmd.OutOrStdout(), summary, format)
		},
	}

	f := cmd.Flags()
	f.Int("samples", 1000, "number of samples to draw (must be > 0)")
	f.Int64("seed", 0, "base seed; 0 uses the default seed, -1 derives one from the clock")
	f.Int("workers", 0, "concurrent chunks (default: number of CPUs)")
	f.Int("chunk-size", montecarlo.DefaultChunkSize, "samples per derived random stream")
	f.String("format", "text", "summary format: text, json or yaml")
	f.StringVar(&pointsOut, "points-out", "", "write every sample as CSV (x,y,r,inside) to this file")
	f.BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	return cmd
}

func writePoints(path string, run montecarlo.Run) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating points file: %w", err)
	}
	if err := export.WritePointsCSV(f, run); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
