package convergence

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/lvmc/montecarlo"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoSizes is returned when Config.Sizes is empty.
	ErrNoSizes = errors.New("convergence: no sample sizes")

	// ErrBadTrials is returned when Config.Trials is not positive.
	ErrBadTrials = errors.New("convergence: trials must be positive")
)

// Config describes one convergence study.
type Config struct {
	Sizes   []int // sample counts, each > 0; rows come back in this order
	Trials  int   // independent trials per size, > 0
	Seed    int64 // base seed; 0 means montecarlo.DefaultSeed
	Workers int   // concurrent trials; 0 means runtime.GOMAXPROCS(0)
}

// DefaultConfig returns decades from 100 to 1e6 with 20 trials each.
func DefaultConfig() Config {
	return Config{
		Sizes:   []int{100, 1_000, 10_000, 100_000, 1_000_000},
		Trials:  20,
		Seed:    montecarlo.DefaultSeed,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Row summarizes all trials at one sample size.
type Row struct {
	N            int     `json:"n" yaml:"n"`
	Trials       int     `json:"trials" yaml:"trials"`
	MeanEstimate float64 `json:"mean_estimate" yaml:"mean_estimate"`
	MeanAbsError float64 `json:"mean_abs_error" yaml:"mean_abs_error"`
	StdDev       float64 `json:"std_dev" yaml:"std_dev"`
}

// Study runs cfg.Trials estimations per size and aggregates them.
//
// Errors:
//   - ErrNoSizes, ErrBadTrials for an unusable Config.
//   - montecarlo.ErrInvalidArgument (wrapped) for a size ≤ 0 or negative Workers.
//   - ctx.Err() when cancelled.
//
// Complexity: O(Trials · Σ Sizes) time, O(Trials · len(Sizes)) memory.
func Study(ctx context.Context, cfg Config) ([]Row, error) {
	if len(cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTrials, cfg.Trials)
	}
	for _, n := range cfg.Sizes {
		if n <= 0 {
			return nil, fmt.Errorf("size %d: %w", n, montecarlo.ErrInvalidArgument)
		}
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers %d: %w", cfg.Workers, montecarlo.ErrInvalidArgument)
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = montecarlo.DefaultSeed
	}

	// estimates[i][t] is trial t at size Sizes[i].
	estimates := make([][]float64, len(cfg.Sizes))
	for i := range estimates {
		estimates[i] = make([]float64, cfg.Trials)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, n := range cfg.Sizes {
		for t := 0; t < cfg.Trials; t++ {
			i, n, t := i, n, t
			g.Go(func() error {
				est, err := montecarlo.NewEstimator(montecarlo.Options{
					Seed:    montecarlo.DeriveSeed(seed, uint64(t)),
					Workers: 1,
				})
				if err != nil {
					return err
				}
				run, err := est.Estimate(gctx, n)
				if err != nil {
					return fmt.Errorf("size %d trial %d: %w", n, t, err)
				}
				estimates[i][t] = run.Estimate
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]Row, len(cfg.Sizes))
	for i, n := range cfg.Sizes {
		rows[i] = summarize(n, estimates[i])
	}
	return rows, nil
}

// summarize computes mean, mean absolute error and sample standard deviation.
// A single trial has StdDev 0.
func summarize(n int, est []float64) Row {
	k := float64(len(est))

	var sum, absErr float64
	for _, e := range est {
		sum += e
		absErr += math.Abs(e - math.Pi)
	}
	mean := sum / k

	var sq float64
	for _, e := range est {
		d := e - mean
		sq += d * d
	}
	std := 0.0
	if len(est) > 1 {
		std = math.Sqrt(sq / (k - 1))
	}

	return Row{
		N:            n,
		Trials:       len(est),
		MeanEstimate: mean,
		MeanAbsError: absErr / k,
		StdDev:       std,
	}
}
