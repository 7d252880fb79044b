// Package convergence measures how the Monte Carlo π estimate tightens as
// the sample count grows.
//
// For every size n in Config.Sizes, Trials independent estimations are run.
// Trial t uses the seed DeriveSeed(Config.Seed, t) at every size, so rows
// differ only by n. Each Row reports the mean estimate, the mean absolute
// error |estimate − π| and the sample standard deviation of the estimates.
//
// The error is statistical: it shrinks on average like 1/√n, and a single
// trial may still land closer to π at a smaller n. Compare MeanAbsError
// across rows, never single estimates.
//
//	rows, err := convergence.Study(ctx, convergence.DefaultConfig())
//	_ = convergence.WriteCSV(os.Stdout, rows)
package convergence
