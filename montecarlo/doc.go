// Package montecarlo estimates π by sampling points uniformly from the
// square [-1, 1] × [-1, 1] and counting how many land inside the inscribed
// unit circle.
//
// 🚀 How it works
//
//	Area(circle) / Area(square) = π·1² / 2² = π/4
//
//	so for N independent uniform samples with K of them inside the circle
//
//	π ≈ 4 · K / N
//
// ✨ Key features:
//   - explicit generator handles (Source): no package-global random state
//   - Classify is pure; Inside ⇔ Radius ≤ 1 holds by construction
//   - EstimatePi: single-pass, single-goroutine run that keeps every point
//   - Estimator: chunked parallel run, one derived generator per chunk, so the
//     result depends only on (Seed, ChunkSize, n) and never on Workers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmc/montecarlo"
//
//	// sequential, every point kept for plotting
//	run, err := montecarlo.EstimatePi(montecarlo.NewRand(42), 1000)
//
//	// parallel, counts only
//	opts := montecarlo.DefaultOptions()
//	opts.Seed = 42
//	est, _ := montecarlo.NewEstimator(opts)
//	run, err = est.Estimate(ctx, 10_000_000)
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Never share one Source across
//     goroutines; the Estimator derives an independent stream per chunk.
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(N) with points kept, O(N / ChunkSize) otherwise
package montecarlo
