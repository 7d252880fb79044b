// Package lvmc is a Monte Carlo estimator of π together with the tooling
// around it: a parallel deterministic estimator, convergence studies, CSV
// and summary exports, run history, metrics, an HTTP API and a CLI.
//
// 🚀 The method
//
//	Draw n points uniformly from the square [-1,1)×[-1,1). The share that
//	lands inside the unit circle approaches π/4, so
//
//		π ≈ 4 · inside / n
//
//	with a standard error of about 1.64/√n.
//
// ✨ Packages
//
//	montecarlo/  — Sample, Classify, EstimatePi and the chunked parallel Estimator
//	convergence/ — repeated trials per sample size, summarized as a table
//	export/      — per-point CSV and text/JSON/YAML run summaries
//	store/       — SQLite run history with embedded migrations
//	metrics/     — Prometheus collectors for runs
//	config/      — defaults, YAML file, LVMC_* env and flags
//	server/      — HTTP API on gin
//	exercises/   — small warm-up drills
//	cmd/lvmc/    — the command-line front end
//
// Quick example:
//
//	run, err := montecarlo.EstimatePi(montecarlo.NewRand(42), 1_000_000)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("π ≈ %.4f\n", run.Estimate)
package lvmc
