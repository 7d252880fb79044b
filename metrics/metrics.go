// Package metrics exposes Prometheus instrumentation for estimation runs.
//
// Collectors are registered on a caller-supplied Registerer rather than the
// global default, so tests and embedded servers get isolated registries.
package metrics

import (
	"time"

	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values of lvmc_runs_total.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics groups the run collectors.
type Metrics struct {
	samples      prometheus.Counter
	inside       prometheus.Counter
	runs         *prometheus.CounterVec
	duration     prometheus.Histogram
	lastEstimate prometheus.Gauge
}

// New creates and registers all collectors on reg.
// Panics if they are already registered there (programmer error).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		samples: f.NewCounter(prometheus.CounterOpts{
			Name: "lvmc_samples_total",
			Help: "Total samples drawn across all runs",
		}),
		inside: f.NewCounter(prometheus.CounterOpts{
			Name: "lvmc_inside_total",
			Help: "Total samples classified inside the unit circle",
		}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmc_runs_total",
			Help: "Estimation runs by result",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvmc_run_duration_seconds",
			Help:    "Estimation run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
		lastEstimate: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvmc_last_estimate",
			Help: "Most recent π estimate",
		}),
	}
}

// ObserveRun records a successful run.
func (m *Metrics) ObserveRun(run montecarlo.Run, took time.Duration) {
	m.samples.Add(float64(run.N))
	m.inside.Add(float64(run.Inside))
	m.runs.WithLabelValues(ResultOK).Inc()
	m.duration.Observe(took.Seconds())
	m.lastEstimate.Set(run.Estimate)
}

// ObserveFailure records a run that returned an error.
func (m *Metrics) ObserveFailure() {
	m.runs.WithLabelValues(ResultError).Inc()
}
