package montecarlo_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEstimator(t *testing.T, mutate func(*montecarlo.Options)) *montecarlo.Estimator {
	t.Helper()
	opts := montecarlo.DefaultOptions()
	opts.Seed = seedDet
	if mutate != nil {
		mutate(&opts)
	}
	est, err := montecarlo.NewEstimator(opts)
	require.NoError(t, err)
	return est
}

// TestEstimator_WorkerIndependence checks that the estimate and the points
// do not depend on how many workers ran the chunks.
func TestEstimator_WorkerIndependence(t *testing.T) {
	const n = 50_000
	var base montecarlo.Run
	for i, workers := range []int{1, 2, 3, 8, 32} {
		est := newEstimator(t, func(o *montecarlo.Options) {
			o.Workers = workers
			o.ChunkSize = 1000
			o.KeepPoints = true
		})
		run, err := est.Estimate(context.Background(), n)
		require.NoError(t, err)
		if i == 0 {
			base = run
			continue
		}
		assert.Equal(t, base.Inside, run.Inside, "workers=%d", workers)
		assert.Equal(t, base.Estimate, run.Estimate, "workers=%d", workers)
		assert.Equal(t, base.Points, run.Points, "workers=%d", workers)
	}
	assert.InDelta(t, math.Pi, base.Estimate, 0.05)
}

// TestEstimator_InvalidCount mirrors the sequential contract.
func TestEstimator_InvalidCount(t *testing.T) {
	est := newEstimator(t, nil)
	for _, n := range []int{0, -3} {
		_, err := est.Estimate(context.Background(), n)
		assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument)
	}
}

// TestEstimator_InvalidOptions rejects negative workers and chunk sizes.
func TestEstimator_InvalidOptions(t *testing.T) {
	opts := montecarlo.DefaultOptions()
	opts.Workers = -1
	_, err := montecarlo.NewEstimator(opts)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument)

	opts = montecarlo.DefaultOptions()
	opts.ChunkSize = -10
	_, err = montecarlo.NewEstimator(opts)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument)
}

// TestEstimator_ZeroValuesNormalized fills defaults for zero options.
func TestEstimator_ZeroValuesNormalized(t *testing.T) {
	est, err := montecarlo.NewEstimator(montecarlo.Options{})
	require.NoError(t, err)
	got := est.Options()
	assert.Equal(t, montecarlo.DefaultSeed, got.Seed)
	assert.Equal(t, montecarlo.DefaultChunkSize, got.ChunkSize)
	assert.Positive(t, got.Workers)
}

// TestEstimator_PointsDiscarded keeps only counts when KeepPoints is off.
func TestEstimator_PointsDiscarded(t *testing.T) {
	est := newEstimator(t, nil)
	run, err := est.Estimate(context.Background(), 10_000)
	require.NoError(t, err)
	assert.Nil(t, run.Points)
	assert.Equal(t, 10_000, run.N)
	assert.Greater(t, run.Estimate, 0.0)
	assert.LessOrEqual(t, run.Estimate, 4.0)
}

// TestEstimator_OnChunk checks the hook sees every chunk exactly once.
func TestEstimator_OnChunk(t *testing.T) {
	var calls, last, total atomic.Int64
	est := newEstimator(t, func(o *montecarlo.Options) {
		o.ChunkSize = 100
		o.Workers = 4
		o.OnChunk = func(done, all int) {
			calls.Add(1)
			last.Store(int64(done))
			total.Store(int64(all))
		}
	})
	_, err := est.Estimate(context.Background(), 1050)
	require.NoError(t, err)

	assert.Equal(t, int64(11), calls.Load(), "⌈1050/100⌉ chunks")
	assert.Equal(t, int64(11), last.Load())
	assert.Equal(t, int64(11), total.Load())
}

// TestEstimator_Cancelled returns the context error and no partial result.
func TestEstimator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	est := newEstimator(t, func(o *montecarlo.Options) { o.ChunkSize = 10 })
	run, err := est.Estimate(ctx, 100_000)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, run)
}

// TestEstimator_SeedChangesResult guards against the seed being ignored.
func TestEstimator_SeedChangesResult(t *testing.T) {
	a := newEstimator(t, func(o *montecarlo.Options) { o.Seed = 1; o.KeepPoints = true })
	b := newEstimator(t, func(o *montecarlo.Options) { o.Seed = 2; o.KeepPoints = true })

	ra, err := a.Estimate(context.Background(), 500)
	require.NoError(t, err)
	rb, err := b.Estimate(context.Background(), 500)
	require.NoError(t, err)
	assert.NotEqual(t, ra.Points, rb.Points)
}
