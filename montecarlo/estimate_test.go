package montecarlo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEstimatePi_InvalidCount verifies n ≤ 0 fails before any draw.
func TestEstimatePi_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1, -1000} {
		src := &scriptedSource{vals: []float64{0.5}}
		run, err := montecarlo.EstimatePi(src, n)
		assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument, "n=%d", n)
		assert.Zero(t, run, "no partial result for n=%d", n)
		assert.Zero(t, src.next, "no draw may happen for n=%d", n)
	}
}

// TestEstimatePi_NilSource verifies a nil handle is rejected.
func TestEstimatePi_NilSource(t *testing.T) {
	_, err := montecarlo.EstimatePi(nil, 10)
	assert.ErrorIs(t, err, montecarlo.ErrNilSource)
}

// TestEstimatePi_Golden uses the scripted (0.5,0.5), (0.9,0.9) sequence:
// one inside out of two gives exactly 2.
func TestEstimatePi_Golden(t *testing.T) {
	src := &scriptedSource{vals: []float64{
		uniformFor(0.5), uniformFor(0.5),
		uniformFor(0.9), uniformFor(0.9),
	}}
	run, err := montecarlo.EstimatePi(src, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, run.N)
	assert.Equal(t, 1, run.Inside)
	assert.Equal(t, 2.0, run.Estimate)
	require.Len(t, run.Points, 2)
	assert.True(t, run.Points[0].Inside)
	assert.False(t, run.Points[1].Inside)
	assert.Equal(t, 0.5, run.Fraction())
}

// TestEstimatePi_AllInside pins every draw to the centre: estimate is 4.
func TestEstimatePi_AllInside(t *testing.T) {
	run, err := montecarlo.EstimatePi(&scriptedSource{vals: []float64{0.5}}, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, run.Inside)
	assert.Equal(t, 4.0, run.Estimate)
}

// TestEstimatePi_AllOutside pins every draw to a corner: the estimate is 0,
// a valid result rather than an error, so the range is [0, 4].
func TestEstimatePi_AllOutside(t *testing.T) {
	run, err := montecarlo.EstimatePi(&scriptedSource{vals: []float64{uniformFor(0.9)}}, 1)
	require.NoError(t, err)
	assert.Zero(t, run.Inside)
	assert.Zero(t, run.Estimate)
}

// TestEstimatePi_Bounds checks the estimate lies in [0, 4], the points are
// consistent with the count, and the estimate is near π for a large n.
func TestEstimatePi_Bounds(t *testing.T) {
	run, err := montecarlo.EstimatePi(montecarlo.NewRand(seedDet), largeRun)
	require.NoError(t, err)

	assert.Greater(t, run.Estimate, 0.0)
	assert.LessOrEqual(t, run.Estimate, 4.0)
	require.Len(t, run.Points, largeRun)

	inside := 0
	for _, p := range run.Points {
		if p.Inside {
			inside++
		}
	}
	assert.Equal(t, run.Inside, inside)
	assert.InDelta(t, math.Pi, run.Estimate, 0.02, "σ at n=2e5 is ≈0.0037")
	assert.InDelta(t, run.AbsError(), math.Abs(run.Estimate-math.Pi), epsTiny)
}

// TestEstimatePi_SeedDeterminism locks same-seed runs to identical output.
func TestEstimatePi_SeedDeterminism(t *testing.T) {
	a, err := montecarlo.EstimatePi(montecarlo.NewRand(seedDet), 5000)
	require.NoError(t, err)
	b, err := montecarlo.EstimatePi(montecarlo.NewRand(seedDet), 5000)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestNewRand_ZeroSeedPolicy checks seed 0 maps onto DefaultSeed.
func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	a := montecarlo.NewRand(0)
	b := montecarlo.NewRand(montecarlo.DefaultSeed)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

// TestDeriveSeed_Streams checks derived streams are distinct and stable.
func TestDeriveSeed_Streams(t *testing.T) {
	seen := make(map[int64]uint64)
	for s := uint64(0); s < 1024; s++ {
		d := montecarlo.DeriveSeed(seedDet, s)
		if prev, dup := seen[d]; dup {
			t.Fatalf("streams %d and %d collide on seed %d", prev, s, d)
		}
		seen[d] = s
		assert.Equal(t, d, montecarlo.DeriveSeed(seedDet, s))
	}
	assert.NotEqual(t, montecarlo.DeriveSeed(1, 0), montecarlo.DeriveSeed(2, 0))
}
