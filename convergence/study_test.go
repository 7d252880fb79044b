package convergence_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvmc/convergence"
	"github.com/katalvlaran/lvmc/montecarlo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStudy_ErrorShrinks checks the mean absolute error falls from n=100 to
// n=100000. Expected MAE is ≈0.13 and ≈0.004 respectively.
func TestStudy_ErrorShrinks(t *testing.T) {
	cfg := convergence.Config{
		Sizes:   []int{100, 10_000, 100_000},
		Trials:  20,
		Seed:    7,
		Workers: 4,
	}
	rows, err := convergence.Study(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, r := range rows {
		assert.Equal(t, cfg.Sizes[i], r.N)
		assert.Equal(t, cfg.Trials, r.Trials)
		assert.Greater(t, r.MeanEstimate, 0.0)
		assert.LessOrEqual(t, r.MeanEstimate, 4.0)
		assert.GreaterOrEqual(t, r.StdDev, 0.0)
	}
	assert.Less(t, rows[2].MeanAbsError, rows[0].MeanAbsError)
	assert.Less(t, rows[2].StdDev, rows[0].StdDev)
	assert.InDelta(t, math.Pi, rows[2].MeanEstimate, 0.01)
}

// TestStudy_Deterministic repeats a study and expects identical rows,
// regardless of the worker count.
func TestStudy_Deterministic(t *testing.T) {
	cfg := convergence.Config{Sizes: []int{500, 5000}, Trials: 6, Seed: 99, Workers: 1}
	a, err := convergence.Study(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 8
	b, err := convergence.Study(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestStudy_SingleTrial has zero spread by definition.
func TestStudy_SingleTrial(t *testing.T) {
	rows, err := convergence.Study(context.Background(), convergence.Config{Sizes: []int{1000}, Trials: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].StdDev)
	assert.InDelta(t, math.Abs(rows[0].MeanEstimate-math.Pi), rows[0].MeanAbsError, 1e-12)
}

func TestStudy_InvalidConfig(t *testing.T) {
	ctx := context.Background()

	_, err := convergence.Study(ctx, convergence.Config{Trials: 3})
	assert.ErrorIs(t, err, convergence.ErrNoSizes)

	_, err = convergence.Study(ctx, convergence.Config{Sizes: []int{10}, Trials: 0})
	assert.ErrorIs(t, err, convergence.ErrBadTrials)

	_, err = convergence.Study(ctx, convergence.Config{Sizes: []int{10, 0}, Trials: 2})
	assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument)

	_, err = convergence.Study(ctx, convergence.Config{Sizes: []int{10}, Trials: 2, Workers: -1})
	assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument)
}

func TestStudy_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := convergence.Study(ctx, convergence.Config{Sizes: []int{1000}, Trials: 4})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestWriteCSV checks the header and one record per row.
func TestWriteCSV(t *testing.T) {
	rows := []convergence.Row{
		{N: 100, Trials: 2, MeanEstimate: 3.1, MeanAbsError: 0.05, StdDev: 0.1},
		{N: 1000, Trials: 2, MeanEstimate: 3.14, MeanAbsError: 0.01, StdDev: 0.02},
	}
	var buf bytes.Buffer
	require.NoError(t, convergence.WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"n", "trials", "mean_estimate", "mean_abs_error", "std_dev"}, records[0])
	assert.Equal(t, "100", records[1][0])
	assert.Equal(t, "1000", records[2][0])
}

func TestFrame_Dims(t *testing.T) {
	df := convergence.Frame([]convergence.Row{{N: 10, Trials: 1}})
	require.NoError(t, df.Err)
	r, c := df.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 5, c)
}

// TestWriteCSV_SmallErrors keeps full precision for errors far below 1e-6.
func TestWriteCSV_SmallErrors(t *testing.T) {
	row := convergence.Row{N: 10_000_000, Trials: 20, MeanEstimate: 3.14159012345678, MeanAbsError: 1.2345e-5, StdDev: 1.6e-7}
	var buf bytes.Buffer
	require.NoError(t, convergence.WriteCSV(&buf, []convergence.Row{row}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	for col, want := range map[int]float64{2: row.MeanEstimate, 3: row.MeanAbsError, 4: row.StdDev} {
		got, err := strconv.ParseFloat(records[1][col], 64)
		require.NoError(t, err, records[1][col])
		assert.Equal(t, want, got, "column %s", records[0][col])
	}
}
