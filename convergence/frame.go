package convergence

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the study table.
const (
	ColN            = "n"
	ColTrials       = "trials"
	ColMeanEstimate = "mean_estimate"
	ColMeanAbsError = "mean_abs_error"
	ColStdDev       = "std_dev"
)

// Frame lays rows out as a dataframe, one record per sample size.
// Float columns hold shortest round-trip decimal strings so small errors
// survive the CSV.
func Frame(rows []Row) dataframe.DataFrame {
	ns := make([]int, len(rows))
	trials := make([]int, len(rows))
	means := make([]string, len(rows))
	errs := make([]string, len(rows))
	stds := make([]string, len(rows))
	for i, r := range rows {
		ns[i] = r.N
		trials[i] = r.Trials
		means[i] = strconv.FormatFloat(r.MeanEstimate, 'g', -1, 64)
		errs[i] = strconv.FormatFloat(r.MeanAbsError, 'g', -1, 64)
		stds[i] = strconv.FormatFloat(r.StdDev, 'g', -1, 64)
	}

	return dataframe.New(
		series.New(ns, series.Int, ColN),
		series.New(trials, series.Int, ColTrials),
		series.New(means, series.String, ColMeanEstimate),
		series.New(errs, series.String, ColMeanAbsError),
		series.New(stds, series.String, ColStdDev),
	)
}

// WriteCSV writes the study table with a header row.
func WriteCSV(w io.Writer, rows []Row) error {
	df := Frame(rows)
	if df.Err != nil {
		return fmt.Errorf("building study frame: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("writing study csv: %w", err)
	}
	return nil
}
