// Package export turns estimation results into artifacts for other tools:
// a per-point CSV table for an external charting facility, and run
// summaries rendered as text, JSON or YAML.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/katalvlaran/lvmc/montecarlo"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for an output format other than text, json or yaml.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrNoPoints is returned when a run carries no points to export.
	ErrNoPoints = errors.New("export: run has no points")
)

// Format selects the summary encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Summary is the point-free description of a run.
type Summary struct {
	ID         string  `json:"id,omitempty" yaml:"id,omitempty"`
	Samples    int     `json:"samples" yaml:"samples"`
	Inside     int     `json:"inside" yaml:"inside"`
	Estimate   float64 `json:"estimate" yaml:"estimate"`
	AbsError   float64 `json:"abs_error" yaml:"abs_error"`
	Seed       int64   `json:"seed" yaml:"seed"`
	Workers    int     `json:"workers" yaml:"workers"`
	DurationMS float64 `json:"duration_ms" yaml:"duration_ms"`
}

// Summarize copies the counts of run into a Summary.
// Seed, Workers, ID and DurationMS are left for the caller.
func Summarize(run montecarlo.Run) Summary {
	return Summary{
		Samples:  run.N,
		Inside:   run.Inside,
		Estimate: run.Estimate,
		AbsError: run.AbsError(),
	}
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s Summary, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding json summary: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml summary: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("closing yaml encoder: %w", err)
		}
	case FormatText:
		if s.ID != "" {
			if _, err := fmt.Fprintf(w, "run:       %s\n", s.ID); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			"samples:   %d\ninside:    %d\nestimate:  %.6f\nabs error: %.6f\nseed:      %d\nworkers:   %d\nduration:  %.3fms\n",
			s.Samples, s.Inside, s.Estimate, s.AbsError, s.Seed, s.Workers, s.DurationMS)
		if err != nil {
			return fmt.Errorf("writing text summary: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return nil
}

// PointsFrame lays the points of run out as columns x, y, r, inside.
// Coordinates and radii are stored as shortest round-trip decimal strings,
// so a reader parsing the CSV gets the exact float64 back and r ≤ 1 agrees
// with the inside column.
func PointsFrame(run montecarlo.Run) dataframe.DataFrame {
	xs := make([]string, len(run.Points))
	ys := make([]string, len(run.Points))
	rs := make([]string, len(run.Points))
	in := make([]bool, len(run.Points))
	for i, p := range run.Points {
		xs[i] = formatFloat(p.X)
		ys[i] = formatFloat(p.Y)
		rs[i] = formatFloat(p.Radius)
		in[i] = p.Inside
	}
	return dataframe.New(
		series.New(xs, series.String, "x"),
		series.New(ys, series.String, "y"),
		series.New(rs, series.String, "r"),
		series.New(in, series.Bool, "inside"),
	)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WritePointsCSV writes every point of run with a header row.
// Returns ErrNoPoints when the run was produced without KeepPoints.
func WritePointsCSV(w io.Writer, run montecarlo.Run) error {
	if len(run.Points) == 0 {
		return ErrNoPoints
	}
	df := PointsFrame(run)
	if df.Err != nil {
		return fmt.Errorf("building points frame: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("writing points csv: %w", err)
	}
	return nil
}
