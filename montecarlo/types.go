package montecarlo

import "math"

// Source is the generator handle the sampler draws from.
// Float64 must return values in [0, 1). *rand.Rand satisfies it.
//
// A Source is owned by exactly one goroutine at a time.
type Source interface {
	Float64() float64
}

// Sample is a point drawn uniformly from [-1, 1] × [-1, 1].
type Sample struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Point is a classified Sample. Only Classify builds one, so Radius ≥ 0 and
// Inside == (Radius <= 1) always hold.
type Point struct {
	Sample
	Radius float64 `json:"r" yaml:"r"`
	Inside bool    `json:"inside" yaml:"inside"`
}

// Run is the outcome of one estimation over N samples.
type Run struct {
	// N is the number of samples drawn.
	N int `json:"samples" yaml:"samples"`

	// Inside is the number of samples with Radius ≤ 1.
	Inside int `json:"inside" yaml:"inside"`

	// Estimate is 4·Inside/N.
	Estimate float64 `json:"estimate" yaml:"estimate"`

	// Points holds every classified sample in draw order. Nil when the
	// estimator was configured without KeepPoints.
	Points []Point `json:"points,omitempty" yaml:"points,omitempty"`
}

// Fraction returns Inside/N, or 0 for an empty run.
func (r Run) Fraction() float64 {
	if r.N == 0 {
		return 0
	}
	return float64(r.Inside) / float64(r.N)
}

// AbsError returns |Estimate − π|.
func (r Run) AbsError() float64 {
	return math.Abs(r.Estimate - math.Pi)
}

// estimateFrom converts an inside-count into the π estimate.
// Caller guarantees n > 0.
func estimateFrom(inside, n int) float64 {
	return 4 * float64(inside) / float64(n)
}
