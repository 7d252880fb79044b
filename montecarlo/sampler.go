package montecarlo

import (
	"fmt"
	"math"
)

// Sampler draws Samples from a single Source.
// It is not safe for concurrent use; create one Sampler per goroutine.
type Sampler struct {
	src Source
}

// NewSampler wraps src. Returns ErrNilSource when src is nil.
func NewSampler(src Source) (*Sampler, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return &Sampler{src: src}, nil
}

// Sample draws x then y, each mapped from [0, 1) to [-1, 1) as 2·u − 1.
// Advances the underlying Source by exactly two draws.
func (s *Sampler) Sample() Sample {
	x := 2*s.src.Float64() - 1
	y := 2*s.src.Float64() - 1
	return Sample{X: x, Y: y}
}

// Next draws one Sample and classifies it.
func (s *Sampler) Next() Point {
	return Classify(s.Sample())
}

// Classify computes the distance of s from the origin and whether it lies
// in the closed unit disc. The comparison is inclusive: r == 1 is inside.
//
// Pure function; Complexity: O(1).
func Classify(s Sample) Point {
	r := math.Sqrt(s.X*s.X + s.Y*s.Y)
	return Point{Sample: s, Radius: r, Inside: r <= 1.0}
}

// EstimatePi draws n samples from src, classifies each and returns
// 4·inside/n together with every classified point in draw order.
//
// Errors:
//   - ErrInvalidArgument if n ≤ 0 (nothing is drawn).
//   - ErrNilSource if src is nil.
//
// Determinism: the result is a function of the draws consumed from src only.
//
// Complexity: O(n) time, O(n) memory.
func EstimatePi(src Source, n int) (Run, error) {
	if n <= 0 {
		return Run{}, fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidArgument, n)
	}
	sampler, err := NewSampler(src)
	if err != nil {
		return Run{}, err
	}

	points := make([]Point, n)
	inside := 0
	for i := 0; i < n; i++ {
		p := sampler.Next()
		if p.Inside {
			inside++
		}
		points[i] = p
	}

	return Run{
		N:        n,
		Inside:   inside,
		Estimate: estimateFrom(inside, n),
		Points:   points,
	}, nil
}
