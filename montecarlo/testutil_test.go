package montecarlo_test

// scriptedSource replays a fixed sequence of uniform draws, cycling when
// exhausted. Used where a test needs exact sample coordinates.
type scriptedSource struct {
	vals []float64
	next int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return v
}

// uniformFor maps a target coordinate in [-1, 1) back to the draw u in [0, 1)
// that the sampler turns into it.
func uniformFor(coord float64) float64 {
	return (coord + 1) / 2
}

const (
	seedDet  int64 = 42
	epsTiny        = 1e-12
	largeRun       = 200_000
)
