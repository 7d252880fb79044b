package montecarlo

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Estimator runs chunked, parallel estimations.
//
// Description:
//
//	n samples are split into ⌈n/ChunkSize⌉ chunks. Chunk i owns a fresh
//	generator seeded with DeriveSeed(Seed, i), draws its samples, and
//	reports its inside-count into slot i. The final count is the sum of all
//	slots, so scheduling order and Workers never affect the estimate.
//
// Thread Safety:
//
//	An Estimator holds only immutable configuration; Estimate may be called
//	from several goroutines at once.
type Estimator struct {
	opts Options
}

// NewEstimator validates opts and returns a ready Estimator.
func NewEstimator(opts Options) (*Estimator, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return &Estimator{opts: o}, nil
}

// Options returns the effective (normalized) configuration.
func (e *Estimator) Options() Options {
	return e.opts
}

// Estimate draws n samples and returns the π estimate.
//
// Errors:
//   - ErrInvalidArgument if n ≤ 0, before any chunk starts.
//   - ctx.Err() if ctx is cancelled before every chunk finished; no partial
//     result is returned.
//
// Complexity: O(n) time, O(n/ChunkSize) memory (+O(n) with KeepPoints).
func (e *Estimator) Estimate(ctx context.Context, n int) (Run, error) {
	if n <= 0 {
		return Run{}, fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidArgument, n)
	}

	size := e.opts.ChunkSize
	chunks := (n + size - 1) / size
	counts := make([]int, chunks)

	var points []Point
	if e.opts.KeepPoints {
		points = make([]Point, n)
	}

	var (
		mu       sync.Mutex
		finished int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)

	launched := 0
	for c := 0; c < chunks; c++ {
		if gctx.Err() != nil {
			break
		}
		chunk := c
		launched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lo := chunk * size
			hi := min(lo+size, n)

			s := &Sampler{src: streamRand(e.opts.Seed, uint64(chunk))}
			inside := 0
			for i := lo; i < hi; i++ {
				p := s.Next()
				if p.Inside {
					inside++
				}
				if points != nil {
					points[i] = p
				}
			}
			counts[chunk] = inside

			if e.opts.OnChunk != nil {
				mu.Lock()
				finished++
				e.opts.OnChunk(finished, chunks)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Run{}, err
	}
	if launched < chunks {
		return Run{}, ctx.Err()
	}

	inside := 0
	for _, k := range counts {
		inside += k
	}

	return Run{
		N:        n,
		Inside:   inside,
		Estimate: estimateFrom(inside, n),
		Points:   points,
	}, nil
}
