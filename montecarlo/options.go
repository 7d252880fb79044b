package montecarlo

import (
	"fmt"
	"runtime"
)

// DefaultChunkSize is the number of samples assigned to one derived stream.
const DefaultChunkSize = 4096

// Options configures an Estimator.
//
// Fields:
//   - Seed       — base seed; 0 means DefaultSeed. Chunk i draws from the
//     stream DeriveSeed(Seed, i).
//   - Workers    — maximum concurrent chunks; 0 means runtime.GOMAXPROCS(0).
//     Has no influence on the result, only on wall time.
//   - ChunkSize  — samples per chunk; 0 means DefaultChunkSize. Changing it
//     changes the stream layout and therefore the exact estimate.
//   - KeepPoints — keep every classified point in Run.Points (O(n) memory).
//   - OnChunk    — optional progress hook, called once per finished chunk with
//     the number of finished chunks and the total. Calls are serialized.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Seed = 7
//	opts.Workers = 4
//	est, err := NewEstimator(opts)
type Options struct {
	Seed       int64
	Workers    int
	ChunkSize  int
	KeepPoints bool
	OnChunk    func(done, total int)
}

// DefaultOptions returns the documented defaults: DefaultSeed, one worker
// per available CPU, DefaultChunkSize, points discarded, no hook.
func DefaultOptions() Options {
	return Options{
		Seed:      DefaultSeed,
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
	}
}

// normalize validates o and fills zero values with defaults.
func (o Options) normalize() (Options, error) {
	if o.Workers < 0 {
		return o, fmt.Errorf("%w: workers must be ≥ 0, got %d", ErrInvalidArgument, o.Workers)
	}
	if o.ChunkSize < 0 {
		return o, fmt.Errorf("%w: chunk size must be ≥ 0, got %d", ErrInvalidArgument, o.ChunkSize)
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	o.Seed = normalizeSeed(o.Seed)
	return o, nil
}
