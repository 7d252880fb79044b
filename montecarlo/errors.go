package montecarlo

import "errors"

// Sentinel errors. Callers match them with errors.Is; returned values may be
// wrapped with the offending argument for context.
var (
	// ErrInvalidArgument is returned when the sample count is not positive
	// or an option holds a nonsensical value. It is reported before any draw.
	ErrInvalidArgument = errors.New("montecarlo: invalid argument")

	// ErrNilSource indicates that a nil generator handle was supplied.
	ErrNilSource = errors.New("montecarlo: nil source")
)
