package solve

import "fmt"

// Option configures Solve via functional arguments. An invalid Option
// (e.g. a negative attempt budget) is recorded internally and surfaced as
// ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds parameters tuning backtracking behavior.
type Options struct {
	// MaxAttempts bounds the total number of candidate placements tried
	// across the whole backtracking search. 0 means unlimited.
	MaxAttempts int

	err error
}

// DefaultOptions returns an Options with no attempt budget.
func DefaultOptions() Options {
	return Options{MaxAttempts: 0}
}

// WithMaxAttempts caps the number of candidate placements Solve will try
// before giving up, as a guard against pathological backtracking.
//
//	n > 0: limit to n attempts
//	n == 0: explicit "no limit"
//	n < 0: invalid option -> ErrOptionViolation
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxAttempts cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxAttempts = n
		}
	}
}
