// Package pure defines configuration options for the pure-strategy search.
//
// Options:
//
//	– Tolerance: payoff comparison tolerance. A deviation must gain more
//	  than Tolerance to disqualify a profile; losses within Tolerance
//	  count as ties and clear the strictness flag.
//
// Errors (sentinel):
//
//	Structural defects surface as the game package's sentinels
//	(game.ErrNilMatrix, game.ErrRowCountMismatch, ...) returned by
//	validation before any search runs. "No pure equilibrium exists" is a
//	nil slice with a nil error — a legitimate outcome, never an error.
package pure

import "github.com/katalvlaran/equilib/game"

// Options configures the behavior of the pure-strategy search.
type Options struct {
	// Tolerance is the payoff comparison tolerance (must be ≥ 0).
	Tolerance float64
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithTolerance overrides the payoff comparison tolerance.
// Panics on negative values (programmer error, matching the library-wide
// option-constructor policy).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic("pure: Tolerance must be non-negative")
		}
		o.Tolerance = tol
	}
}

// DefaultOptions returns the canonical configuration:
//   - Tolerance: game.PayoffTol (1e-6).
func DefaultOptions() Options {
	return Options{Tolerance: game.PayoffTol}
}
