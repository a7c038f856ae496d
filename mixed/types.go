// Package mixed defines configuration, caps and sentinel errors for the
// two-player mixed-strategy solver.
//
// Options:
//
//	– Tolerance:      payoff comparison tolerance for profile verification.
//	– MaxSupportSize: upper bound on enumerated support sizes (tractability
//	                  cap; completeness is not guaranteed beyond it).
//
// Errors (sentinel):
//
//	– ErrTwoPlayerOnly when the matrix does not describe a 2-player game.
//	– Structural defects surface as the game package's sentinels.
//	– Numeric degeneracy (singular systems, zero denominators) is NOT an
//	  error: the affected branch simply yields no candidate.
package mixed

import (
	"errors"

	"github.com/katalvlaran/equilib/game"
)

// ErrTwoPlayerOnly is returned when Find receives a matrix whose player
// count is not exactly 2. Use package nplayer for larger games.
var ErrTwoPlayerOnly = errors.New("mixed: solver requires exactly two players")

// Search caps and numeric policy. Exported by design: callers must be able
// to see (and tests assert) the exact bounds of the search.
const (
	// MinSupportSize is the smallest enumerated support: singleton supports
	// are pure strategies and belong to package pure.
	MinSupportSize = 2

	// MaxSupportSize caps enumerated supports. Load-bearing tractability
	// bound: the number of candidate support pairs grows combinatorially.
	MaxSupportSize = 4

	// DenomTol is the magnitude below which a 2×2 indifference denominator
	// counts as zero, meaning no interior mixed equilibrium exists.
	DenomTol = 1e-9

	// ProbTol is the slack allowed on solved probabilities before clamping:
	// entries in [-ProbTol, 0) are treated as exact zeros.
	ProbTol = 1e-8
)

// Options configures the behavior of the mixed-strategy search.
type Options struct {
	// Tolerance is the payoff comparison tolerance (must be ≥ 0).
	Tolerance float64
	// MaxSupportSize caps the support enumeration (2 ≤ value).
	MaxSupportSize int
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithTolerance overrides the payoff comparison tolerance.
// Panics on negative values (programmer error).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic("mixed: Tolerance must be non-negative")
		}
		o.Tolerance = tol
	}
}

// WithMaxSupportSize overrides the support-size cap. Raising it trades
// completeness for combinatorial cost. Panics on values < MinSupportSize.
func WithMaxSupportSize(size int) Option {
	return func(o *Options) {
		if size < MinSupportSize {
			panic("mixed: MaxSupportSize must be at least MinSupportSize")
		}
		o.MaxSupportSize = size
	}
}

// DefaultOptions returns the canonical configuration:
//   - Tolerance:      game.PayoffTol (1e-6)
//   - MaxSupportSize: MaxSupportSize (4)
func DefaultOptions() Options {
	return Options{Tolerance: game.PayoffTol, MaxSupportSize: MaxSupportSize}
}
