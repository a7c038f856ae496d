// Package nplayer defines configuration, caps and sentinel errors for the
// multi-player (n ≥ 3) equilibrium search.
//
// Options:
//
//	– Tolerance:        payoff/indifference comparison tolerance.
//	– MaxMixedPlayers:  cap on simultaneously-mixed players in the
//	                    asymmetric pattern search.
//	– FixedPointBudget: iteration cap for the symmetric pairwise search.
//
// Errors (sentinel):
//
//	– ErrTooFewPlayers when the matrix has fewer than three players
//	  (use packages pure/mixed for two-player games).
//	– Structural defects surface as the game package's sentinels.
package nplayer

import (
	"errors"

	"github.com/katalvlaran/equilib/game"
)

// ErrTooFewPlayers is returned when Find receives a two-player matrix.
var ErrTooFewPlayers = errors.New("nplayer: solver requires at least three players")

// Search caps. Exported by design: these are load-bearing tractability
// bounds, and completeness is not guaranteed beyond them.
const (
	// MaxMixedPlayers caps simultaneously-mixed players in the asymmetric
	// pattern search. Each additional mixed player multiplies the pattern
	// space by C(|S|,2).
	MaxMixedPlayers = 2

	// MaxFixedPointIters caps the symmetric pairwise fixed-point search.
	MaxFixedPointIters = 200

	// FixedPointStep scales the probability update per iteration:
	// p += FixedPointStep · Δ/(1+|Δ|), keeping every step below
	// FixedPointStep in magnitude regardless of payoff scale.
	FixedPointStep = 0.25
)

// Options configures the behavior of the multi-player search.
type Options struct {
	// Tolerance is the payoff comparison tolerance (must be ≥ 0).
	Tolerance float64
	// MaxMixedPlayers caps simultaneously-mixed players (≥ 1).
	MaxMixedPlayers int
	// FixedPointBudget caps fixed-point iterations (≥ 1).
	FixedPointBudget int
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithTolerance overrides the payoff comparison tolerance.
// Panics on negative values (programmer error).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic("nplayer: Tolerance must be non-negative")
		}
		o.Tolerance = tol
	}
}

// WithMaxMixedPlayers overrides the simultaneous-mixing cap.
// Panics on values < 1.
func WithMaxMixedPlayers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("nplayer: MaxMixedPlayers must be positive")
		}
		o.MaxMixedPlayers = n
	}
}

// WithFixedPointBudget overrides the fixed-point iteration cap.
// Panics on values < 1.
func WithFixedPointBudget(iters int) Option {
	return func(o *Options) {
		if iters < 1 {
			panic("nplayer: FixedPointBudget must be positive")
		}
		o.FixedPointBudget = iters
	}
}

// DefaultOptions returns the canonical configuration:
//   - Tolerance:        game.PayoffTol (1e-6)
//   - MaxMixedPlayers:  MaxMixedPlayers (2)
//   - FixedPointBudget: MaxFixedPointIters (200)
func DefaultOptions() Options {
	return Options{
		Tolerance:        game.PayoffTol,
		MaxMixedPlayers:  MaxMixedPlayers,
		FixedPointBudget: MaxFixedPointIters,
	}
}
