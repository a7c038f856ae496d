// Package mixed - unified entry point for the two-player mixed solver.
//
// Design principles:
//   - Deterministic routing: 2×2 analytic, otherwise support enumeration.
//   - Strict sentinels: structural errors and ErrTwoPlayerOnly only;
//     numeric degeneracy never surfaces as an error.
//   - Every accepted equilibrium has been re-verified against the full
//     profile before it is returned.
package mixed

import "github.com/katalvlaran/equilib/game"

// Find returns the mixed-strategy Nash equilibria of a two-player game.
// A nil slice with a nil error means the bounded search found none —
// legitimate for games whose equilibria are pure or use supports larger
// than the configured cap.
//
// Contracts:
//   - m must pass game.ValidateShape (first defect returned as-is).
//   - m.Players must be exactly 2, else ErrTwoPlayerOnly.
//
// Complexity: O(1) for 2×2; bounded support enumeration otherwise
// (see doc.go).
func Find(m *game.PayoffMatrix, opts ...Option) ([]game.NashEquilibrium, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Players != 2 {
		return nil, ErrTwoPlayerOnly
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if m.StrategyCount() == 2 {
		return solve2x2(m), nil
	}

	return enumerateSupports(m, o), nil
}
