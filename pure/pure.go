// Package pure - exhaustive best-response search over all pure profiles.
//
// Design principles:
//   - Deterministic: profiles are visited in lexicographic order, so the
//     result order is stable across calls (FindAll idempotence relies on it).
//   - Strict sentinels: structural errors only, raised before enumeration.
//   - Hot-path discipline: one profile counter, no per-profile allocations
//     beyond accepted equilibria.
package pure

import (
	"math"

	"github.com/katalvlaran/equilib/game"
)

// Find returns every pure-strategy Nash equilibrium of m, in lexicographic
// profile order. A nil slice with a nil error means no pure equilibrium
// exists — a normal outcome for many games (e.g. matching pennies).
//
// Contracts:
//   - m must pass game.ValidateShape; the first defect is returned as-is.
//
// Complexity: O(|S|^P · P · |S|) time, O(P) scratch space.
func Find(m *game.PayoffMatrix, opts ...Option) ([]game.NashEquilibrium, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		result  []game.NashEquilibrium
		profile = make([]int, m.Players) // lexicographic profile counter
		n       = m.StrategyCount()
	)
	for {
		if ok, strict, minLoss := Check(m, profile, o.Tolerance); ok {
			result = append(result, build(m, profile, strict, minLoss))
		}
		if !next(profile, n) {
			break
		}
	}

	return result, nil
}

// Check runs the best-response test for one candidate profile.
//
// Returns:
//   - ok:      no player has a unilateral deviation gaining more than tol.
//   - strict:  every deviation loses strictly more than tol (no ties).
//   - minLoss: the minimum payoff loss over all single-player deviations
//     (clamped at 0; +Inf when no deviation exists, i.e. |S| == 1).
//
// Contract: profile is shaped for m (one in-range index per player);
// callers outside this package should pre-check via m.CheckProfile.
//
// Complexity: O(P · |S|).
func Check(m *game.PayoffMatrix, profile []int, tol float64) (ok, strict bool, minLoss float64) {
	var (
		n        = m.StrategyCount()
		u, v     float64 // equilibrium / deviation payoff
		loss     float64 // u - v for the current deviation
		player   int
		alt      int
		hasTie   bool
		worstMin = math.Inf(1)
	)
	for player = 0; player < m.Players; player++ {
		u = m.ProfilePayoff(profile, player)
		for alt = 0; alt < n; alt++ {
			if alt == profile[player] {
				continue
			}
			v = m.DeviationPayoff(profile, player, alt)
			if v > u+tol {
				// A strictly improving deviation disqualifies the profile.
				return false, false, 0
			}
			loss = u - v
			if loss <= tol {
				hasTie = true
			}
			if loss < worstMin {
				worstMin = loss
			}
		}
	}
	if worstMin < 0 {
		// Ties within tolerance may come out slightly negative.
		worstMin = 0
	}

	return true, !hasTie, worstMin
}

// Stability maps the minimum deviation loss into [0.5, 1]:
// ties (loss ≈ 0) pin the score at 0.5; the score approaches 1 as the
// loss grows. Pure equilibria therefore always outrank mixed ones, whose
// scores never exceed 0.5 (see package mixed).
func Stability(minLoss float64) float64 {
	if math.IsInf(minLoss, 1) {
		// No deviation exists at all (single-strategy game): maximally stable.
		return 1
	}
	if minLoss <= 0 {
		return 0.5
	}

	return 0.5 + 0.5*minLoss/(1+minLoss)
}

// build assembles the equilibrium value for an accepted profile.
func build(m *game.PayoffMatrix, profile []int, strict bool, minLoss float64) game.NashEquilibrium {
	payoffs := make([]float64, m.Players)
	for p := range payoffs {
		payoffs[p] = m.ProfilePayoff(profile, p)
	}

	return game.NewPure(profile, payoffs, Stability(minLoss), strict)
}

// next advances the lexicographic profile counter in place.
// Returns false after the last profile.
//
// Complexity: amortized O(1).
func next(profile []int, n int) bool {
	for i := len(profile) - 1; i >= 0; i-- {
		profile[i]++
		if profile[i] < n {
			return true
		}
		profile[i] = 0
	}

	return false
}
