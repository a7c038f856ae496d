// Package nplayer - dispatcher and shared payoff helpers for the n ≥ 3
// searches.
//
// Design principles:
//   - Deterministic: every sub-search enumerates in lexicographic order;
//     merged output order is pure → symmetric → asymmetric.
//   - Strict sentinels: structural errors and ErrTooFewPlayers only.
//   - The aggregate-opponent approximation lives in package game; this
//     file only extends it from pure profiles to mixing distributions.
package nplayer

import (
	"math"

	"github.com/katalvlaran/equilib/game"
	"github.com/katalvlaran/equilib/pure"
)

// Find returns the (approximate) Nash equilibria of a game with three or
// more players: exact-within-the-model pure equilibria plus bounded
// symmetric and asymmetric mixed searches, deduplicated by profile.
//
// Contracts:
//   - m must pass game.ValidateShape (first defect returned as-is).
//   - m.Players must be ≥ 3, else ErrTooFewPlayers.
//
// A nil slice with a nil error is a legitimate "nothing found within the
// bounded search" outcome.
func Find(m *game.PayoffMatrix, opts ...Option) ([]game.NashEquilibrium, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Players < 3 {
		return nil, ErrTooFewPlayers
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: pure equilibria, reusing the exhaustive best-response search.
	result, err := pure.Find(m, pure.WithTolerance(o.Tolerance))
	if err != nil {
		return nil, err
	}

	// Stage 2: symmetric mixed candidates (only for symmetric games).
	if m.Symmetric {
		result = merge(result, symmetricSearch(m, o), o.Tolerance)
	}

	// Stage 3: bounded asymmetric patterns.
	result = merge(result, asymmetricSearch(m, o), o.Tolerance)

	return result, nil
}

// merge appends candidates that do not duplicate an already-kept profile.
func merge(have, add []game.NashEquilibrium, tol float64) []game.NashEquilibrium {
	for _, eq := range add {
		dup := false
		for _, h := range have {
			if h.SameProfile(eq, tol) {
				dup = true

				break
			}
		}
		if !dup {
			have = append(have, eq)
		}
	}

	return have
}

// expectedIndex is the mean strategy index under dist: Σ k·p_k.
func expectedIndex(dist []float64) float64 {
	var e float64
	for k, p := range dist {
		e += float64(k) * p
	}

	return e
}

// aggregateIndex collapses all opponents of player into one column index:
// the rounded mean of their expected strategy indices, clamped to the
// strategy range. Mirrors game.AggregateOpponent, extended to mixing.
func aggregateIndex(m *game.PayoffMatrix, dists [][]float64, player int) int {
	var sum float64
	for j, dist := range dists {
		if j == player {
			continue
		}
		sum += expectedIndex(dist)
	}
	agg := int(math.Round(sum / float64(m.Players-1)))
	if agg < 0 {
		agg = 0
	}
	if max := m.StrategyCount() - 1; agg > max {
		agg = max
	}

	return agg
}

// strategyPayoff is the (approximate) payoff of player for pure strategy s
// while every opponent follows their distribution in dists.
func strategyPayoff(m *game.PayoffMatrix, dists [][]float64, player, s int) float64 {
	return m.Payoffs[s][aggregateIndex(m, dists, player)][player]
}

// mixedPayoff is the expected payoff of player under their own
// distribution, opponents fixed as in dists.
func mixedPayoff(m *game.PayoffMatrix, dists [][]float64, player int) float64 {
	var u float64
	for s, p := range dists[player] {
		if p != 0 {
			u += p * strategyPayoff(m, dists, player, s)
		}
	}

	return u
}

// pointMass returns the degenerate distribution playing s surely.
func pointMass(n, s int) []float64 {
	dist := make([]float64, n)
	dist[s] = 1

	return dist
}

// avgSupportStability is 1 / average support size across players —
// the mixing-width stability heuristic shared by the mixed searches.
func avgSupportStability(dists [][]float64) float64 {
	var total int
	for _, dist := range dists {
		for _, p := range dist {
			if p > game.SupportTol {
				total++
			}
		}
	}

	return float64(len(dists)) / float64(total)
}
