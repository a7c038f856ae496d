// Package nplayer - symmetric mixed-equilibrium search.
//
// Two probes, both assigning the SAME distribution to every player:
//
//  1. Uniform: mix 1/|S| over all strategies; accept when every player is
//     indifferent across the whole strategy set.
//  2. Pairwise fixed point: for each strategy pair (s1, s2), start at
//     p = 0.5 and repeatedly move p proportionally to the payoff
//     difference u(s1) − u(s2) until it vanishes or the budget runs out.
//
// Under the aggregate-opponent model the payoff difference is piecewise
// constant in p, so the fixed point either lands on an indifference
// plateau quickly or never converges — the iteration cap is load-bearing.
package nplayer

import (
	"math"

	"github.com/katalvlaran/equilib/game"
)

// symmetricSearch runs both probes and returns verified candidates.
//
// Complexity: O(P·|S|) for the uniform probe,
// O(|S|² · FixedPointBudget · P) for the pairwise sweep.
func symmetricSearch(m *game.PayoffMatrix, o Options) []game.NashEquilibrium {
	var result []game.NashEquilibrium
	if eq, ok := uniformProbe(m, o); ok {
		result = append(result, eq)
	}

	n := m.StrategyCount()
	for s1 := 0; s1 < n; s1++ {
		for s2 := s1 + 1; s2 < n; s2++ {
			if eq, ok := pairFixedPoint(m, o, s1, s2); ok {
				result = append(result, eq)
			}
		}
	}

	return result
}

// uniformProbe tests the uniform mix over all strategies for indifference.
func uniformProbe(m *game.PayoffMatrix, o Options) (game.NashEquilibrium, bool) {
	n := m.StrategyCount()
	uniform := make([]float64, n)
	for s := range uniform {
		uniform[s] = 1 / float64(n)
	}
	dists := sameForAll(m.Players, uniform)

	// Every player must be indifferent across the full strategy set.
	for player := 0; player < m.Players; player++ {
		base := strategyPayoff(m, dists, player, 0)
		for s := 1; s < n; s++ {
			if d := strategyPayoff(m, dists, player, s) - base; d > o.Tolerance || d < -o.Tolerance {
				return game.NashEquilibrium{}, false
			}
		}
	}

	return buildSymmetric(m, dists), true
}

// pairFixedPoint runs the iterative search on the pair (s1, s2).
// Accepts only interior, converged, fully verified mixes.
func pairFixedPoint(m *game.PayoffMatrix, o Options, s1, s2 int) (game.NashEquilibrium, bool) {
	var (
		n     = m.StrategyCount()
		p     = 0.5 // probability of s1, shared by every player
		dists [][]float64
		diff  float64
	)
	for iter := 0; iter < o.FixedPointBudget; iter++ {
		dists = sameForAll(m.Players, pairDist(n, s1, s2, p))
		diff = strategyPayoff(m, dists, 0, s1) - strategyPayoff(m, dists, 0, s2)
		if diff <= o.Tolerance && diff >= -o.Tolerance {
			break
		}
		// Bounded, sign-following step; payoff scale cannot blow it up.
		p += FixedPointStep * diff / (1 + math.Abs(diff))
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
	}
	if diff > o.Tolerance || diff < -o.Tolerance {
		return game.NashEquilibrium{}, false // budget exhausted, no plateau
	}
	if p <= game.SupportTol || p >= 1-game.SupportTol {
		return game.NashEquilibrium{}, false // degenerated to a pure strategy
	}

	// Verify for EVERY player: indifference on {s1,s2} and no strictly
	// better strategy outside the pair.
	dists = sameForAll(m.Players, pairDist(n, s1, s2, p))
	for player := 0; player < m.Players; player++ {
		base := strategyPayoff(m, dists, player, s1)
		if d := strategyPayoff(m, dists, player, s2) - base; d > o.Tolerance || d < -o.Tolerance {
			return game.NashEquilibrium{}, false
		}
		for s := 0; s < n; s++ {
			if s == s1 || s == s2 {
				continue
			}
			if strategyPayoff(m, dists, player, s) > base+o.Tolerance {
				return game.NashEquilibrium{}, false
			}
		}
	}

	return buildSymmetric(m, dists), true
}

// pairDist is the two-point distribution p·s1 + (1−p)·s2.
func pairDist(n, s1, s2 int, p float64) []float64 {
	dist := make([]float64, n)
	dist[s1] = p
	dist[s2] = 1 - p

	return dist
}

// sameForAll replicates one distribution for every player.
// The slice header is fresh per player but the backing array is shared —
// safe because the searches never mutate a distribution in place.
func sameForAll(players int, dist []float64) [][]float64 {
	dists := make([][]float64, players)
	for i := range dists {
		dists[i] = dist
	}

	return dists
}

// buildSymmetric assembles the equilibrium value for a verified mix.
func buildSymmetric(m *game.PayoffMatrix, dists [][]float64) game.NashEquilibrium {
	payoffs := make([]float64, m.Players)
	for player := range payoffs {
		payoffs[player] = mixedPayoff(m, dists, player)
	}

	return game.NewMixed(dists, payoffs, avgSupportStability(dists))
}
