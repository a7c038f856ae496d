// SPDX-License-Identifier: MIT
// Package game: payoff lookup helpers shared by every solver.
//
// This file centralizes the two-index tensor lookups, including the
// aggregate-opponent approximation for games with three or more players.
// Keeping the approximation in ONE place guarantees that the pure finder,
// the multi-player solver, the dominance analyzer and the validator all
// see identical payoffs for identical profiles.

package game

import "math"

// AggregateOpponent collapses the opponents of player into a single column
// index: the mean of their strategy indices, rounded half up, clamped to
// [0, |S|-1].
//
// Contract: profile has one entry per player, all indices in range
// (enforced upstream by Validate + profile checks).
//
// Lossy by design: for Players ≥ 3 this is a tractability approximation,
// not a faithful joint-strategy model. For Players == 2 it degenerates to
// the single opponent's index exactly.
//
// Complexity: O(P).
func (m *PayoffMatrix) AggregateOpponent(profile []int, player int) int {
	// Two players: the "aggregate" is just the other player's choice.
	if m.Players == 2 {
		return profile[1-player]
	}

	var sum float64
	for i, s := range profile {
		if i == player {
			continue
		}
		sum += float64(s)
	}
	agg := int(math.Round(sum / float64(m.Players-1)))

	// Clamp against rounding at the boundary.
	if agg < 0 {
		agg = 0
	}
	if max := m.StrategyCount() - 1; agg > max {
		agg = max
	}

	return agg
}

// ProfilePayoff returns the payoff of player under the given pure profile.
// Two-player games read the tensor directly; larger games go through
// AggregateOpponent.
//
// Complexity: O(1) for two players, O(P) otherwise.
func (m *PayoffMatrix) ProfilePayoff(profile []int, player int) float64 {
	own := profile[player]
	if m.Players == 2 {
		return m.Payoffs[profile[0]][profile[1]][player]
	}

	return m.Payoffs[own][m.AggregateOpponent(profile, player)][player]
}

// DeviationPayoff returns the payoff of player when they unilaterally
// switch to strategy alt while everyone else keeps the profile fixed.
// No allocation: the profile slice is restored before returning.
//
// Complexity: same as ProfilePayoff.
func (m *PayoffMatrix) DeviationPayoff(profile []int, player, alt int) float64 {
	prev := profile[player]
	profile[player] = alt
	u := m.ProfilePayoff(profile, player)
	profile[player] = prev

	return u
}

// ExpectedPayoff2P returns the expected payoff of player (0 = row, 1 = col)
// in a two-player game when the row side mixes with rowDist and the column
// side mixes with colDist.
//
// Contract: len(rowDist) == len(colDist) == |S|; Players == 2.
//
// Complexity: O(|S|²).
func (m *PayoffMatrix) ExpectedPayoff2P(rowDist, colDist []float64, player int) float64 {
	var u float64
	for a, pa := range rowDist {
		if pa == 0 {
			continue
		}
		for b, pb := range colDist {
			if pb == 0 {
				continue
			}
			u += pa * pb * m.Payoffs[a][b][player]
		}
	}

	return u
}

// CheckProfile verifies that profile is shaped for this matrix: one entry
// per player, each entry a valid strategy index. Returns ErrProfileLength
// or ErrStrategyOutOfRange; nil on success.
func (m *PayoffMatrix) CheckProfile(profile []int) error {
	if len(profile) != m.Players {
		return ErrProfileLength
	}
	n := m.StrategyCount()
	for _, s := range profile {
		if s < 0 || s >= n {
			return ErrStrategyOutOfRange
		}
	}

	return nil
}
