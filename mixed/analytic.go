// Package mixed - analytic solver for 2×2 games.
//
// Derivation (row payoffs A, column payoffs B, p = row's probability of
// strategy 0, q = column's probability of strategy 0):
//
//	Column indifferent:  p·B00 + (1−p)·B10 = p·B01 + (1−p)·B11
//	                  ⇒  p = (B11 − B10) / (B00 − B01 − B10 + B11)
//	Row indifferent:     q·A00 + (1−q)·A01 = q·A10 + (1−q)·A11
//	                  ⇒  q = (A11 − A01) / (A00 − A01 − A10 + A11)
//
// A denominator within DenomTol of zero means the opponent cannot be made
// indifferent: no interior mixed equilibrium exists.
package mixed

import "github.com/katalvlaran/equilib/game"

// solve2x2 returns the interior mixed equilibrium of a 2×2 game, or nil
// when none exists. Degeneracy (zero denominators, probabilities outside
// [0,1]) is a normal no-equilibrium outcome, never an error.
//
// Complexity: O(1).
func solve2x2(m *game.PayoffMatrix) []game.NashEquilibrium {
	var (
		a00, a01 = m.Payoffs[0][0][0], m.Payoffs[0][1][0]
		a10, a11 = m.Payoffs[1][0][0], m.Payoffs[1][1][0]
		b00, b01 = m.Payoffs[0][0][1], m.Payoffs[0][1][1]
		b10, b11 = m.Payoffs[1][0][1], m.Payoffs[1][1][1]
	)

	// Row player's mix makes the COLUMN player indifferent, and vice versa.
	denomP := b00 - b01 - b10 + b11
	denomQ := a00 - a01 - a10 + a11
	if abs(denomP) < DenomTol || abs(denomQ) < DenomTol {
		return nil
	}

	p := (b11 - b10) / denomP
	q := (a11 - a01) / denomQ
	if !inUnit(p) || !inUnit(q) {
		return nil
	}
	p, q = clampUnit(p), clampUnit(q)

	rowDist := []float64{p, 1 - p}
	colDist := []float64{q, 1 - q}
	payoffs := []float64{
		m.ExpectedPayoff2P(rowDist, colDist, 0),
		m.ExpectedPayoff2P(rowDist, colDist, 1),
	}

	// Both supports have size 2 ⇒ stability 1/2.
	return []game.NashEquilibrium{
		game.NewMixed([][]float64{rowDist, colDist}, payoffs, 0.5),
	}
}

// inUnit reports whether v lies in [0,1] within ProbTol slack.
func inUnit(v float64) bool { return v >= -ProbTol && v <= 1+ProbTol }

// clampUnit snaps v onto [0,1] exactly.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

// abs avoids a math import for a single call site.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
