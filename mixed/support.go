// Package mixed - bounded support enumeration for two-player games with
// more than two strategies.
//
// Pipeline per candidate support pair (Sr for the row player, Sc for the
// column player, equal size k):
//
//  1. Solve the column player's distribution from the ROW player's
//     indifference over Sr (k−1 difference rows + one sum-to-one row).
//  2. Solve the row player's distribution from the COLUMN player's
//     indifference over Sc, symmetrically.
//  3. Reject on singular systems or probabilities below −ProbTol.
//  4. Clamp, renormalize, expand to full-length distributions.
//  5. Verify the FULL profile: in-support expected payoffs equal within
//     tolerance, no out-of-support strategy strictly better.
//
// Determinism: supports are enumerated in lexicographic order, so the
// result order is stable across calls.
package mixed

import (
	"github.com/katalvlaran/equilib/game"
	"github.com/katalvlaran/equilib/linsys"
)

// enumerateSupports runs the bounded search and returns every verified
// mixed equilibrium, deduplicated by distribution.
//
// Complexity: O(Σ_k C(n,k)² · (k³ + n²)) with k capped by o.MaxSupportSize.
func enumerateSupports(m *game.PayoffMatrix, o Options) []game.NashEquilibrium {
	var (
		n      = m.StrategyCount()
		maxK   = min(n, o.MaxSupportSize)
		result []game.NashEquilibrium
	)
	for k := MinSupportSize; k <= maxK; k++ {
		supports := combinations(n, k)
		for _, sr := range supports {
			for _, sc := range supports {
				eq, ok := trySupportPair(m, sr, sc, o.Tolerance)
				if !ok {
					continue
				}
				if containsProfile(result, eq, o.Tolerance) {
					continue
				}
				result = append(result, eq)
			}
		}
	}

	return result
}

// trySupportPair solves and verifies one support pair. The boolean result
// is false whenever the branch yields no equilibrium — singular system,
// negative probability, failed verification — all normal outcomes.
func trySupportPair(m *game.PayoffMatrix, sr, sc []int, tol float64) (game.NashEquilibrium, bool) {
	// Column distribution from the row player's indifference over sr.
	colDist, ok := solveIndifference(m, sr, sc, 0)
	if !ok {
		return game.NashEquilibrium{}, false
	}
	// Row distribution from the column player's indifference over sc.
	rowDist, ok := solveIndifference(m, sc, sr, 1)
	if !ok {
		return game.NashEquilibrium{}, false
	}

	n := m.StrategyCount()
	rowFull := expand(rowDist, sr, n)
	colFull := expand(colDist, sc, n)
	if !verifyProfile(m, rowFull, colFull, sr, sc, tol) {
		return game.NashEquilibrium{}, false
	}

	payoffs := []float64{
		m.ExpectedPayoff2P(rowFull, colFull, 0),
		m.ExpectedPayoff2P(rowFull, colFull, 1),
	}
	stability := 2.0 / float64(len(sr)+len(sc)) // 1 / average support size

	return game.NewMixed([][]float64{rowFull, colFull}, payoffs, stability), true
}

// solveIndifference solves for the OPPONENT's mixing probabilities that
// make `player` indifferent across ownSupport.
//
// System (k = len(ownSupport) = len(oppSupport) unknowns):
//   - rows 0..k-2: Σ_j (U[s_t][j] − U[s_0][j])·y_j = 0 for t = 1..k−1,
//     where U is player's payoff against opponent strategy j ∈ oppSupport
//   - row k-1:     Σ_j y_j = 1
//
// Returns (nil, false) on singular systems or entries below −ProbTol;
// otherwise the clamped, renormalized solution.
func solveIndifference(m *game.PayoffMatrix, ownSupport, oppSupport []int, player int) ([]float64, bool) {
	k := len(ownSupport)
	a, err := linsys.NewDense(k, k)
	if err != nil {
		return nil, false
	}
	b := make([]float64, k)

	var (
		t, j  int
		coeff float64
	)
	for t = 1; t < k; t++ {
		for j = 0; j < k; j++ {
			coeff = payoffAgainst(m, ownSupport[t], oppSupport[j], player) -
				payoffAgainst(m, ownSupport[0], oppSupport[j], player)
			if err = a.Set(t-1, j, coeff); err != nil {
				return nil, false
			}
		}
		b[t-1] = 0
	}
	for j = 0; j < k; j++ {
		if err = a.Set(k-1, j, 1); err != nil {
			return nil, false
		}
	}
	b[k-1] = 1

	x, err := linsys.SolveGaussian(a, b)
	if err != nil {
		// ErrSingular (or any shape defect): this support admits no
		// indifferent mix. Normal outcome, the enumeration continues.
		return nil, false
	}

	// Reject genuinely negative probabilities; clamp numeric dust.
	var sum float64
	for j = 0; j < k; j++ {
		if x[j] < -ProbTol {
			return nil, false
		}
		if x[j] < 0 {
			x[j] = 0
		}
		sum += x[j]
	}
	if sum <= 0 {
		return nil, false
	}
	for j = 0; j < k; j++ {
		x[j] /= sum
	}

	return x, true
}

// payoffAgainst reads the payoff of player when their own strategy meets
// one opponent strategy: tensor orientation depends on which side plays.
func payoffAgainst(m *game.PayoffMatrix, own, opp, player int) float64 {
	if player == 0 {
		return m.Payoffs[own][opp][0]
	}

	return m.Payoffs[opp][own][1]
}

// verifyProfile checks the Nash conditions for the full candidate profile:
// in-support expected payoffs equal within tol for both players, and no
// out-of-support strategy strictly better.
//
// Complexity: O(n²).
func verifyProfile(m *game.PayoffMatrix, rowFull, colFull []float64, sr, sc []int, tol float64) bool {
	return verifySide(m, rowFull, colFull, sr, 0, tol) &&
		verifySide(m, rowFull, colFull, sc, 1, tol)
}

// verifySide verifies one player's indifference + no-better-deviation.
func verifySide(m *game.PayoffMatrix, rowFull, colFull []float64, support []int, player int, tol float64) bool {
	n := m.StrategyCount()
	inSupport := make([]bool, n)
	for _, s := range support {
		inSupport[s] = true
	}

	var (
		s, ref  int
		u, base float64
	)
	ref = support[0]
	base = strategyValue(m, rowFull, colFull, ref, player)
	for s = 0; s < n; s++ {
		if s == ref {
			continue
		}
		u = strategyValue(m, rowFull, colFull, s, player)
		if inSupport[s] {
			if diff := u - base; diff > tol || diff < -tol {
				return false // indifference violated inside the support
			}
		} else if u > base+tol {
			return false // profitable deviation outside the support
		}
	}

	return true
}

// strategyValue is the expected payoff of playing one fixed strategy
// against the opponent's full mixing distribution.
func strategyValue(m *game.PayoffMatrix, rowFull, colFull []float64, s, player int) float64 {
	var u float64
	if player == 0 {
		for j, pj := range colFull {
			if pj != 0 {
				u += pj * m.Payoffs[s][j][0]
			}
		}

		return u
	}
	for i, pi := range rowFull {
		if pi != 0 {
			u += pi * m.Payoffs[i][s][1]
		}
	}

	return u
}

// expand scatters a support-local distribution onto a full-length one.
func expand(dist []float64, support []int, n int) []float64 {
	full := make([]float64, n)
	for i, s := range support {
		full[s] = dist[i]
	}

	return full
}

// containsProfile reports whether eq duplicates an already-accepted result.
func containsProfile(have []game.NashEquilibrium, eq game.NashEquilibrium, tol float64) bool {
	for _, h := range have {
		if h.SameProfile(eq, tol) {
			return true
		}
	}

	return false
}

// combinations returns every size-k subset of [0, n) in lexicographic order.
//
// Complexity: O(C(n,k) · k).
func combinations(n, k int) [][]int {
	var (
		result [][]int
		idx    = make([]int, k)
	)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]int, k)
		copy(subset, idx)
		result = append(result, subset)

		// Advance the combination counter from the right.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return result
}
