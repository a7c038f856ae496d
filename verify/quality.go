// Package verify - outcome quality metrics.
//
// Efficiency is range-normalized against the best and worst TOTAL payoffs
// achievable by any pure profile, which keeps the score meaningful for
// games with negative or zero payoffs (a plain best-total ratio breaks
// there). Fairness uses a bounded variance normalization for the same
// reason.
package verify

import "github.com/katalvlaran/equilib/game"

// scoreQuality computes the quality metrics for eq on m.
//
// Complexity: O(|S|^P · P) — the efficiency scan enumerates every pure
// profile once.
func scoreQuality(eq game.NashEquilibrium, m *game.PayoffMatrix, stability float64) QualityMetrics {
	var q QualityMetrics

	// Social welfare: raw total.
	for _, u := range eq.Payoffs {
		q.SocialWelfare += u
	}

	// Efficiency: position of the welfare inside [worst, best] total.
	lo, hi := totalPayoffRange(m)
	if hi-lo < game.PayoffTol {
		q.Efficiency = 1 // all profiles yield the same total
	} else {
		q.Efficiency = clamp01((q.SocialWelfare - lo) / (hi - lo))
	}

	// Fairness: 1 − bounded payoff variance across players.
	q.Fairness = 1 - boundedVariance(eq.Payoffs)

	// Complexity / interpretability from support width.
	var (
		n   = m.StrategyCount()
		avg = averageSupport(eq, m)
	)
	q.Complexity = clamp01(avg / float64(n))
	if n > 1 {
		q.Interpretability = clamp01(1 - (avg-1)/float64(n-1))
	} else {
		q.Interpretability = 1
	}

	// Discrete risk profile from type and stability.
	switch {
	case eq.Kind == game.KindPure && eq.Strict && stability >= 0.7:
		q.Risk = RiskLow
	case eq.Kind == game.KindMixed || stability < 0.4:
		q.Risk = RiskHigh
	default:
		q.Risk = RiskMedium
	}

	return q
}

// totalPayoffRange scans every pure profile for the lowest and highest
// total payoff.
func totalPayoffRange(m *game.PayoffMatrix) (lo, hi float64) {
	var (
		profile = make([]int, m.Players)
		n       = m.StrategyCount()
		first   = true
	)
	for {
		var total float64
		for player := 0; player < m.Players; player++ {
			total += m.ProfilePayoff(profile, player)
		}
		if first || total < lo {
			lo = total
		}
		if first || total > hi {
			hi = total
		}
		first = false

		// Lexicographic advance.
		i := m.Players - 1
		for i >= 0 {
			profile[i]++
			if profile[i] < n {
				break
			}
			profile[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}

	return lo, hi
}

// boundedVariance maps the payoff variance into [0,1) via v/(v+1).
func boundedVariance(payoffs []float64) float64 {
	if len(payoffs) == 0 {
		return 0
	}
	var mean float64
	for _, u := range payoffs {
		mean += u
	}
	mean /= float64(len(payoffs))

	var v float64
	for _, u := range payoffs {
		d := u - mean
		v += d * d
	}
	v /= float64(len(payoffs))

	return v / (v + 1)
}
