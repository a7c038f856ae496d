// Package verify - heuristic stability analysis.
//
// Four independent component scores, each in [0,1], averaged into the
// overall score. The heuristics are deliberately simple and documented
// per component; they order equilibria sensibly (strict pure > tied pure
// > narrow mix > wide mix) without claiming dynamical rigor.
package verify

import (
	"math"

	"github.com/katalvlaran/equilib/game"
	"github.com/katalvlaran/equilib/pure"
)

// analyzeStability computes the four component scores for eq on m.
//
// Complexity: O(P·|S|) (one best-response pass for pure candidates).
func analyzeStability(eq game.NashEquilibrium, m *game.PayoffMatrix) StabilityAnalysis {
	var sa StabilityAnalysis

	if eq.Kind == game.KindPure && m.CheckProfile(eq.Profile) == nil {
		ok, strict, minLoss := pure.Check(m, eq.Profile, game.PayoffTol)
		margin := 0.0
		if ok && !math.IsInf(minLoss, 1) {
			margin = minLoss / (1 + minLoss) // [0,1): grows with the deviation loss
		}
		if math.IsInf(minLoss, 1) {
			margin = 1 // no deviation exists at all
		}

		// Robustness: payoff perturbations smaller than the deviation
		// margin cannot break the equilibrium.
		sa.Robustness = 0.5 + 0.5*margin
		// Convergence: best-response dynamics settle on pure profiles.
		sa.Convergence = 0.7
		if strict {
			sa.Convergence = 0.9
		}
		// Basin: a larger margin attracts a wider neighborhood.
		sa.BasinSize = 0.6 + 0.3*margin
		// Trembling hand: ties are exploitable by small mistakes.
		sa.TremblingHand = 0.5
		if strict {
			sa.TremblingHand = 0.95
		}
		if !ok {
			// Not actually an equilibrium: floor everything.
			sa.Robustness, sa.Convergence, sa.BasinSize, sa.TremblingHand = 0.1, 0.1, 0.1, 0.1
		}
	} else {
		avg := averageSupport(eq, m)
		// Wider mixing is easier to perturb off its indifference surface.
		sa.Robustness = 1 / avg
		sa.Convergence = 0.4 - 0.05*(avg-2)
		sa.BasinSize = 0.5 - 0.1*(avg-2)
		sa.TremblingHand = 0.35
		sa.Convergence = clamp01(sa.Convergence)
		sa.BasinSize = clamp01(sa.BasinSize)
		sa.Robustness = clamp01(sa.Robustness)
	}

	sa.Overall = (sa.Robustness + sa.Convergence + sa.BasinSize + sa.TremblingHand) / 4
	sa.Description = describe(sa.Overall)
	sa.RiskFactors = riskFactors(sa, eq)

	return sa
}

// averageSupport is the mean support size across players (≥ 1).
func averageSupport(eq game.NashEquilibrium, m *game.PayoffMatrix) float64 {
	if eq.Kind == game.KindPure {
		return 1
	}
	var total int
	for player := range eq.Distributions {
		total += len(eq.Support(player))
	}
	if total == 0 {
		return float64(m.StrategyCount()) // degenerate; treat as maximal width
	}

	return float64(total) / float64(len(eq.Distributions))
}

// describe maps the overall score onto a qualitative band.
func describe(overall float64) string {
	switch {
	case overall >= 0.8:
		return "very stable: deviations are clearly unprofitable and small perturbations are absorbed"
	case overall >= 0.6:
		return "stable: robust to small perturbations, with minor exposure to ties or mixing"
	case overall >= 0.4:
		return "moderately stable: plausible but sensitive to perturbations or slow to converge"
	default:
		return "fragile: small perturbations or mistakes can dislodge this equilibrium"
	}
}

// riskFactors names each weak component.
func riskFactors(sa StabilityAnalysis, eq game.NashEquilibrium) []string {
	var factors []string
	if sa.Robustness < 0.5 {
		factors = append(factors, "low robustness to payoff perturbations")
	}
	if sa.Convergence < 0.5 {
		factors = append(factors, "adaptive play may not converge here")
	}
	if sa.BasinSize < 0.5 {
		factors = append(factors, "small basin of attraction")
	}
	if sa.TremblingHand < 0.5 {
		factors = append(factors, "vulnerable to small implementation mistakes")
	}
	if eq.Kind == game.KindMixed {
		factors = append(factors, "requires precise randomization to sustain")
	}

	return factors
}

// clamp01 snaps v into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
