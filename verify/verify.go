// Package verify - structural and Nash-condition validation.
//
// Design principles:
//   - Independence: every condition is re-derived here from the payoff
//     matrix; nothing is trusted from the solver that built the candidate.
//   - Report, don't throw: condition violations become categorized issues;
//     only a malformed MATRIX is a Go error.
//   - Deterministic: checks run in a fixed order, so identical inputs
//     yield identical reports.
package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/equilib/game"
	"github.com/katalvlaran/equilib/pure"
)

// Equilibrium validates one candidate equilibrium against m and returns
// the full report.
//
// Contracts:
//   - m must pass game.ValidateShape (first defect returned as-is);
//     the candidate itself may be arbitrarily malformed — that yields an
//     invalid report, not an error.
//
// Complexity: structural O(P·|S|), Nash O(P·|S|²), quality O(|S|^P)
// (efficiency scans all pure profiles).
func Equilibrium(eq game.NashEquilibrium, m *game.PayoffMatrix) (*Report, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	rep := &Report{}

	// Stage 1: structural checks. A broken shape makes the Nash checks
	// meaningless, so they are skipped (the report is already invalid).
	if checkStructure(rep, eq, m) {
		// Stage 2: Nash conditions.
		if eq.Kind == game.KindPure {
			checkPure(rep, eq, m)
		} else {
			checkMixed(rep, eq, m)
		}
	}

	// Stage 3: scores. Computed even for invalid candidates — callers
	// often want to see HOW far off a near-equilibrium is.
	rep.Stability = analyzeStability(eq, m)
	rep.Quality = scoreQuality(eq, m, rep.Stability.Overall)

	// Stage 4: verdict.
	rep.Valid = true
	for _, is := range rep.Issues {
		if is.Severity == SeverityCritical || is.Severity == SeverityHigh {
			rep.Valid = false

			break
		}
	}
	rep.Confidence = confidence(rep)

	return rep, nil
}

// checkStructure verifies vector shapes and probability constraints.
// Returns false when the candidate is too malformed for Nash checks.
func checkStructure(rep *Report, eq game.NashEquilibrium, m *game.PayoffMatrix) bool {
	n := m.StrategyCount()

	if len(eq.Payoffs) != m.Players {
		rep.add(SeverityMedium, fmt.Sprintf(
			"payoff vector has %d entries, want %d", len(eq.Payoffs), m.Players))
	}

	if eq.Kind == game.KindPure {
		if err := m.CheckProfile(eq.Profile); err != nil {
			rep.add(SeverityHigh, fmt.Sprintf("malformed pure profile: %v", err))

			return false
		}

		return true
	}

	if len(eq.Distributions) != m.Players {
		rep.add(SeverityHigh, fmt.Sprintf(
			"got %d distributions, want one per player (%d)", len(eq.Distributions), m.Players))

		return false
	}
	ok := true
	for player, dist := range eq.Distributions {
		if len(dist) != n {
			rep.add(SeverityHigh, fmt.Sprintf(
				"player %d distribution has %d entries, want %d", player, len(dist), n))
			ok = false

			continue
		}
		var sum float64
		for s, p := range dist {
			if p < -game.ProbSumTol || p > 1+game.ProbSumTol {
				rep.add(SeverityHigh, fmt.Sprintf(
					"player %d probability for strategy %d is %g, outside [0,1]", player, s, p))
				ok = false
			}
			if p > game.SupportTol && p < game.PayoffTol {
				rep.warn(fmt.Sprintf(
					"player %d strategy %d has near-zero probability %g: possible numerical artifact",
					player, s, p))
			}
			sum += p
		}
		if d := math.Abs(sum - 1); d > game.ProbSumTol {
			if d > game.ProbSumTolRelaxed {
				rep.add(SeverityHigh, fmt.Sprintf(
					"player %d probabilities sum to %g, want 1", player, sum))
				ok = false
			} else {
				rep.warn(fmt.Sprintf(
					"player %d probabilities sum to %g: within relaxed tolerance only", player, sum))
			}
		}
	}

	return ok
}

// checkPure re-derives the best-response condition.
func checkPure(rep *Report, eq game.NashEquilibrium, m *game.PayoffMatrix) {
	ok, strict, _ := pure.Check(m, eq.Profile, game.PayoffTol)
	if !ok {
		// Locate the offending deviation for a useful message.
		n := m.StrategyCount()
		for player := 0; player < m.Players; player++ {
			u := m.ProfilePayoff(eq.Profile, player)
			for alt := 0; alt < n; alt++ {
				if alt == eq.Profile[player] {
					continue
				}
				if v := m.DeviationPayoff(eq.Profile, player, alt); v > u+game.PayoffTol {
					rep.add(SeverityCritical, fmt.Sprintf(
						"best-response violation: player %d gains %g by deviating to strategy %d",
						player, v-u, alt))
				}
			}
		}

		return
	}
	if !strict {
		rep.warn("equilibrium is not strict: some deviation ties the equilibrium payoff")
	}
}

// checkMixed re-derives indifference and out-of-support conditions.
func checkMixed(rep *Report, eq game.NashEquilibrium, m *game.PayoffMatrix) {
	n := m.StrategyCount()
	for player := 0; player < m.Players; player++ {
		support := eq.Support(player)
		if len(support) == 0 {
			rep.add(SeverityHigh, fmt.Sprintf("player %d has an empty support", player))

			continue
		}
		base := candidateValue(eq, m, player, support[0])
		inSupport := make([]bool, n)
		for _, s := range support {
			inSupport[s] = true
		}
		for s := 0; s < n; s++ {
			if s == support[0] {
				continue
			}
			u := candidateValue(eq, m, player, s)
			if inSupport[s] {
				if d := math.Abs(u - base); d > game.PayoffTol {
					rep.add(SeverityHigh, fmt.Sprintf(
						"indifference violation: player %d payoffs differ by %g inside the support (strategy %d)",
						player, d, s))
				}
			} else if u > base+game.PayoffTol {
				rep.add(SeverityCritical, fmt.Sprintf(
					"out-of-support strategy %d beats player %d's support payoff by %g",
					s, player, u-base))
			} else if math.Abs(u-base) <= game.PayoffTol {
				rep.warn(fmt.Sprintf(
					"out-of-support strategy %d ties player %d's support payoff: weakly dominated mixing",
					s, player))
			}
		}
	}
}

// candidateValue is the expected payoff of playing pure strategy s against
// the candidate's opponent behavior. Two-player games use exact expected
// values; larger games mirror the aggregate-opponent approximation the
// solvers use, so a solver-accepted candidate validates consistently.
func candidateValue(eq game.NashEquilibrium, m *game.PayoffMatrix, player, s int) float64 {
	n := m.StrategyCount()
	if m.Players == 2 {
		opp := eq.Distribution(1-player, n)
		var u float64
		for j, pj := range opp {
			if pj == 0 {
				continue
			}
			if player == 0 {
				u += pj * m.Payoffs[s][j][0]
			} else {
				u += pj * m.Payoffs[j][s][1]
			}
		}

		return u
	}

	// Aggregate column: rounded mean of opponents' expected indices.
	var sum float64
	for j := 0; j < m.Players; j++ {
		if j == player {
			continue
		}
		dist := eq.Distribution(j, n)
		var e float64
		for k, p := range dist {
			e += float64(k) * p
		}
		sum += e
	}
	agg := int(math.Round(sum / float64(m.Players-1)))
	if agg < 0 {
		agg = 0
	}
	if agg > n-1 {
		agg = n - 1
	}

	return m.Payoffs[s][agg][player]
}

// confidence decays from 1.0 per finding, floored at 0.
func confidence(rep *Report) float64 {
	c := 1.0
	for _, is := range rep.Issues {
		switch is.Severity {
		case SeverityCritical:
			c -= DecayCritical
		case SeverityHigh:
			c -= DecayHigh
		case SeverityMedium:
			c -= DecayMedium
		default:
			c -= DecayLow
		}
	}
	c -= DecayWarning * float64(len(rep.Warnings))
	if c < 0 {
		c = 0
	}

	return c
}

// add appends a categorized issue.
func (r *Report) add(sev Severity, msg string) {
	r.Issues = append(r.Issues, Issue{Severity: sev, Message: msg})
}

// warn appends a non-blocking warning.
func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
