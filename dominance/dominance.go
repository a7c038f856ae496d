// Package dominance - pairwise dominance detection.
//
// Design principles:
//   - Deterministic: players, then ordered strategy pairs, ascending.
//   - Tolerance-aware float comparisons: "strictly better" means better by
//     more than game.PayoffTol; ties live inside the tolerance band.
//   - The opponent side of every comparison is a concrete column index:
//     the real opponent strategy for two-player games, the aggregate
//     column for P ≥ 3.
package dominance

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/equilib/game"
)

// Analyze runs the full dominance analysis on m: pairwise detection over
// the complete strategy set, then iterated elimination (see eliminate.go).
//
// Contracts:
//   - m must pass game.ValidateShape (first defect returned as-is).
//
// Complexity: O(P·|S|³) detection + up to |S| elimination rounds.
func Analyze(m *game.PayoffMatrix) (*AnalysisResult, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var (
		res    = &AnalysisResult{}
		n      = m.StrategyCount()
		active = fullSet(n)
	)

	// Stage 1: pairwise relations on the full game, per player.
	for player := 0; player < m.Players; player++ {
		for a := 0; a < n; a++ {
			var strictOver, weakOver, strictUnder, weakUnder []string
			for b := 0; b < n; b++ {
				if a == b {
					continue
				}
				switch relation(m, player, a, b, active) {
				case Strict:
					strictOver = append(strictOver, m.Strategies[b].Name)
				case Weak:
					weakOver = append(weakOver, m.Strategies[b].Name)
				}
				switch relation(m, player, b, a, active) {
				case Strict:
					strictUnder = append(strictUnder, m.Strategies[b].Name)
				case Weak:
					weakUnder = append(weakUnder, m.Strategies[b].Name)
				}
			}
			res.StrictlyDominant = appendDescriptor(res.StrictlyDominant, m, player, a, Strict, strictOver, true)
			res.WeaklyDominant = appendDescriptor(res.WeaklyDominant, m, player, a, Weak, weakOver, true)
			res.StrictlyDominated = appendDescriptor(res.StrictlyDominated, m, player, a, Strict, strictUnder, false)
			res.WeaklyDominated = appendDescriptor(res.WeaklyDominated, m, player, a, Weak, weakUnder, false)
		}
	}

	// Stage 2: iterated elimination + reduced game.
	eliminate(m, res)

	// Stage 3: aggregate texts.
	res.Explanation = explanation(res)
	res.Recommendations = recommendations(m, res)

	return res, nil
}

// relationKind values: -1 none; otherwise Strict/Weak.
const noDominance = Type(-1)

// relation classifies how strategy a relates to strategy b for player,
// comparing payoffs against every active opponent column.
//
// Complexity: O(|active|).
func relation(m *game.PayoffMatrix, player, a, b int, active []int) Type {
	var (
		betterSomewhere  bool
		strictEverywhere = true
	)
	for _, c := range active {
		ua := payoffOf(m, player, a, c)
		ub := payoffOf(m, player, b, c)
		if ua < ub-game.PayoffTol {
			return noDominance // worse somewhere: no dominance at all
		}
		if ua > ub+game.PayoffTol {
			betterSomewhere = true
		} else {
			strictEverywhere = false // tie within tolerance
		}
	}
	if !betterSomewhere {
		return noDominance // equal everywhere: neither strict nor weak
	}
	if strictEverywhere {
		return Strict
	}

	return Weak
}

// payoffOf reads player's payoff when they play own and the opposing side
// plays column c. Orientation: in two-player games player 1 reads the
// transposed cell; for P ≥ 3 every player reads [own][aggregate].
func payoffOf(m *game.PayoffMatrix, player, own, c int) float64 {
	if m.Players == 2 && player == 1 {
		return m.Payoffs[c][own][1]
	}

	return m.Payoffs[own][c][player]
}

// appendDescriptor adds a descriptor when related is non-empty.
func appendDescriptor(list []StrategyDominance, m *game.PayoffMatrix, player, s int, t Type, related []string, dominant bool) []StrategyDominance {
	if len(related) == 0 {
		return list
	}
	var text string
	if dominant {
		text = fmt.Sprintf("for player %d, %s %s dominates %s",
			player+1, m.Strategies[s].Name, t, strings.Join(related, ", "))
	} else {
		text = fmt.Sprintf("for player %d, %s is %s dominated by %s",
			player+1, m.Strategies[s].Name, t, strings.Join(related, ", "))
	}

	return append(list, StrategyDominance{
		Player:          player,
		StrategyIndex:   s,
		Strategy:        m.Strategies[s],
		Type:            t,
		Related:         related,
		ShouldEliminate: !dominant,
		Explanation:     text,
	})
}

// fullSet returns [0, 1, ..., n-1].
func fullSet(n int) []int {
	set := make([]int, n)
	for i := range set {
		set[i] = i
	}

	return set
}

// explanation builds the one-paragraph summary.
func explanation(res *AnalysisResult) string {
	var parts []string
	if c := len(res.StrictlyDominant); c > 0 {
		parts = append(parts, fmt.Sprintf("%d strictly dominant strategy relation(s)", c))
	}
	if c := len(res.WeaklyDominant); c > 0 {
		parts = append(parts, fmt.Sprintf("%d weakly dominant strategy relation(s)", c))
	}
	if c := len(res.StrictlyDominated); c > 0 {
		parts = append(parts, fmt.Sprintf("%d strictly dominated strategy relation(s)", c))
	}
	if c := len(res.WeaklyDominated); c > 0 {
		parts = append(parts, fmt.Sprintf("%d weakly dominated strategy relation(s)", c))
	}
	if len(parts) == 0 {
		return "no dominance relations: every strategy is a best response to some opponent choice"
	}
	summary := "found " + strings.Join(parts, ", ")
	if len(res.Steps) > 0 {
		summary += fmt.Sprintf("; iterated elimination removed %d strategy(ies) in %d step(s)",
			len(res.Steps), len(res.Steps))
	}

	return summary
}

// recommendations derives scenario-facing advice from the analysis.
func recommendations(m *game.PayoffMatrix, res *AnalysisResult) []string {
	var recs []string
	for _, d := range res.StrictlyDominant {
		recs = append(recs, fmt.Sprintf("player %d should play %s: it strictly dominates %s",
			d.Player+1, d.Strategy.Name, strings.Join(d.Related, ", ")))
	}
	for _, d := range res.StrictlyDominated {
		recs = append(recs, fmt.Sprintf("player %d should never play %s: it is strictly dominated by %s",
			d.Player+1, d.Strategy.Name, strings.Join(d.Related, ", ")))
	}
	if res.Reduced != nil {
		recs = append(recs, fmt.Sprintf("analyze the reduced game: %d of %d strategies survive elimination",
			res.Reduced.StrategyCount(), m.StrategyCount()))
	}
	if len(recs) == 0 {
		recs = append(recs, "no strategy can be discarded on dominance grounds; run an equilibrium search")
	}

	return recs
}
