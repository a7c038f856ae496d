// Package dominance - iterated elimination of dominated strategies.
//
// The active strategy set shrinks monotonically: each round removes ONE
// strategy (the lowest-indexed qualifying one, strict dominance preferred
// over weak), recomputes dominance on the reduced game, and repeats until
// nothing qualifies or a single strategy remains. Termination is
// guaranteed in at most |S|−1 rounds.
package dominance

import (
	"fmt"

	"github.com/katalvlaran/equilib/game"
)

// eliminate runs the elimination loop and fills Steps / Reduced /
// ReducedIndices on res.
//
// Complexity: O(|S|) rounds × O(P·|S|³) per-round detection, worst case.
func eliminate(m *game.PayoffMatrix, res *AnalysisResult) {
	active := fullSet(m.StrategyCount())

	for round := 1; len(active) > 1; round++ {
		victim, reasons := pickVictim(m, active)
		if victim < 0 {
			break // nothing is dominated for every player any more
		}

		active = remove(active, victim)
		remaining := make([]int, len(active))
		copy(remaining, active)
		res.Steps = append(res.Steps, EliminationStep{
			Round:          round,
			Eliminated:     victim,
			EliminatedName: m.Strategies[victim].Name,
			Reasons:        reasons,
			Remaining:      remaining,
		})
	}

	if len(res.Steps) > 0 {
		res.Reduced = reduce(m, active)
		res.ReducedIndices = active
	}
}

// pickVictim returns the lowest-indexed strategy dominated for EVERY
// player, preferring strictly dominated victims, together with one reason
// string per player. Returns -1 when no strategy qualifies.
func pickVictim(m *game.PayoffMatrix, active []int) (int, []string) {
	var (
		weakVictim  = -1
		weakReasons []string
	)
	for _, b := range active {
		strict, weak, reasons := dominatedForAll(m, b, active)
		if strict {
			return b, reasons
		}
		if weak && weakVictim < 0 {
			weakVictim, weakReasons = b, reasons
		}
	}

	return weakVictim, weakReasons
}

// dominatedForAll reports whether b is dominated for every player within
// the active set: strict when every player has a STRICT dominator, weak
// when every player has at least a weak one.
func dominatedForAll(m *game.PayoffMatrix, b int, active []int) (strict, weak bool, reasons []string) {
	strict, weak = true, true
	reasons = make([]string, 0, m.Players)

	for player := 0; player < m.Players; player++ {
		bestType := noDominance
		bestBy := -1
		for _, a := range active {
			if a == b {
				continue
			}
			switch relation(m, player, a, b, active) {
			case Strict:
				bestType, bestBy = Strict, a
			case Weak:
				if bestType == noDominance {
					bestType, bestBy = Weak, a
				}
			}
			if bestType == Strict {
				break
			}
		}
		switch bestType {
		case noDominance:
			return false, false, nil
		case Weak:
			strict = false
		}
		reasons = append(reasons, dominanceReason(m, player, bestBy, b, bestType))
	}

	return strict, weak, reasons
}

// dominanceReason renders one per-player elimination justification.
func dominanceReason(m *game.PayoffMatrix, player, a, b int, t Type) string {
	return fmt.Sprintf("for player %d, %s %s dominates %s",
		player+1, m.Strategies[a].Name, t, m.Strategies[b].Name)
}

// remove drops value v from set, preserving order.
func remove(set []int, v int) []int {
	out := set[:0]
	for _, s := range set {
		if s != v {
			out = append(out, s)
		}
	}

	return out
}

// reduce snapshots the game restricted to the active strategies.
// The payoff tensor is rebuilt (not aliased) so the reduced game is safe
// to analyze independently.
//
// Complexity: O(|active|²·P).
func reduce(m *game.PayoffMatrix, active []int) *game.PayoffMatrix {
	k := len(active)
	strategies := make([]game.Strategy, k)
	payoffs := make([][][]float64, k)
	for i, a := range active {
		strategies[i] = m.Strategies[a]
		payoffs[i] = make([][]float64, k)
		for j, b := range active {
			cell := make([]float64, m.Players)
			copy(cell, m.Payoffs[a][b])
			payoffs[i][j] = cell
		}
	}

	return &game.PayoffMatrix{
		Players:    m.Players,
		Strategies: strategies,
		Payoffs:    payoffs,
		Symmetric:  m.Symmetric,
	}
}
