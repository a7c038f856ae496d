// SPDX-License-Identifier: MIT
// Package game: core value types and numeric policy constants.

package game

// Numeric policy (single source of truth for every solver package).
const (
	// PayoffTol is the tolerance used when comparing payoffs: a deviation
	// improves a player's outcome only when it gains more than PayoffTol.
	PayoffTol = 1e-6

	// ProbSumTol is the strict tolerance for probability-simplex checks:
	// each distribution must sum to 1 within ProbSumTol.
	ProbSumTol = 1e-8

	// ProbSumTolRelaxed is the relaxed tolerance used by secondary
	// (warning-level) simplex checks on already-accepted equilibria.
	ProbSumTolRelaxed = 1e-6

	// SupportTol is the threshold below which a mixed-strategy probability
	// is treated as zero, i.e. the strategy is outside the support.
	SupportTol = 1e-9
)

// Strategy is one choice available to every player. Immutable: created once
// per game definition and shared by reference thereafter.
type Strategy struct {
	// ID is a stable machine identifier (e.g. "cooperate").
	ID string
	// Name is the full display name (e.g. "Cooperate").
	Name string
	// Short is an abbreviated label for dense tables (e.g. "C").
	Short string
	// Description explains the strategy in scenario terms. May be empty.
	Description string
}

// PayoffMatrix is the read-only payoff structure of a finite game.
//
// Payoffs[a][b] holds the payoff vector (length Players) realized when the
// row side plays Strategies[a] and the column side plays Strategies[b].
// The strategy set is shared across players.
//
// For Players ≥ 3 the two-index tensor cannot express the true joint
// strategy of all opponents; ProfilePayoff approximates it (see doc.go).
//
// Invariants (enforced by Validate/ValidateShape):
//   - Players ≥ 2
//   - len(Payoffs) == len(Strategies) ≥ 1
//   - len(Payoffs[a]) == len(Strategies) for every a
//   - len(Payoffs[a][b]) == Players for every a, b
//   - every payoff value is finite
type PayoffMatrix struct {
	// Players is the number of players P.
	Players int
	// Strategies is the ordered strategy set shared by all players.
	Strategies []Strategy
	// Payoffs is the tensor: Payoffs[rowStrategy][colStrategy][playerIndex].
	Payoffs [][][]float64
	// Symmetric marks games whose payoff structure is invariant under
	// player exchange; it gates the symmetric mixed search for n≥3.
	Symmetric bool
}

// StrategyCount returns |S|, the size of the shared strategy set.
func (m *PayoffMatrix) StrategyCount() int { return len(m.Strategies) }

// StrategyNames returns the display names in strategy order.
// Convenience for explanation builders; O(|S|) allocation.
func (m *PayoffMatrix) StrategyNames() []string {
	names := make([]string, len(m.Strategies))
	for i, s := range m.Strategies {
		names[i] = s.Name
	}

	return names
}

// Kind discriminates the NashEquilibrium variant.
type Kind int

const (
	// KindPure marks an equilibrium given by one strategy index per player.
	KindPure Kind = iota

	// KindMixed marks an equilibrium given by one probability distribution
	// over the strategy set per player.
	KindMixed
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	if k == KindPure {
		return "pure"
	}

	return "mixed"
}

// NashEquilibrium is a strategy profile in which no player can strictly
// improve their payoff by unilaterally deviating.
//
// It is an explicit tagged variant:
//   - Kind == KindPure  ⇒ Profile is set (one strategy index per player),
//     Distributions is nil.
//   - Kind == KindMixed ⇒ Distributions is set (one distribution per
//     player, entries in [0,1] summing to 1 within ProbSumTol), Profile
//     is nil.
//
// Payoffs always carries one (expected) payoff per player. Stability is a
// heuristic in [0,1]; Strict is meaningful for pure equilibria only.
// Equilibria are values: produced fresh by each solve call, never mutated.
type NashEquilibrium struct {
	Kind          Kind        // variant tag
	Profile       []int       // pure: strategy index per player
	Distributions [][]float64 // mixed: distribution per player
	Payoffs       []float64   // (expected) payoff per player
	Stability     float64     // heuristic robustness score in [0,1]
	Strict        bool        // pure only: every deviation strictly worse
}

// NewPure builds a pure equilibrium value. It copies profile and payoffs so
// later caller mutations cannot alias into the result.
func NewPure(profile []int, payoffs []float64, stability float64, strict bool) NashEquilibrium {
	p := make([]int, len(profile))
	copy(p, profile)
	u := make([]float64, len(payoffs))
	copy(u, payoffs)

	return NashEquilibrium{Kind: KindPure, Profile: p, Payoffs: u, Stability: stability, Strict: strict}
}

// NewMixed builds a mixed equilibrium value. Distributions and payoffs are
// deep-copied for the same aliasing reason as NewPure.
func NewMixed(distributions [][]float64, payoffs []float64, stability float64) NashEquilibrium {
	d := make([][]float64, len(distributions))
	for i, dist := range distributions {
		d[i] = make([]float64, len(dist))
		copy(d[i], dist)
	}
	u := make([]float64, len(payoffs))
	copy(u, payoffs)

	return NashEquilibrium{Kind: KindMixed, Distributions: d, Payoffs: u, Stability: stability}
}

// IsPure reports whether e is the pure variant.
func (e NashEquilibrium) IsPure() bool { return e.Kind == KindPure }

// Support returns the strategy indices played with probability > SupportTol
// by the given player. For pure equilibria this is the single profile index.
func (e NashEquilibrium) Support(player int) []int {
	if e.Kind == KindPure {
		return []int{e.Profile[player]}
	}
	var idx []int
	for s, p := range e.Distributions[player] {
		if p > SupportTol {
			idx = append(idx, s)
		}
	}

	return idx
}

// Distribution returns the player's mixing distribution. For pure equilibria
// a degenerate point mass is synthesized, so callers can treat both variants
// uniformly when computing expected payoffs.
func (e NashEquilibrium) Distribution(player, strategyCount int) []float64 {
	dist := make([]float64, strategyCount)
	if e.Kind == KindPure {
		dist[e.Profile[player]] = 1.0

		return dist
	}
	copy(dist, e.Distributions[player])

	return dist
}

// SameProfile reports whether two equilibria describe the same strategy
// profile: exact index match for pure pairs, per-entry distribution match
// within tol for mixed pairs. Differing kinds never match.
//
// Complexity: O(P) pure, O(P·|S|) mixed.
func (e NashEquilibrium) SameProfile(other NashEquilibrium, tol float64) bool {
	if e.Kind != other.Kind {
		return false
	}
	if e.Kind == KindPure {
		if len(e.Profile) != len(other.Profile) {
			return false
		}
		for i, s := range e.Profile {
			if other.Profile[i] != s {
				return false
			}
		}

		return true
	}
	if len(e.Distributions) != len(other.Distributions) {
		return false
	}
	for p := range e.Distributions {
		if len(e.Distributions[p]) != len(other.Distributions[p]) {
			return false
		}
		for s := range e.Distributions[p] {
			d := e.Distributions[p][s] - other.Distributions[p][s]
			if d < 0 {
				d = -d
			}
			if d > tol {
				return false
			}
		}
	}

	return true
}
