// Package dominance defines the result model of the dominance analysis.
//
// All types are plain values assembled once by Analyze and never mutated
// afterwards. Structural defects surface as the game package's sentinels;
// "nothing is dominated" is an empty result, never an error.
package dominance

import "github.com/katalvlaran/equilib/game"

// Type discriminates strict from weak dominance.
type Type int

const (
	// Strict: better against every opponent choice.
	Strict Type = iota

	// Weak: never worse, strictly better at least once.
	Weak
)

// String implements fmt.Stringer for explanations and diagnostics.
func (t Type) String() string {
	if t == Strict {
		return "strictly"
	}

	return "weakly"
}

// StrategyDominance describes one dominant or dominated strategy from one
// player's perspective.
type StrategyDominance struct {
	// Player is the player index whose payoffs establish the relation.
	Player int
	// StrategyIndex locates the strategy in the shared set.
	StrategyIndex int
	// Strategy is the described strategy (copied for self-contained results).
	Strategy game.Strategy
	// Type is Strict or Weak.
	Type Type
	// Related lists display names of the counterpart strategies: those this
	// one dominates (dominant descriptors) or is dominated by (dominated).
	Related []string
	// ShouldEliminate marks dominated strategies that iterated elimination
	// would remove (always true for strictly dominated ones).
	ShouldEliminate bool
	// Explanation is a one-sentence plain-text account of the relation.
	Explanation string
}

// EliminationStep records one round of iterated elimination.
type EliminationStep struct {
	// Round is 1-based.
	Round int
	// Eliminated is the removed strategy's index in the ORIGINAL set.
	Eliminated int
	// EliminatedName is its display name.
	EliminatedName string
	// Reasons holds one per-player justification for the removal.
	Reasons []string
	// Remaining lists the original-set indices still active after this step.
	Remaining []int
}

// AnalysisResult is the full outcome of Analyze.
type AnalysisResult struct {
	// StrictlyDominant / WeaklyDominant list strategies that dominate at
	// least one rival, per player.
	StrictlyDominant []StrategyDominance
	WeaklyDominant   []StrategyDominance

	// StrictlyDominated / WeaklyDominated list strategies dominated by at
	// least one rival, per player.
	StrictlyDominated []StrategyDominance
	WeaklyDominated   []StrategyDominance

	// Steps is the ordered elimination sequence (possibly empty).
	Steps []EliminationStep

	// Reduced is the post-elimination game, or nil when nothing was
	// eliminated. ReducedIndices maps its strategy positions back to the
	// original set.
	Reduced        *game.PayoffMatrix
	ReducedIndices []int

	// Explanation summarizes the analysis; Recommendations suggest next
	// moves in scenario terms.
	Explanation     string
	Recommendations []string
}
