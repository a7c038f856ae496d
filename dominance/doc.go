// Package dominance detects strategy dominance and performs iterated
// elimination of dominated strategies.
//
// 🚀 What is dominance?
//
//	Strategy A strictly dominates B for a player when A pays strictly
//	more than B against EVERY opponent choice; weak dominance allows
//	ties but requires at least one strict improvement. Dominated
//	strategies are irrational to play, and removing them repeatedly can
//	collapse a game to its essential core (famously, the prisoner's
//	dilemma reduces to Defect/Defect).
//
// ✨ What Analyze returns:
//   - strictly/weakly dominant and dominated strategy descriptors per
//     player, with related strategy names and a plain-text explanation
//   - the ordered elimination sequence (who was removed, why, and which
//     strategy indices remained)
//   - a reduced-game snapshot when elimination removed anything
//   - aggregate explanation and recommendation texts
//
// Elimination policy:
//
//	The strategy set is SHARED across players (one tensor axis per side),
//	so a strategy is eliminated only when it is dominated for every
//	player — strict dominance preferred over weak — and each step records
//	the per-player reasons. Elimination stops when nothing qualifies or
//	only one strategy would remain.
//
// Performance:
//   - Pairwise analysis: O(P · |S|³)
//   - Iterated elimination: O(|S|) rounds of the above, worst case
//
// For P ≥ 3 the opponent side of every comparison is the aggregate
// column index (see package game): dominance verdicts inherit the
// approximation.
package dominance
