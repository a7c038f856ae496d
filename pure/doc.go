// Package pure finds pure-strategy Nash equilibria of a finite
// strategic-form game by exhaustive best-response search.
//
// 🚀 What is pure?
//
//	A profile (one strategy index per player) is a pure Nash equilibrium
//	when no player can strictly improve their payoff by a unilateral
//	deviation. pure enumerates every profile in the Cartesian product of
//	strategy indices and tests each one against every deviation.
//
// ✨ Key features:
//   - Find: all pure equilibria, in deterministic lexicographic order
//   - Check: best-response test for ONE candidate profile (reused by the
//     multi-player solver and the validator)
//   - Strictness flag: set when every deviation is strictly worse
//   - Stability: minimum single-player deviation loss, mapped into [0.5, 1]
//     (ties pin the score at 0.5; larger margins approach 1)
//
// ⚙️ Usage:
//
//	eqs, err := pure.Find(m)
//	if err != nil { ... }        // structural defect in m
//	if len(eqs) == 0 { ... }     // legitimate: no pure equilibrium exists
//
// Performance:
//   - Time:  O(|S|^P · P · |S|) — every profile × every deviation
//   - Memory: O(P) scratch + output
//
// For P ≥ 3 payoffs come from the shared aggregate-opponent
// approximation (see package game): results are approximate by design.
package pure
