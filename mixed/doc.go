// Package mixed finds mixed-strategy Nash equilibria of two-player
// strategic-form games.
//
// 🚀 What is mixed?
//
//	A mixed equilibrium assigns each player a probability distribution
//	over strategies such that (a) every strategy inside a player's
//	support earns the same expected payoff — the indifference condition —
//	and (b) no strategy outside the support earns strictly more.
//
// Two routes, dispatched by strategy count:
//
//   - 2×2 games: the two indifference equations are solved analytically.
//     A near-zero denominator (|d| < DenomTol) means no interior mixed
//     equilibrium exists — an empty result, not an error.
//
//   - Larger games: bounded support enumeration. Candidate supports of
//     equal size k, for k in [MinSupportSize, min(|S|, MaxSupportSize)],
//     are enumerated for both players; each pair yields a linear system
//     (k−1 indifference rows + one sum-to-one row) solved by Gaussian
//     elimination with partial pivoting (package linsys). Singular
//     systems are skipped. Solutions are accepted only after the FULL
//     profile re-verifies: in-support payoffs equal within tolerance,
//     no out-of-support strategy strictly better.
//
// ⚠️ Completeness is NOT guaranteed: the support-size cap is a deliberate,
// load-bearing tractability bound. Games whose only mixed equilibria use
// supports larger than MaxSupportSize will legitimately return none.
//
// Stability is 1/avgSupportSize — the wider the mixing, the less stable —
// so every mixed score is ≤ 0.5 and sorts below any pure equilibrium.
//
// Performance:
//   - 2×2: O(1)
//   - support enumeration: O(Σ_k C(|S|,k)² · (k³ + |S|²)) with k ≤ 4
package mixed
