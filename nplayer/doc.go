// Package nplayer approximates Nash equilibria of games with three or
// more players.
//
// 🚀 What is nplayer?
//
//	The payoff model is two-indexed (see package game), so a game with
//	P ≥ 3 players cannot be represented exactly: every payoff lookup
//	collapses the opponents' joint choice into the rounded mean of their
//	strategy indices. Every result of this package is therefore an
//	APPROXIMATION — dependable for coordination-style games with ordered
//	strategy sets, coarse elsewhere.
//
// Three bounded searches, results merged and deduplicated:
//
//   - Pure: the same exhaustive best-response search as package pure
//     (reused directly, not reimplemented).
//
//   - Symmetric mixed (only when the matrix is marked Symmetric):
//     the uniform mix over all strategies is tested for indifference;
//     then, for every strategy pair, an iterative fixed point starts at
//     probability 0.5 and moves proportionally to the payoff difference
//     until it falls below tolerance or MaxFixedPointIters is hit.
//
//   - Asymmetric patterns: each player is assigned "pure" or "mixed",
//     with at most MaxMixedPlayers mixing simultaneously. Pure players
//     enumerate strategies; mixed players enumerate 50/50 two-strategy
//     mixes. Each combination is verified: best response for pure roles,
//     indifference plus no-better-outside-strategy for mixed roles.
//
// ⚠️ Completeness is NOT guaranteed: both the aggregate-opponent payoff
// model and the pattern caps are deliberate tractability bounds. Zero
// results is a legitimate outcome, not an error.
//
// Performance:
//   - Pure:       O(|S|^P · P · |S|)
//   - Symmetric:  O(|S|² · MaxFixedPointIters)
//   - Asymmetric: O(C(P,≤2) · |S|^(P−mixed) · C(|S|,2)^mixed · P·|S|)
package nplayer
