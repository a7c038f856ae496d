// Package solve is the unified entry point of the equilibrium engine.
//
// 🚀 What is solve?
//
//	The dispatcher. It validates the payoff matrix ONCE (fail-fast, with
//	the game package's structural sentinels), routes by player count —
//	two-player games get the pure finder plus the mixed solver, larger
//	games get the multi-player searches — and deduplicates the merged
//	results by strategy profile.
//
// ✨ Entry points:
//   - FindAll:     every equilibrium the bounded searches can reach
//   - Recommended: FindAll → validate each candidate → keep the valid
//     ones → rank by stability, then efficiency, then social welfare
//     (descending, with 0.1 tie bands) → attach a one-line
//     recommendation per rank
//
// FindAll is idempotent: identical matrices yield set-equal equilibrium
// collections in identical order (every sub-search enumerates
// deterministically).
//
// Error policy: structural defects surface before any search as sentinel
// errors; an empty result with a nil error means the bounded searches
// found nothing — a legitimate outcome the caller must distinguish from
// invalid input.
package solve
