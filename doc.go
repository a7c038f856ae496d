// Package equilib is your in-memory toolbox for analyzing finite
// strategic-form games — from pure best-response search to mixed-strategy
// solving, dominance analysis and equilibrium quality scoring.
//
// 🚀 What is equilib?
//
//	A deterministic, zero-dependency library that brings together:
//		• Payoff model: strategies, payoff tensors, shape validation
//		• Pure equilibria: exhaustive best-response search over all profiles
//		• Mixed equilibria: analytic 2×2 solve + bounded support enumeration
//		• Multi-player search: symmetric fixed points & bounded asymmetric patterns
//		• Dominance: strict/weak detection + iterated elimination
//		• Validation: Nash-condition re-checks, stability & quality metrics
//
// ✨ Why choose equilib?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – no randomness, no global state, reentrant everywhere
//   - Pure Go – no cgo, no hidden deps
//   - Bounded by design – every search carries explicit tractability caps
//
// Under the hood, everything is organized into per-concern subpackages:
//
//	game/      — Strategy, PayoffMatrix, NashEquilibrium & shape validation
//	pure/      — pure-strategy Nash search (best response over all profiles)
//	linsys/    — dense float64 systems + Gaussian elimination (partial pivoting)
//	mixed/     — two-player mixed solver (2×2 analytic, support enumeration)
//	nplayer/   — n≥3 solver (pure, symmetric fixed-point, asymmetric patterns)
//	dominance/ — strict/weak dominance & iterated elimination
//	verify/    — equilibrium validation, stability analysis, quality metrics
//	solve/     — dispatcher & ranked recommendations
//
// Quick matrix example (prisoner's dilemma, row = you, column = rival):
//
//	            Cooperate   Defect
//	Cooperate     (3,3)      (0,5)
//	Defect        (5,0)      (1,1)
//
//	the unique equilibrium is (Defect, Defect) with payoffs (1,1).
//
// All computation is synchronous and side-effect free: callers that need
// parallelism run independent solves from their own goroutines.
// Dive into the per-package doc.go files for contracts, tolerances and
// complexity notes.
//
//	go get github.com/katalvlaran/equilib
package equilib
