// Package game defines the value types shared by every equilib solver:
// strategies, payoff matrices, Nash equilibria and structural validation.
//
// 🚀 What is game?
//
//	The payoff model. A PayoffMatrix holds an ordered strategy set shared
//	by all players and a payoff tensor Payoffs[a][b] — the payoff vector
//	(one entry per player) when the row side plays strategy a and the
//	column side plays strategy b. The model is constructed once by an
//	external scenario layer and treated as read-only by every solver.
//
// ✨ Key types:
//   - Strategy        — identifier, display name, short name, description
//   - PayoffMatrix    — player count, strategy set, payoff tensor, symmetry flag
//   - NashEquilibrium — tagged variant: Pure (profile) or Mixed (distributions)
//   - ShapeError      — one structural defect located by row/column
//
// ⚙️ Validation:
//
//	ValidateShape(m) returns every structural defect at once (for
//	pre-flight reporting); m.Validate() returns the first defect as a
//	plain error (for fail-fast solver entry points). Both enforce the
//	tensor invariants: row count == strategy count, every row has
//	strategy-count cells, every cell has exactly Players values, and
//	every value is finite.
//
// Multi-player note:
//
//	The tensor is two-indexed. For three or more players the engine
//	approximates the opponents' joint choice by the rounded mean of
//	their strategy indices (ProfilePayoff / AggregateOpponent). This is
//	a deliberate, lossy tractability trade-off: it is NOT a faithful
//	n-dimensional payoff model, and results for n≥3 are approximate.
//
// All types are immutable by convention: solvers never mutate a
// PayoffMatrix, and every NashEquilibrium is produced fresh per call.
package game
