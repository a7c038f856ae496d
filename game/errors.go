// SPDX-License-Identifier: MIT
// Package game: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the game
// package and by solver entry points. All solvers MUST return these sentinels
// for structural defects and tests MUST check them via errors.Is. No solver
// may panic on user-provided payoff data.

package game

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "game: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil matrix -> player count -> empty strategy set -> tensor shape
// -> payoff vector length -> non-finite values.

var (
	// ErrNilMatrix indicates that a nil *PayoffMatrix was passed to a solver
	// or validator. Public entry points MUST return this, not panic.
	ErrNilMatrix = errors.New("game: payoff matrix is nil")

	// ErrBadPlayerCount indicates Players < 2. One-player "games" have no
	// strategic interaction and are rejected before any search.
	ErrBadPlayerCount = errors.New("game: player count must be at least 2")

	// ErrNoStrategies indicates an empty strategy set. Every player needs at
	// least one choice; solvers additionally require two for non-trivial games.
	ErrNoStrategies = errors.New("game: strategy set is empty")

	// ErrRowCountMismatch indicates len(Payoffs) != len(Strategies).
	ErrRowCountMismatch = errors.New("game: payoff row count does not match strategy count")

	// ErrRaggedRow indicates a payoff row whose cell count differs from the
	// strategy count (the tensor must be rectangular).
	ErrRaggedRow = errors.New("game: payoff row has wrong cell count")

	// ErrPayoffVectorLength indicates a cell whose payoff vector length
	// differs from the player count.
	ErrPayoffVectorLength = errors.New("game: payoff vector length does not match player count")

	// ErrNonFinitePayoff signals a NaN or ±Inf payoff value. The engine's
	// numeric policy requires finite payoffs everywhere.
	ErrNonFinitePayoff = errors.New("game: NaN or Inf payoff encountered")

	// ErrProfileLength indicates a strategy profile whose length differs from
	// the player count (candidate-equilibrium checks).
	ErrProfileLength = errors.New("game: profile length does not match player count")

	// ErrStrategyOutOfRange indicates a strategy index outside [0, |S|).
	ErrStrategyOutOfRange = errors.New("game: strategy index out of range")
)
