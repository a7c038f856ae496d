// SPDX-License-Identifier: MIT
// Package game - structural validation of payoff matrices.
//
// This file contains the staged shape checks run before ANY search:
//  1. Nil / player-count / strategy-set sanity.
//  2. Tensor rectangularity (row count, cell count per row).
//  3. Payoff-vector lengths and finite-value policy.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(|S|²·P) worst-case; no hidden allocations beyond the defect list.

package game

import (
	"fmt"
	"math"
)

// ShapeError locates one structural defect in a PayoffMatrix.
// Row/Col are -1 when the defect is not tied to a tensor position
// (e.g. nil matrix, bad player count).
type ShapeError struct {
	// Row is the row-strategy index of the defect, or -1.
	Row int
	// Col is the column-strategy index of the defect, or -1.
	Col int
	// Err is the wrapped sentinel (errors.Is matchable).
	Err error
	// Detail is a human-readable elaboration (counts, values).
	Detail string
}

// Error implements the error interface: "sentinel (detail) at [row][col]".
func (e ShapeError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	if e.Row >= 0 {
		if e.Col >= 0 {
			return fmt.Sprintf("%s at [%d][%d]", msg, e.Row, e.Col)
		}

		return fmt.Sprintf("%s at row %d", msg, e.Row)
	}

	return msg
}

// Unwrap exposes the sentinel for errors.Is / errors.As.
func (e ShapeError) Unwrap() error { return e.Err }

// ValidateShape runs the full structural check and returns EVERY defect
// found, in deterministic scan order (priority documented in errors.go).
// A nil result means the matrix is well-formed.
//
// Use ValidateShape for pre-flight reporting; use (*PayoffMatrix).Validate
// for fail-fast solver entry points.
//
// Complexity: O(|S|²·P) time, O(defects) space.
func ValidateShape(m *PayoffMatrix) []ShapeError {
	// Stage 1: top-level sanity. Each of these defects makes deeper scans
	// meaningless, so they short-circuit.
	if m == nil {
		return []ShapeError{{Row: -1, Col: -1, Err: ErrNilMatrix}}
	}
	if m.Players < 2 {
		return []ShapeError{{Row: -1, Col: -1, Err: ErrBadPlayerCount,
			Detail: fmt.Sprintf("got %d", m.Players)}}
	}
	if len(m.Strategies) == 0 {
		return []ShapeError{{Row: -1, Col: -1, Err: ErrNoStrategies}}
	}

	var defects []ShapeError
	n := len(m.Strategies)

	// Stage 2: tensor rectangularity.
	if len(m.Payoffs) != n {
		defects = append(defects, ShapeError{Row: -1, Col: -1, Err: ErrRowCountMismatch,
			Detail: fmt.Sprintf("rows=%d strategies=%d", len(m.Payoffs), n)})

		// Rows are unusable when the count is wrong; stop here.
		return defects
	}

	var (
		row  [][]float64 // current tensor row
		cell []float64   // current payoff vector
		a, b int         // row / column strategy indices
		p    int         // player index within a cell
	)
	for a = 0; a < n; a++ { // scan rows
		row = m.Payoffs[a]
		if len(row) != n {
			defects = append(defects, ShapeError{Row: a, Col: -1, Err: ErrRaggedRow,
				Detail: fmt.Sprintf("cells=%d strategies=%d", len(row), n)})

			continue // cells of a ragged row are not indexable by strategy
		}

		// Stage 3: per-cell payoff vectors.
		for b = 0; b < n; b++ {
			cell = row[b]
			if len(cell) != m.Players {
				defects = append(defects, ShapeError{Row: a, Col: b, Err: ErrPayoffVectorLength,
					Detail: fmt.Sprintf("values=%d players=%d", len(cell), m.Players)})

				continue
			}
			for p = 0; p < m.Players; p++ {
				if math.IsNaN(cell[p]) || math.IsInf(cell[p], 0) {
					defects = append(defects, ShapeError{Row: a, Col: b, Err: ErrNonFinitePayoff,
						Detail: fmt.Sprintf("player %d", p)})

					break // one report per cell is enough
				}
			}
		}
	}

	return defects
}

// Validate is the fail-fast form of ValidateShape: it returns the first
// structural defect as a plain error, or nil when the matrix is well-formed.
// Every solver entry point calls this before computing anything.
func (m *PayoffMatrix) Validate() error {
	if defects := ValidateShape(m); len(defects) > 0 {
		return defects[0]
	}

	return nil
}
