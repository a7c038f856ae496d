// SPDX-License-Identifier: MIT
// Package linsys: dense storage and sentinel error set.
// All functions return these sentinels and tests check them via errors.Is.
// Panics are reserved for programmer errors in private helpers (none today).

package linsys

import (
	"errors"
	"math"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("linsys: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("linsys: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. a non-square system or len(b) != rows.
	ErrDimensionMismatch = errors.New("linsys: dimension mismatch")

	// ErrSingular is returned when elimination meets a pivot column whose
	// best pivot is below PivotTol: the system has no unique solution.
	ErrSingular = errors.New("linsys: singular system")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("linsys: NaN or Inf encountered")
)

// PivotTol is the magnitude below which a pivot counts as zero.
// Deliberately tighter than the solvers' payoff tolerances so that
// near-degenerate indifference systems surface as ErrSingular instead
// of producing garbage probabilities.
const PivotTol = 1e-10

// Dense is a row-major, flat-backed float64 matrix.
// The zero value is unusable; construct via NewDense.
type Dense struct {
	rows, cols int
	data       []float64 // len == rows*cols, row-major
}

// NewDense allocates a rows×cols zero matrix.
// Returns ErrBadShape when either dimension is non-positive.
//
// Complexity: O(r·c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.cols }

// At returns the element at (i, j), or ErrOutOfRange.
//
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, ErrOutOfRange
	}

	return d.data[i*d.cols+j], nil
}

// Set writes v at (i, j). Returns ErrOutOfRange on bad indices and
// ErrNaNInf when v is not finite (strict ingestion policy).
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	d.data[i*d.cols+j] = v

	return nil
}

// Clone returns a deep copy sharing no storage with d.
//
// Complexity: O(r·c).
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{rows: d.rows, cols: d.cols, data: cp}
}

// FromRows builds a Dense from a rectangular [][]float64.
// Returns ErrBadShape on empty input, ErrDimensionMismatch on ragged rows,
// ErrNaNInf on non-finite entries.
//
// Complexity: O(r·c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	d, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrDimensionMismatch
		}
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
