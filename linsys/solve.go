// SPDX-License-Identifier: MIT
// Package linsys: Gaussian elimination with partial pivoting.
//
// Purpose:
//   - Solve the square systems produced by support enumeration.
//   - Surface degeneracy as ErrSingular so callers can skip the branch.
//
// Determinism:
//   - Fixed elimination order; ties in pivot selection resolve to the
//     lowest row index. Identical inputs always yield identical outputs.

package linsys

import "math"

// SolveGaussian solves A·x = b for square A using Gaussian elimination
// with partial pivoting. Inputs are not mutated: elimination runs on
// private copies.
//
// Contracts:
//   - a non-nil and square; len(b) == a.Rows().
//   - all entries finite (guaranteed by Dense's ingestion policy for a;
//     b is checked here).
//
// Errors:
//   - ErrDimensionMismatch — nil/non-square a, or len(b) mismatch.
//   - ErrNaNInf            — non-finite entry in b.
//   - ErrSingular          — best available pivot below PivotTol.
//
// Complexity: O(n³) time, O(n²) space for the working copy.
func SolveGaussian(a *Dense, b []float64) ([]float64, error) {
	// Stage 1: shape checks.
	if a == nil || a.rows != a.cols {
		return nil, ErrDimensionMismatch
	}
	n := a.rows
	if len(b) != n {
		return nil, ErrDimensionMismatch
	}
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	// Stage 2: working copies (augmented form kept as separate slices).
	work := a.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)

	var (
		col, row, k int     // elimination indices
		pivotRow    int     // row holding the largest |pivot| in col
		pivotAbs    float64 // |pivot| under consideration
		bestAbs     float64 // best |pivot| seen in this column
		factor      float64 // elimination multiplier
	)

	// Stage 3: forward elimination with partial pivoting.
	for col = 0; col < n; col++ {
		// Select the pivot: largest absolute value at or below the diagonal.
		pivotRow, bestAbs = col, math.Abs(work.data[col*n+col])
		for row = col + 1; row < n; row++ {
			pivotAbs = math.Abs(work.data[row*n+col])
			if pivotAbs > bestAbs {
				pivotRow, bestAbs = row, pivotAbs
			}
		}
		if bestAbs < PivotTol {
			return nil, ErrSingular
		}
		if pivotRow != col {
			swapRows(work, col, pivotRow)
			rhs[col], rhs[pivotRow] = rhs[pivotRow], rhs[col]
		}

		// Eliminate below the pivot.
		for row = col + 1; row < n; row++ {
			factor = work.data[row*n+col] / work.data[col*n+col]
			if factor == 0 {
				continue
			}
			work.data[row*n+col] = 0
			for k = col + 1; k < n; k++ {
				work.data[row*n+k] -= factor * work.data[col*n+k]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	// Stage 4: back substitution.
	x := make([]float64, n)
	var sum float64
	for row = n - 1; row >= 0; row-- {
		sum = rhs[row]
		for k = row + 1; k < n; k++ {
			sum -= work.data[row*n+k] * x[k]
		}
		x[row] = sum / work.data[row*n+row]
	}

	return x, nil
}

// swapRows exchanges rows i and j of d in place.
//
// Complexity: O(cols).
func swapRows(d *Dense, i, j int) {
	ri := d.data[i*d.cols : (i+1)*d.cols]
	rj := d.data[j*d.cols : (j+1)*d.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
