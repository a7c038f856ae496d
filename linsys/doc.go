// Package linsys provides the small dense linear-algebra kernel used by the
// mixed-strategy solver: a flat-backed float64 matrix and Gaussian
// elimination with partial pivoting.
//
// 🚀 What is linsys?
//
//	Support-enumeration builds one square linear system per candidate
//	support pair (indifference rows + a sum-to-one row). linsys solves
//	those systems deterministically and reports degeneracy via a single
//	sentinel, ErrSingular, which the caller treats as "this support
//	yields no equilibrium" — a normal outcome, never a failure.
//
// ✨ Key features:
//   - Dense: row-major flat storage, O(1) At/Set with strict bounds checks
//   - SolveGaussian: partial pivoting, in-place on private copies
//   - Strict sentinels: ErrBadShape, ErrOutOfRange, ErrDimensionMismatch,
//     ErrSingular, ErrNaNInf — matched via errors.Is
//
// ⚙️ Usage:
//
//	a, _ := linsys.NewDense(2, 2)
//	_ = a.Set(0, 0, 3); _ = a.Set(0, 1, -1)
//	_ = a.Set(1, 0, 1); _ = a.Set(1, 1, 1)
//	x, err := linsys.SolveGaussian(a, []float64{1, 1})
//	// x == [0.5, 0.5]
//
// Performance:
//   - SolveGaussian: O(n³) time, O(n²) scratch (copies; inputs untouched)
//
// The package is deterministic and allocation-predictable: no global
// state, no randomness, no hidden retries.
package linsys
