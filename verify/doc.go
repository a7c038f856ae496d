// Package verify validates candidate Nash equilibria and scores their
// stability and quality.
//
// 🚀 What is verify?
//
//	Solvers can err, callers can hand-build equilibria, and numerical
//	pipelines drift. verify re-derives every condition independently of
//	the solver that produced the candidate:
//
//	  1. Structural: profile/distribution lengths, probability bounds,
//	     sum-to-one within tolerance.
//	  2. Nash conditions: the best-response test for pure candidates and
//	     the indifference + no-better-outside test for mixed ones.
//	  3. Stability analysis: four heuristic component scores in [0,1]
//	     (robustness, convergence likelihood, basin size, trembling-hand
//	     resistance) averaged into an overall score with named risk
//	     factors.
//	  4. Quality metrics: efficiency, fairness, social welfare, support
//	     complexity, interpretability and a discrete risk profile.
//
// Verdict policy:
//
//	Violations are REPORTED, never thrown: each becomes a categorized
//	issue (critical/high/medium/low) or a warning. The report is valid
//	iff no critical or high issue exists; confidence starts at 1.0 and
//	decays per issue by severity. Only a structurally broken MATRIX is
//	a Go error — a broken candidate yields an invalid report.
//
// Tolerances: payoff comparisons use game.PayoffTol (1e-6); probability
// sums use game.ProbSumTol (1e-8) strictly and game.ProbSumTolRelaxed
// (1e-6) for the warning band.
package verify
