// Package verify defines the validation report model.
//
// All types are plain values assembled once per Equilibrium call.
package verify

// Severity categorizes a validation issue.
type Severity int

const (
	// SeverityCritical — the candidate is not an equilibrium at all
	// (best-response violation, profitable out-of-support deviation).
	SeverityCritical Severity = iota

	// SeverityHigh — a core condition fails beyond tolerance
	// (in-support indifference violation, malformed distribution).
	SeverityHigh

	// SeverityMedium — a secondary condition fails (length mismatches in
	// auxiliary vectors, relaxed-tolerance breaches).
	SeverityMedium

	// SeverityLow — cosmetic or borderline findings.
	SeverityLow
)

// String implements fmt.Stringer for report rendering.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Issue is one categorized validation failure.
type Issue struct {
	Severity Severity
	// Message states the violated condition in plain terms, with the
	// player/strategy indices involved.
	Message string
}

// StabilityAnalysis combines four independent heuristic scores in [0,1].
type StabilityAnalysis struct {
	// Robustness estimates resistance to small payoff or strategy
	// perturbations.
	Robustness float64
	// Convergence estimates how likely adaptive play is to settle here
	// (pure equilibria score higher than mixed).
	Convergence float64
	// BasinSize estimates the share of starting points attracted here.
	BasinSize float64
	// TremblingHand estimates resistance to small implementation errors
	// (strict pure equilibria score highest).
	TremblingHand float64
	// Overall is the mean of the four components.
	Overall float64
	// Description is a qualitative band for Overall.
	Description string
	// RiskFactors names every weak component.
	RiskFactors []string
}

// RiskProfile is the discrete risk classification of an equilibrium.
type RiskProfile int

const (
	// RiskLow — strict pure equilibrium with solid stability.
	RiskLow RiskProfile = iota

	// RiskMedium — stable but tie-prone or moderately mixed play.
	RiskMedium

	// RiskHigh — mixed play or weak stability.
	RiskHigh
)

// String implements fmt.Stringer.
func (r RiskProfile) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	default:
		return "high"
	}
}

// QualityMetrics scores an equilibrium's outcome, all scores in [0,1]
// except SocialWelfare (raw payoff sum).
type QualityMetrics struct {
	// Efficiency relates the equilibrium's total payoff to the best and
	// worst totals achievable by any pure profile.
	Efficiency float64
	// Fairness is 1 − normalized payoff variance across players.
	Fairness float64
	// SocialWelfare is the raw sum of player payoffs.
	SocialWelfare float64
	// Risk is the discrete risk profile.
	Risk RiskProfile
	// Complexity is the fraction of the maximal possible support in use.
	Complexity float64
	// Interpretability decreases with average support width (pure = 1).
	Interpretability float64
}

// Report is the full validation outcome for one candidate equilibrium.
type Report struct {
	// Valid is false iff any critical- or high-severity issue exists.
	Valid bool
	// Confidence starts at 1.0 and decays per issue/warning by severity.
	Confidence float64
	// Issues lists categorized failures (possibly empty).
	Issues []Issue
	// Warnings list non-blocking findings (numerical artifacts, ties).
	Warnings []string
	// Stability is the heuristic stability analysis.
	Stability StabilityAnalysis
	// Quality is the outcome scoring.
	Quality QualityMetrics
}

// Confidence decay per finding. Exported so callers can reason about
// score provenance; tuned so a single critical issue still leaves a
// distinguishable (non-zero) score ordering.
const (
	DecayCritical = 0.40
	DecayHigh     = 0.25
	DecayMedium   = 0.15
	DecayLow      = 0.05
	DecayWarning  = 0.02
)
