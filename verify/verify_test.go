// SPDX-License-Identifier: MIT
package verify_test

import (
	"testing"

	"github.com/katalvlaran/equilib/game"
	"github.com/katalvlaran/equilib/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(players int, payoffs [][][]float64) *game.PayoffMatrix {
	st := make([]game.Strategy, len(payoffs))
	for i := range st {
		st[i] = game.Strategy{ID: string(rune('a' + i)), Name: string(rune('A' + i))}
	}

	return &game.PayoffMatrix{Players: players, Strategies: st, Payoffs: payoffs}
}

func prisoners() *game.PayoffMatrix {
	return newGame(2, [][][]float64{
		{{3, 3}, {0, 5}},
		{{5, 0}, {1, 1}},
	})
}

func matchingPennies() *game.PayoffMatrix {
	return newGame(2, [][][]float64{
		{{1, -1}, {-1, 1}},
		{{-1, 1}, {1, -1}},
	})
}

func TestEquilibrium_ValidStrictPure(t *testing.T) {
	eq := game.NewPure([]int{1, 1}, []float64{1, 1}, 0.75, true)
	rep, err := verify.Equilibrium(eq, prisoners())
	require.NoError(t, err)

	assert.True(t, rep.Valid)
	assert.Empty(t, rep.Issues)
	assert.Empty(t, rep.Warnings)
	assert.Equal(t, 1.0, rep.Confidence)
	assert.Greater(t, rep.Stability.Overall, 0.5)
	assert.Equal(t, verify.RiskLow, rep.Quality.Risk)
	assert.InDelta(t, 2, rep.Quality.SocialWelfare, 1e-9)
	// mutual defection is the worst total outcome of the dilemma
	assert.InDelta(t, 0, rep.Quality.Efficiency, 1e-9)
	assert.InDelta(t, 1, rep.Quality.Fairness, 1e-9)
	assert.Equal(t, 1.0, rep.Quality.Interpretability)
}

func TestEquilibrium_RejectsNonEquilibrium(t *testing.T) {
	// mutual cooperation: each player gains 2 by defecting
	eq := game.NewPure([]int{0, 0}, []float64{3, 3}, 0.75, true)
	rep, err := verify.Equilibrium(eq, prisoners())
	require.NoError(t, err)

	assert.False(t, rep.Valid)
	require.Len(t, rep.Issues, 2, "one best-response violation per player")
	for _, is := range rep.Issues {
		assert.Equal(t, verify.SeverityCritical, is.Severity)
		assert.Contains(t, is.Message, "best-response violation")
	}
	assert.InDelta(t, 1-2*verify.DecayCritical, rep.Confidence, 1e-9)
	assert.Less(t, rep.Stability.Overall, 0.3)
}

func TestEquilibrium_ValidMixed(t *testing.T) {
	eq := game.NewMixed([][]float64{{0.5, 0.5}, {0.5, 0.5}}, []float64{0, 0}, 0.5)
	rep, err := verify.Equilibrium(eq, matchingPennies())
	require.NoError(t, err)

	assert.True(t, rep.Valid)
	assert.Empty(t, rep.Issues)
	assert.Equal(t, verify.RiskHigh, rep.Quality.Risk, "mixed play is classified high risk")
	assert.InDelta(t, 1, rep.Quality.Complexity, 1e-9, "full support on both sides")
}

func TestEquilibrium_IndifferenceViolation(t *testing.T) {
	// a lopsided mix is not an equilibrium of matching pennies
	eq := game.NewMixed([][]float64{{0.9, 0.1}, {0.5, 0.5}}, []float64{0, 0}, 0.5)
	rep, err := verify.Equilibrium(eq, matchingPennies())
	require.NoError(t, err)

	assert.False(t, rep.Valid)
	require.NotEmpty(t, rep.Issues)
	assert.Less(t, rep.Confidence, 1.0)
}

func TestEquilibrium_MalformedDistribution(t *testing.T) {
	// probabilities sum to 0.9: structurally broken
	eq := game.NewMixed([][]float64{{0.7, 0.2}, {0.5, 0.5}}, []float64{0, 0}, 0.5)
	rep, err := verify.Equilibrium(eq, matchingPennies())
	require.NoError(t, err)

	assert.False(t, rep.Valid)
	found := false
	for _, is := range rep.Issues {
		if is.Severity == verify.SeverityHigh {
			found = true
		}
	}
	assert.True(t, found, "want a high-severity simplex violation")
}

func TestEquilibrium_ProbabilityOutOfRange(t *testing.T) {
	eq := game.NewMixed([][]float64{{1.5, -0.5}, {0.5, 0.5}}, []float64{0, 0}, 0.5)
	rep, err := verify.Equilibrium(eq, matchingPennies())
	require.NoError(t, err)
	assert.False(t, rep.Valid)
}

func TestEquilibrium_WrongDistributionCount(t *testing.T) {
	eq := game.NewMixed([][]float64{{0.5, 0.5}}, []float64{0, 0}, 0.5)
	rep, err := verify.Equilibrium(eq, matchingPennies())
	require.NoError(t, err)
	assert.False(t, rep.Valid)
}

func TestEquilibrium_MalformedProfile(t *testing.T) {
	eq := game.NewPure([]int{0, 7}, []float64{0, 0}, 0.5, false)
	rep, err := verify.Equilibrium(eq, prisoners())
	require.NoError(t, err)
	assert.False(t, rep.Valid)
}

func TestEquilibrium_NonStrictWarns(t *testing.T) {
	zero := newGame(2, [][][]float64{
		{{0, 0}, {0, 0}},
		{{0, 0}, {0, 0}},
	})
	eq := game.NewPure([]int{0, 0}, []float64{0, 0}, 0.5, false)
	rep, err := verify.Equilibrium(eq, zero)
	require.NoError(t, err)

	assert.True(t, rep.Valid, "ties do not invalidate an equilibrium")
	assert.Empty(t, rep.Issues)
	require.NotEmpty(t, rep.Warnings)
	assert.Contains(t, rep.Warnings[0], "not strict")
	assert.InDelta(t, 1-verify.DecayWarning, rep.Confidence, 1e-9)
	assert.Equal(t, 1.0, rep.Quality.Efficiency, "flat payoffs count as efficient by convention")
}

func TestEquilibrium_MatrixError(t *testing.T) {
	eq := game.NewPure([]int{0, 0}, []float64{0, 0}, 0.5, false)
	_, err := verify.Equilibrium(eq, nil)
	assert.ErrorIs(t, err, game.ErrNilMatrix)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "critical", verify.SeverityCritical.String())
	assert.Equal(t, "high", verify.SeverityHigh.String())
	assert.Equal(t, "medium", verify.SeverityMedium.String())
	assert.Equal(t, "low", verify.SeverityLow.String())
}

func TestRiskProfile_String(t *testing.T) {
	assert.Equal(t, "low", verify.RiskLow.String())
	assert.Equal(t, "medium", verify.RiskMedium.String())
	assert.Equal(t, "high", verify.RiskHigh.String())
}

func TestStabilityAnalysis_Bounds(t *testing.T) {
	cases := []game.NashEquilibrium{
		game.NewPure([]int{1, 1}, []float64{1, 1}, 0.75, true),
		game.NewMixed([][]float64{{0.5, 0.5}, {0.5, 0.5}}, []float64{0, 0}, 0.5),
	}
	matrices := []*game.PayoffMatrix{prisoners(), matchingPennies()}
	for i, eq := range cases {
		rep, err := verify.Equilibrium(eq, matrices[i])
		require.NoError(t, err)
		st := rep.Stability
		for _, v := range []float64{st.Robustness, st.Convergence, st.BasinSize, st.TremblingHand, st.Overall} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
		assert.NotEmpty(t, st.Description)
	}
}
