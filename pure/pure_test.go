// SPDX-License-Identifier: MIT
package pure_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/equilib/game"
	"github.com/katalvlaran/equilib/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPlayer(payoffs [][][]float64) *game.PayoffMatrix {
	return nPlayer(2, payoffs)
}

func nPlayer(players int, payoffs [][][]float64) *game.PayoffMatrix {
	names := []string{"Alpha", "Beta", "Gamma", "Delta"}
	st := make([]game.Strategy, len(payoffs))
	for i := range st {
		st[i] = game.Strategy{ID: names[i], Name: names[i]}
	}

	return &game.PayoffMatrix{Players: players, Strategies: st, Payoffs: payoffs}
}

func TestFind_PrisonersDilemma(t *testing.T) {
	m := twoPlayer([][][]float64{
		{{3, 3}, {0, 5}},
		{{5, 0}, {1, 1}},
	})
	eqs, err := pure.Find(m)
	require.NoError(t, err)
	require.Len(t, eqs, 1, "mutual defection is the only pure equilibrium")

	eq := eqs[0]
	assert.Equal(t, []int{1, 1}, eq.Profile)
	assert.Equal(t, []float64{1, 1}, eq.Payoffs)
	assert.True(t, eq.Strict)
	// minimum deviation loss is 1: stability = 0.5 + 0.5 * 1/2
	assert.InDelta(t, 0.75, eq.Stability, 1e-12)
}

func TestFind_MatchingPennies_NoPure(t *testing.T) {
	m := twoPlayer([][][]float64{
		{{1, -1}, {-1, 1}},
		{{-1, 1}, {1, -1}},
	})
	eqs, err := pure.Find(m)
	require.NoError(t, err)
	assert.Empty(t, eqs, "zero-sum mismatch game has no pure equilibrium")
}

func TestFind_BattleOfSexes_TwoPure(t *testing.T) {
	m := twoPlayer([][][]float64{
		{{2, 1}, {0, 0}},
		{{0, 0}, {1, 2}},
	})
	eqs, err := pure.Find(m)
	require.NoError(t, err)
	require.Len(t, eqs, 2)
	assert.Equal(t, []int{0, 0}, eqs[0].Profile)
	assert.Equal(t, []int{1, 1}, eqs[1].Profile)
	assert.True(t, eqs[0].Strict)
	assert.True(t, eqs[1].Strict)
}

func TestFind_AllZero_EverythingTies(t *testing.T) {
	m := twoPlayer([][][]float64{
		{{0, 0}, {0, 0}},
		{{0, 0}, {0, 0}},
	})
	eqs, err := pure.Find(m)
	require.NoError(t, err)
	require.Len(t, eqs, 4, "every profile is a (non-strict) equilibrium")
	for _, eq := range eqs {
		assert.False(t, eq.Strict)
		assert.InDelta(t, 0.5, eq.Stability, 1e-12)
	}
	// lexicographic visit order
	assert.Equal(t, []int{0, 0}, eqs[0].Profile)
	assert.Equal(t, []int{1, 1}, eqs[3].Profile)
}

func TestFind_ThreePlayerCoordination(t *testing.T) {
	m := nPlayer(3, [][][]float64{
		{{1, 1, 1}, {0, 0, 0}},
		{{0, 0, 0}, {1, 1, 1}},
	})
	eqs, err := pure.Find(m)
	require.NoError(t, err)
	require.Len(t, eqs, 2)
	assert.Equal(t, []int{0, 0, 0}, eqs[0].Profile)
	assert.Equal(t, []int{1, 1, 1}, eqs[1].Profile)
	for _, eq := range eqs {
		assert.True(t, eq.Strict)
		assert.Equal(t, []float64{1, 1, 1}, eq.Payoffs)
	}
}

func TestFind_StructuralDefect(t *testing.T) {
	m := twoPlayer([][][]float64{
		{{3, 3}, {0}},
		{{5, 0}, {1, 1}},
	})
	_, err := pure.Find(m)
	assert.ErrorIs(t, err, game.ErrPayoffVectorLength)

	_, err = pure.Find(nil)
	assert.ErrorIs(t, err, game.ErrNilMatrix)
}

func TestCheck_Exported(t *testing.T) {
	m := twoPlayer([][][]float64{
		{{3, 3}, {0, 5}},
		{{5, 0}, {1, 1}},
	})
	ok, strict, minLoss := pure.Check(m, []int{1, 1}, game.PayoffTol)
	assert.True(t, ok)
	assert.True(t, strict)
	assert.InDelta(t, 1, minLoss, 1e-12)

	ok, _, _ = pure.Check(m, []int{0, 0}, game.PayoffTol)
	assert.False(t, ok, "mutual cooperation invites defection")
}

func TestStability_Mapping(t *testing.T) {
	assert.Equal(t, 0.5, pure.Stability(0))
	assert.Equal(t, 0.5, pure.Stability(-1e-9))
	assert.InDelta(t, 0.75, pure.Stability(1), 1e-12)
	assert.Equal(t, 1.0, pure.Stability(math.Inf(1)))
	// monotone in the loss
	assert.Greater(t, pure.Stability(5), pure.Stability(1))
	assert.Less(t, pure.Stability(5), 1.0)
}

func TestWithTolerance_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { pure.WithTolerance(-0.1)(nil) })
}

func TestFind_WideToleranceAcceptsNearTies(t *testing.T) {
	// a 0.5 deviation gain is invisible under tolerance 1
	m := twoPlayer([][][]float64{
		{{1, 1}, {0, 1.5}},
		{{1.5, 0}, {0.5, 0.5}},
	})
	strictEqs, err := pure.Find(m)
	require.NoError(t, err)
	require.Len(t, strictEqs, 1)

	looseEqs, err := pure.Find(m, pure.WithTolerance(1))
	require.NoError(t, err)
	assert.Greater(t, len(looseEqs), len(strictEqs))
}
