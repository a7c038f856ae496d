// SPDX-License-Identifier: MIT
package game_test

import (
	"testing"

	"github.com/katalvlaran/equilib/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prisoners builds the classic two-player dilemma:
// strategy 0 = cooperate, strategy 1 = defect.
func prisoners() *game.PayoffMatrix {
	return &game.PayoffMatrix{
		Players: 2,
		Strategies: []game.Strategy{
			{ID: "cooperate", Name: "Cooperate", Short: "C"},
			{ID: "defect", Name: "Defect", Short: "D"},
		},
		Payoffs: [][][]float64{
			{{3, 3}, {0, 5}},
			{{5, 0}, {1, 1}},
		},
		Symmetric: true,
	}
}

// triCoord builds a three-player coordination game over two strategies:
// everyone matching the opponents' aggregate earns 1, mismatching earns 0.
func triCoord() *game.PayoffMatrix {
	return &game.PayoffMatrix{
		Players: 3,
		Strategies: []game.Strategy{
			{ID: "left", Name: "Left"},
			{ID: "right", Name: "Right"},
		},
		Payoffs: [][][]float64{
			{{1, 1, 1}, {0, 0, 0}},
			{{0, 0, 0}, {1, 1, 1}},
		},
		Symmetric: true,
	}
}

func TestAggregateOpponent_TwoPlayers(t *testing.T) {
	m := prisoners()
	// with two players the aggregate is exactly the other player's choice
	assert.Equal(t, 1, m.AggregateOpponent([]int{0, 1}, 0))
	assert.Equal(t, 0, m.AggregateOpponent([]int{0, 1}, 1))
}

func TestAggregateOpponent_ThreePlayers(t *testing.T) {
	m := triCoord()
	// opponents at 0 and 1: mean 0.5 rounds half up to 1
	assert.Equal(t, 1, m.AggregateOpponent([]int{0, 0, 1}, 0))
	// opponents both at 0
	assert.Equal(t, 0, m.AggregateOpponent([]int{1, 0, 0}, 0))
	// opponents both at 1
	assert.Equal(t, 1, m.AggregateOpponent([]int{0, 1, 1}, 0))
}

func TestProfilePayoff_TwoPlayers(t *testing.T) {
	m := prisoners()
	assert.Equal(t, 0.0, m.ProfilePayoff([]int{0, 1}, 0))
	assert.Equal(t, 5.0, m.ProfilePayoff([]int{0, 1}, 1))
	assert.Equal(t, 1.0, m.ProfilePayoff([]int{1, 1}, 0))
}

func TestProfilePayoff_ThreePlayers(t *testing.T) {
	m := triCoord()
	// all coordinated on 0: everybody earns 1
	for p := 0; p < 3; p++ {
		assert.Equal(t, 1.0, m.ProfilePayoff([]int{0, 0, 0}, p))
	}
	// player 2 alone on 1 faces aggregate 0 and earns 0
	assert.Equal(t, 0.0, m.ProfilePayoff([]int{0, 0, 1}, 2))
}

func TestDeviationPayoff_RestoresProfile(t *testing.T) {
	m := prisoners()
	profile := []int{1, 1}
	u := m.DeviationPayoff(profile, 0, 0)
	assert.Equal(t, 0.0, u)
	require.Equal(t, []int{1, 1}, profile, "profile must be restored in place")
}

func TestExpectedPayoff2P(t *testing.T) {
	m := prisoners()
	// both uniform: mean over all four cells per player
	row := []float64{0.5, 0.5}
	col := []float64{0.5, 0.5}
	assert.InDelta(t, (3+0+5+1)/4.0, m.ExpectedPayoff2P(row, col, 0), 1e-12)
	assert.InDelta(t, (3+5+0+1)/4.0, m.ExpectedPayoff2P(row, col, 1), 1e-12)

	// degenerate distributions reproduce pure lookups
	assert.Equal(t, 5.0, m.ExpectedPayoff2P([]float64{0, 1}, []float64{1, 0}, 0))
}
