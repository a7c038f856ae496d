// SPDX-License-Identifier: MIT
package solve_test

import (
	"testing"

	"github.com/katalvlaran/equilib/game"
	"github.com/katalvlaran/equilib/solve"
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

func battleOfSexes() *game.PayoffMatrix {
	return newGame(2, [][][]float64{
		{{2, 1}, {0, 0}},
		{{0, 0}, {1, 2}},
	})
}

func TestFindAll_PrisonersDilemma(t *testing.T) {
	eqs, err := solve.FindAll(prisoners())
	require.NoError(t, err)
	require.Len(t, eqs, 1)
	assert.Equal(t, []int{1, 1}, eqs[0].Profile)
	assert.True(t, eqs[0].Strict)
}

func TestFindAll_BattleOfSexes(t *testing.T) {
	eqs, err := solve.FindAll(battleOfSexes())
	require.NoError(t, err)
	require.Len(t, eqs, 3, "two pure conventions plus the interior mix")

	assert.Equal(t, game.KindPure, eqs[0].Kind)
	assert.Equal(t, game.KindPure, eqs[1].Kind)
	assert.Equal(t, game.KindMixed, eqs[2].Kind)
	assert.InDelta(t, 2.0/3, eqs[2].Distributions[0][0], 1e-9)
}

func TestFindAll_MatchingPennies(t *testing.T) {
	m := newGame(2, [][][]float64{
		{{1, -1}, {-1, 1}},
		{{-1, 1}, {1, -1}},
	})
	eqs, err := solve.FindAll(m)
	require.NoError(t, err)
	require.Len(t, eqs, 1)
	assert.Equal(t, game.KindMixed, eqs[0].Kind)
}

func TestFindAll_DispatchesMultiPlayer(t *testing.T) {
	m := newGame(3, [][][]float64{
		{{1, 1, 1}, {0, 0, 0}},
		{{0, 0, 0}, {1, 1, 1}},
	})
	eqs, err := solve.FindAll(m)
	require.NoError(t, err)
	require.Len(t, eqs, 2)
	assert.Equal(t, []int{0, 0, 0}, eqs[0].Profile)
	assert.Equal(t, []int{1, 1, 1}, eqs[1].Profile)
}

func TestFindAll_Idempotent(t *testing.T) {
	m := battleOfSexes()
	first, err := solve.FindAll(m)
	require.NoError(t, err)
	second, err := solve.FindAll(m)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same input must yield the identical result")
}

func TestFindAll_FailsFastOnShape(t *testing.T) {
	_, err := solve.FindAll(nil)
	assert.ErrorIs(t, err, game.ErrNilMatrix)

	m := prisoners()
	m.Payoffs[1] = m.Payoffs[1][:1]
	_, err = solve.FindAll(m)
	assert.ErrorIs(t, err, game.ErrRaggedRow)
}

func TestRecommended_RanksPureAboveMixed(t *testing.T) {
	recs, err := solve.Recommended(battleOfSexes())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// the two strict conventions outrank the fragile interior mix
	assert.Equal(t, game.KindPure, recs[0].Equilibrium.Kind)
	assert.Equal(t, game.KindPure, recs[1].Equilibrium.Kind)
	assert.Equal(t, game.KindMixed, recs[2].Equilibrium.Kind)

	// stable sort keeps the lexicographic order among tied conventions
	assert.Equal(t, []int{0, 0}, recs[0].Equilibrium.Profile)
	assert.Equal(t, []int{1, 1}, recs[1].Equilibrium.Profile)

	assert.Contains(t, recs[0].Text, "best choice")
	assert.Contains(t, recs[1].Text, "alternative 2")
	assert.Contains(t, recs[2].Text, "alternative 3")
	for _, r := range recs {
		require.NotNil(t, r.Report)
		assert.True(t, r.Report.Valid)
	}
}

func TestRecommended_SingleEquilibrium(t *testing.T) {
	recs, err := solve.Recommended(prisoners())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, []int{1, 1}, recs[0].Equilibrium.Profile)
	assert.Contains(t, recs[0].Text, "best choice")
	assert.Equal(t, verify.RiskLow, recs[0].Report.Quality.Risk)
}

func TestFindAll_EveryResultPassesVerification(t *testing.T) {
	games := map[string]*game.PayoffMatrix{
		"prisoners dilemma": prisoners(),
		"battle of sexes":   battleOfSexes(),
		"matching pennies": newGame(2, [][][]float64{
			{{1, -1}, {-1, 1}},
			{{-1, 1}, {1, -1}},
		}),
		"all zero": newGame(2, [][][]float64{
			{{0, 0}, {0, 0}},
			{{0, 0}, {0, 0}},
		}),
		"three player coordination": newGame(3, [][][]float64{
			{{1, 1, 1}, {0, 0, 0}},
			{{0, 0, 0}, {1, 1, 1}},
		}),
	}
	for name, m := range games {
		eqs, err := solve.FindAll(m)
		require.NoError(t, err, name)
		for i, eq := range eqs {
			rep, vErr := verify.Equilibrium(eq, m)
			require.NoError(t, vErr, name)
			assert.True(t, rep.Valid, "%s: equilibrium %d must verify", name, i)

			// probability simplex on every distribution
			for player := 0; player < m.Players; player++ {
				var sum float64
				for _, p := range eq.Distribution(player, m.StrategyCount()) {
					assert.GreaterOrEqual(t, p, 0.0, name)
					assert.LessOrEqual(t, p, 1.0, name)
					sum += p
				}
				assert.InDelta(t, 1, sum, 1e-8, name)
			}
		}
	}
}

func TestRecommended_EmptyWhenNothingFound(t *testing.T) {
	// player 0 wants to match the opponents' aggregate, players 1 and 2
	// want to mismatch it: no profile settles, and the mismatch payoffs
	// never allow the indifference a mixed candidate would need
	m := newGame(3, [][][]float64{
		{{1, 0, 0}, {0, 1, 1}},
		{{0, 1, 1}, {1, 0, 0}},
	})
	eqs, err := solve.FindAll(m)
	require.NoError(t, err)
	require.Empty(t, eqs)

	recs, err := solve.Recommended(m)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
