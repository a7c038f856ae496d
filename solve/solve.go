// Package solve - dispatcher and ranked recommendations.
//
// Design principles:
//   - Validate once, search many: the matrix is checked here and the
//     sub-solvers re-validate cheaply (their Validate calls short-circuit
//     on the same well-formed matrix).
//   - Deterministic output: sub-search order and a stable sort make
//     repeated calls byte-identical.
//   - Strict sentinels from package game; no errors invented here.
package solve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/equilib/game"
	"github.com/katalvlaran/equilib/mixed"
	"github.com/katalvlaran/equilib/nplayer"
	"github.com/katalvlaran/equilib/pure"
	"github.com/katalvlaran/equilib/verify"
)

// RankBand is the tie band used by Recommended's ordering: two scores
// within RankBand of each other are considered tied and the next
// criterion decides.
const RankBand = 0.1

// Recommendation pairs one validated equilibrium with its report and a
// one-line textual recommendation.
type Recommendation struct {
	Equilibrium game.NashEquilibrium
	Report      *verify.Report
	Text        string
}

// FindAll returns every Nash equilibrium the bounded searches can reach:
// pure + mixed for two-player games, the multi-player searches otherwise.
// Results are deduplicated by strategy profile.
//
// Contracts:
//   - m must pass game.ValidateShape; the first defect is returned as-is
//     and no search runs.
//
// A nil slice with a nil error is a legitimate "none found" outcome.
func FindAll(m *game.PayoffMatrix) ([]game.NashEquilibrium, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if m.Players >= 3 {
		return nplayer.Find(m)
	}

	pures, err := pure.Find(m)
	if err != nil {
		return nil, err
	}
	mixes, err := mixed.Find(m)
	if err != nil {
		return nil, err
	}

	return dedup(append(pures, mixes...)), nil
}

// Recommended validates every equilibrium FindAll produces, keeps the
// valid ones, ranks them (stability, then efficiency, then social
// welfare, descending with RankBand ties) and attaches a one-line
// recommendation per rank.
func Recommended(m *game.PayoffMatrix) ([]Recommendation, error) {
	eqs, err := FindAll(m)
	if err != nil {
		return nil, err
	}

	var recs []Recommendation
	for _, eq := range eqs {
		rep, verr := verify.Equilibrium(eq, m)
		if verr != nil {
			return nil, verr
		}
		if !rep.Valid {
			continue // near-equilibria are dropped, not ranked
		}
		recs = append(recs, Recommendation{Equilibrium: eq, Report: rep})
	}

	sort.SliceStable(recs, func(i, j int) bool { return rankLess(recs[j], recs[i]) })
	for rank := range recs {
		recs[rank].Text = recommendationText(rank, recs[rank])
	}

	return recs, nil
}

// rankLess orders a below b: stability first, efficiency second, social
// welfare last, each earlier criterion deciding only outside its tie band.
func rankLess(a, b Recommendation) bool {
	if d := a.Equilibrium.Stability - b.Equilibrium.Stability; d < -RankBand || d > RankBand {
		return d < 0
	}
	if d := a.Report.Quality.Efficiency - b.Report.Quality.Efficiency; d < -RankBand || d > RankBand {
		return d < 0
	}

	return a.Report.Quality.SocialWelfare < b.Report.Quality.SocialWelfare
}

// recommendationText renders the per-rank one-liner.
func recommendationText(rank int, r Recommendation) string {
	kind := "pure"
	if r.Equilibrium.Kind == game.KindMixed {
		kind = "mixed"
	}
	if rank == 0 {
		return fmt.Sprintf(
			"best choice: %s equilibrium with stability %.2f, efficiency %.2f and social welfare %.2f",
			kind, r.Equilibrium.Stability, r.Report.Quality.Efficiency, r.Report.Quality.SocialWelfare)
	}

	return fmt.Sprintf(
		"alternative %d: %s equilibrium with stability %.2f, efficiency %.2f and social welfare %.2f",
		rank+1, kind, r.Equilibrium.Stability, r.Report.Quality.Efficiency, r.Report.Quality.SocialWelfare)
}

// dedup removes profile duplicates, keeping first occurrences in order.
func dedup(eqs []game.NashEquilibrium) []game.NashEquilibrium {
	var out []game.NashEquilibrium
	for _, eq := range eqs {
		dup := false
		for _, kept := range out {
			if kept.SameProfile(eq, game.PayoffTol) {
				dup = true

				break
			}
		}
		if !dup {
			out = append(out, eq)
		}
	}

	return out
}
