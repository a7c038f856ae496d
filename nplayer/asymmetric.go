// Package nplayer - bounded asymmetric pattern search.
//
// A pattern assigns each player a role: "pure" (one fixed strategy) or
// "mixed" (a 50/50 mix over one strategy pair), with at most
// MaxMixedPlayers mixing simultaneously. The search enumerates
//
//	mixed player subsets × pure strategy choices × strategy pairs,
//
// and keeps a combination only when every pure role passes the
// best-response test and every mixed role is indifferent on its pair with
// no strictly better strategy outside it.
//
// The all-pure pattern is skipped: the dispatcher already ran the
// exhaustive pure search.
package nplayer

import "github.com/katalvlaran/equilib/game"

// asymmetricSearch enumerates and verifies all bounded patterns.
//
// Complexity: O(Σ_k C(P,k) · |S|^(P−k) · C(|S|,2)^k · P·|S|).
func asymmetricSearch(m *game.PayoffMatrix, o Options) []game.NashEquilibrium {
	var (
		players = m.Players
		n       = m.StrategyCount()
		result  []game.NashEquilibrium
	)
	if n < 2 {
		return nil // nobody can mix over a single strategy
	}

	pairs := strategyPairs(n)
	maxMixed := o.MaxMixedPlayers
	if maxMixed > players {
		maxMixed = players
	}

	for k := 1; k <= maxMixed; k++ {
		for _, mixedSet := range playerSubsets(players, k) {
			result = append(result, searchPattern(m, o, mixedSet, pairs)...)
		}
	}

	return result
}

// searchPattern fixes WHICH players mix and enumerates their pair choices
// together with the pure players' strategy choices, odometer-style.
func searchPattern(m *game.PayoffMatrix, o Options, mixedSet []int, pairs [][2]int) []game.NashEquilibrium {
	var (
		players = m.Players
		n       = m.StrategyCount()
		isMixed = make([]bool, players)
		result  []game.NashEquilibrium
	)
	for _, p := range mixedSet {
		isMixed[p] = true
	}

	// choice[i] indexes pairs for mixed players, strategies for pure ones.
	var (
		choice = make([]int, players)
		limit  = make([]int, players)
	)
	for i := 0; i < players; i++ {
		if isMixed[i] {
			limit[i] = len(pairs)
		} else {
			limit[i] = n
		}
	}

	for {
		dists := make([][]float64, players)
		for i := 0; i < players; i++ {
			if isMixed[i] {
				pr := pairs[choice[i]]
				dists[i] = pairDist(n, pr[0], pr[1], 0.5)
			} else {
				dists[i] = pointMass(n, choice[i])
			}
		}
		if eq, ok := verifyPattern(m, o, dists, isMixed, choice, pairs); ok {
			result = append(result, eq)
		}
		if !advance(choice, limit) {
			break
		}
	}

	return result
}

// verifyPattern checks best response for pure roles and indifference plus
// no-better-outside for mixed roles. Accepted combinations become mixed
// equilibria (pure roles carried as point-mass distributions).
func verifyPattern(m *game.PayoffMatrix, o Options, dists [][]float64, isMixed []bool, choice []int, pairs [][2]int) (game.NashEquilibrium, bool) {
	n := m.StrategyCount()
	for player := range dists {
		if isMixed[player] {
			pr := pairs[choice[player]]
			base := strategyPayoff(m, dists, player, pr[0])
			if d := strategyPayoff(m, dists, player, pr[1]) - base; d > o.Tolerance || d < -o.Tolerance {
				return game.NashEquilibrium{}, false
			}
			for s := 0; s < n; s++ {
				if s == pr[0] || s == pr[1] {
					continue
				}
				if strategyPayoff(m, dists, player, s) > base+o.Tolerance {
					return game.NashEquilibrium{}, false
				}
			}

			continue
		}

		own := choice[player]
		u := strategyPayoff(m, dists, player, own)
		for s := 0; s < n; s++ {
			if s == own {
				continue
			}
			if strategyPayoff(m, dists, player, s) > u+o.Tolerance {
				return game.NashEquilibrium{}, false
			}
		}
	}

	payoffs := make([]float64, m.Players)
	for player := range payoffs {
		payoffs[player] = mixedPayoff(m, dists, player)
	}

	return game.NewMixed(dists, payoffs, avgSupportStability(dists)), true
}

// advance increments the mixed-radix odometer; false after the last value.
func advance(choice, limit []int) bool {
	for i := len(choice) - 1; i >= 0; i-- {
		choice[i]++
		if choice[i] < limit[i] {
			return true
		}
		choice[i] = 0
	}

	return false
}

// strategyPairs lists all unordered strategy pairs in lexicographic order.
func strategyPairs(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return pairs
}

// playerSubsets lists all size-k subsets of [0, P) in lexicographic order.
func playerSubsets(p, k int) [][]int {
	var (
		result [][]int
		idx    = make([]int, k)
	)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]int, k)
		copy(subset, idx)
		result = append(result, subset)

		i := k - 1
		for i >= 0 && idx[i] == p-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return result
}
