// Package game_test provides runnable examples for the core model types.
package game_test

import (
	"fmt"

	"github.com/katalvlaran/equilib/game"
)

// ExamplePayoffMatrix_Validate shows the fail-fast structural check every
// solver runs before searching.
func ExamplePayoffMatrix_Validate() {
	m := &game.PayoffMatrix{
		Players: 2,
		Strategies: []game.Strategy{
			{ID: "hawk", Name: "Hawk"},
			{ID: "dove", Name: "Dove"},
		},
		Payoffs: [][][]float64{
			{{-1, -1}, {4, 0}},
			{{0, 4}, {2, 2}},
		},
	}
	fmt.Println("valid:", m.Validate() == nil)

	m.Payoffs[1] = m.Payoffs[1][:1] // break the tensor
	fmt.Println("after damage:", m.Validate())

	// Output:
	// valid: true
	// after damage: game: payoff row has wrong cell count (cells=1 strategies=2) at row 1
}
