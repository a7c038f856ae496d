// Package dominance_test provides a runnable example of iterated
// elimination on the prisoner's dilemma.
package dominance_test

import (
	"fmt"

	"github.com/katalvlaran/equilib/dominance"
)

// ExampleAnalyze eliminates the cooperative strategy of the prisoner's
// dilemma: defection strictly dominates for both players.
func ExampleAnalyze() {
	res, err := dominance.Analyze(prisoners())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, step := range res.Steps {
		fmt.Printf("round %d: eliminated %s\n", step.Round, step.EliminatedName)
	}
	fmt.Println("surviving strategies:", res.Reduced.StrategyCount())
	fmt.Println(res.Recommendations[0])

	// Output:
	// round 1: eliminated Cooperate
	// surviving strategies: 1
	// player 1 should play Defect: it strictly dominates Cooperate
}
