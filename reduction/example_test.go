package reduction_test

import (
	"fmt"

	"github.com/katalvlaran/scenred/reduction"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSelectReducedScenarios
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four equiprobable scenario costs [0, 1, 2, 10], keep two.
//	Round 1 column sums are 13, 11, 11, 27: scenario 1 wins the tie with 2.
//	Round 2 (after flooring by the distance to 1) sums are 10, 9, 2 over
//	scenarios 0, 2, 3: the outlier 10 becomes the second representative.
//
// Complexity: O(k·N²) time, O(N²) memory
func ExampleSelectReducedScenarios() {
	ids, err := reduction.SelectReducedScenarios([]float64{0, 1, 2, 10}, 2,
		reduction.WithOnSelect(func(s reduction.Selection) {
			fmt.Printf("round %d: scenario %d (score %g)\n", s.Round, s.Scenario, s.Score)
		}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("reduced:", ids)
	// Output:
	// round 1: scenario 1 (score 11)
	// round 2: scenario 3 (score 2)
	// reduced: [1 3]
}

// ExampleReduce selects two representatives and moves the discarded mass.
func ExampleReduce() {
	res, err := reduction.Reduce([]float64{0, 1, 2, 10}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("selected:", res.Selected)
	fmt.Println("probabilities:", res.Table.ReducedProbabilities())
	fmt.Println("kantorovich:", res.Table.KantorovichDistance())
	// Output:
	// selected: [1 3]
	// probabilities: [0.75 0.25]
	// kantorovich: 0.5
}
