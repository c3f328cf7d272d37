package distance_test

import (
	"fmt"

	"github.com/katalvlaran/scenred/distance"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleReduceStep
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four scenario costs [0, 1, 2, 10]. Scenario 1 has the lowest column sum
//	and is fixed first; the matrix is then narrowed to ids {0, 2, 3} with
//	every row floored by its distance to scenario 1.
//
// Complexity: O(N²) per step
func ExampleReduceStep() {
	m, err := distance.Build([]float64{0, 1, 2, 10})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	scores, _ := m.Scores(nil)
	fmt.Println("round 1 scores:", scores)

	m, err = distance.ReduceStep(m, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	scores, _ = m.Scores(nil)
	fmt.Println("active:", m.IDs())
	fmt.Println("round 2 scores:", scores)
	// Output:
	// round 1 scores: [13 11 11 27]
	// active: [0 2 3]
	// round 2 scores: [10 9 2]
}
