// SPDX-License-Identifier: MIT

package reduction

import (
	"math"
	"sort"
)

// RedistributeProbabilities maps every scenario onto its cost-nearest
// representative and moves its probability mass there.
//
// Algorithm:
//  1. initial[i] = probabilities[i], or 1/N when none were supplied.
//  2. Each i not in reduced is assigned the r ∈ reduced minimising
//     |costs[r] − costs[i]|; ties go to the smallest representative index.
//  3. Each r ∈ reduced is its own representative.
//  4. probability[r] = Σ initial[i] over i assigned to r (r included).
//  5. probability[i] = 0 for every non-representative.
//
// Total mass is conserved up to floating-point rounding of the sums.
//
// Complexity:
//
//	Time   = O(N·k + k log k)
//	Memory = O(N)
//
// Errors (all wrap ErrInvalidArgument):
//   - ErrEmptyCosts, ErrNonFiniteCost, ErrCostRange
//   - ErrEmptyReduced, ErrScenarioOutOfRange, ErrDuplicateScenario
//   - ErrProbabilityLength, ErrBadProbability, ErrProbabilitySum
//   - ErrOptionViolation
func RedistributeProbabilities(costs []float64, reduced []int, opts ...Option) (*AssignmentTable, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateCosts(costs); err != nil {
		return nil, err
	}
	if err = validateReduced(reduced, len(costs)); err != nil {
		return nil, err
	}
	if err = validateProbabilities(o.Probabilities, len(costs), o.SumTolerance); err != nil {
		return nil, err
	}

	n := len(costs)
	initial := o.Probabilities
	if initial == nil {
		initial = make([]float64, n)
		u := 1 / float64(n)
		for i := range initial {
			initial[i] = u
		}
	}

	// Ascending representatives: a strict < scan keeps the smallest index on ties.
	reps := append(make([]int, 0, len(reduced)), reduced...)
	sort.Ints(reps)
	isRep := make([]bool, n)
	for _, r := range reps {
		isRep[r] = true
	}

	rows := make([]Assignment, n)
	var best int
	var bestD, d float64
	for i := 0; i < n; i++ {
		rows[i] = Assignment{Scenario: i, Cost: costs[i], Representative: i, Initial: initial[i]}
		if isRep[i] {
			continue
		}
		best, bestD = reps[0], math.Abs(costs[reps[0]]-costs[i])
		for _, r := range reps[1:] {
			if d = math.Abs(costs[r] - costs[i]); d < bestD {
				best, bestD = r, d
			}
		}
		rows[i].Representative = best
		rows[i].Distance = bestD
	}

	// Accumulate in ascending scenario order; non-representatives stay at 0.
	for i := range rows {
		rows[rows[i].Representative].Probability += rows[i].Initial
	}

	return &AssignmentTable{
		rows:    rows,
		reduced: append(make([]int, 0, len(reduced)), reduced...),
	}, nil
}
