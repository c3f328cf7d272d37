// SPDX-License-Identifier: MIT

package reduction

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/scenred/distance"
)

// SelectReducedScenarios greedily picks k representatives from costs.
//
// Description:
//
//	Forward selection minimising the Kantorovich distance between the full
//	scenario set and the reduced one. Each round scores every active
//	scenario by its column of the distance matrix, fixes the argmin and
//	narrows the matrix through distance.ReduceStep.
//
// Algorithm Outline:
//  1. m = distance.Build(costs); weights = probabilities (or none).
//  2. score[c] = Σ_r weights[r]·m[r][c], or the plain column sum when no
//     probabilities were supplied (not 1/N weighting; the scale differs).
//  3. s = argmin(score); ties go to the smallest scenario index.
//  4. Append s; drop s from the weights; m = ReduceStep(m, s); repeat
//     until k scenarios are chosen.
//
// If the active weights are all zero every score is 0 and the tie-break
// picks the smallest remaining index.
//
// Complexity:
//
//	Time   = O(k·N²)
//	Memory = O(N²)
//
// Errors (all wrap ErrInvalidArgument, reported before any matrix work):
//   - ErrEmptyCosts, ErrNonFiniteCost, ErrCostRange
//   - ErrBadCount: k < 1 or k ≥ len(costs)
//   - ErrProbabilityLength, ErrBadProbability, ErrProbabilitySum
//   - ErrOptionViolation
//
// Example:
//
//	ids, err := SelectReducedScenarios([]float64{0, 1, 2, 10}, 2)
//	// ids == [1 3]
func SelectReducedScenarios(costs []float64, k int, opts ...Option) ([]int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateCosts(costs); err != nil {
		return nil, err
	}
	if err = validateCount(k, len(costs)); err != nil {
		return nil, err
	}
	if err = validateProbabilities(o.Probabilities, len(costs), o.SumTolerance); err != nil {
		return nil, err
	}

	m, err := distance.Build(costs)
	if err != nil {
		return nil, fmt.Errorf("reduction: build distances: %w", err)
	}

	// weights stays aligned with m.IDs(); nil selects plain column sums.
	var weights []float64
	if o.Probabilities != nil {
		weights = append(make([]float64, 0, len(o.Probabilities)), o.Probabilities...)
	}

	chosen := make([]int, 0, k)
	var scores []float64
	var p, id int
	for round := 1; round <= k; round++ {
		if round > 1 {
			if m, err = distance.ReduceStep(m, chosen[len(chosen)-1]); err != nil {
				return nil, fmt.Errorf("reduction: round %d: %w", round, err)
			}
		}
		if scores, err = m.Scores(weights); err != nil {
			return nil, fmt.Errorf("reduction: round %d: %w", round, err)
		}

		p = floats.MinIdx(scores) // first minimum: smallest position, hence smallest id
		if id, err = m.ID(p); err != nil {
			return nil, fmt.Errorf("reduction: round %d: %w", round, err)
		}
		chosen = append(chosen, id)
		if weights != nil {
			weights = append(weights[:p], weights[p+1:]...)
		}

		o.OnSelect(Selection{
			Round:     round,
			Scenario:  id,
			Score:     scores[p],
			Remaining: m.Len() - 1,
		})
	}

	return chosen, nil
}
