// SPDX-License-Identifier: MIT

package reduction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validateCosts enforces a non-empty, finite cost vector whose pairwise
// distances are finite too.
func validateCosts(costs []float64) error {
	if len(costs) == 0 {
		return ErrEmptyCosts
	}
	for i, c := range costs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("costs[%d]=%v: %w", i, c, ErrNonFiniteCost)
		}
	}
	// |c_i − c_j| ≤ max − min for every pair.
	if lo, hi := floats.Min(costs), floats.Max(costs); math.IsInf(hi-lo, 0) {
		return fmt.Errorf("min=%v, max=%v: %w", lo, hi, ErrCostRange)
	}

	return nil
}

// validateCount enforces 1 ≤ k < n.
func validateCount(k, n int) error {
	if k < 1 || k >= n {
		return fmt.Errorf("k=%d with %d scenarios: %w", k, n, ErrBadCount)
	}

	return nil
}

// validateProbabilities checks an optional probability vector against n.
// nil is accepted (not supplied). tol > 0 additionally checks Σp ≈ 1.
func validateProbabilities(p []float64, n int, tol float64) error {
	if p == nil {
		return nil
	}
	if len(p) != n {
		return fmt.Errorf("len(probabilities)=%d, len(costs)=%d: %w", len(p), n, ErrProbabilityLength)
	}
	for i, v := range p {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("probabilities[%d]=%v: %w", i, v, ErrBadProbability)
		}
	}
	if tol > 0 {
		if sum := floats.Sum(p); math.Abs(sum-1) > tol {
			return fmt.Errorf("sum=%v, tolerance=%v: %w", sum, tol, ErrProbabilitySum)
		}
	}

	return nil
}

// validateReduced enforces a non-empty list of distinct ids in [0, n).
func validateReduced(reduced []int, n int) error {
	if len(reduced) == 0 {
		return ErrEmptyReduced
	}
	seen := make([]bool, n)
	for i, id := range reduced {
		if id < 0 || id >= n {
			return fmt.Errorf("reduced[%d]=%d with %d scenarios: %w", i, id, n, ErrScenarioOutOfRange)
		}
		if seen[id] {
			return fmt.Errorf("reduced[%d]=%d: %w", i, id, ErrDuplicateScenario)
		}
		seen[id] = true
	}

	return nil
}
