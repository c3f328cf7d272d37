// SPDX-License-Identifier: MIT

package reduction

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AssignmentTable is the redistribution result, one Assignment per original
// scenario index. It is immutable; accessors return copies.
type AssignmentTable struct {
	rows    []Assignment
	reduced []int // representatives in the order the caller supplied them
}

// Len returns the number of original scenarios.
func (t *AssignmentTable) Len() int { return len(t.rows) }

// At returns the row of scenario i.
func (t *AssignmentTable) At(i int) (Assignment, error) {
	if i < 0 || i >= len(t.rows) {
		return Assignment{}, fmt.Errorf("AssignmentTable.At(%d): %w", i, ErrScenarioOutOfRange)
	}

	return t.rows[i], nil
}

// Rows returns a copy of all rows in scenario order.
func (t *AssignmentTable) Rows() []Assignment {
	return append(make([]Assignment, 0, len(t.rows)), t.rows...)
}

// Reduced returns the representatives in the order they were supplied
// (greedy selection order when produced by Reduce).
func (t *AssignmentTable) Reduced() []int {
	return append(make([]int, 0, len(t.reduced)), t.reduced...)
}

// Representatives returns the representatives in ascending index order.
func (t *AssignmentTable) Representatives() []int {
	out := t.Reduced()
	sort.Ints(out)

	return out
}

// Members returns every scenario assigned to representative r, r included,
// in ascending order.
func (t *AssignmentTable) Members(r int) ([]int, error) {
	if r < 0 || r >= len(t.rows) || !t.rows[r].IsRepresentative() {
		return nil, fmt.Errorf("AssignmentTable.Members(%d): %w", r, ErrScenarioOutOfRange)
	}
	var out []int
	for _, a := range t.rows {
		if a.Representative == r {
			out = append(out, a.Scenario)
		}
	}

	return out, nil
}

// Probabilities returns the redistributed probability of every scenario.
func (t *AssignmentTable) Probabilities() []float64 {
	out := make([]float64, len(t.rows))
	for i, a := range t.rows {
		out[i] = a.Probability
	}

	return out
}

// ReducedProbabilities returns the probabilities of Reduced(), aligned
// with it: the vector a downstream stochastic model consumes.
func (t *AssignmentTable) ReducedProbabilities() []float64 {
	out := make([]float64, len(t.reduced))
	for i, r := range t.reduced {
		out[i] = t.rows[r].Probability
	}

	return out
}

// TotalProbability returns Σ Probability over all rows.
// Equals the input mass up to rounding.
func (t *AssignmentTable) TotalProbability() float64 {
	return floats.Sum(t.Probabilities())
}

// KantorovichDistance returns Σ_i Initial_i · Distance_i: the cost of
// transporting every discarded scenario's mass onto its representative.
// Zero when every scenario is its own representative.
func (t *AssignmentTable) KantorovichDistance() float64 {
	w := make([]float64, len(t.rows))
	d := make([]float64, len(t.rows))
	for i, a := range t.rows {
		w[i], d[i] = a.Initial, a.Distance
	}

	return floats.Dot(w, d)
}

// InitialMean returns the expected cost under the input probabilities.
// NaN when every input probability is zero.
func (t *AssignmentTable) InitialMean() float64 {
	costs := make([]float64, len(t.rows))
	w := make([]float64, len(t.rows))
	for i, a := range t.rows {
		costs[i], w[i] = a.Cost, a.Initial
	}

	return stat.Mean(costs, w)
}

// ReducedMean returns the expected cost under the redistributed
// probabilities. Comparing it with InitialMean shows the first-moment drift
// of the reduction.
func (t *AssignmentTable) ReducedMean() float64 {
	costs := make([]float64, len(t.rows))
	for i, a := range t.rows {
		costs[i] = a.Cost
	}

	return stat.Mean(costs, t.Probabilities())
}
