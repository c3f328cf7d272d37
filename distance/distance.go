// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scenred/matrix"
)

// Build returns the N×N matrix d[i][j] = |costs[i] − costs[j]| over ids 0..N-1.
//
// Description:
//
//	Pure function of costs; the slice is read, never retained.
//	The result is exactly symmetric with a zero diagonal, because IEEE
//	subtraction is antisymmetric and |x − x| = 0 for finite x.
//
// Errors:
//   - ErrEmptyCosts: len(costs) == 0.
//   - matrix.ErrNaNInf: a cost is NaN/±Inf, or a difference overflows.
//
// Complexity:
//
//	Time   = O(N²)
//	Memory = O(N²)
func Build(costs []float64) (*Matrix, error) {
	n := len(costs)
	if n == 0 {
		return nil, ErrEmptyCosts
	}
	if err := matrix.ValidateFinite(costs); err != nil {
		return nil, fmt.Errorf("distance.Build: %w", err)
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("distance.Build: %w", err)
	}
	err = d.Apply(func(i, j int, _ float64) float64 {
		return math.Abs(costs[i] - costs[j])
	})
	if err != nil {
		return nil, fmt.Errorf("distance.Build: %w", err)
	}

	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return &Matrix{d: d, ids: ids}, nil
}

// ReduceStep narrows m after removedID has been fixed as a representative.
//
// Algorithm:
//  1. p = position of removedID; keep = every other position, ascending.
//  2. floor[q] = d[keep[q]][p]   (distance of each survivor to removedID).
//  3. d' = d restricted to keep×keep.
//  4. d'[q][r] = min(d'[q][r], floor[q]).
//
// The input is not modified; the returned Matrix owns fresh storage.
// Note the floor is taken per row, so d' is in general not symmetric.
//
// Errors:
//   - ErrNilMatrix: m is nil.
//   - ErrUnknownID: removedID is not active in m.
//   - ErrExhausted: m has a single active id.
//
// Complexity:
//
//	Time   = O(M²)
//	Memory = O(M²)
func ReduceStep(m *Matrix, removedID int) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	p, ok := m.Position(removedID)
	if !ok {
		return nil, fmt.Errorf("distance.ReduceStep(%d): %w", removedID, ErrUnknownID)
	}
	if len(m.ids) == 1 {
		return nil, fmt.Errorf("distance.ReduceStep(%d): %w", removedID, ErrExhausted)
	}

	keep := make([]int, 0, len(m.ids)-1)
	ids := make([]int, 0, len(m.ids)-1)
	floor := make([]float64, 0, len(m.ids)-1)
	for q, id := range m.ids {
		if q == p {
			continue
		}
		v, _ := m.d.At(q, p) // q and p are valid positions by construction
		keep = append(keep, q)
		ids = append(ids, id)
		floor = append(floor, v)
	}

	nd, err := m.d.Induced(keep, keep)
	if err != nil {
		return nil, fmt.Errorf("distance.ReduceStep(%d): %w", removedID, err)
	}
	err = nd.Apply(func(i, _ int, v float64) float64 {
		return math.Min(v, floor[i])
	})
	if err != nil {
		return nil, fmt.Errorf("distance.ReduceStep(%d): %w", removedID, err)
	}

	return &Matrix{d: nd, ids: ids}, nil
}

// Scores returns the Kantorovich score of every active column.
//
// With weights == nil the score is the plain column sum Σ_r d[r][c];
// otherwise it is Σ_r weights[r]·d[r][c] with weights aligned to IDs().
// The two are deliberately different scales: nil is NOT 1/M weighting.
//
// Errors:
//   - ErrNilMatrix: m is nil.
//   - matrix.ErrDimensionMismatch: len(weights) != Len().
func (m *Matrix) Scores(weights []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if weights == nil {
		return m.d.ColumnSums(), nil
	}
	s, err := m.d.WeightedColumnSums(weights)
	if err != nil {
		return nil, fmt.Errorf("distance.Scores: %w", err)
	}

	return s, nil
}

// Len returns the number of active ids (the matrix dimension M).
func (m *Matrix) Len() int { return len(m.ids) }

// IDs returns a copy of the active ids in ascending order.
func (m *Matrix) IDs() []int {
	out := make([]int, len(m.ids))
	copy(out, m.ids)

	return out
}

// ID returns the scenario id at position p.
func (m *Matrix) ID(p int) (int, error) {
	if p < 0 || p >= len(m.ids) {
		return 0, fmt.Errorf("distance.ID(%d): %w", p, matrix.ErrOutOfRange)
	}

	return m.ids[p], nil
}

// Position maps a scenario id to its row/column position.
// Binary search over the ascending id slice; O(log M).
func (m *Matrix) Position(id int) (int, bool) {
	p := sort.SearchInts(m.ids, id)
	if p < len(m.ids) && m.ids[p] == id {
		return p, true
	}

	return 0, false
}

// At returns the distance between two active scenario ids.
func (m *Matrix) At(rowID, colID int) (float64, error) {
	r, ok := m.Position(rowID)
	if !ok {
		return 0, fmt.Errorf("distance.At(%d,%d): row: %w", rowID, colID, ErrUnknownID)
	}
	c, ok := m.Position(colID)
	if !ok {
		return 0, fmt.Errorf("distance.At(%d,%d): col: %w", rowID, colID, ErrUnknownID)
	}

	return m.d.At(r, c)
}

// Dense returns a deep copy of the underlying positional matrix.
func (m *Matrix) Dense() *matrix.Dense {
	return m.d.Clone().(*matrix.Dense)
}

// String renders the active ids followed by the matrix rows.
func (m *Matrix) String() string {
	return fmt.Sprintf("ids=%v\n%s", m.ids, m.d.String())
}
