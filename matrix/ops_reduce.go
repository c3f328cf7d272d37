// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column reductions over Dense: plain sums and row-weighted sums.
//   - Both kernels walk the flat buffer row by row and accumulate with
//     gonum floats, so the summation order is fixed (row 0 first).
//
// Determinism & Performance:
//   - Fixed i-loop; each row is one contiguous slice of the buffer.
//   - One output allocation of length Cols(); O(r*c) time.

package matrix

import "gonum.org/v1/gonum/floats"

const ctxWeightedColumnSums = "WeightedColumnSums"

// ColumnSums returns s[j] = Σ_i m[i,j].
// Complexity: O(r*c) time, O(c) space.
func (m *Dense) ColumnSums() []float64 {
	out := make([]float64, m.c)
	var i int
	for i = 0; i < m.r; i++ {
		floats.Add(out, m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// WeightedColumnSums returns s[j] = Σ_i w[i]·m[i,j].
// MAIN DESCRIPTION:
//   - Row-weighted column reduction; w is aligned with the row index.
//
// Implementation:
//   - Stage 1: validate len(w) == Rows().
//   - Stage 2: accumulate each row scaled by its weight (floats.AddScaled).
//
// Errors:
//   - ErrNilMatrix when w is nil; ErrDimensionMismatch on length mismatch.
//
// Complexity:
//   - Time O(r*c), Space O(c).
//
// AI-Hints:
//   - Zero weights are legal and contribute nothing; an all-zero w yields
//     an all-zero result.
func (m *Dense) WeightedColumnSums(w []float64) ([]float64, error) {
	if err := ValidateVecLen(w, m.r); err != nil {
		return nil, matrixErrorf(ctxWeightedColumnSums, err)
	}
	out := make([]float64, m.c)
	var i int
	for i = 0; i < m.r; i++ {
		if w[i] == 0 {
			continue
		}
		floats.AddScaled(out, w[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out, nil
}
