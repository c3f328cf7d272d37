// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the scenario
// reduction pipeline.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with bounds-safe At/Set and a
//     finite-only numeric policy (NaN/±Inf rejected on Set/Apply).
//   - Induced: copy-based extraction over explicit row/column index sets,
//     the primitive behind the distance engine's narrowing step.
//   - ColumnSums / WeightedColumnSums: deterministic column reductions
//     (gonum floats kernels on the flat buffer).
//   - Validators for square shape, symmetry, zero diagonal and vector
//     length, each returning package sentinels for errors.Is matching.
//
// Determinism:
//
//	Every loop runs in fixed row-major order; no map iteration, no
//	randomness. Two calls with identical inputs produce identical bits.
//
// Complexity quicksheet:
//
//	NewDense O(r·c); At/Set O(1); Clone O(r·c); Induced O(r'·c');
//	ColumnSums/WeightedColumnSums O(r·c).
package matrix
