// SPDX-License-Identifier: MIT

// Package distance builds and narrows the pairwise cost-distance matrix that
// drives greedy Kantorovich scenario selection.
//
// 🚀 What is it?
//
//	Every scenario carries a scalar cost. The distance between scenarios i
//	and j is |cost_i − cost_j|. A selection round scores each still-active
//	scenario by its (probability-weighted) column sum, fixes the best one as
//	a representative and then narrows the matrix:
//
//	  d'[j][k] = min(d[j][k], d[j][s])   for every surviving j, k
//
//	where s is the id just fixed. Row and column s are dropped. The floor
//	lets every surviving row route through the already-fixed representative.
//
// ✨ Key features:
//   - Immutable values: ReduceStep returns a fresh Matrix, the input is untouched.
//   - Explicit index space: each Matrix carries its ascending active ids, so
//     position p always means scenario IDs()[p] (no label lookups).
//   - Weighted or plain column scores (nil weights = plain sum, not 1/N).
//
// ⚙️ Usage:
//
//	m, err := distance.Build([]float64{0, 1, 2, 10})
//	scores, _ := m.Scores(nil)          // [13 11 11 27]
//	m, err = distance.ReduceStep(m, 1)  // active ids now [0 2 3]
//
// Performance:
//
//   - Build:      O(N²) time and memory
//   - ReduceStep: O(M²) for an M×M input
//   - Scores:     O(M²)
package distance
