// SPDX-License-Identifier: MIT

// Package reduction shrinks a discrete scenario set to k representatives and
// redistributes the discarded probability mass.
//
// What
//
//   - SelectReducedScenarios: greedy forward selection minimising the
//     Kantorovich distance between the full and reduced distributions.
//     Returns k distinct scenario indices in the order they were picked.
//   - RedistributeProbabilities: assigns each non-selected scenario to its
//     cost-nearest representative and sums probability mass onto it.
//     Returns an AssignmentTable over all original scenarios.
//   - Reduce: both steps in one call.
//
// Why
//
//	Stochastic optimisation models grow with the number of scenarios. A
//	small representative set whose probabilities absorb the discarded mass
//	keeps the distributional shape of the full set at a fraction of the
//	solve cost.
//
// Determinism
//
//	Ties, whether between selection scores or between representatives at
//	equal cost distance, always resolve to the smallest scenario index.
//	Identical inputs yield identical outputs.
//
// Probabilities
//
//	Supply them with WithProbabilities. When omitted, selection scores are
//	plain (unweighted) column sums and redistribution starts from 1/N.
//	Omitting probabilities is therefore not the same as passing a uniform
//	vector to the selector: the score scale differs by a factor of N, and
//	rounding under 1/N weights can resolve near-ties differently.
//
// Hooks
//
//	WithOnSelect observes every greedy round (round, scenario, score).
//
// Errors
//
//	Every input-contract violation wraps ErrInvalidArgument and is reported
//	before any matrix is built.
package reduction
