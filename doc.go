// Package scenred reduces a large set of scenarios, each a scalar cost with
// an occurrence probability, to a small representative subset that stays
// close to the original distribution in the Kantorovich (earth-mover) sense.
//
// 🚀 What is scenred?
//
//	A small, deterministic, in-memory library built from:
//		• Dense matrices: row-major float64 storage with induced submatrices
//		• Distance engine: |c_i − c_j| matrices and the per-round reduction step
//		• Greedy selection: forward selection by minimal (weighted) column sum
//		• Redistribution: every dropped scenario's mass moves to its nearest keeper
//
// ✨ Why choose scenred?
//
//   - Deterministic – ties always resolve to the smallest scenario index
//   - Immutable rounds – each selection round works on a fresh matrix
//   - Observable – a WithOnSelect hook reports every round
//
// Subpackages:
//
//	matrix/ - Dense matrix, reductions (column sums) and validators
//	distance/ - Kantorovich distance matrix with explicit scenario ids
//	reduction/ - SelectReducedScenarios, RedistributeProbabilities, Reduce
//	scenario/ - CSV input, CSV and table output
//	logger/ - leveled loggers for the command line
//	cmd/scenred - the scenred command
//
// Quick example:
//
//	costs  0   1   2   10
//	keep 2 →  scenarios [1 3]
//	mass      [0 0.75 0 0.25]
//
//	go get github.com/katalvlaran/scenred
package scenred
