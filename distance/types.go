// SPDX-License-Identifier: MIT

package distance

import (
	"errors"

	"github.com/katalvlaran/scenred/matrix"
)

// Sentinel errors for the distance engine.
var (
	// ErrEmptyCosts is returned when Build receives no costs.
	ErrEmptyCosts = errors.New("distance: cost sequence is empty")

	// ErrUnknownID is returned when an id is not in the active index space.
	ErrUnknownID = errors.New("distance: scenario id not active")

	// ErrExhausted is returned when narrowing would leave no active scenario.
	ErrExhausted = errors.New("distance: no scenario would remain active")

	// ErrNilMatrix is returned when a nil *Matrix is passed.
	ErrNilMatrix = errors.New("distance: matrix is nil")
)

// Matrix is an immutable M×M cost-distance matrix over an explicit set of
// active scenario ids.
//
// Position p (row or column) refers to scenario ids[p]; ids are strictly
// ascending, so ascending position order equals ascending id order.
type Matrix struct {
	d   *matrix.Dense
	ids []int
}
