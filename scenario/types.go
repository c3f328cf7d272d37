// SPDX-License-Identifier: MIT

package scenario

import "errors"

// Sentinel errors for scenario I/O.
var (
	// ErrEmptyInput is returned when the input holds no scenario records.
	ErrEmptyInput = errors.New("scenario: no scenario records")

	// ErrBadRecord is returned for a record that cannot be parsed.
	ErrBadRecord = errors.New("scenario: malformed record")

	// ErrBadIDList is returned when a scenario id list cannot be parsed.
	ErrBadIDList = errors.New("scenario: malformed scenario id list")

	// ErrNilTable is returned when a nil assignment table is written.
	ErrNilTable = errors.New("scenario: assignment table is nil")
)

// Set is a parsed scenario set.
//   - Costs: one cost per scenario, indexed by record position.
//   - Probabilities: aligned with Costs, or nil when the input had no
//     probability column.
type Set struct {
	Costs         []float64
	Probabilities []float64
}

// Len returns the number of scenarios.
func (s *Set) Len() int { return len(s.Costs) }

// Weighted reports whether the set carries probabilities.
func (s *Set) Weighted() bool { return s.Probabilities != nil }
