// SPDX-License-Identifier: MIT

// Package reduction defines options, results and error definitions for
// Kantorovich scenario reduction.
package reduction

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is the root of every input-contract violation.
// All detailed sentinels below wrap it, so errors.Is(err, ErrInvalidArgument)
// holds for any validation failure.
var ErrInvalidArgument = errors.New("reduction: invalid argument")

// Detailed validation sentinels.
var (
	// ErrEmptyCosts is returned when the cost sequence is empty.
	ErrEmptyCosts = fmt.Errorf("%w: cost sequence is empty", ErrInvalidArgument)

	// ErrNonFiniteCost is returned when a cost is NaN or ±Inf.
	ErrNonFiniteCost = fmt.Errorf("%w: cost is not finite", ErrInvalidArgument)

	// ErrCostRange is returned when max(costs) − min(costs) overflows float64,
	// so some pairwise distance would be +Inf.
	ErrCostRange = fmt.Errorf("%w: cost range overflows", ErrInvalidArgument)

	// ErrBadCount is returned when k < 1 or k >= len(costs).
	ErrBadCount = fmt.Errorf("%w: reduced scenario count out of range", ErrInvalidArgument)

	// ErrProbabilityLength is returned when len(probabilities) != len(costs).
	ErrProbabilityLength = fmt.Errorf("%w: probabilities length mismatch", ErrInvalidArgument)

	// ErrBadProbability is returned for a negative or non-finite probability.
	ErrBadProbability = fmt.Errorf("%w: probability must be finite and non-negative", ErrInvalidArgument)

	// ErrProbabilitySum is returned when WithSumTolerance is set and the
	// probabilities do not sum to 1 within that tolerance.
	ErrProbabilitySum = fmt.Errorf("%w: probabilities do not sum to 1", ErrInvalidArgument)

	// ErrEmptyReduced is returned when the reduced scenario list is empty.
	ErrEmptyReduced = fmt.Errorf("%w: reduced scenario list is empty", ErrInvalidArgument)

	// ErrDuplicateScenario is returned when a reduced scenario id repeats.
	ErrDuplicateScenario = fmt.Errorf("%w: duplicate reduced scenario", ErrInvalidArgument)

	// ErrScenarioOutOfRange is returned when a reduced scenario id is not in [0, N).
	ErrScenarioOutOfRange = fmt.Errorf("%w: scenario index out of range", ErrInvalidArgument)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: invalid option supplied", ErrInvalidArgument)
)

// Option configures reduction via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// reduction is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of a reduction call.
type Options struct {
	// Probabilities is the occurrence probability of every scenario, aligned
	// with costs. nil means "not supplied": selection scores use plain
	// column sums and redistribution starts from uniform 1/N.
	Probabilities []float64

	// OnSelect is called once per selection round, after the pick.
	OnSelect func(Selection)

	// SumTolerance, when > 0, requires |Σ Probabilities − 1| ≤ SumTolerance.
	// Zero disables the check (probabilities are assumed normalised).
	SumTolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no probabilities, a no-op OnSelect
// hook and the sum check disabled.
func DefaultOptions() Options {
	return Options{
		Probabilities: nil,
		OnSelect:      func(Selection) {},
		SumTolerance:  0,
	}
}

// WithProbabilities supplies the scenario probabilities. The slice is copied.
// A nil slice keeps the "not supplied" semantics.
func WithProbabilities(p []float64) Option {
	return func(o *Options) {
		if p == nil {
			o.Probabilities = nil
			return
		}
		o.Probabilities = append(make([]float64, 0, len(p)), p...)
	}
}

// WithOnSelect registers a callback run after each selection round.
func WithOnSelect(fn func(Selection)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSelect = fn
		}
	}
}

// WithSumTolerance enables the Σp = 1 check.
//
//	eps > 0: enforce |Σp − 1| ≤ eps
//	eps == 0: disable the check
//	eps < 0 or non-finite: invalid option → ErrOptionViolation
func WithSumTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: SumTolerance must be finite and >= 0 (%v)", ErrOptionViolation, eps)
			return
		}
		o.SumTolerance = eps
	}
}

// gatherOptions applies opts over DefaultOptions and reports the first
// recorded option error.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// Selection describes one greedy round.
//   - Round: 1-based round number.
//   - Scenario: original index of the scenario picked this round.
//   - Score: its Kantorovich score (weighted or plain column sum).
//   - Remaining: active candidates left after the pick.
type Selection struct {
	Round     int
	Scenario  int
	Score     float64
	Remaining int
}

// Assignment is one row of an AssignmentTable.
//   - Scenario: original index.
//   - Cost: the scenario's cost.
//   - Representative: the reduced scenario it maps to (itself for representatives).
//   - Initial: probability before redistribution.
//   - Probability: probability after redistribution (0 for non-representatives).
//   - Distance: |Cost − cost(Representative)|.
type Assignment struct {
	Scenario       int
	Cost           float64
	Representative int
	Initial        float64
	Probability    float64
	Distance       float64
}

// IsRepresentative reports whether the row maps onto itself.
func (a Assignment) IsRepresentative() bool { return a.Scenario == a.Representative }

// Result bundles the output of Reduce.
//   - Selected: reduced scenario ids in greedy selection order.
//   - Table: the redistribution over all original scenarios.
type Result struct {
	Selected []int
	Table    *AssignmentTable
}
