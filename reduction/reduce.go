// SPDX-License-Identifier: MIT

package reduction

// Reduce runs the full pipeline: SelectReducedScenarios followed by
// RedistributeProbabilities over the same costs and options.
//
// The redistribution reads only costs, the options' probabilities and the
// selected ids; none of the selector's matrix state survives the call.
func Reduce(costs []float64, k int, opts ...Option) (*Result, error) {
	selected, err := SelectReducedScenarios(costs, k, opts...)
	if err != nil {
		return nil, err
	}
	table, err := RedistributeProbabilities(costs, selected, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{Selected: selected, Table: table}, nil
}
