package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scenred/matrix"
)

func TestColumnSums(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2, 10},
		{1, 0, 1, 9},
		{2, 1, 0, 8},
		{10, 9, 8, 0},
	})
	require.NoError(t, err)

	require.Equal(t, []float64{13, 11, 11, 27}, m.ColumnSums())
}

func TestWeightedColumnSums(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	require.NoError(t, err)

	s, err := m.WeightedColumnSums([]float64{0.5, 0, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{10.5, 13}, s)

	s, err = m.WeightedColumnSums([]float64{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, s, "all-zero weights yield all-zero sums")

	_, err = m.WeightedColumnSums([]float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = m.WeightedColumnSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
