package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scenred/matrix"
)

func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSquare(sq))
}

func TestValidateSymmetric(t *testing.T) {
	sym, err := matrix.NewDenseFromRows([][]float64{{0, 2}, {2, 0}})
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym, err := matrix.NewDenseFromRows([][]float64{{0, 2}, {2.5, 0}})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym, 0.1), matrix.ErrAsymmetry)
	assert.NoError(t, matrix.ValidateSymmetric(asym, -1), "negative tolerance is taken by magnitude")
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateZeroDiagonal(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 1e-12}})
	require.NoError(t, err)

	assert.NoError(t, matrix.ValidateZeroDiagonal(m, matrix.DefaultEpsilon))
	assert.ErrorIs(t, matrix.ValidateZeroDiagonal(m, 0), matrix.ErrNonZeroDiagonal)
}

func TestValidateVecLenAndFinite(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))

	assert.NoError(t, matrix.ValidateFinite([]float64{-1, 0, 1e300}))
	assert.ErrorIs(t, matrix.ValidateFinite([]float64{0, math.Inf(-1)}), matrix.ErrNaNInf)
}
