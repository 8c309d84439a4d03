// SPDX-License-Identifier: MIT
package dense_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fieldkit/dense"
	"github.com/katalvlaran/fieldkit/dim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix_DefaultZero(t *testing.T) {
	var zero dense.Matrix[float64, dim.D3, dim.D5]
	m := dense.NewMatrix[float64, dim.D6, dim.D6]()
	for _, tc := range []struct {
		name string
		do   func(func(i, j int, v float64) bool)
		r, c int
	}{
		{"zero-value 3x5", zero.Do, 3, 5},
		{"NewMatrix 6x6", m.Do, 6, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			count := 0
			tc.do(func(i, j int, v float64) bool {
				require.Zerof(t, v, "element [%d,%d]", i, j)
				count++
				return true
			})
			assert.Equal(t, tc.r*tc.c, count)
		})
	}
}

func TestMatrix_Shape(t *testing.T) {
	m := dense.NewMatrix[complex64, dim.D5, dim.D10]()
	r, c := m.Shape()
	assert.Equal(t, 5, r)
	assert.Equal(t, 10, c)
	assert.Equal(t, r, m.Rows())
	assert.Equal(t, c, m.Cols())
}

func TestMatrixFromRows_Errors(t *testing.T) {
	_, err := dense.MatrixFromRows[float64, dim.D2, dim.D2](nil)
	assert.ErrorIs(t, err, dense.ErrNilMatrix)

	_, err = dense.MatrixFromRows[float64, dim.D2, dim.D2]([][]float64{{1, 2}})
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)

	_, err = dense.MatrixFromRows[float64, dim.D2, dim.D2]([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)

	_, err = dense.MatrixFromSlice[float64, dim.D2, dim.D3](make([]float64, 5))
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestMatrix_AtSetBounds(t *testing.T) {
	m := dense.NewMatrix[float64, dim.D2, dim.D3]()
	MustSet(t, m, 1, 2, 5)
	assert.Equal(t, 5.0, MustAt(t, m, 1, 2))

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		t.Run(fmt.Sprintf("%d,%d", ij[0], ij[1]), func(t *testing.T) {
			_, err := m.At(ij[0], ij[1])
			assert.ErrorIs(t, err, dense.ErrOutOfRange)
			assert.ErrorIs(t, m.Set(ij[0], ij[1], 1), dense.ErrOutOfRange)
		})
	}

	_, err := m.Row(2)
	assert.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = m.Col(3)
	assert.ErrorIs(t, err, dense.ErrOutOfRange)
}

func TestMatrix_RowIsViewColIsCopy(t *testing.T) {
	m := MustMatrix[float64, dim.D2, dim.D3](t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(0)
	require.NoError(t, err)
	row.Scale(10)
	assert.Equal(t, 20.0, MustAt(t, m, 0, 1), "row writes go through")
	assert.Equal(t, 5.0, MustAt(t, m, 1, 1), "other rows untouched")

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 6}, col.Slice())
	require.NoError(t, col.Set(0, -1))
	assert.Equal(t, 30.0, MustAt(t, m, 0, 2), "column is a copy")
}

func TestMatrix_RowCopyFromWritesThrough(t *testing.T) {
	m := dense.NewMatrix[float64, dim.D2, dim.D2]()
	row, err := m.Row(1)
	require.NoError(t, err)
	row.CopyFrom(MustVector[float64, dim.D2](t, 7, 8))
	assert.Equal(t, "[0, 0]\n[7, 8]\n", m.String())
}

func TestMatrix_CloneIndependentRows(t *testing.T) {
	m := MustMatrix[float64, dim.D2, dim.D2](t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	row, err := c.Row(0)
	require.NoError(t, err)
	row.Fill(0)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 0.0, MustAt(t, c, 0, 0))
}

func TestMatrix_RowsIterators(t *testing.T) {
	m := MustFlat[float64, dim.D3, dim.D2](t, []float64{0, 1, 10, 11, 20, 21})

	var seen []float64
	for i, row := range m.AllRows() {
		for j, v := range row.All() {
			require.Equal(t, float64(10*i+j), v)
			seen = append(seen, v)
		}
	}
	assert.Equal(t, []float64{0, 1, 10, 11, 20, 21}, seen)

	var order []int
	for i := range m.BackwardRows() {
		order = append(order, i)
	}
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestMatrix_DoStopsEarly(t *testing.T) {
	m := dense.FillMatrix[float64, dim.D3, dim.D3](1)
	visits := 0
	m.Do(func(i, j int, _ float64) bool {
		visits++
		return !(i == 1 && j == 0)
	})
	assert.Equal(t, 4, visits)
}

func TestMatrix_ApplyAndIdentity(t *testing.T) {
	m := dense.NewMatrix[float64, dim.D3, dim.D3]().Apply(func(i, j int, _ float64) float64 {
		if i == j {
			return 1
		}
		return 0
	})
	assert.True(t, m.Equal(dense.Identity[float64, dim.D3]()))
}

func TestMatrix_ElementwiseLaws(t *testing.T) {
	a := MustFlat[float64, dim.D3, dim.D4](t, []float64{
		1, -2, 3, 0.5,
		4, 5, -6, 7,
		0.25, 8, 9, -10,
	})

	t.Run("add-sub", func(t *testing.T) {
		a2 := a.Clone().Scale(2)
		b := a.Clone().Add(a).Sub(a2)
		assert.LessOrEqual(t, b.InfinityNorm(), tolExact)
	})
	t.Run("axpy-self", func(t *testing.T) {
		a3 := a.Clone().Scale(3)
		b := a.Clone()
		b.Axpy(2, b).Sub(a3)
		assert.LessOrEqual(t, b.InfinityNorm(), tolExact)
	})
	t.Run("div", func(t *testing.T) {
		b := a.Clone()
		require.NoError(t, b.DivScalar(0.5))
		assert.True(t, b.Equal(a.Clone().Scale(2)))
		require.ErrorIs(t, b.DivScalar(0), dense.ErrDivByZero)
	})
	t.Run("fill", func(t *testing.T) {
		b := a.Clone().Fill(3)
		assert.True(t, b.Equal(dense.FillMatrix[float64, dim.D3, dim.D4](3)))
	})
}

func TestMatrix_Scalar(t *testing.T) {
	m := dense.FillMatrix[float32, dim.D1, dim.D1](2)
	x, err := m.Scalar()
	require.NoError(t, err)
	assert.Equal(t, float32(2), x)

	_, err = dense.NewMatrix[float32, dim.D1, dim.D2]().Scalar()
	assert.ErrorIs(t, err, dense.ErrBadShape)
}

// TestMatrix_OneByOneScalarArithmetic mirrors scalar arithmetic through a
// 1×1 matrix: every operation must agree with the same operation on K.
func TestMatrix_OneByOneScalarArithmetic(t *testing.T) {
	var a, c float64 = 1, 2
	a = (a*c + c) / c

	v := dense.FillMatrix[float64, dim.D1, dim.D1](a)
	w := dense.FillMatrix[float64, dim.D1, dim.D1](2)
	v.Add(w).Scale(a)
	require.NoError(t, v.DivScalar(2))

	x, err := v.Scalar()
	require.NoError(t, err)
	assert.Equal(t, (a+2)*a/2, x)
}

func TestTranspose(t *testing.T) {
	m := MustMatrix[float64, dim.D2, dim.D3](t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := dense.Transpose(m)
	r, c := tr.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, MustAt(t, tr, 2, 1))
	assert.Equal(t, 4.0, MustAt(t, tr, 0, 1))
	assert.True(t, m.Equal(dense.Transpose(tr)))
}
