// SPDX-License-Identifier: MIT
package dense_test

import (
	"testing"

	"github.com/katalvlaran/fieldkit/dense"
	"github.com/katalvlaran/fieldkit/dim"
	"github.com/katalvlaran/fieldkit/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowIndexed returns a matrix with every entry of row i equal to i.
func rowIndexed[K scalar.Scalar, R, C dim.Dim]() *dense.Matrix[K, R, C] {
	f := scalar.For[K]()

	return dense.NewMatrix[K, R, C]().Apply(func(i, _ int, _ K) K { return f.FromFloat(float64(i)) })
}

// checkAnyShape exercises the any-shape product identities for an n×(n+1)
// matrix A, an (n+1)×(n+1) matrix B and an n×n matrix C, all row-indexed:
// (A·B)[i][j] = i·n(n+1)/2 and (C·A)[i][j] = i·n(n-1)/2.
func checkAnyShape[K scalar.Scalar, N, N1 dim.Dim](t *testing.T) {
	t.Helper()
	a := rowIndexed[K, N, N1]()
	b := rowIndexed[K, N1, N1]()
	c := rowIndexed[K, N, N]()
	n := a.Rows()
	f := scalar.For[K]()

	ab := dense.RightMultiplyAny(a, b)
	ab.Do(func(i, j int, v K) bool {
		assert.Equalf(t, f.FromFloat(float64(i*n*(n+1)/2)), v, "AB[%d][%d]", i, j)
		return true
	})

	ab2 := a.Clone().RightMultiply(b).Sub(ab)
	assert.LessOrEqual(t, ab2.InfinityNorm(), 1e-10, "RightMultiply")

	ab3 := dense.LeftMultiplyAny(b, a).Sub(ab)
	assert.LessOrEqual(t, ab3.InfinityNorm(), 1e-10, "LeftMultiplyAny of B by A")

	ca := dense.LeftMultiplyAny(a, c)
	ca.Do(func(i, j int, v K) bool {
		assert.Equalf(t, f.FromFloat(float64(i*n*(n-1)/2)), v, "CA[%d][%d]", i, j)
		return true
	})

	ca2 := a.Clone().LeftMultiply(c).Sub(ca)
	assert.LessOrEqual(t, ca2.InfinityNorm(), 1e-10, "LeftMultiply")

	ca3 := dense.RightMultiplyAny(c, a).Sub(ca)
	assert.LessOrEqual(t, ca3.InfinityNorm(), 1e-10, "RightMultiplyAny of C by A")
}

func TestMultiply_AnyShapeIdentities(t *testing.T) {
	t.Run("float64/4", checkAnyShape[float64, dim.D4, dim.D5])
	t.Run("float32/2", checkAnyShape[float32, dim.D2, dim.D3])
	t.Run("complex128/5", checkAnyShape[complex128, dim.D5, dim.D6])
	t.Run("complex64/1", checkAnyShape[complex64, dim.D1, dim.D2])
	t.Run("float64/9", checkAnyShape[float64, dim.D9, dim.D10])
}

func TestMultiply_SquareAliasing(t *testing.T) {
	a := MustMatrix[float64, dim.D2, dim.D2](t, [][]float64{{1, 2}, {3, 4}})
	want := MustMatrix[float64, dim.D2, dim.D2](t, [][]float64{{7, 10}, {15, 22}})

	r := a.Clone()
	r.RightMultiply(r)
	assert.True(t, r.Equal(want), "A.RightMultiply(A) = A²\n%v", r)

	l := a.Clone()
	l.LeftMultiply(l)
	assert.True(t, l.Equal(want), "A.LeftMultiply(A) = A²\n%v", l)
}

func TestMultiply_IdentityIsNeutral(t *testing.T) {
	a := MustFlat[float64, dim.D3, dim.D4](t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	r := a.Clone().RightMultiply(dense.Identity[float64, dim.D4]())
	l := a.Clone().LeftMultiply(dense.Identity[float64, dim.D3]())
	assert.True(t, r.Equal(a))
	assert.True(t, l.Equal(a))
}

func TestMultiply_NonCommuting(t *testing.T) {
	a := MustMatrix[float64, dim.D2, dim.D2](t, [][]float64{{0, 1}, {0, 0}})
	b := MustMatrix[float64, dim.D2, dim.D2](t, [][]float64{{0, 0}, {1, 0}})

	ab := a.Clone().RightMultiply(b)
	ba := a.Clone().LeftMultiply(b)
	require.False(t, ab.Equal(ba))
	assert.Equal(t, 1.0, MustAt(t, ab, 0, 0))
	assert.Equal(t, 1.0, MustAt(t, ba, 1, 1))
}
