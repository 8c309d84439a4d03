// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the dense tests.
//   - Keep the fixtures finite and well conditioned so precision limits
//     never interfere unless a test asks for it.

package dense_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fieldkit/dense"
	"github.com/katalvlaran/fieldkit/dim"
	"github.com/katalvlaran/fieldkit/scalar"
	"github.com/stretchr/testify/require"
)

// d34 is the dimension of the large near-identity inversion fixture.
type d34 struct{}

func (d34) Len() int { return 34 }

// Tolerances used across the suite.
const (
	tolExact = 1e-12
	tolLoose = 1e-6
)

// MustMatrix builds an R×C matrix from rows or fails the test.
func MustMatrix[K scalar.Scalar, R, C dim.Dim](t *testing.T, rows [][]K) *dense.Matrix[K, R, C] {
	t.Helper()
	m, err := dense.MatrixFromRows[K, R, C](rows)
	require.NoError(t, err)

	return m
}

// MustFlat builds an R×C matrix from a row-major slice or fails the test.
func MustFlat[K scalar.Scalar, R, C dim.Dim](t *testing.T, flat []K) *dense.Matrix[K, R, C] {
	t.Helper()
	m, err := dense.MatrixFromSlice[K, R, C](flat)
	require.NoError(t, err)

	return m
}

// MustVector builds an N-vector from xs or fails the test.
func MustVector[K scalar.Scalar, N dim.Dim](t *testing.T, xs ...K) *dense.Vector[K, N] {
	t.Helper()
	v, err := dense.VectorFromSlice[K, N](xs)
	require.NoError(t, err)

	return v
}

// MustAt reads m[i][j] or fails the test.
func MustAt[K scalar.Scalar, R, C dim.Dim](t *testing.T, m *dense.Matrix[K, R, C], i, j int) K {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m[i][j] or fails the test.
func MustSet[K scalar.Scalar, R, C dim.Dim](t *testing.T, m *dense.Matrix[K, R, C], i, j int, x K) {
	t.Helper()
	require.NoError(t, m.Set(i, j, x))
}

// requireSliceInDelta compares two real slices element-wise within tol.
func requireSliceInDelta(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], tol, "index %d", i)
	}
}

// requireComplexInDelta compares two complex slices element-wise within tol.
func requireComplexInDelta(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.LessOrEqualf(t, cmplx.Abs(want[i]-got[i]), tol, "index %d: want %v, got %v", i, want[i], got[i])
	}
}

// residualFromIdentity returns ‖A·B − I‖∞.
func residualFromIdentity[N dim.Dim](a, b *dense.Matrix[float64, N, N]) float64 {
	p := a.Clone().RightMultiply(b)

	return p.Sub(dense.Identity[float64, N]()).InfinityNorm()
}

// diagDominant returns a deterministic, strictly diagonally dominant N×N
// matrix (hence regular) seeded by seed.
func diagDominant[N dim.Dim](seed int64) *dense.Matrix[float64, N, N] {
	rng := rand.New(rand.NewSource(seed))
	m := dense.NewMatrix[float64, N, N]()
	n := m.Rows()
	m.Apply(func(i, j int, _ float64) float64 {
		if i == j {
			return float64(n) + 1 + rng.Float64()
		}

		return rng.Float64()*2 - 1
	})

	return m
}
