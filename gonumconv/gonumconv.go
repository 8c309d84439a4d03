// SPDX-License-Identifier: MIT

// Package gonumconv copies fixed-size dense matrices and vectors to and from
// gonum's runtime-sized mat types.
//
// Every conversion copies; neither side ever aliases the other. Shapes coming
// from gonum are checked against the static dimension types and reported
// with dense.ErrDimensionMismatch, so callers match errors with errors.Is
// exactly as they do for the dense package itself.
package gonumconv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fieldkit/dense"
	"github.com/katalvlaran/fieldkit/dim"
)

// ToDense returns a new r×c *mat.Dense holding a copy of m.
// Complexity: O(r*c).
func ToDense[R, C dim.Dim](m *dense.Matrix[float64, R, C]) *mat.Dense {
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	m.Do(func(_, _ int, v float64) bool {
		data = append(data, v)
		return true
	})

	return mat.NewDense(r, c, data)
}

// FromDense copies any gonum matrix into a new R×C dense matrix.
// MAIN DESCRIPTION:
//   - Reads src through the mat.Matrix interface, so transposed views and
//     symmetric or triangular types are accepted as well as *mat.Dense.
//
// Errors:
//   - dense.ErrNilMatrix for a nil src.
//   - dense.ErrDimensionMismatch when src.Dims() differs from (R, C).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromDense[R, C dim.Dim](src mat.Matrix) (*dense.Matrix[float64, R, C], error) {
	if src == nil {
		return nil, fmt.Errorf("gonumconv.FromDense: %w", dense.ErrNilMatrix)
	}
	out := dense.NewMatrix[float64, R, C]()
	r, c := out.Shape()
	if sr, sc := src.Dims(); sr != r || sc != c {
		return nil, fmt.Errorf("gonumconv.FromDense: %dx%d, want %dx%d: %w", sr, sc, r, c, dense.ErrDimensionMismatch)
	}
	out.Apply(func(i, j int, _ float64) float64 { return src.At(i, j) })

	return out, nil
}

// ToVecDense returns a new *mat.VecDense holding a copy of v.
func ToVecDense[N dim.Dim](v *dense.Vector[float64, N]) *mat.VecDense {
	return mat.NewVecDense(v.Len(), v.Slice())
}

// FromVector copies a gonum vector into a new N-vector.
// Errors:
//   - dense.ErrNilMatrix for a nil src.
//   - dense.ErrDimensionMismatch when src.Len() != N.
func FromVector[N dim.Dim](src mat.Vector) (*dense.Vector[float64, N], error) {
	if src == nil {
		return nil, fmt.Errorf("gonumconv.FromVector: %w", dense.ErrNilMatrix)
	}
	out := dense.NewVector[float64, N]()
	if n := src.Len(); n != out.Len() {
		return nil, fmt.Errorf("gonumconv.FromVector: len %d, want %d: %w", n, out.Len(), dense.ErrDimensionMismatch)
	}
	for c := out.Begin(); c.Valid(); c.Next() {
		c.Set(src.AtVec(c.Index()))
	}

	return out, nil
}
