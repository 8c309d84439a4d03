// SPDX-License-Identifier: MIT

// Package fieldkit is a small-matrix linear-algebra kit for Go: vectors and
// matrices whose sizes are part of their type, so a shape mismatch is a
// compile error rather than a runtime surprise.
//
// Under the hood, everything is organized under these subpackages:
//
//	dim/       dimension types (D1…D10) and the Dim interface for your own sizes
//	scalar/    the Scalar constraint, per-type Field helpers and precision defaults
//	dense/     Vector and Matrix, products, norms, Invert, Solve, Determinant
//	gonumconv/ copies to and from gonum.org/v1/gonum/mat
//	examples/  a runnable nodal-analysis walkthrough
//
// Quick start:
//
//	a, _ := dense.MatrixFromRows[float64, dim.D2, dim.D2]([][]float64{{4, 7}, {2, 6}})
//	b, _ := dense.VectorFromSlice[float64, dim.D2]([]float64{1, 2})
//	x := dense.NewVector[float64, dim.D2]()
//	if err := a.Solve(x, b); err != nil {
//		// errors.Is(err, dense.ErrSingular)
//	}
package fieldkit
