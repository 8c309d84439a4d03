// SPDX-License-Identifier: MIT

// Package dense provides fixed-size dense vectors and matrices whose
// dimensions are type parameters.
//
// The dense package provides:
//
//   - Vector[K, N] and Matrix[K, R, C] over float32, float64, complex64 and
//     complex128, with row-major storage and rows exposed as Vector views.
//   - The matrix–vector product family (MV, MTV, UMV, UMTV, UMHV, MMV, MMTV,
//     MMHV, USMV, USMTV, USMHV), typed on *Vector or slice-level via Product.
//   - In-place and any-shape matrix–matrix products.
//   - One-, two-, infinity- and Frobenius norms.
//   - Invert, Solve and Determinant on a shared Gaussian elimination with
//     partial pivoting, tuned by functional options (WithSingularLimit,
//     WithAbsoluteLimit, WithPrecision).
//
// Shapes are checked by the compiler: a Matrix[K, D3, D4] only accepts a
// Vector[K, D4] in MV. Slice-level entry points validate lengths and return
// ErrDimensionMismatch instead. Index access never panics; At and Set return
// ErrOutOfRange.
//
// float64 element-wise kernels run on algo-vecmath block routines; other
// scalar types take the generic loops.
//
// See gonumconv for interop with gonum's mat package.
package dense
