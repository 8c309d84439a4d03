// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the dense
// package. Operations return these sentinels (optionally wrapped with
// operation context via %w) and tests check them with errors.Is.
// No operation panics on user-triggered error conditions; panics are reserved
// for programmer errors (invalid option values, a Dim with non-positive Len).

package dense

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for easy grepping. Context is
// attached with fmt.Errorf("<op>: %w", ErrX) at the detection site; callers
// still match with errors.Is.
//
// ERROR PRIORITY:
// nil operand -> shape (non-square, bad shape) -> dimension mismatch ->
// index range -> numerical (singular, division by zero).

var (
	// ErrBadShape is returned when an operation needs a specific shape the
	// operand does not have (e.g., Scalar on a matrix that is not 1×1).
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that a row, column, or component index is
	// outside valid bounds. At/Set return this, they never panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between operands,
	// e.g., a slice of the wrong length passed to Product or SolveSlice.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrSingular is returned when elimination meets a pivot whose magnitude
	// is at or below the singular limit, or a closed-form determinant at or
	// below the absolute limit.
	ErrSingular = errors.New("dense: singular matrix")

	// ErrNilMatrix indicates a nil operand where a value was required.
	ErrNilMatrix = errors.New("dense: nil operand")

	// ErrDivByZero is returned by DivScalar when the divisor is zero.
	ErrDivByZero = errors.New("dense: division by zero")

	// ErrUnknownProduct is returned by Product for an undefined ProductKind.
	ErrUnknownProduct = errors.New("dense: unknown product kind")
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxScalar = "Scalar"
	ctxDiv    = "DivScalar"
)

// Operation name constants for matrixErrorf.
const (
	opFromRows    = "MatrixFromRows"
	opFromSlice   = "MatrixFromSlice"
	opVecFrom     = "VectorFromSlice"
	opProduct     = "Product"
	opInvert      = "Invert"
	opSolve       = "Solve"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches method context and coordinates to a sentinel.
// The shape is "Matrix.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// vectorErrorf is the Vector counterpart of denseErrorf.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// singularAt reports a failed pivot search in column k.
func singularAt(k int) error {
	return fmt.Errorf("pivot column %d: %w", k, ErrSingular)
}
