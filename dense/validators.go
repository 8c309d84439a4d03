// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//  - Provide a single source of truth for shape and length checks.
//  - Return sentinels wrapped with the validator tag so call sites can wrap
//    again with their operation name.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.

package dense

import (
	"fmt"

	"github.com/katalvlaran/fieldkit/dim"
	"github.com/katalvlaran/fieldkit/scalar"
)

// Programmer-error panic messages (no magic strings).
const (
	panicBadDim = "dense: dimension type must report a positive Len"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lengthOf returns the length carried by N, panicking on a non-positive
// value: such a Dim can never describe a vector and is a programmer error.
func lengthOf[N dim.Dim]() int {
	n := dim.Len[N]()
	if n <= 0 {
		panic(panicBadDim)
	}

	return n
}

// ValidateVecLen ensures x has exactly n elements.
// Complexity: O(1).
func ValidateVecLen[K scalar.Scalar](x []K, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare ensures rows == cols.
// Complexity: O(1).
func ValidateSquare(rows, cols int) error {
	if rows != cols {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", rows, cols, ErrNonSquare))
	}

	return nil
}

// ValidateRows ensures a row-of-rows literal is exactly r×c.
// A nil outer slice is reported as ErrNilMatrix.
// Complexity: O(r).
func ValidateRows[K scalar.Scalar](rows [][]K, r, c int) error {
	if rows == nil {
		return validatorErrorf("ValidateRows", ErrNilMatrix)
	}
	if len(rows) != r {
		return validatorErrorf("ValidateRows", fmt.Errorf("%d rows, want %d: %w", len(rows), r, ErrDimensionMismatch))
	}
	for i := range rows {
		if len(rows[i]) != c {
			return validatorErrorf("ValidateRows", fmt.Errorf("row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
	}

	return nil
}
