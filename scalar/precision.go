// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadPrecision signals a limit that is NaN, infinite, or negative.
var ErrBadPrecision = errors.New("scalar: invalid precision limit")

// Default limits for double precision (float64, complex128).
const (
	// DefaultSingular64 is the pivot magnitude at or below which elimination
	// declares a double-precision matrix singular.
	DefaultSingular64 = 1e-20

	// DefaultAbsolute64 is the determinant magnitude at or below which the
	// closed-form 1×1 and 2×2 paths declare a matrix singular.
	DefaultAbsolute64 = 1e-80
)

// Default limits for single precision (float32, complex64).
// They are looser than the double-precision limits.
const (
	DefaultSingular32 = 1e-10
	DefaultAbsolute32 = 1e-30
)

// Precision is the pair of thresholds used to decide when a pivot or a
// determinant is too small to trust.
//
// It is plain configuration data: callers pass it explicitly (see
// dense.WithPrecision) and it is read-only during an operation.
type Precision struct {
	// Singular bounds pivot magnitudes during elimination.
	Singular float64

	// Absolute bounds determinant magnitudes in closed-form small-matrix paths.
	Absolute float64
}

// DefaultPrecision returns the documented limits for K.
// Complexity: O(1).
func DefaultPrecision[K Scalar]() Precision {
	var zero K
	switch any(zero).(type) {
	case float32, complex64:
		return Precision{Singular: DefaultSingular32, Absolute: DefaultAbsolute32}
	default:
		return Precision{Singular: DefaultSingular64, Absolute: DefaultAbsolute64}
	}
}

// Validate reports ErrBadPrecision when either limit is NaN, infinite, or
// negative. Zero limits are legal: only exact zeros are then singular.
func (p Precision) Validate() error {
	if !validLimit(p.Singular) {
		return fmt.Errorf("Precision.Singular=%g: %w", p.Singular, ErrBadPrecision)
	}
	if !validLimit(p.Absolute) {
		return fmt.Errorf("Precision.Absolute=%g: %w", p.Absolute, ErrBadPrecision)
	}

	return nil
}

// validLimit reports whether v is a usable threshold.
func validLimit(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
