// SPDX-License-Identifier: MIT

// Package scalar defines the element types accepted by the dense kernel and
// the per-type capability set the kernel needs from them.
//
// Purpose:
//   - Restrict elements to the four IEEE field types Go supports natively.
//   - Expose conjugation and magnitudes through Field[K] so that generic code
//     handles real and complex elements without branching per element.
//   - Hold the per-type precision policy (singular / absolute limits).
//
// Notes:
//   - Field[K] is resolved once per operation with For[K]; the returned value
//     is a zero-size struct, so resolution never allocates.
//   - Scalar lists exact types (no ~ terms); the dispatch in For
//     matches on the concrete element type.
package scalar

import (
	"math"
	"math/cmplx"
)

// Real is the set of real element types.
type Real interface {
	float32 | float64
}

// Complex is the set of complex element types.
type Complex interface {
	complex64 | complex128
}

// Scalar is the set of element types accepted by vectors and matrices.
type Scalar interface {
	Real | Complex
}

// Field is the capability set the kernel needs from an element type.
// Magnitudes are always reported as float64 so they can be compared against
// a Precision regardless of K.
type Field[K Scalar] interface {
	// Conj returns the complex conjugate; identity for real types.
	Conj(x K) K

	// Abs returns the modulus |x|.
	Abs(x K) float64

	// AbsReal returns |re(x)| + |im(x)|; equal to Abs for real types.
	// This is the magnitude used for pivot selection and row-sum norms.
	AbsReal(x K) float64

	// Real returns the real part of x.
	Real(x K) float64

	// Imag returns the imaginary part of x; zero for real types.
	Imag(x K) float64

	// FromFloat converts a real number into K.
	FromFloat(v float64) K

	// IsComplex reports whether K is a complex type.
	IsComplex() bool
}

type realField[K Real] struct{}

func (realField[K]) Conj(x K) K { return x }
func (realField[K]) Abs(x K) float64 { return math.Abs(float64(x)) }
func (realField[K]) AbsReal(x K) float64 { return math.Abs(float64(x)) }
func (realField[K]) Real(x K) float64 { return float64(x) }
func (realField[K]) Imag(K) float64 { return 0 }
func (realField[K]) FromFloat(v float64) K { return K(v) }
func (realField[K]) IsComplex() bool { return false }

type complexField[K Complex] struct{}

func (complexField[K]) Conj(x K) K { return K(cmplx.Conj(complex128(x))) }

func (complexField[K]) Abs(x K) float64 { return cmplx.Abs(complex128(x)) }

func (complexField[K]) AbsReal(x K) float64 {
	c := complex128(x)

	return math.Abs(real(c)) + math.Abs(imag(c))
}

func (complexField[K]) Real(x K) float64 { return real(complex128(x)) }
func (complexField[K]) Imag(x K) float64 { return imag(complex128(x)) }
func (complexField[K]) FromFloat(v float64) K { return K(complex(v, 0)) }
func (complexField[K]) IsComplex() bool { return true }

// Compile-time assertions: every Scalar has a Field.
var (
	_ Field[float32]    = realField[float32]{}
	_ Field[float64]    = realField[float64]{}
	_ Field[complex64]  = complexField[complex64]{}
	_ Field[complex128] = complexField[complex128]{}
)

// For returns the Field implementation for K.
// Call it once per operation and reuse the result inside loops.
// Complexity: O(1), no allocation.
func For[K Scalar]() Field[K] {
	var (
		zero K
		f    any
	)
	switch any(zero).(type) {
	case float32:
		f = realField[float32]{}
	case float64:
		f = realField[float64]{}
	case complex64:
		f = complexField[complex64]{}
	case complex128:
		f = complexField[complex128]{}
	}

	return f.(Field[K])
}
