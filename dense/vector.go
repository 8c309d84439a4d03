// SPDX-License-Identifier: MIT

// Package dense - Vector: fixed-length dense storage with safe accessors.
//
// Purpose:
//   - Hold exactly dim.Len[N]() elements of K; the length never changes.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Provide in-place arithmetic that returns the receiver for chaining.
//
// Notes:
//   - The zero value is a valid zero vector; storage is allocated on first use.
//   - A Vector owns its storage by reference. Plain assignment (w := *v) shares
//     it; use Clone or CopyFrom for an independent copy.
//   - Matrix rows are Vectors whose storage is a window of the matrix buffer.

package dense

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/fieldkit/dim"
	"github.com/katalvlaran/fieldkit/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a dense vector of N elements of K.
type Vector[K scalar.Scalar, N dim.Dim] struct {
	data []K // len == dim.Len[N](); nil until first use
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64, dim.D3])(nil)

// NewVector returns a zero vector.
// Complexity: O(n).
func NewVector[K scalar.Scalar, N dim.Dim]() *Vector[K, N] {
	v := &Vector[K, N]{}
	v.raw()

	return v
}

// FillVector returns a vector with x broadcast to every element.
// Complexity: O(n).
func FillVector[K scalar.Scalar, N dim.Dim](x K) *Vector[K, N] {
	v := NewVector[K, N]()
	ewFill(v.data, x)

	return v
}

// VectorFromSlice copies xs into a new vector.
// Returns ErrDimensionMismatch when len(xs) != dim.Len[N]().
// Complexity: O(n).
func VectorFromSlice[K scalar.Scalar, N dim.Dim](xs []K) (*Vector[K, N], error) {
	if err := ValidateVecLen(xs, lengthOf[N]()); err != nil {
		return nil, matrixErrorf(opVecFrom, err)
	}
	v := NewVector[K, N]()
	copy(v.data, xs)

	return v, nil
}

// raw returns the backing storage, allocating it on first use.
func (v *Vector[K, N]) raw() []K {
	if v.data == nil {
		v.data = make([]K, lengthOf[N]())
	}

	return v.data
}

// Len returns the number of elements. Complexity: O(1).
func (v *Vector[K, N]) Len() int { return lengthOf[N]() }

// At returns element i or ErrOutOfRange.
func (v *Vector[K, N]) At(i int) (K, error) {
	d := v.raw()
	if i < 0 || i >= len(d) {
		var zero K
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return d[i], nil
}

// Set stores x at i or returns ErrOutOfRange.
func (v *Vector[K, N]) Set(i int, x K) error {
	d := v.raw()
	if i < 0 || i >= len(d) {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	d[i] = x

	return nil
}

// Slice returns a copy of the elements.
func (v *Vector[K, N]) Slice() []K { return cloneSlice(v.raw()) }

// Scalar returns the single element of a length-1 vector.
// Returns ErrBadShape for any other length.
func (v *Vector[K, N]) Scalar() (K, error) {
	d := v.raw()
	if len(d) != 1 {
		var zero K
		return zero, fmt.Errorf("Vector.%s: len %d: %w", ctxScalar, len(d), ErrBadShape)
	}

	return d[0], nil
}

// Clone returns a deep copy. It is the copy constructor: plain assignment
// (w := *v) shares storage, Clone never does.
// Complexity: O(n).
func (v *Vector[K, N]) Clone() *Vector[K, N] {
	return &Vector[K, N]{data: cloneSlice(v.raw())}
}

// CopyFrom overwrites v with the elements of src and returns v.
// Storage identity is preserved, so copying into a matrix row writes through.
func (v *Vector[K, N]) CopyFrom(src *Vector[K, N]) *Vector[K, N] {
	copy(v.raw(), src.raw())

	return v
}

// Fill broadcasts x to every element and returns v.
func (v *Vector[K, N]) Fill(x K) *Vector[K, N] {
	ewFill(v.raw(), x)

	return v
}

// Add computes v += w and returns v.
func (v *Vector[K, N]) Add(w *Vector[K, N]) *Vector[K, N] {
	ewAdd(v.raw(), w.raw())

	return v
}

// Sub computes v -= w and returns v.
func (v *Vector[K, N]) Sub(w *Vector[K, N]) *Vector[K, N] {
	ewSub(v.raw(), w.raw())

	return v
}

// Scale computes v *= alpha and returns v.
func (v *Vector[K, N]) Scale(alpha K) *Vector[K, N] {
	ewScale(v.raw(), alpha)

	return v
}

// AddScalar adds x to every element and returns v.
func (v *Vector[K, N]) AddScalar(x K) *Vector[K, N] {
	ewShift(v.raw(), x)

	return v
}

// SubScalar subtracts x from every element and returns v.
func (v *Vector[K, N]) SubScalar(x K) *Vector[K, N] {
	ewShift(v.raw(), -x)

	return v
}

// DivScalar computes v /= x.
// Returns ErrDivByZero and leaves v untouched when x == 0.
func (v *Vector[K, N]) DivScalar(x K) error {
	var zero K
	if x == zero {
		return fmt.Errorf("Vector.%s: %w", ctxDiv, ErrDivByZero)
	}
	ewDiv(v.raw(), x)

	return nil
}

// Axpy computes v += alpha*x and returns v. x may be v itself.
func (v *Vector[K, N]) Axpy(alpha K, x *Vector[K, N]) *Vector[K, N] {
	ewAxpy(v.raw(), alpha, x.raw())

	return v
}

// Dot returns Σ conj(vᵢ)·wᵢ. For real K this is the ordinary dot product.
// Complexity: O(n).
func (v *Vector[K, N]) Dot(w *Vector[K, N]) K {
	f := scalar.For[K]()
	a, b := v.raw(), w.raw()
	var sum K
	for i := range a {
		sum += f.Conj(a[i]) * b[i]
	}

	return sum
}

// Equal reports exact element-wise equality (no tolerance).
func (v *Vector[K, N]) Equal(w *Vector[K, N]) bool {
	return ewEqual(v.raw(), w.raw())
}

// All yields (index, value) pairs in increasing index order.
func (v *Vector[K, N]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		d := v.raw()
		for i := 0; i < len(d); i++ {
			if !yield(i, d[i]) {
				return
			}
		}
	}
}

// Backward yields (index, value) pairs in decreasing index order.
func (v *Vector[K, N]) Backward() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		d := v.raw()
		for i := len(d) - 1; i >= 0; i-- {
			if !yield(i, d[i]) {
				return
			}
		}
	}
}

// Begin returns a cursor on the first element.
func (v *Vector[K, N]) Begin() *Cursor[K] { return &Cursor[K]{data: v.raw(), pos: 0} }

// RBegin returns a cursor on the last element, for reverse traversal with Prev.
func (v *Vector[K, N]) RBegin() *Cursor[K] {
	d := v.raw()

	return &Cursor[K]{data: d, pos: len(d) - 1}
}

// Find returns a cursor on element i. For an index outside [0, Len) the
// cursor is not Valid (the end position).
func (v *Vector[K, N]) Find(i int) *Cursor[K] {
	d := v.raw()
	if i < 0 || i >= len(d) {
		return &Cursor[K]{data: d, pos: len(d)}
	}

	return &Cursor[K]{data: d, pos: i}
}

// String renders the vector as "[x0, x1, ...]".
func (v *Vector[K, N]) String() string {
	var b strings.Builder
	writeRow(&b, v.raw())

	return b.String()
}

// writeRow appends "[a, b, c]" to b.
func writeRow[K scalar.Scalar](b *strings.Builder, row []K) {
	b.WriteString(_fmtOpen)
	for j := range row {
		fmt.Fprintf(b, "%g", row[j])
		if j+1 < len(row) {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString(_fmtClose)
}
