// SPDX-License-Identifier: MIT

// Package dense - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Expose each row as an addressable *Vector[K, C] window into that buffer,
//     so row-level code reuses the whole Vector surface.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) zero-init; At/Set/Row: O(1); Col/Clone: O(r) / O(r*c).

package dense

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/fieldkit/dim"
	"github.com/katalvlaran/fieldkit/scalar"
)

const _fmtRowEnd = "\n"

// Matrix is a dense R×C matrix of K.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - rows[i] is a Vector whose storage is data[i*c : (i+1)*c].
//
// The zero value is a valid zero matrix. Plain assignment shares storage;
// use Clone or CopyFrom for an independent copy.
type Matrix[K scalar.Scalar, R, C dim.Dim] struct {
	data []K
	rows []Vector[K, C]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64, dim.D2, dim.D3])(nil)

// NewMatrix returns a zero R×C matrix.
// Complexity: O(r*c).
func NewMatrix[K scalar.Scalar, R, C dim.Dim]() *Matrix[K, R, C] {
	m := &Matrix[K, R, C]{}
	m.raw()

	return m
}

// FillMatrix returns a matrix with x broadcast to every element.
func FillMatrix[K scalar.Scalar, R, C dim.Dim](x K) *Matrix[K, R, C] {
	m := NewMatrix[K, R, C]()
	ewFill(m.data, x)

	return m
}

// Identity returns the N×N identity matrix.
func Identity[K scalar.Scalar, N dim.Dim]() *Matrix[K, N, N] {
	m := NewMatrix[K, N, N]()
	n := lengthOf[N]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// MatrixFromRows copies a row-of-rows literal into a new matrix.
// MAIN DESCRIPTION:
//   - Construction from raw element arrays, checked against the static shape.
//
// Implementation:
//   - Stage 1: ValidateRows (nil → ErrNilMatrix, shape → ErrDimensionMismatch).
//   - Stage 2: copy row by row into the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MatrixFromRows[K scalar.Scalar, R, C dim.Dim](rows [][]K) (*Matrix[K, R, C], error) {
	r, c := lengthOf[R](), lengthOf[C]()
	if err := ValidateRows(rows, r, c); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	m := NewMatrix[K, R, C]()
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// MatrixFromSlice copies a flat row-major slice of length R*C into a new matrix.
// Returns ErrDimensionMismatch on a length mismatch.
func MatrixFromSlice[K scalar.Scalar, R, C dim.Dim](flat []K) (*Matrix[K, R, C], error) {
	r, c := lengthOf[R](), lengthOf[C]()
	if err := ValidateVecLen(flat, r*c); err != nil {
		return nil, matrixErrorf(opFromSlice, err)
	}
	m := NewMatrix[K, R, C]()
	copy(m.data, flat)

	return m, nil
}

// raw returns the flat buffer, allocating it and binding row views on first use.
func (m *Matrix[K, R, C]) raw() []K {
	if m.data == nil {
		r, c := lengthOf[R](), lengthOf[C]()
		m.data = make([]K, r*c)
		m.bindRows(r, c)
	}

	return m.data
}

// bindRows points every row Vector at its window of data.
// The three-index slice caps each row so it can never grow into the next one.
func (m *Matrix[K, R, C]) bindRows(r, c int) {
	m.rows = make([]Vector[K, C], r)
	for i := 0; i < r; i++ {
		m.rows[i].data = m.data[i*c : (i+1)*c : (i+1)*c]
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[K, R, C]) Rows() int { return lengthOf[R]() }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[K, R, C]) Cols() int { return lengthOf[C]() }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[K, R, C]) Shape() (rows, cols int) { return lengthOf[R](), lengthOf[C]() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix[K, R, C]) indexOf(row, col int) (int, error) {
	r, c := m.Shape()
	if row < 0 || row >= r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= c {
		return 0, ErrOutOfRange
	}

	return row*c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[K, R, C]) At(row, col int) (K, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero K
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.raw()[off], nil
}

// Set stores x at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[K, R, C]) Set(row, col int, x K) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.raw()[off] = x

	return nil
}

// Row returns row i as an addressable view: writes through the returned
// Vector (Set, Add, Cursor.Set, ...) modify the matrix.
// Returns ErrOutOfRange for a bad index.
func (m *Matrix[K, R, C]) Row(i int) (*Vector[K, C], error) {
	m.raw()
	if i < 0 || i >= len(m.rows) {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return &m.rows[i], nil
}

// Col returns a copy of column j.
// Returns ErrOutOfRange for a bad index.
func (m *Matrix[K, R, C]) Col(j int) (*Vector[K, R], error) {
	r, c := m.Shape()
	if j < 0 || j >= c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	d := m.raw()
	out := NewVector[K, R]()
	for i := 0; i < r; i++ {
		out.data[i] = d[i*c+j]
	}

	return out, nil
}

// Scalar returns the single element of a 1×1 matrix.
// Returns ErrBadShape for any other shape.
func (m *Matrix[K, R, C]) Scalar() (K, error) {
	r, c := m.Shape()
	if r != 1 || c != 1 {
		var zero K
		return zero, fmt.Errorf("Matrix.%s: %dx%d: %w", ctxScalar, r, c, ErrBadShape)
	}

	return m.raw()[0], nil
}

// Clone returns a deep copy with its own buffer and row views. It is the
// copy constructor: plain assignment shares storage, Clone never does.
// Complexity: O(r*c).
func (m *Matrix[K, R, C]) Clone() *Matrix[K, R, C] {
	out := &Matrix[K, R, C]{data: cloneSlice(m.raw())}
	out.bindRows(m.Shape())

	return out
}

// CopyFrom overwrites m with the elements of src and returns m.
func (m *Matrix[K, R, C]) CopyFrom(src *Matrix[K, R, C]) *Matrix[K, R, C] {
	copy(m.raw(), src.raw())

	return m
}

// Fill broadcasts x to every element and returns m.
func (m *Matrix[K, R, C]) Fill(x K) *Matrix[K, R, C] {
	ewFill(m.raw(), x)

	return m
}

// Add computes m += b and returns m.
func (m *Matrix[K, R, C]) Add(b *Matrix[K, R, C]) *Matrix[K, R, C] {
	ewAdd(m.raw(), b.raw())

	return m
}

// Sub computes m -= b and returns m.
func (m *Matrix[K, R, C]) Sub(b *Matrix[K, R, C]) *Matrix[K, R, C] {
	ewSub(m.raw(), b.raw())

	return m
}

// Scale computes m *= alpha and returns m.
func (m *Matrix[K, R, C]) Scale(alpha K) *Matrix[K, R, C] {
	ewScale(m.raw(), alpha)

	return m
}

// DivScalar computes m /= x.
// Returns ErrDivByZero and leaves m untouched when x == 0.
func (m *Matrix[K, R, C]) DivScalar(x K) error {
	var zero K
	if x == zero {
		return fmt.Errorf("Matrix.%s: %w", ctxDiv, ErrDivByZero)
	}
	ewDiv(m.raw(), x)

	return nil
}

// Axpy computes m += alpha*b and returns m. b may be m itself.
func (m *Matrix[K, R, C]) Axpy(alpha K, b *Matrix[K, R, C]) *Matrix[K, R, C] {
	ewAxpy(m.raw(), alpha, b.raw())

	return m
}

// Equal reports exact element-wise equality (no tolerance).
func (m *Matrix[K, R, C]) Equal(b *Matrix[K, R, C]) bool {
	return ewEqual(m.raw(), b.raw())
}

// AllRows yields (row index, row view) pairs top to bottom. Each row's own
// All/Backward/Begin then traverses its columns with their index.
func (m *Matrix[K, R, C]) AllRows() iter.Seq2[int, *Vector[K, C]] {
	return func(yield func(int, *Vector[K, C]) bool) {
		m.raw()
		for i := 0; i < len(m.rows); i++ {
			if !yield(i, &m.rows[i]) {
				return
			}
		}
	}
}

// BackwardRows yields (row index, row view) pairs bottom to top.
func (m *Matrix[K, R, C]) BackwardRows() iter.Seq2[int, *Vector[K, C]] {
	return func(yield func(int, *Vector[K, C]) bool) {
		m.raw()
		for i := len(m.rows) - 1; i >= 0; i-- {
			if !yield(i, &m.rows[i]) {
				return
			}
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[K, R, C]) Do(f func(i, j int, v K) bool) {
	d := m.raw()
	r, c := m.Shape()
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if !f(i, j, d[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
// Complexity: O(r*c).
func (m *Matrix[K, R, C]) Apply(f func(i, j int, v K) K) *Matrix[K, R, C] {
	d := m.raw()
	r, c := m.Shape()
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			d[base+j] = f(i, j, d[base+j])
		}
	}

	return m
}

// String renders one bracketed row per line.
func (m *Matrix[K, R, C]) String() string {
	m.raw()
	var b strings.Builder
	for i := range m.rows {
		writeRow(&b, m.rows[i].data)
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

// Transpose returns a new C×R matrix with rows and columns swapped.
// Complexity: O(r*c).
func Transpose[K scalar.Scalar, R, C dim.Dim](m *Matrix[K, R, C]) *Matrix[K, C, R] {
	r, c := m.Shape()
	src := m.raw()
	out := NewMatrix[K, C, R]()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = src[i*c+j]
		}
	}

	return out
}
