// SPDX-License-Identifier: MIT

package dense

import (
	"github.com/katalvlaran/fieldkit/dim"
	"github.com/katalvlaran/fieldkit/scalar"
)

// RightMultiply computes A = A·B in place for a square B (C×C).
// Implementation:
//   - Stage 1: if B shares storage with A (A.RightMultiply(A)), work from a clone of B.
//   - Stage 2: for each row i, copy row i to scratch, then write
//     A[i][j] = Σ_k scratch[k]·B[k][j].
//
// Complexity:
//   - Time O(r*c²), Space O(c) scratch (+O(c²) when B aliases A).
func (m *Matrix[K, R, C]) RightMultiply(b *Matrix[K, C, C]) *Matrix[K, R, C] {
	a := m.raw()
	bd := b.raw()
	if overlaps(a, bd) {
		bd = cloneSlice(bd)
	}
	r, c := m.Shape()
	row := make([]K, c)
	var sum K
	var i, j, k, base int
	for i = 0; i < r; i++ {
		base = i * c
		copy(row, a[base:base+c])
		for j = 0; j < c; j++ {
			sum = 0
			for k = 0; k < c; k++ {
				sum += row[k] * bd[k*c+j]
			}
			a[base+j] = sum
		}
	}

	return m
}

// LeftMultiply computes A = B·A in place for a square B (R×R).
// Works column by column: column j of A is copied to scratch before it is
// overwritten with Σ_k B[i][k]·scratch[k].
// Complexity: Time O(r²*c), Space O(r).
func (m *Matrix[K, R, C]) LeftMultiply(b *Matrix[K, R, R]) *Matrix[K, R, C] {
	a := m.raw()
	bd := b.raw()
	if overlaps(a, bd) {
		bd = cloneSlice(bd)
	}
	r, c := m.Shape()
	col := make([]K, r)
	var sum K
	var i, j, k int
	for j = 0; j < c; j++ {
		for k = 0; k < r; k++ {
			col[k] = a[k*c+j]
		}
		for i = 0; i < r; i++ {
			sum = 0
			for k = 0; k < r; k++ {
				sum += bd[i*r+k] * col[k]
			}
			a[i*c+j] = sum
		}
	}

	return m
}

// RightMultiplyAny returns a new R×P matrix A·B. B need not be square; only
// its row count must match A's column count, which the type parameters enforce.
// Entry (i,j) is Σ_k A[i][k]·B[k][j] summed in increasing k.
// Complexity: Time O(r*c*p), Space O(r*p).
func RightMultiplyAny[K scalar.Scalar, R, C, P dim.Dim](a *Matrix[K, R, C], b *Matrix[K, C, P]) *Matrix[K, R, P] {
	r, c := a.Shape()
	p := lengthOf[P]()
	ad, bd := a.raw(), b.raw()
	out := NewMatrix[K, R, P]()
	od := out.data
	var sum K
	var i, j, k int
	for i = 0; i < r; i++ {
		for j = 0; j < p; j++ {
			sum = 0
			for k = 0; k < c; k++ {
				sum += ad[i*c+k] * bd[k*p+j]
			}
			od[i*p+j] = sum
		}
	}

	return out
}

// LeftMultiplyAny returns a new P×C matrix B·A, where B is P×R.
// It is RightMultiplyAny with the operands swapped.
func LeftMultiplyAny[K scalar.Scalar, R, C, P dim.Dim](a *Matrix[K, R, C], b *Matrix[K, P, R]) *Matrix[K, P, C] {
	return RightMultiplyAny(b, a)
}
