// SPDX-License-Identifier: MIT

// Package dense - shared Gaussian elimination.
//
// Purpose:
//   - One forward-elimination kernel with partial pivoting serves Invert,
//     Solve and Determinant. What differs between them is what else must
//     follow the row operations, which is captured by a rowTracker:
//   - Invert tracks an identity matrix (Gauss–Jordan on [A | I]).
//   - Solve tracks a single right-hand side.
//   - Determinant tracks nothing; it only needs pivots and the swap count.
//
// Pivoting rule:
//   - In column k, the pivot is the row r ≥ k with the largest AbsReal
//     (|re|+|im|). Ties keep the lowest row index (strict > comparison).
//   - A pivot magnitude at or below the singular limit stops elimination with
//     ErrSingular.

package dense

import (
	"github.com/katalvlaran/fieldkit/scalar"
)

// rowTracker mirrors the row operations of forwardEliminate on a companion
// system.
type rowTracker[K scalar.Scalar] interface {
	// swap exchanges rows i and j.
	swap(i, j int)

	// eliminate applies row[target] -= factor * row[pivot].
	eliminate(factor K, target, pivot int)
}

// forwardEliminate reduces the n×n row-major buffer a to upper-triangular
// form in place.
// Implementation:
//   - Stage 1: for each column k, select the pivot row (largest AbsReal, lowest index on ties).
//   - Stage 2: reject pivots at or below singular (ErrSingular wrapped with k).
//   - Stage 3: swap rows if needed, then eliminate column k below the pivot,
//     replaying every operation on t.
//
// Returns:
//   - swaps: the number of row exchanges performed (for the determinant sign).
//   - err  : ErrSingular at the first failing column; a is then partially reduced.
//
// Complexity:
//   - Time O(n³) plus the tracker's cost, Space O(1).
func forwardEliminate[K scalar.Scalar](a []K, n int, singular float64, f scalar.Field[K], t rowTracker[K]) (int, error) {
	var (
		swaps      int
		k, r, j, p int
		pmax, v    float64
		piv, fac   K
		kb, rb     int
	)
	for k = 0; k < n; k++ {
		// Stage 1: partial pivoting.
		p = k
		pmax = f.AbsReal(a[k*n+k])
		for r = k + 1; r < n; r++ {
			if v = f.AbsReal(a[r*n+k]); v > pmax {
				p, pmax = r, v
			}
		}
		// Stage 2: singularity.
		if pmax <= singular {
			return swaps, singularAt(k)
		}
		// Stage 3: swap and eliminate.
		if p != k {
			swapRows(a, n, k, p)
			t.swap(k, p)
			swaps++
		}
		kb = k * n
		piv = a[kb+k]
		for r = k + 1; r < n; r++ {
			rb = r * n
			if a[rb+k] == 0 {
				continue
			}
			fac = a[rb+k] / piv
			a[rb+k] = 0
			for j = k + 1; j < n; j++ {
				a[rb+j] -= fac * a[kb+j]
			}
			t.eliminate(fac, r, k)
		}
	}

	return swaps, nil
}

// swapRows exchanges rows i and j of a row-major buffer with w columns.
func swapRows[K scalar.Scalar](a []K, w, i, j int) {
	ri, rj := a[i*w:(i+1)*w], a[j*w:(j+1)*w]
	for c := 0; c < w; c++ {
		ri[c], rj[c] = rj[c], ri[c]
	}
}

// ---------- trackers ----------

// noTracker ignores row operations (Determinant).
type noTracker[K scalar.Scalar] struct{}

func (noTracker[K]) swap(int, int) {}
func (noTracker[K]) eliminate(K, int, int) {}

// vectorTracker replays row operations on one right-hand side (Solve).
type vectorTracker[K scalar.Scalar] struct {
	b []K
}

func (t vectorTracker[K]) swap(i, j int) { t.b[i], t.b[j] = t.b[j], t.b[i] }

func (t vectorTracker[K]) eliminate(factor K, target, pivot int) {
	t.b[target] -= factor * t.b[pivot]
}

// matrixTracker replays row operations on an n×w companion matrix (Invert).
// buf is axpy scratch of length w, reused by every row operation.
type matrixTracker[K scalar.Scalar] struct {
	m   []K
	w   int
	buf []K
}

func (t matrixTracker[K]) swap(i, j int) { swapRows(t.m, t.w, i, j) }

func (t matrixTracker[K]) eliminate(factor K, target, pivot int) {
	ewAxpyBuf(t.m[target*t.w:(target+1)*t.w], -factor, t.m[pivot*t.w:(pivot+1)*t.w], t.buf)
}

// ---------- back substitution ----------

// backSubstituteVec solves U·x = b in place in b, U the upper triangle of a.
// Pivots were already checked by forwardEliminate.
func backSubstituteVec[K scalar.Scalar](a []K, n int, b []K) {
	var sum K
	var i, j int
	for i = n - 1; i >= 0; i-- {
		sum = b[i]
		for j = i + 1; j < n; j++ {
			sum -= a[i*n+j] * b[j]
		}
		b[i] = sum / a[i*n+i]
	}
}

// backSubstituteMat solves U·X = T in place in the n×w buffer t: the second
// (upward) half of Gauss–Jordan. Row i of t is divided by its pivot, then
// eliminated from every row above it. buf is axpy scratch of length w.
func backSubstituteMat[K scalar.Scalar](a []K, n int, t []K, w int, buf []K) {
	var piv K
	var i, r, j int
	for i = n - 1; i >= 0; i-- {
		piv = a[i*n+i]
		row := t[i*w : (i+1)*w]
		for j = 0; j < w; j++ {
			row[j] /= piv
		}
		for r = 0; r < i; r++ {
			if a[r*n+i] == 0 {
				continue
			}
			ewAxpyBuf(t[r*w:(r+1)*w], -a[r*n+i], row, buf)
		}
	}
}
