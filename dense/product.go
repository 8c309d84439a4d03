// SPDX-License-Identifier: MIT

// Package dense - matrix–vector product family.
//
// Four accumulation modes (assign, add, subtract, scaled add) combine with
// three transposition modes (A, Aᵗ, Aᴴ) into eleven operations named after
// their BLAS-like mnemonics: MV, MTV, UMV, UMTV, UMHV, MMV, MMTV, MMHV,
// USMV, USMTV, USMHV.
//
// Typed methods take *Vector operands whose dimension types make shape
// errors impossible. Product is the slice-level entry point for plain []K
// and arrays (arr[:]); it validates lengths and reports ErrDimensionMismatch.
//
// Only the destination is written. When x and y share storage x is copied
// first; when y shares storage with A (a row view of A) the result is built
// in scratch and copied into y at the end.

package dense

import (
	"fmt"

	"github.com/katalvlaran/fieldkit/scalar"
)

// ProductKind selects one member of the matrix–vector product family.
type ProductKind int

// Product kinds. For real K, the H variants equal the T variants.
const (
	MV    ProductKind = iota + 1 // y  = A·x
	MTV                          // y  = Aᵗ·x
	UMV                          // y += A·x
	UMTV                         // y += Aᵗ·x
	UMHV                         // y += Aᴴ·x
	MMV                          // y -= A·x
	MMTV                         // y -= Aᵗ·x
	MMHV                         // y -= Aᴴ·x
	USMV                         // y += α·A·x
	USMTV                        // y += α·Aᵗ·x
	USMHV                        // y += α·Aᴴ·x
)

// transMode selects op(A).
type transMode uint8

const (
	transNone transMode = iota
	transT
	transH
)

// accumMode selects how op(A)·x lands in y.
type accumMode uint8

const (
	accAssign accumMode = iota
	accAdd
	accSub
	accScaled
)

type productPlan struct {
	trans transMode
	acc   accumMode
	name  string
}

var productPlans = map[ProductKind]productPlan{
	MV:    {transNone, accAssign, "MV"},
	MTV:   {transT, accAssign, "MTV"},
	UMV:   {transNone, accAdd, "UMV"},
	UMTV:  {transT, accAdd, "UMTV"},
	UMHV:  {transH, accAdd, "UMHV"},
	MMV:   {transNone, accSub, "MMV"},
	MMTV:  {transT, accSub, "MMTV"},
	MMHV:  {transH, accSub, "MMHV"},
	USMV:  {transNone, accScaled, "USMV"},
	USMTV: {transT, accScaled, "USMTV"},
	USMHV: {transH, accScaled, "USMHV"},
}

// String returns the mnemonic, or "ProductKind(n)" for undefined kinds.
func (k ProductKind) String() string {
	if sp, ok := productPlans[k]; ok {
		return sp.name
	}

	return fmt.Sprintf("ProductKind(%d)", int(k))
}

// Product applies the product selected by kind to slices.
// MAIN DESCRIPTION:
//   - Slice-level entry point for the whole family; alpha is used only by
//     the USM* kinds.
//
// Implementation:
//   - Stage 1: resolve kind (ErrUnknownProduct).
//   - Stage 2: validate len(x), len(y) against op(A) (ErrDimensionMismatch).
//   - Stage 3: run the shared kernel.
//
// Behavior highlights:
//   - On error y is untouched.
//   - x and y may alias; x is copied first in that case.
//   - y may be a row of A; A is read in full before y is written.
//
// Complexity:
//   - Time O(r*c), Space O(1) (O(len(x)) when x and y alias).
func (m *Matrix[K, R, C]) Product(kind ProductKind, alpha K, x, y []K) error {
	sp, ok := productPlans[kind]
	if !ok {
		return matrixErrorf(opProduct, fmt.Errorf("%v: %w", kind, ErrUnknownProduct))
	}
	r, c := m.Shape()
	nx, ny := c, r
	if sp.trans != transNone {
		nx, ny = r, c
	}
	if err := ValidateVecLen(x, nx); err != nil {
		return matrixErrorf(opProduct, fmt.Errorf("%s x: %w", sp.name, err))
	}
	if err := ValidateVecLen(y, ny); err != nil {
		return matrixErrorf(opProduct, fmt.Errorf("%s y: %w", sp.name, err))
	}
	m.product(sp, alpha, x, y)

	return nil
}

// product is the shared kernel; lengths are already valid.
func (m *Matrix[K, R, C]) product(sp productPlan, alpha K, x, y []K) {
	a := m.raw()
	if overlaps(x, y) {
		x = cloneSlice(x)
	}
	// y may be a row view of A itself: accumulate into a copy and write it
	// back once A is no longer read.
	if out := y; overlaps(y, a) {
		y = cloneSlice(y)
		defer copy(out, y)
	}
	r, c := m.Shape()

	if sp.trans == transNone {
		// Row-oriented: y[i] op= Σ_j a[i][j]·x[j].
		var sum K
		var i, j, base int
		for i = 0; i < r; i++ {
			sum = 0
			base = i * c
			for j = 0; j < c; j++ {
				sum += a[base+j] * x[j]
			}
			switch sp.acc {
			case accAssign:
				y[i] = sum
			case accAdd:
				y[i] += sum
			case accSub:
				y[i] -= sum
			case accScaled:
				y[i] += alpha * sum
			}
		}

		return
	}

	// Column-oriented over row-major storage: y[j] op= Σ_i op(a[i][j])·x[i],
	// accumulated row by row so the buffer is walked in order.
	if sp.acc == accAssign {
		ewFill(y, 0)
	}
	var conj func(K) K
	if sp.trans == transH {
		conj = scalar.For[K]().Conj
	}
	var coef, aij K
	var i, j, base int
	for i = 0; i < r; i++ {
		switch sp.acc {
		case accSub:
			coef = -x[i]
		case accScaled:
			coef = alpha * x[i]
		default:
			coef = x[i]
		}
		base = i * c
		for j = 0; j < c; j++ {
			aij = a[base+j]
			if conj != nil {
				aij = conj(aij)
			}
			y[j] += aij * coef
		}
	}
}

// MV computes y = A·x.
func (m *Matrix[K, R, C]) MV(x *Vector[K, C], y *Vector[K, R]) {
	m.product(productPlans[MV], 0, x.raw(), y.raw())
}

// MTV computes y = Aᵗ·x.
func (m *Matrix[K, R, C]) MTV(x *Vector[K, R], y *Vector[K, C]) {
	m.product(productPlans[MTV], 0, x.raw(), y.raw())
}

// UMV computes y += A·x.
func (m *Matrix[K, R, C]) UMV(x *Vector[K, C], y *Vector[K, R]) {
	m.product(productPlans[UMV], 0, x.raw(), y.raw())
}

// UMTV computes y += Aᵗ·x.
func (m *Matrix[K, R, C]) UMTV(x *Vector[K, R], y *Vector[K, C]) {
	m.product(productPlans[UMTV], 0, x.raw(), y.raw())
}

// UMHV computes y += Aᴴ·x.
func (m *Matrix[K, R, C]) UMHV(x *Vector[K, R], y *Vector[K, C]) {
	m.product(productPlans[UMHV], 0, x.raw(), y.raw())
}

// MMV computes y -= A·x.
func (m *Matrix[K, R, C]) MMV(x *Vector[K, C], y *Vector[K, R]) {
	m.product(productPlans[MMV], 0, x.raw(), y.raw())
}

// MMTV computes y -= Aᵗ·x.
func (m *Matrix[K, R, C]) MMTV(x *Vector[K, R], y *Vector[K, C]) {
	m.product(productPlans[MMTV], 0, x.raw(), y.raw())
}

// MMHV computes y -= Aᴴ·x.
func (m *Matrix[K, R, C]) MMHV(x *Vector[K, R], y *Vector[K, C]) {
	m.product(productPlans[MMHV], 0, x.raw(), y.raw())
}

// USMV computes y += alpha·A·x.
func (m *Matrix[K, R, C]) USMV(alpha K, x *Vector[K, C], y *Vector[K, R]) {
	m.product(productPlans[USMV], alpha, x.raw(), y.raw())
}

// USMTV computes y += alpha·Aᵗ·x.
func (m *Matrix[K, R, C]) USMTV(alpha K, x *Vector[K, R], y *Vector[K, C]) {
	m.product(productPlans[USMTV], alpha, x.raw(), y.raw())
}

// USMHV computes y += alpha·Aᴴ·x.
func (m *Matrix[K, R, C]) USMHV(alpha K, x *Vector[K, R], y *Vector[K, C]) {
	m.product(productPlans[USMHV], alpha, x.raw(), y.raw())
}
