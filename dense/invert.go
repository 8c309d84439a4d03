// SPDX-License-Identifier: MIT

package dense

import (
	"github.com/katalvlaran/fieldkit/dim"
	"github.com/katalvlaran/fieldkit/scalar"
)

// Invert replaces A with A⁻¹.
// MAIN DESCRIPTION:
//   - In-place inversion of a square matrix by Gauss–Jordan elimination with
//     partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare (ErrNonSquare); resolve the precision policy.
//   - Stage 2: 1×1 and 2×2 use closed forms guarded by the absolute limit.
//   - Stage 3: forward-eliminate a working copy of A while replaying every row
//     operation on an identity matrix.
//   - Stage 4: back-substitute upward on the tracked matrix and copy the
//     result into A.
//
// Behavior highlights:
//   - On error A is left unchanged; all work happens on copies.
//   - A pivot at or below the singular limit returns ErrSingular; no result
//     is fabricated.
//
// Errors:
//   - ErrNonSquare, ErrSingular (wrapped with the failing pivot column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix[K, R, C]) Invert(opts ...Option) error {
	n, c := m.Shape()
	if err := ValidateSquare(n, c); err != nil {
		return matrixErrorf(opInvert, err)
	}
	o := gatherOptions[K](opts...)
	f := scalar.For[K]()
	a := m.raw()

	switch n {
	case 1:
		if f.AbsReal(a[0]) <= o.absolute {
			return matrixErrorf(opInvert, ErrSingular)
		}
		a[0] = 1 / a[0]

		return nil
	case 2:
		det := a[0]*a[3] - a[1]*a[2]
		if f.AbsReal(det) <= o.absolute {
			return matrixErrorf(opInvert, ErrSingular)
		}
		a[0], a[3] = a[3]/det, a[0]/det
		a[1], a[2] = -a[1]/det, -a[2]/det

		return nil
	}

	work := cloneSlice(a)
	inv := make([]K, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}
	buf := make([]K, n)
	if _, err := forwardEliminate(work, n, o.singular, f, matrixTracker[K]{m: inv, w: n, buf: buf}); err != nil {
		return matrixErrorf(opInvert, err)
	}
	backSubstituteMat(work, n, inv, n, buf)
	copy(a, inv)

	return nil
}

// Inverse returns A⁻¹ as a new matrix and leaves A untouched.
// Errors are those of Invert.
func Inverse[K scalar.Scalar, N dim.Dim](m *Matrix[K, N, N], opts ...Option) (*Matrix[K, N, N], error) {
	out := m.Clone()
	if err := out.Invert(opts...); err != nil {
		return nil, err
	}

	return out, nil
}
