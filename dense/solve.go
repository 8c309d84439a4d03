// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"

	"github.com/katalvlaran/fieldkit/scalar"
)

// Solve finds x with A·x = b for a square A. A and b are not modified; x may
// be b itself.
// See SolveSlice for the algorithm and errors.
func (m *Matrix[K, R, C]) Solve(x *Vector[K, C], b *Vector[K, R], opts ...Option) error {
	return m.SolveSlice(x.raw(), b.raw(), opts...)
}

// SolveSlice is Solve over plain slices.
// MAIN DESCRIPTION:
//   - Direct solve by forward elimination with partial pivoting on a working
//     copy of A, tracking a single right-hand side, then back substitution.
//     Cheaper than forming A⁻¹ for one system.
//
// Implementation:
//   - Stage 1: ValidateSquare, then len(x) == len(b) == n.
//   - Stage 2: 1×1 and 2×2 use closed forms guarded by the absolute limit.
//   - Stage 3: eliminate a copy of A and a copy of b; back-substitute.
//   - Stage 4: copy the solution into x.
//
// Behavior highlights:
//   - On error x is untouched.
//   - Agrees with Inverse(A)·b within rounding.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix[K, R, C]) SolveSlice(x, b []K, opts ...Option) error {
	n, c := m.Shape()
	if err := ValidateSquare(n, c); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(x, n); err != nil {
		return matrixErrorf(opSolve, fmt.Errorf("x: %w", err))
	}
	if err := ValidateVecLen(b, n); err != nil {
		return matrixErrorf(opSolve, fmt.Errorf("b: %w", err))
	}
	o := gatherOptions[K](opts...)
	f := scalar.For[K]()
	a := m.raw()

	switch n {
	case 1:
		if f.AbsReal(a[0]) <= o.absolute {
			return matrixErrorf(opSolve, ErrSingular)
		}
		x[0] = b[0] / a[0]

		return nil
	case 2:
		det := a[0]*a[3] - a[1]*a[2]
		if f.AbsReal(det) <= o.absolute {
			return matrixErrorf(opSolve, ErrSingular)
		}
		x0 := (a[3]*b[0] - a[1]*b[1]) / det
		x1 := (a[0]*b[1] - a[2]*b[0]) / det
		x[0], x[1] = x0, x1

		return nil
	}

	work := cloneSlice(a)
	rhs := cloneSlice(b)
	if _, err := forwardEliminate(work, n, o.singular, f, vectorTracker[K]{b: rhs}); err != nil {
		return matrixErrorf(opSolve, err)
	}
	backSubstituteVec(work, n, rhs)
	copy(x, rhs)

	return nil
}
