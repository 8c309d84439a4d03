// SPDX-License-Identifier: MIT

package dense

import (
	"errors"

	"github.com/katalvlaran/fieldkit/scalar"
)

// Determinant returns det(A) for a square A.
// MAIN DESCRIPTION:
//   - 1×1, 2×2 and 3×3 use closed forms (cofactor expansion).
//   - Larger matrices run the shared forward elimination on a copy and
//     multiply the pivots, flipping the sign once per row swap.
//
// Behavior highlights:
//   - A pivot column at or below the singular limit yields exactly 0 with a
//     nil error: singularity is a value here, not a failure.
//   - A is not modified.
//
// Errors:
//   - ErrNonSquare only.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix[K, R, C]) Determinant(opts ...Option) (K, error) {
	var zero K
	n, c := m.Shape()
	if err := ValidateSquare(n, c); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	a := m.raw()

	switch n {
	case 1:
		return a[0], nil
	case 2:
		return a[0]*a[3] - a[1]*a[2], nil
	case 3:
		return a[0]*(a[4]*a[8]-a[5]*a[7]) -
			a[1]*(a[3]*a[8]-a[5]*a[6]) +
			a[2]*(a[3]*a[7]-a[4]*a[6]), nil
	}

	o := gatherOptions[K](opts...)
	work := cloneSlice(a)
	swaps, err := forwardEliminate(work, n, o.singular, scalar.For[K](), noTracker[K]{})
	if errors.Is(err, ErrSingular) {
		return zero, nil
	}

	det := K(1)
	for i := 0; i < n; i++ {
		det *= work[i*n+i]
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}
