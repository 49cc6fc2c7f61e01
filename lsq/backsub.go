// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"github.com/katalvlaran/lsqfit/matrix"
)

// BackSubstitute solves R·x = b for upper-triangular R (n×n), reading R with
// the same (row, column) convention Factorize produces:
//
//	x[i] = (b[i] − Σ_{k>i} R[i][k]·x[k]) / R[i][i],  i = n−1 … 0
//
// Entries below the diagonal are never read. The result is a column vector.
//
// Errors:
//   - matrix.ErrNilMatrix (nil R or b).
//   - matrix.ErrDimensionMismatch (R not square, or b.Len() != n).
//   - ErrSingularMatrix (exact zero on the diagonal).
//
// Only an exact zero pivot is singular; pivot magnitudes are never compared
// with each other, so R may span any range of scales.
//
// Complexity: Time O(n²), Space O(n).
func BackSubstitute(r *matrix.Matrix, b *matrix.Vector) (*matrix.Vector, error) {
	if err := matrix.ValidateSquare(r); err != nil {
		return nil, lsqErrorf(opBackSub, err)
	}
	if err := matrix.ValidateVecNotNil(b); err != nil {
		return nil, lsqErrorf(opBackSub, err)
	}
	n := r.Rows()
	if b.Len() != n {
		return nil, lsqErrorf(opBackSub, fmt.Errorf("R is %dx%d, b has %d: %w", n, n, b.Len(), matrix.ErrDimensionMismatch))
	}

	bv := b.Values()
	x := make([]complex128, n)
	var (
		i, k          int
		acc, rii, rik complex128
	)
	for i = n - 1; i >= 0; i-- {
		rii, _ = r.At(i, i)
		if rii == 0 {
			return nil, lsqErrorf(opBackSub, fmt.Errorf("R[%d][%d]=%g: %w", i, i, rii, ErrSingularMatrix))
		}
		acc = bv[i]
		for k = i + 1; k < n; k++ {
			rik, _ = r.At(i, k)
			acc -= rik * x[k]
		}
		x[i] = acc / rii
	}

	return matrix.NewColumnVector(x, matrix.WithNoValidateNaNInf())
}
