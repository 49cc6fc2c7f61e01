// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"github.com/katalvlaran/lsqfit/matrix"
)

// QR is one factorization A = Q·R. Q (m×n) has orthonormal columns under the
// conjugating inner product; R (n×n) is upper triangular with
// R[j][j] = ‖orthogonalized column j‖₂ > 0 and exact zeros below the diagonal.
// Q and R are only ever produced together by Factorize.
type QR struct {
	Q *matrix.Matrix
	R *matrix.Matrix
}

// Factorize computes the QR decomposition of a (m×n, n ≤ m for a well-posed
// least-squares problem; not enforced) with modified Gram-Schmidt.
//
// Errors:
//   - matrix.ErrNilMatrix when a is nil.
//   - ErrSingularInput when a does not have full column rank.
//
// Complexity: Time O(m·n²), Space O(m·n).
func Factorize(a *matrix.Matrix, opts ...Option) (*QR, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, lsqErrorf(opFactorize, err)
	}

	return factorize(a.Columns(), a.Rows(), gatherOptions(opts...))
}

// FactorizeColumns is Factorize over A given as its sequence of columns.
// The columns are copied; the caller's vectors are never modified.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (unequal column
// lengths), ErrSingularInput.
func FactorizeColumns(cols []*matrix.Vector, opts ...Option) (*QR, error) {
	m := 0
	for j, c := range cols {
		if err := matrix.ValidateVecNotNil(c); err != nil {
			return nil, lsqErrorf(opFactorize, fmt.Errorf("column %d: %w", j, err))
		}
		if j == 0 {
			m = c.Len()
		} else if c.Len() != m {
			return nil, lsqErrorf(opFactorize, fmt.Errorf("column %d has length %d, want %d: %w", j, c.Len(), m, matrix.ErrDimensionMismatch))
		}
	}
	v := make([]*matrix.Vector, len(cols))
	for j, c := range cols {
		v[j] = c.Clone()
	}

	return factorize(v, m, gatherOptions(opts...))
}

// factorize runs modified Gram-Schmidt over the working columns v, which it
// owns and deflates in place.
//
// Implementation:
//   - Stage 1: record ‖a_j‖ for the relative singularity threshold.
//   - Stage 2: for each j, R[j][j] = ‖v_j‖, Q_j = v_j / R[j][j], then for every
//     later column k: R[j][k] = Q_jᴴ·v_k and v_k -= R[j][k]·Q_j immediately.
//   - Stage 3: assemble Q from its columns.
func factorize(v []*matrix.Vector, m int, cfg Options) (*QR, error) {
	n := len(v)
	r, err := matrix.Zeros(n, n)
	if err != nil {
		return nil, lsqErrorf(opFactorize, err)
	}

	// Stage 1: original column norms
	orig := make([]float64, n)
	for j := range v {
		orig[j] = v[j].Norm2()
	}

	// Stage 2: orthogonalize
	q := make([]*matrix.Vector, n)
	var (
		j, k int
		rjj  float64
		rjk  complex128
	)
	for j = 0; j < n; j++ {
		rjj = v[j].Norm2()
		if rjj == 0 || rjj <= cfg.tol*orig[j] {
			return nil, lsqErrorf(opFactorize, fmt.Errorf("column %d: norm %g: %w", j, rjj, ErrSingularInput))
		}
		_ = r.Set(j, j, complex(rjj, 0))
		q[j] = v[j].Scale(complex(1/rjj, 0))

		for k = j + 1; k < n; k++ {
			rjk, err = q[j].Inner(v[k])
			if err != nil {
				return nil, lsqErrorf(opFactorize, err)
			}
			_ = r.Set(j, k, rjk)
			v[k], err = v[k].AddScaled(-rjk, q[j])
			if err != nil {
				return nil, lsqErrorf(opFactorize, err)
			}
		}
	}

	// Stage 3: Q as an m×n matrix
	if n == 0 {
		qm, err := matrix.Zeros(m, 0)
		if err != nil {
			return nil, lsqErrorf(opFactorize, err)
		}

		return &QR{Q: qm, R: r}, nil
	}
	qm, err := matrix.FromColumns(q...)
	if err != nil {
		return nil, lsqErrorf(opFactorize, err)
	}

	return &QR{Q: qm, R: r}, nil
}
