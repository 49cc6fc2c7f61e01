// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"github.com/katalvlaran/lsqfit/matrix"
)

// Fit returns the coefficients c (length terms, c[i] ↔ xⁱ) minimizing
// ‖Vᵀc − y‖₂, where V = Vandermonde(x, terms).
//
// Implementation:
//   - Stage 1: validate len(x) == len(y); build V and A = Vᵀ (n×terms).
//   - Stage 2: (Q, R) = Factorize(A).
//   - Stage 3: b = Qᴴ·y; c = BackSubstitute(R, b).
//
// Errors from Vandermonde, Factorize and BackSubstitute are returned
// unchanged, so errors.Is(err, ErrSingularInput) reports rank deficiency.
//
// Errors: matrix.ErrDimensionMismatch (len(x) != len(y)), matrix.ErrNaNInf
// (non-finite y), matrix.ErrBadShape (terms < 0), ErrSingularInput, ErrSingularMatrix.
// Complexity: Time O(n·terms²), Space O(n·terms).
func Fit(x, y []complex128, terms int, opts ...Option) (*matrix.Vector, error) {
	// Stage 1: design matrix
	if len(x) != len(y) {
		return nil, lsqErrorf(opFit, fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(x), len(y), matrix.ErrDimensionMismatch))
	}
	yv, err := matrix.NewColumnVector(y)
	if err != nil {
		return nil, lsqErrorf(opFit, err)
	}
	v, err := Vandermonde(x, terms)
	if err != nil {
		return nil, err
	}
	a, err := matrix.Transpose(v)
	if err != nil {
		return nil, err
	}

	// Stage 2: factorize
	qr, err := Factorize(a, opts...)
	if err != nil {
		return nil, err
	}

	// Stage 3: project and solve
	qh, err := matrix.ConjTranspose(qr.Q)
	if err != nil {
		return nil, err
	}
	b, err := matrix.MulVec(qh, yv)
	if err != nil {
		return nil, err
	}

	return BackSubstitute(qr.R, b)
}

// FitReal is Fit over real samples. The coefficients stay complex; for real
// input their imaginary parts are zero (RealValues extracts them).
func FitReal(x, y []float64, terms int, opts ...Option) (*matrix.Vector, error) {
	return Fit(matrix.Complexify(x), matrix.Complexify(y), terms, opts...)
}

// Residual returns ‖Vᵀc − y‖₂ for coefficients c over the samples (x, y).
// A Row-oriented c is accepted and treated as a column.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
func Residual(coeffs *matrix.Vector, x, y []complex128) (float64, error) {
	if err := matrix.ValidateVecNotNil(coeffs); err != nil {
		return 0, lsqErrorf(opResidual, err)
	}
	if len(x) != len(y) {
		return 0, lsqErrorf(opResidual, fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(x), len(y), matrix.ErrDimensionMismatch))
	}
	c := coeffs
	if c.Orientation() == matrix.Row {
		c = c.Transpose()
	}
	yv, err := matrix.NewColumnVector(y)
	if err != nil {
		return 0, lsqErrorf(opResidual, err)
	}
	v, err := Vandermonde(x, c.Len())
	if err != nil {
		return 0, lsqErrorf(opResidual, err)
	}
	a, err := matrix.Transpose(v)
	if err != nil {
		return 0, lsqErrorf(opResidual, err)
	}
	pred, err := matrix.MulVec(a, c)
	if err != nil {
		return 0, lsqErrorf(opResidual, err)
	}
	diff, err := pred.Sub(yv)
	if err != nil {
		return 0, lsqErrorf(opResidual, err)
	}

	return diff.Norm2(), nil
}
