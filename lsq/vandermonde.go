// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"github.com/katalvlaran/lsqfit/matrix"
)

// Vandermonde builds the terms×n design matrix V with V[j][i] = x[i]^j:
// row j holds every sample raised to the power j.
//
// No validation beyond terms ≥ 0 is performed. Empty samples give a terms×0
// matrix, which Factorize later rejects with ErrSingularInput.
//
// Errors: matrix.ErrBadShape when terms < 0.
// Complexity: Time O(n·terms), Space O(n·terms).
func Vandermonde(x []complex128, terms int) (*matrix.Matrix, error) {
	if terms < 0 {
		return nil, lsqErrorf(opVandermonde, fmt.Errorf("terms=%d: %w", terms, matrix.ErrBadShape))
	}
	v, err := matrix.Zeros(terms, len(x))
	if err != nil {
		return nil, lsqErrorf(opVandermonde, err)
	}
	var (
		i, j int
		p    complex128
	)
	for i = range x {
		p = 1 // x^0, also for x == 0
		for j = 0; j < terms; j++ {
			_ = v.Set(j, i, p) // indices are in range by construction
			p *= x[i]
		}
	}

	return v, nil
}

// VandermondeReal is Vandermonde over real samples.
func VandermondeReal(x []float64, terms int) (*matrix.Matrix, error) {
	return Vandermonde(matrix.Complexify(x), terms)
}
