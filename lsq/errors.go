// SPDX-License-Identifier: MIT

package lsq

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularInput is returned by Factorize when a column's norm vanishes
	// after orthogonalization: the input does not have full column rank.
	ErrSingularInput = errors.New("lsq: singular input (zero column norm)")

	// ErrSingularMatrix is returned by BackSubstitute when a diagonal entry of R is exactly zero.
	ErrSingularMatrix = errors.New("lsq: singular triangular matrix (zero diagonal)")
)

// Operation tags used in error wrappers.
const (
	opVandermonde = "Vandermonde"
	opFactorize   = "Factorize"
	opBackSub     = "BackSubstitute"
	opFit         = "Fit"
	opResidual    = "Residual"
)

// lsqErrorf wraps err with an operation tag, preserving it for errors.Is.
func lsqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
