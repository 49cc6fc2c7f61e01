// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operations minimal by delegating nil/shape/orientation checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecNotNil ensures the vector reference is non-nil.
func ValidateVecNotNil(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVecNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen ensures two vectors are non-nil and of equal length.
// Mismatched lengths are a contract violation, never broadcast.
func ValidateSameLen(a, b *Vector) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameLen", ErrNilMatrix)
	}
	if len(a.val) != len(b.val) {
		return validatorErrorf(fmt.Sprintf("ValidateSameLen(%d,%d)", len(a.val), len(b.val)), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.r, m.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible(%dx%d,%dx%d)", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulVec ensures x is a column vector whose length equals m.Cols().
// Orientation is checked before length.
//
// Errors: ErrNilMatrix, ErrOrientation, ErrDimensionMismatch.
func ValidateMulVec(m *Matrix, x *Vector) error {
	if m == nil || x == nil {
		return validatorErrorf("ValidateMulVec", ErrNilMatrix)
	}
	if x.orient != Column {
		return validatorErrorf("ValidateMulVec", ErrOrientation)
	}
	if len(x.val) != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateMulVec(%dx%d,%d)", m.r, m.c, len(x.val)), ErrDimensionMismatch)
	}

	return nil
}

// validateFinite rejects NaN/Inf in either component of z.
func validateFinite(z complex128) error {
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return ErrNaNInf
	}

	return nil
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
