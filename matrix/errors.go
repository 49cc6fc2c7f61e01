// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with fmt.Errorf("<Op>: %w", ErrX)
// at the outer boundary; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> orientation -> dimension mismatch -> index.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfBounds indicates that an index (row, column or element) is
	// outside valid bounds. Public indexers MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// e.g. vector Add of different lengths, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOrientation signals that a vector's row/column orientation is
	// incompatible with the requested product (MulVec needs a column vector).
	ErrOrientation = errors.New("matrix: incompatible vector orientation")

	// ErrNilMatrix indicates that a nil *Matrix or *Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrNaNInf signals a NaN or ±Inf component was encountered while the
	// numeric policy requires finite values (literal ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotReal is returned when a complex matrix with a non-zero imaginary
	// part is exported to a real-valued representation (gonum interop).
	ErrNotReal = errors.New("matrix: matrix has non-zero imaginary parts")

	// ErrUnknownOperand marks an Operand implementation the dispatcher does not know.
	ErrUnknownOperand = errors.New("matrix: unknown operand kind")
)
