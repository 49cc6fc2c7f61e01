// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by vectors, matrices and the product
// dispatcher. Storage lives in vector.go and dense.go; errors and options live
// in dedicated files (errors.go, options.go).
package matrix

// Orientation tags a Vector as a column (vertical) or row (horizontal) vector.
// It affects only how the vector composes with a matrix, never stored values.
type Orientation int

const (
	// Column is the default orientation; MulVec requires it.
	Column Orientation = iota

	// Row is the orientation produced by Matrix.Row and by transposing a column.
	Row
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Row {
		return "row"
	}

	return "column"
}

// flip returns the opposite orientation.
func (o Orientation) flip() Orientation {
	if o == Row {
		return Column
	}

	return Row
}

// Operand is the closed set of right-hand sides accepted by Multiply:
// Scalar, *Vector and *Matrix. The unexported marker keeps the set closed,
// so Multiply resolves every product with a single type switch.
type Operand interface {
	operand()
}

// Scalar is a complex scalar operand. Real values use a zero imaginary part.
type Scalar complex128

func (Scalar) operand()  {}
func (*Vector) operand() {}
func (*Matrix) operand() {}

// Compile-time assertions for the Operand union.
var (
	_ Operand = Scalar(0)
	_ Operand = (*Vector)(nil)
	_ Operand = (*Matrix)(nil)
)
