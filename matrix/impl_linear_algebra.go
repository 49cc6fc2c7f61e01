// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels: elementwise
// addition and subtraction, matrix-matrix and matrix-vector products, scalar
// scaling, transpose, conjugate and Hermitian transpose. All functions perform
// strict fail-fast validation, never mutate their operands and return clear
// errors on dimension mismatches.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opMulVec        = "MulVec"
	opScale         = "Scale"
	opTranspose     = "Transpose"
	opConjugate     = "Conjugate"
	opConjTranspose = "ConjTranspose"
	opMultiply      = "Multiply"
	opAllClose      = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Matrix is allocated.
//
// Determinism: single flat slice walk 0..(r*c−1).
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, sign complex128, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Matrix{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: i→k→j loop so the inner loop walks both b and out row-major.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.r, a.c, b.c
	out := &Matrix{r: r, c: c, data: make([]complex128, r*c)}
	var (
		i, k, j int
		aik     complex128
		outBase int
		bBase   int
	)
	for i = 0; i < r; i++ {
		outBase = i * c
		for k = 0; k < n; k++ {
			aik = a.data[i*n+k]
			if aik == 0 {
				continue
			}
			bBase = k * c
			for j = 0; j < c; j++ {
				out.data[outBase+j] += aik * b.data[bBase+j]
			}
		}
	}

	return out, nil
}

// MulVec computes y = m·x for a column vector x; y is a column vector.
//
// Contract: m, x non-nil; x.Orientation() == Column; x.Len() == m.Cols().
// Errors: ErrNilMatrix, ErrOrientation, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func MulVec(m *Matrix, x *Vector) (*Vector, error) {
	if err := ValidateMulVec(m, x); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]complex128, m.r)
	var (
		i, j, base int
		acc        complex128
	)
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x.val[j]
		}
		y[i] = acc
	}

	return &Vector{val: y, orient: Column}, nil
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix.
func Scale(m *Matrix, alpha complex128) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Matrix{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, z := range m.data {
		out.data[i] = alpha * z
	}

	return out, nil
}

// transposeWith builds the c×r transpose, applying f to each entry.
func transposeWith(m *Matrix, f func(complex128) complex128) *Matrix {
	out := &Matrix{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = f(m.data[i*m.c+j])
		}
	}

	return out
}

func identity(z complex128) complex128 { return z }

// Transpose returns mᵀ.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeWith(m, identity), nil
}

// Conjugate returns the elementwise complex conjugate of m (identity on real entries).
func Conjugate(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjugate, err)
	}
	out := &Matrix{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, z := range m.data {
		out.data[i] = cmplx.Conj(z)
	}

	return out, nil
}

// ConjTranspose returns the Hermitian transpose mᴴ = conj(m)ᵀ.
func ConjTranspose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}

	return transposeWith(m, cmplx.Conj), nil
}

// Multiply resolves m·rhs over the Operand union:
//   - Scalar  → *Matrix (Scale)
//   - *Vector → *Vector (MulVec; rhs must be a column vector)
//   - *Matrix → *Matrix (Mul)
//
// Errors: whatever the resolved kernel returns, or ErrUnknownOperand.
func Multiply(m *Matrix, rhs Operand) (Operand, error) {
	var (
		res Operand
		err error
	)
	switch x := rhs.(type) {
	case Scalar:
		var out *Matrix
		if out, err = Scale(m, complex128(x)); err == nil {
			res = out
		}
	case *Vector:
		var out *Vector
		if out, err = MulVec(m, x); err == nil {
			res = out
		}
	case *Matrix:
		var out *Matrix
		if out, err = Mul(m, x); err == nil {
			res = out
		}
	default:
		err = matrixErrorf(opMultiply, fmt.Errorf("%T: %w", rhs, ErrUnknownOperand))
	}
	if err != nil {
		return nil, err // keep the interface nil on failure
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes,
// using complex magnitudes. Returns (true,nil) if all elements satisfy the relation.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range a.data {
		if cmplx.Abs(a.data[idx]-b.data[idx]) > atol+rtol*cmplx.Abs(b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}
