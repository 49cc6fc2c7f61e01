// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum exports a real-valued matrix as a gonum *mat.Dense.
// gonum's Dense rejects empty shapes, so zero-sized matrices fail with ErrBadShape.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNotReal (any non-zero imaginary part).
func ToGonum(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf("ToGonum", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrBadShape))
	}
	data := make([]float64, len(m.data))
	for i, z := range m.data {
		if imag(z) != 0 {
			return nil, matrixErrorf("ToGonum", denseErrorf(ctxAt, i/m.c, i%m.c, ErrNotReal))
		}
		data[i] = real(z)
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum matrix into a new Matrix with zero imaginary parts.
func FromGonum(a mat.Matrix) *Matrix {
	r, c := a.Dims()
	out := &Matrix{r: r, c: c, data: make([]complex128, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = complex(a.At(i, j), 0)
		}
	}

	return out
}

// VectorFromGonum copies a gonum vector into a Column vector.
func VectorFromGonum(v mat.Vector) *Vector {
	out := make([]complex128, v.Len())
	for i := range out {
		out[i] = complex(v.AtVec(i), 0)
	}

	return &Vector{val: out, orient: Column}
}
