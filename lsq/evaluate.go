// SPDX-License-Identifier: MIT

package lsq

import "github.com/katalvlaran/lsqfit/matrix"

// Evaluate returns Σ coeffs[i]·xⁱ using Horner's scheme.
// A nil or empty coefficient vector evaluates to 0.
func Evaluate(coeffs *matrix.Vector, x complex128) complex128 {
	if coeffs == nil {
		return 0
	}
	c := coeffs.Values()
	var acc complex128
	for i := len(c) - 1; i >= 0; i-- {
		acc = acc*x + c[i]
	}

	return acc
}

// EvaluateReal evaluates at a real point and returns the real part.
func EvaluateReal(coeffs *matrix.Vector, x float64) float64 {
	return real(Evaluate(coeffs, complex(x, 0)))
}

// EvaluateAll evaluates the polynomial at every point of xs.
func EvaluateAll(coeffs *matrix.Vector, xs []complex128) []complex128 {
	out := make([]complex128, len(xs))
	for i, x := range xs {
		out[i] = Evaluate(coeffs, x)
	}

	return out
}
