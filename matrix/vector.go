// SPDX-License-Identifier: MIT

// Package matrix - Vector storage & arithmetic.
//
// Purpose:
//   - Own a private []complex128 buffer plus an orientation tag.
//   - Expose arithmetic as explicitly named operations returning new values.
//   - Guarantee safety at the public surface: At/Set and binary operations
//     return errors instead of panicking.
//
// Complexity quicksheet:
//   - At/Set/Len: O(1); Neg/Add/Sub/Scale/Dot/Inner/Norm/Clone: O(n).

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

const (
	opVecAdd   = "Vector.Add"
	opVecSub   = "Vector.Sub"
	opVecDot   = "Vector.Dot"
	opVecInner = "Vector.Inner"
	opVecNorm  = "Vector.Norm"
	opVecNew   = "NewVector"
)

// vectorErrorf wraps err with the vector method context and element index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is an ordered sequence of complex scalars tagged with an orientation.
// Each Vector owns its backing slice; no two vectors share storage.
type Vector struct {
	val    []complex128
	orient Orientation
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// NewVector copies vals into a new vector with the given orientation.
// Finite-value validation follows the Options policy (default: reject NaN/Inf).
//
// Errors: ErrNaNInf (policy violation).
// Complexity: O(n).
func NewVector(vals []complex128, o Orientation, opts ...Option) (*Vector, error) {
	cfg := gatherOptions(opts...)
	cp := make([]complex128, len(vals))
	for i, z := range vals {
		if cfg.validateNaNInf {
			if err := validateFinite(z); err != nil {
				return nil, fmt.Errorf("%s: %w", opVecNew, vectorErrorf(ctxSet, i, err))
			}
		}
		cp[i] = z
	}

	return &Vector{val: cp, orient: o}, nil
}

// NewColumnVector is NewVector with Column orientation.
func NewColumnVector(vals []complex128, opts ...Option) (*Vector, error) {
	return NewVector(vals, Column, opts...)
}

// NewRowVector is NewVector with Row orientation.
func NewRowVector(vals []complex128, opts ...Option) (*Vector, error) {
	return NewVector(vals, Row, opts...)
}

// VectorFromReal builds a vector from real values (imaginary parts zero).
func VectorFromReal(vals []float64, o Orientation, opts ...Option) (*Vector, error) {
	return NewVector(Complexify(vals), o, opts...)
}

// ZeroVector returns a zero-filled vector of length n.
// Errors: ErrBadShape if n < 0.
func ZeroVector(n int, o Orientation) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("ZeroVector(%d): %w", n, ErrBadShape)
	}

	return &Vector{val: make([]complex128, n), orient: o}, nil
}

// Complexify converts real samples to complex128 with zero imaginary parts.
func Complexify(vals []float64) []complex128 {
	out := make([]complex128, len(vals))
	for i, x := range vals {
		out[i] = complex(x, 0)
	}

	return out
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.val) }

// Orientation reports whether v is a Column or Row vector.
func (v *Vector) Orientation() Orientation { return v.orient }

// At returns the i-th element or ErrIndexOutOfBounds.
func (v *Vector) At(i int) (complex128, error) {
	if i < 0 || i >= len(v.val) {
		return 0, vectorErrorf(ctxAt, i, ErrIndexOutOfBounds)
	}

	return v.val[i], nil
}

// Set assigns z at index i. This is the only mutation a vector allows.
func (v *Vector) Set(i int, z complex128) error {
	if i < 0 || i >= len(v.val) {
		return vectorErrorf(ctxSet, i, ErrIndexOutOfBounds)
	}
	v.val[i] = z

	return nil
}

// Values returns a copy of the elements.
func (v *Vector) Values() []complex128 {
	out := make([]complex128, len(v.val))
	copy(out, v.val)

	return out
}

// RealValues returns the real parts of the elements.
func (v *Vector) RealValues() []float64 {
	out := make([]float64, len(v.val))
	for i, z := range v.val {
		out[i] = real(z)
	}

	return out
}

// Clone returns a deep copy preserving orientation.
func (v *Vector) Clone() *Vector {
	return &Vector{val: v.Values(), orient: v.orient}
}

// Neg returns -v.
func (v *Vector) Neg() *Vector {
	out := make([]complex128, len(v.val))
	for i, z := range v.val {
		out[i] = -z
	}

	return &Vector{val: out, orient: v.orient}
}

// Add returns v + w, keeping v's orientation.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func (v *Vector) Add(w *Vector) (*Vector, error) {
	return v.addScaled(w, 1, opVecAdd)
}

// Sub returns v - w, keeping v's orientation.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	return v.addScaled(w, -1, opVecSub)
}

// addScaled computes v + alpha*w. Shared by Add/Sub and by the QR deflation step.
func (v *Vector) addScaled(w *Vector, alpha complex128, opTag string) (*Vector, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := make([]complex128, len(v.val))
	for i := range v.val {
		out[i] = v.val[i] + alpha*w.val[i]
	}

	return &Vector{val: out, orient: v.orient}, nil
}

// AddScaled returns v + alpha*w (axpy). Used by the Gram-Schmidt deflation.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) AddScaled(alpha complex128, w *Vector) (*Vector, error) {
	return v.addScaled(w, alpha, "Vector.AddScaled")
}

// Scale returns alpha*v.
func (v *Vector) Scale(alpha complex128) *Vector {
	out := make([]complex128, len(v.val))
	for i, z := range v.val {
		out[i] = alpha * z
	}

	return &Vector{val: out, orient: v.orient}
}

// Dot returns the bilinear product Σ v[i]*w[i] (no conjugation).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) Dot(w *Vector) (complex128, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return 0, matrixErrorf(opVecDot, err)
	}
	var acc complex128
	for i := range v.val {
		acc += v.val[i] * w.val[i]
	}

	return acc, nil
}

// Inner returns the complex inner product vᴴw = Σ conj(v[i])*w[i].
// The receiver's entries are conjugated, so Inner(v, v) is real and ≥ 0.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector) Inner(w *Vector) (complex128, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return 0, matrixErrorf(opVecInner, err)
	}
	var acc complex128
	for i := range v.val {
		acc += cmplx.Conj(v.val[i]) * w.val[i]
	}

	return acc, nil
}

// Norm2 returns the Euclidean norm sqrt(Σ|v[i]|²), |z| = sqrt(re²+im²).
func (v *Vector) Norm2() float64 {
	var sum, a float64
	for _, z := range v.val {
		a = cmplx.Abs(z)
		sum += a * a
	}

	return math.Sqrt(sum)
}

// Norm returns the p-norm (Σ|v[i]|^p)^(1/p) over complex magnitudes.
// p = +Inf yields max|v[i]|.
//
// Errors: ErrBadShape if p < 1 or p is NaN.
func (v *Vector) Norm(p float64) (float64, error) {
	switch {
	case math.IsNaN(p) || p < 1:
		return 0, matrixErrorf(opVecNorm, fmt.Errorf("p=%g: %w", p, ErrBadShape))
	case p == 2:
		return v.Norm2(), nil
	case math.IsInf(p, 1):
		var m float64
		for _, z := range v.val {
			m = math.Max(m, cmplx.Abs(z))
		}

		return m, nil
	}
	var sum float64
	for _, z := range v.val {
		sum += math.Pow(cmplx.Abs(z), p)
	}

	return math.Pow(sum, 1/p), nil
}

// Transpose flips the orientation only; values are copied unchanged.
func (v *Vector) Transpose() *Vector {
	return &Vector{val: v.Values(), orient: v.orient.flip()}
}

// Conjugate returns the elementwise complex conjugate (identity on real entries).
func (v *Vector) Conjugate() *Vector {
	out := make([]complex128, len(v.val))
	for i, z := range v.val {
		out[i] = cmplx.Conj(z)
	}

	return &Vector{val: out, orient: v.orient}
}

// String renders real-only vectors as [a, b, c] and complex ones with %v.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, z := range v.val {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(formatScalar(z))
	}
	b.WriteString("]")

	return b.String()
}

// formatScalar prints real numbers with %g and complex ones with %g as (re+imi).
func formatScalar(z complex128) string {
	if imag(z) == 0 {
		return fmt.Sprintf("%g", real(z))
	}

	return fmt.Sprintf("%g", z)
}
