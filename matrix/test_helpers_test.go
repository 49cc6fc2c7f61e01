// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsqfit/matrix"
)

// tol is the absolute tolerance used by floating-point comparisons.
const tol = 1e-12

// MustReal builds a matrix from a real literal or fails the test.
func MustReal(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromReal(rows)
	require.NoError(t, err)

	return m
}

// MustMatrix builds a matrix from a complex literal or fails the test.
func MustMatrix(t testing.TB, rows [][]complex128) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewMatrix(rows)
	require.NoError(t, err)

	return m
}

// MustColumn builds a column vector or fails the test.
func MustColumn(t testing.TB, vals ...complex128) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewColumnVector(vals)
	require.NoError(t, err)

	return v
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) complex128 {
	t.Helper()
	z, err := m.At(i, j)
	require.NoError(t, err)

	return z
}

// RequireMatrixClose asserts AllClose(got, want) with absolute tolerance atol.
func RequireMatrixClose(t testing.TB, want, got *matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%s\ngot\n%s", want, got)
}

// RequireScalarClose asserts |want-got| ≤ atol.
func RequireScalarClose(t testing.TB, want, got complex128, atol float64) {
	t.Helper()
	require.LessOrEqualf(t, cmplx.Abs(want-got), atol, "want %v, got %v", want, got)
}

// RandomMatrix fills an r×c matrix with deterministic complex values in [-1,1).
func RandomMatrix(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.Zeros(r, c)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, complex(2*rng.Float64()-1, 2*rng.Float64()-1)))
		}
	}

	return m
}
