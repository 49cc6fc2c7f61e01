// SPDX-License-Identifier: MIT

package lsq_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsqfit/matrix"
)

// randomMatrix fills an r×c matrix with deterministic complex values in [-1,1).
func randomMatrix(t testing.TB, r, c int, seed int64) *matrix.Matrix {
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

// mustAt reads m(i,j) or fails the test.
func mustAt(t testing.TB, m *matrix.Matrix, i, j int) complex128 {
	t.Helper()
	z, err := m.At(i, j)
	require.NoError(t, err)

	return z
}

// requireVectorClose asserts |want[i]-got[i]| ≤ atol for every i.
func requireVectorClose(t testing.TB, want []complex128, got *matrix.Vector, atol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Len())
	for i, w := range want {
		g, err := got.At(i)
		require.NoError(t, err)
		require.LessOrEqualf(t, cmplx.Abs(w-g), atol, "index %d: want %v, got %v", i, w, g)
	}
}

// requireMatrixClose asserts AllClose(got, want) with absolute tolerance atol.
func requireMatrixClose(t testing.TB, want, got *matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%s\ngot\n%s", want, got)
}
