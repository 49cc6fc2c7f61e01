package lsq_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lsqfit/lsq"
	"github.com/katalvlaran/lsqfit/matrix"
)

func TestFit_Parabola(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 4, 9, 16}

	c, err := lsq.FitReal(x, y, 3)
	require.NoError(t, err)
	requireVectorClose(t, []complex128{0, 0, 1}, c, 1e-9)
	assert.InDelta(t, 25.0, lsq.EvaluateReal(c, 5), 1e-9)
}

// TestFit_RoundTrip recovers a cubic's coefficients from exact samples and
// reproduces every sample.
func TestFit_RoundTrip(t *testing.T) {
	want := []float64{1, -2, 0.5, 0.25}
	var x, y []float64
	for s := -2.0; s <= 2.0; s += 0.5 {
		x = append(x, s)
		y = append(y, want[0]+want[1]*s+want[2]*s*s+want[3]*s*s*s)
	}

	c, err := lsq.FitReal(x, y, len(want))
	require.NoError(t, err)
	requireVectorClose(t, matrix.Complexify(want), c, 1e-9)
	for i := range x {
		assert.InDelta(t, y[i], lsq.EvaluateReal(c, x[i]), 1e-9)
	}

	res, err := lsq.Residual(c, matrix.Complexify(x), matrix.Complexify(y))
	require.NoError(t, err)
	assert.Less(t, res, 1e-9)
}

func TestFit_Complex(t *testing.T) {
	a0, a1 := complex(1, 1), complex(2, -1)
	x := []complex128{0, 1, 1i, 1 + 1i, 2 - 1i}
	y := make([]complex128, len(x))
	for i, xi := range x {
		y[i] = a0 + a1*xi
	}

	c, err := lsq.Fit(x, y, 2)
	require.NoError(t, err)
	requireVectorClose(t, []complex128{a0, a1}, c, 1e-10)
	for i, xi := range x {
		assert.InDelta(t, 0.0, cmplxAbs(y[i]-lsq.Evaluate(c, xi)), 1e-10)
	}
}

func cmplxAbs(z complex128) float64 { return math.Hypot(real(z), imag(z)) }

// TestFit_MatchesGonumQR compares a noisy least-squares fit against gonum's
// Householder QR solve of the same tall system.
func TestFit_MatchesGonumQR(t *testing.T) {
	const terms = 4
	var x, y []float64
	for i := 0; i < 12; i++ {
		s := float64(i) / 3
		x = append(x, s)
		y = append(y, math.Sin(s)+0.1*math.Cos(7*s))
	}

	c, err := lsq.FitReal(x, y, terms)
	require.NoError(t, err)

	a := mat.NewDense(len(x), terms, nil)
	for i := range x {
		for j, p := 0, 1.0; j < terms; j, p = j+1, p*x[i] {
			a.Set(i, j, p)
		}
	}
	var qr mat.QR
	qr.Factorize(a)
	want := mat.NewDense(terms, 1, nil)
	require.NoError(t, qr.SolveTo(want, false, mat.NewDense(len(y), 1, y)))

	for j := 0; j < terms; j++ {
		got, err := c.At(j)
		require.NoError(t, err)
		assert.InDelta(t, want.At(j, 0), real(got), 1e-8, "coefficient %d", j)
		assert.InDelta(t, 0.0, imag(got), 1e-12)
	}
}

// TestFit_LeastSquaresOptimal checks that perturbing the fitted coefficients
// never lowers the residual.
func TestFit_LeastSquaresOptimal(t *testing.T) {
	x := matrix.Complexify([]float64{-1, -0.5, 0, 0.5, 1, 1.5})
	y := matrix.Complexify([]float64{2.1, 0.9, 0.2, 0.1, 1.2, 2.4})

	c, err := lsq.Fit(x, y, 2)
	require.NoError(t, err)
	best, err := lsq.Residual(c, x, y)
	require.NoError(t, err)

	for i := 0; i < c.Len(); i++ {
		for _, d := range []complex128{0.01, -0.01, 0.01i} {
			p := c.Clone()
			z, _ := p.At(i)
			require.NoError(t, p.Set(i, z+d))
			r, err := lsq.Residual(p.Transpose(), x, y)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, r, best)
		}
	}
}

// TestFit_ScaledSamples fits y = x² on samples far from unit magnitude with
// the default options. Coefficient j is compared at the scale of its term
// (s^j), relative to the scale of y (s²).
func TestFit_ScaledSamples(t *testing.T) {
	for _, s := range []float64{1e-7, 1e-3, 1e3, 1e6} {
		s := s
		t.Run(fmt.Sprintf("s=%g", s), func(t *testing.T) {
			x := []float64{0, s, 2 * s, 3 * s}
			if s > 1 {
				x = []float64{s, 2 * s, 3 * s, 4 * s}
			}
			y := make([]float64, len(x))
			for i, xi := range x {
				y[i] = xi * xi
			}

			c, err := lsq.FitReal(x, y, 3)
			require.NoError(t, err)
			want := []float64{0, 0, 1}
			for j, w := range want {
				got, err := c.At(j)
				require.NoError(t, err)
				assert.LessOrEqualf(t, math.Abs(real(got)-w)*math.Pow(s, float64(j)), 1e-8*s*s, "coefficient %d", j)
			}
		})
	}
}

func TestFit_DuplicateSamplesSingular(t *testing.T) {
	x := []float64{1, 1, 2}
	y := []float64{1, 1, 4}

	_, err := lsq.FitReal(x, y, 3)
	require.ErrorIs(t, err, lsq.ErrSingularInput)

	// the factorization error reaches the caller unchanged
	v, verr := lsq.VandermondeReal(x, 3)
	require.NoError(t, verr)
	a, terr := matrix.Transpose(v)
	require.NoError(t, terr)
	_, ferr := lsq.Factorize(a)
	require.Error(t, ferr)
	assert.Equal(t, ferr.Error(), err.Error())

	_, err = lsq.FitReal([]float64{2, 2, 2}, []float64{1, 2, 3}, 2)
	require.ErrorIs(t, err, lsq.ErrSingularInput)
}

func TestFit_Errors(t *testing.T) {
	_, err := lsq.FitReal([]float64{1, 2, 3}, []float64{1, 2}, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = lsq.FitReal(nil, nil, 2)
	require.ErrorIs(t, err, lsq.ErrSingularInput)

	_, err = lsq.FitReal([]float64{1}, []float64{1}, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = lsq.FitReal([]float64{1, 2}, []float64{1, math.NaN()}, 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestFit_ZeroTerms(t *testing.T) {
	c, err := lsq.FitReal([]float64{1, 2}, []float64{3, 4}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, lsq.EvaluateReal(c, 10))
}

func TestFit_SingleTermIsMean(t *testing.T) {
	c, err := lsq.FitReal([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 6}, 1)
	require.NoError(t, err)
	requireVectorClose(t, []complex128{3}, c, 1e-12)
}

func TestResidual_Errors(t *testing.T) {
	c, err := matrix.VectorFromReal([]float64{1}, matrix.Column)
	require.NoError(t, err)
	_, err = lsq.Residual(c, []complex128{1}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = lsq.Residual(nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFit_Concurrent runs independent fits in parallel; results must match
// the sequential answer exactly since no state is shared.
func TestFit_Concurrent(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 4, 9, 16}
	want, err := lsq.FitReal(x, y, 3)
	require.NoError(t, err)

	const workers = 8
	results := make([]*matrix.Vector, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = lsq.FitReal(x, y, 3)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		assert.Equal(t, want.Values(), results[w].Values())
	}
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, x, "samples must not be mutated")
}
