// Package lsq fits polynomials to sample data by least squares, using a
// modified Gram-Schmidt QR factorization and triangular back substitution.
//
// Pipeline:
//
//	x, y ──► Vandermonde(x, d) = V (d×n)
//	         Factorize(Vᵀ)     = Q (n×d, orthonormal columns), R (d×d, upper)
//	         b = Qᴴ·y
//	         BackSubstitute(R, b) = c       (coefficients, c[i] ↔ xⁱ)
//	         Evaluate(c, x₀)     = Σ c[i]·x₀ⁱ
//
// All functions are pure: they allocate their results, never mutate caller
// data and hold no shared state, so they may be called concurrently on
// independent inputs.
//
// Scalars are complex128 throughout; FitReal/EvaluateReal cover the common
// real-valued case. A zero pivot (rank-deficient samples, e.g. repeated
// x-values with too many terms) fails with ErrSingularInput from the
// factorization or ErrSingularMatrix from the solver. Fit returns those
// errors unchanged.
//
// Usage:
//
//	coeffs, err := lsq.FitReal([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 4, 9, 16}, 3)
//	if err != nil {
//	  // handle lsq.ErrSingularInput / matrix.ErrDimensionMismatch
//	}
//	y := lsq.EvaluateReal(coeffs, 5) // ≈ 25
//
// Performance:
//
//   - Vandermonde: O(n·d)
//   - Factorize:   O(n·d²) time, O(n·d) memory
//   - Solve:       O(d²)
package lsq
