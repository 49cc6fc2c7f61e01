// Package lsqfit is a small dense linear-algebra toolkit with a polynomial
// least-squares fitter built on modified Gram-Schmidt QR.
//
// 🚀 What is lsqfit?
//
//	Two packages that compose into one numerical pipeline:
//		• matrix/: complex Vector and Matrix values with named arithmetic
//		  (Add, Sub, Scale, Mul, MulVec, Dot, Inner, Transpose, ConjTranspose)
//		• lsq/:    Vandermonde design matrices, modified Gram-Schmidt QR,
//		  back substitution, least-squares Fit, polynomial Evaluate
//
// ✨ Why choose lsqfit?
//
//   - Complex-first – conjugating inner products and complex magnitudes, so
//     real data is just the zero-imaginary special case
//   - Fail-fast – every operation validates shapes and returns sentinel errors
//     (errors.Is) instead of panicking or broadcasting
//   - Pure functions – results are freshly allocated, inputs never mutated,
//     safe for concurrent use on independent data
//
// Quick example:
//
//	coeffs, _ := lsq.FitReal([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 4, 9, 16}, 3)
//	fmt.Println(lsq.EvaluateReal(coeffs, 5)) // ≈ 25
//
// The cmd/lsqfit command wraps the same pipeline for the shell.
package lsqfit
