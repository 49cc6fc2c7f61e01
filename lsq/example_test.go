package lsq_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lsqfit/lsq"
)

// ExampleFitReal fits y = x² through five samples and extrapolates to x = 5.
func ExampleFitReal() {
	coeffs, err := lsq.FitReal([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 4, 9, 16}, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, c := range coeffs.RealValues() {
		if math.Abs(c) < 1e-9 {
			c = 0 // print -1e-16 as 0
		}
		fmt.Printf("a%d = %.6f\n", i, c)
	}
	fmt.Printf("p(5) = %.6f\n", lsq.EvaluateReal(coeffs, 5))

	// Output:
	// a0 = 0.000000
	// a1 = 0.000000
	// a2 = 1.000000
	// p(5) = 25.000000
}

// ExampleFitReal_singular shows the error for repeated sample points.
func ExampleFitReal_singular() {
	_, err := lsq.FitReal([]float64{1, 1, 2}, []float64{1, 1, 4}, 3)
	fmt.Println(errors.Is(err, lsq.ErrSingularInput))

	// Output:
	// true
}
