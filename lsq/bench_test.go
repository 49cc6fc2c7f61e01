package lsq_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lsqfit/lsq"
	"github.com/katalvlaran/lsqfit/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkQR *lsq.QR
	sinkV  *matrix.Vector
)

func BenchmarkFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, sz := range [][2]int{{16, 4}, {64, 8}, {256, 16}} {
		b.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(b *testing.B) {
			a := randomMatrix(b, sz[0], sz[1], 42)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := lsq.Factorize(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkQR = f
			}
		})
	}
}

func BenchmarkFitReal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 128, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := make([]float64, n)
			y := make([]float64, n)
			for i := range x {
				x[i] = float64(i) / float64(n)
				y[i] = math.Exp(x[i])
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := lsq.FitReal(x, y, 4)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = c
			}
		})
	}
}
