// SPDX-License-Identifier: MIT

package lsq

import "math"

// DefaultTolerance is the relative pivot threshold Factorize uses: column j is
// singular when ‖v_j‖ ≤ tol·‖a_j‖, where a_j is the column before
// orthogonalization. Each column is measured against its own norm, so scaling
// a column leaves the decision unchanged. An exact zero pivot is always
// singular, whatever the tolerance.
const DefaultTolerance = 1e-12

const panicToleranceInvalid = "lsq: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the relative pivot tolerance. tol = 0 restricts the
// checks to exact zeros. Panics on negative or non-finite tol (programmer error).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies opts over the defaults. Nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
