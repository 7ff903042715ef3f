package utils

import "sort"

// LinInterp evaluates the piecewise-linear curve defined by (xs, ys) at x.
// Queries outside [xs[0], xs[len-1]] are resolved by extending the first or
// last segment (scipy interp1d fill_value="extrapolate" behavior). This silent
// extrapolation is deliberate: HRR lookups past the end of the curve must keep
// returning values rather than fail mid-run.
//
// xs must be strictly increasing with len(xs) == len(ys) >= 2.
func LinInterp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n != len(ys) {
		panic("LinInterp: length mismatch between xs and ys")
	}
	if n < 2 {
		panic("LinInterp: need at least two control points")
	}
	// Locate the segment; clamp to the end segments for extrapolation.
	j := sort.SearchFloat64s(xs, x)
	switch {
	case j <= 0:
		j = 1
	case j >= n:
		j = n - 1
	}
	x0, x1 := xs[j-1], xs[j]
	y0, y1 := ys[j-1], ys[j]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
