package utils

// Simpsons integrates sampled values y over abscissae x using the composite
// Simpson's rule for (possibly) unevenly spaced samples. With an even number
// of samples the leading pairs of intervals are integrated with the standard
// rule and the trailing interval with the Cartwright correction, matching the
// behavior of scipy.integrate.simpson so that integrals of recorded histories
// agree with established zone-model results to machine precision.
//
// x must be strictly increasing and len(x) == len(y) >= 2.
func Simpsons(y, x []float64) (integral float64) {
	n := len(y)
	if n != len(x) {
		panic("Simpsons: length mismatch between x and y")
	}
	switch {
	case n < 2:
		panic("Simpsons: need at least two samples")
	case n == 2:
		return 0.5 * (x[1] - x[0]) * (y[0] + y[1])
	}
	if n%2 == 1 {
		return basicSimpson(y, x, 0, n-2)
	}
	// Even sample count: odd number of intervals. Integrate all but the last
	// interval pairwise, then apply the Cartwright correction over the final
	// three samples.
	integral = basicSimpson(y, x, 0, n-3)
	h0 := x[n-2] - x[n-3]
	h1 := x[n-1] - x[n-2]
	alpha := (2*h1*h1 + 3*h0*h1) / (6 * (h0 + h1))
	beta := (h1*h1 + 3*h0*h1) / (6 * h0)
	eta := h1 * h1 * h1 / (6 * h0 * (h0 + h1))
	integral += alpha*y[n-1] + beta*y[n-2] - eta*y[n-3]
	return
}

func basicSimpson(y, x []float64, start, stop int) (sum float64) {
	for i := start; i < stop; i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		hsum := h0 + h1
		hprod := h0 * h1
		h0divh1 := h0 / h1
		sum += hsum / 6. * (y[i]*(2.-1./h0divh1) +
			y[i+1]*hsum*hsum/hprod +
			y[i+2]*(2.-h0divh1))
	}
	return
}
