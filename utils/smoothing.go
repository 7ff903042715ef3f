package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GaussianKernel returns a normalized Gaussian window of half width
// round(truncate*sigma), the discrete kernel used by scipy's gaussian_filter1d.
func GaussianKernel(sigma, truncate float64) (w []float64) {
	lw := int(truncate*sigma + 0.5)
	w = make([]float64, 2*lw+1)
	for i := -lw; i <= lw; i++ {
		w[i+lw] = math.Exp(-0.5 * float64(i*i) / (sigma * sigma))
	}
	floats.Scale(1./floats.Sum(w), w)
	return
}

// GaussianFilter1D smooths y with a Gaussian of the given standard deviation,
// truncated at 4 sigma, using symmetric reflection at both ends. Output parity
// with scipy.ndimage.gaussian_filter1d (mode="reflect") is required: the char
// depth series is fed back through this filter on every step, so any deviation
// compounds over a run.
func GaussianFilter1D(y []float64, sigma float64) (smoothed []float64) {
	const truncate = 4.0
	w := GaussianKernel(sigma, truncate)
	lw := (len(w) - 1) / 2
	n := len(y)
	smoothed = make([]float64, n)
	for j := 0; j < n; j++ {
		var acc float64
		for k := -lw; k <= lw; k++ {
			acc += w[k+lw] * y[reflectIndex(j+k, n)]
		}
		smoothed[j] = acc
	}
	return
}

// reflectIndex maps an out-of-range index into [0,n) by symmetric reflection
// about the array edges: (d c b a | a b c d | d c b a).
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	m := 2 * n
	i = ((i % m) + m) % m
	if i >= n {
		i = m - 1 - i
	}
	return i
}
