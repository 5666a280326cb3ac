// Package distance provides the per-pair comparison kernels used to decide
// whether two trials are indistinguishable.
//
// All functions take two trials of equal length, aligned bin by bin.
package distance

import (
	"math"
)

// Chebyshev computes the Chebyshev (L-infinity) distance, the largest per-bin
// absolute difference. It is the smallest threshold at which x and y are
// indistinguishable. A NaN difference in any bin yields NaN.
// D(x, y) = max(|x_i - y_i|)
func Chebyshev(x, y []float64) float64 {
	var maxVal float64
	for i := range x {
		d := math.Abs(x[i] - y[i])
		if math.IsNaN(d) {
			return d
		}
		if d > maxVal {
			maxVal = d
		}
	}
	return maxVal
}
