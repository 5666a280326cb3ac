package distance

// Within reports whether every bin of x lies within threshold of the same bin
// of y, that is |x_i - y_i| <= threshold for all i. The scan stops at the first
// bin that violates the bound. A negative threshold is never satisfied.
func Within(x, y []float64, threshold float64) bool {
	return FirstViolation(x, y, threshold) < 0
}

// FirstViolation returns the index of the first bin whose difference falls
// outside [-threshold, threshold], or -1 if there is none.
func FirstViolation(x, y []float64, threshold float64) int {
	// Two one-sided bounds instead of an abs per bin.
	lo := -threshold
	for i := range x {
		d := x[i] - y[i]
		// Written as a negated conjunction so that a NaN difference fails.
		if !(d <= threshold && d >= lo) {
			return i
		}
	}
	return -1
}
