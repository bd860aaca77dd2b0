package affine

import "math"

// Epsilon is the tolerance used by every Approx method.
// Two components are approximately equal when they differ by less than Epsilon.
const Epsilon = 1e-6

// approx reports whether a and b differ by less than Epsilon.
func approx(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
