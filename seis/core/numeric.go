// Package core provides shared numeric helpers used across the seis packages.
package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// RoundHalfAwayFromZero rounds x to the nearest integer, with halfway cases
// rounded away from zero. This is the convention used when converting a
// kernel's start-time offset into an integer sample delay.
func RoundHalfAwayFromZero(x float64) int {
	return int(math.Round(x))
}
