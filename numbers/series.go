// SPDX-License-Identifier: MIT

package numbers

// Fac returns x! computed recursively; every x <= 0 yields 1.
// Complexity: O(x) time, O(x) stack.
func Fac[T Scalar](x T) T {
	if x > 0 {
		return x * Fac(x-1)
	}

	return 1
}

// CosSeries approximates cos(x) with the first terms of its Maclaurin series
//
//	cos(x) ≈ Σ_{i=0}^{terms-1} (-1)^i · x^(2i) / (2i)!
//
// It is an isolated numeric utility, not a replacement for math.Cos:
// convergence is poor once |x| grows past π, and the factorial in the
// denominator overflows float32 after ~17 terms. terms <= 0 returns 0.
//
// Complexity: O(terms) time, O(1) space (the power and factorial are carried
// incrementally rather than recomputed).
func CosSeries[T Float](x T, terms int) T {
	var (
		sum  T
		term T = 1 // x^0 / 0!
		x2     = x * x
	)
	for i := 0; i < terms; i++ {
		sum += term
		// next term: multiply by -x² / ((2i+1)(2i+2))
		k := T(2*i + 1)
		term = -term * x2 / (k * (k + 1))
	}

	return sum
}
