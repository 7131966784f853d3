// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dimension-agnostic kernels over row-major n×n slices.
//   - Every MatrixN method delegates here with m.data[:], so the
//     arithmetic exists exactly once for all three sizes.
//
// Contract:
//   - dst, a and b have length n*n (or n for vectors); callers guarantee it.
//   - dst must not alias a or b for mulInto, transposeInto and mulVecInto.
//   - No validation, no allocation.

package matrix

import "github.com/katalvlaran/mpml/numbers"

// extractMinor writes into dst the (n-1)×(n-1) submatrix of src obtained by
// deleting the row and the column of flat index idx. For n=2 the result is a
// single scalar.
// Complexity: O(n²).
func extractMinor[T numbers.Scalar](dst, src []T, n, idx int) {
	row, col := idx/n, idx%n
	k := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			dst[k] = src[i*n+j]
			k++
		}
	}
}

// negativeCofactor reports whether (-1)^(row+col) is -1 for flat index idx
// of an n×n matrix.
func negativeCofactor(n, idx int) bool { return (idx/n+idx%n)%2 == 1 }

// signed applies the cofactor sign for idx to v.
func signed[T numbers.Scalar](n, idx int, v T) T {
	if negativeCofactor(n, idx) {
		return -v
	}

	return v
}

func addInto[T numbers.Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subInto[T numbers.Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func scaleInto[T numbers.Scalar](dst, a []T, k T) {
	for i := range dst {
		dst[i] = a[i] * k
	}
}

func divInto[T numbers.Scalar](dst, a []T, k T) {
	for i := range dst {
		dst[i] = a[i] / k
	}
}

func negInto[T numbers.Scalar](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// mulInto computes dst = a·b (row-major, i-k-j order).
// Complexity: O(n³).
func mulInto[T numbers.Scalar](dst, a, b []T, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s T
			for k := 0; k < n; k++ {
				s += a[i*n+k] * b[k*n+j]
			}
			dst[i*n+j] = s
		}
	}
}

func transposeInto[T numbers.Scalar](dst, src []T, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[j*n+i] = src[i*n+j]
		}
	}
}

// mulVecInto computes dst[i] = Σ_j m[i][j]·v[j].
func mulVecInto[T numbers.Scalar](dst, m, v []T, n int) {
	for i := 0; i < n; i++ {
		var s T
		for j := 0; j < n; j++ {
			s += m[i*n+j] * v[j]
		}
		dst[i] = s
	}
}

func traceOf[T numbers.Scalar](src []T, n int) T {
	var s T
	for i := 0; i < n; i++ {
		s += src[i*n+i]
	}

	return s
}

// identityInto writes the identity into dst; anti selects the
// anti-diagonal variant (ones where row+col == n-1).
func identityInto[T numbers.Scalar](dst []T, n int, anti bool) {
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < n; i++ {
		if anti {
			dst[i*n+(n-1-i)] = 1
		} else {
			dst[i*n+i] = 1
		}
	}
}
