// SPDX-License-Identifier: MIT

// Package matrix: the shared Square interface.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "github.com/katalvlaran/mpml/numbers"

// Square is the read-only surface common to Matrix2, Matrix3 and Matrix4.
//
// Complexity notes: all methods are O(1) except Det (minor expansion) and
// Trace (O(N)).
type Square[T numbers.Scalar] interface {
	// Dim returns N for an N×N matrix.
	Dim() int

	// Index retrieves the element at flat row-major index i.
	// Returns ErrOutOfRange if i<0 or i>=N².
	Index(i int) (T, error)

	// Det returns the determinant.
	Det() T

	// Trace returns the sum of the diagonal.
	Trace() T

	// Render lays the matrix out as text.
	Render(opts ...Option) string
}

var (
	_ Square[float64] = Matrix2[float64]{}
	_ Square[float64] = Matrix3[float64]{}
	_ Square[int]     = Matrix4[int]{}
)

// Dim returns 2.
func (Matrix2[T]) Dim() int { return dim2 }

// Dim returns 3.
func (Matrix3[T]) Dim() int { return dim3 }

// Dim returns 4.
func (Matrix4[T]) Dim() int { return dim4 }

// AllClose reports whether a and b have the same dimension and every pair
// of elements differs by at most tol. NaN is never close to anything.
// Complexity: O(N²).
func AllClose[T numbers.Float](a, b Square[T], tol T) bool {
	if a == nil || b == nil || a.Dim() != b.Dim() {
		return false
	}
	n := a.Dim() * a.Dim()
	for i := 0; i < n; i++ {
		x, _ := a.Index(i)
		y, _ := b.Index(i)
		// NaN on either side fails this comparison.
		if !(numbers.Abs(x-y) <= tol) {
			return false
		}
	}

	return true
}
