// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/mpml/numbers"
	"github.com/katalvlaran/mpml/vector"
)

const (
	dim2  = 2
	size2 = dim2 * dim2
)

// Matrix2 is a 2×2 matrix stored row-major:
//
//	| a b |
//	| c d |
//
// The zero value is the zero matrix. Matrix2 is comparable with ==.
type Matrix2[T numbers.Scalar] struct {
	data [size2]T
}

// New2 returns the matrix with rows (a, b) and (c, d).
func New2[T numbers.Scalar](a, b, c, d T) Matrix2[T] {
	return Matrix2[T]{data: [size2]T{a, b, c, d}}
}

// FromArray2 wraps a row-major array.
func FromArray2[T numbers.Scalar](elems [size2]T) Matrix2[T] { return Matrix2[T]{data: elems} }

// FromColumns2 builds a matrix whose columns are c0 and c1.
func FromColumns2[T numbers.Scalar](c0, c1 vector.Vector2[T]) Matrix2[T] {
	return New2(c0.X, c1.X, c0.Y, c1.Y)
}

// FromRows2 builds a matrix whose rows are r0 and r1.
func FromRows2[T numbers.Scalar](r0, r1 vector.Vector2[T]) Matrix2[T] {
	return New2(r0.X, r0.Y, r1.X, r1.Y)
}

// Identity2 returns the 2×2 identity.
func Identity2[T numbers.Scalar]() Matrix2[T] {
	var m Matrix2[T]
	identityInto(m.data[:], dim2, false)

	return m
}

// AntiDiagonalIdentity2 returns [[0,1],[1,0]].
func AntiDiagonalIdentity2[T numbers.Scalar]() Matrix2[T] {
	var m Matrix2[T]
	identityInto(m.data[:], dim2, true)

	return m
}

// Det returns a·d − b·c.
func (m Matrix2[T]) Det() T { return m.data[0]*m.data[3] - m.data[1]*m.data[2] }

// minor is Minor without validation.
func (m Matrix2[T]) minor(idx int) T {
	var out [1]T
	extractMinor(out[:], m.data[:], dim2, idx)

	return out[0]
}

// Minor returns the scalar left after deleting the row and column of flat
// index idx: 0→d, 1→c, 2→b, 3→a.
func (m Matrix2[T]) Minor(idx int) (T, error) {
	if err := validateIndex(idx, size2); err != nil {
		return 0, matrixErrorf(typMatrix2, opMinor, err)
	}

	return m.minor(idx), nil
}

// Cofactor returns (-1)^(row+col) · Minor(idx).
func (m Matrix2[T]) Cofactor(idx int) (T, error) {
	if err := validateIndex(idx, size2); err != nil {
		return 0, matrixErrorf(typMatrix2, opCofactor, err)
	}

	return signed(dim2, idx, m.minor(idx)), nil
}

// CofactorMatrix returns the matrix of cofactors, [[d,-c],[-b,a]].
func (m Matrix2[T]) CofactorMatrix() Matrix2[T] {
	var out Matrix2[T]
	for i := range out.data {
		out.data[i] = signed(dim2, i, m.minor(i))
	}

	return out
}

// Adj returns the adjugate, the transpose of CofactorMatrix.
func (m Matrix2[T]) Adj() Matrix2[T] { return m.CofactorMatrix().Transpose() }

// Transpose returns mᵀ.
func (m Matrix2[T]) Transpose() Matrix2[T] {
	var out Matrix2[T]
	transposeInto(out.data[:], m.data[:], dim2)

	return out
}

// DetAlongRow computes the determinant by Laplace expansion along row r.
func (m Matrix2[T]) DetAlongRow(r int) (T, error) {
	if err := validateIndex(r, dim2); err != nil {
		return 0, matrixErrorf(typMatrix2, opDetRow, err)
	}
	var s T
	for j := 0; j < dim2; j++ {
		idx := r*dim2 + j
		s += m.data[idx] * signed(dim2, idx, m.minor(idx))
	}

	return s, nil
}

// DetAlongCol computes the determinant by Laplace expansion along column c.
func (m Matrix2[T]) DetAlongCol(c int) (T, error) {
	if err := validateIndex(c, dim2); err != nil {
		return 0, matrixErrorf(typMatrix2, opDetCol, err)
	}
	var s T
	for i := 0; i < dim2; i++ {
		idx := i*dim2 + c
		s += m.data[idx] * signed(dim2, idx, m.minor(idx))
	}

	return s, nil
}

// Trace returns a + d.
func (m Matrix2[T]) Trace() T { return traceOf(m.data[:], dim2) }

// Pow returns mⁿ; Pow(0) is the identity.
func (m Matrix2[T]) Pow(n uint) Matrix2[T] {
	out := Identity2[T]()
	for ; n > 0; n-- {
		out = out.Mul(m)
	}

	return out
}

// Add returns m + o.
func (m Matrix2[T]) Add(o Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	addInto(out.data[:], m.data[:], o.data[:])

	return out
}

// Sub returns m − o.
func (m Matrix2[T]) Sub(o Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	subInto(out.data[:], m.data[:], o.data[:])

	return out
}

// Mul returns the matrix product m·o.
func (m Matrix2[T]) Mul(o Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	mulInto(out.data[:], m.data[:], o.data[:], dim2)

	return out
}

// Scale returns k·m.
func (m Matrix2[T]) Scale(k T) Matrix2[T] {
	var out Matrix2[T]
	scaleInto(out.data[:], m.data[:], k)

	return out
}

// DivScalar returns m/k elementwise.
func (m Matrix2[T]) DivScalar(k T) Matrix2[T] {
	var out Matrix2[T]
	divInto(out.data[:], m.data[:], k)

	return out
}

// Neg returns −m.
func (m Matrix2[T]) Neg() Matrix2[T] {
	var out Matrix2[T]
	negInto(out.data[:], m.data[:])

	return out
}

// AddAssign sets m = m + o.
func (m *Matrix2[T]) AddAssign(o Matrix2[T]) { *m = m.Add(o) }

// SubAssign sets m = m − o.
func (m *Matrix2[T]) SubAssign(o Matrix2[T]) { *m = m.Sub(o) }

// MulAssign sets m = m·o.
func (m *Matrix2[T]) MulAssign(o Matrix2[T]) { *m = m.Mul(o) }

// ScaleAssign sets m = k·m.
func (m *Matrix2[T]) ScaleAssign(k T) { *m = m.Scale(k) }

// DivScalarAssign sets m = m/k.
func (m *Matrix2[T]) DivScalarAssign(k T) { *m = m.DivScalar(k) }

// MulVec returns m·v.
func (m Matrix2[T]) MulVec(v vector.Vector2[T]) vector.Vector2[T] {
	var out [dim2]T
	in := v.Array()
	mulVecInto(out[:], m.data[:], in[:], dim2)

	return vector.New2(out[0], out[1])
}

// Index returns the element at flat row-major index i.
func (m Matrix2[T]) Index(i int) (T, error) {
	if err := validateIndex(i, size2); err != nil {
		return 0, matrixErrorf(typMatrix2, opIndex, err)
	}

	return m.data[i], nil
}

// Array returns a copy of the row-major storage.
func (m Matrix2[T]) Array() [size2]T { return m.data }

// At returns the element at row r, column c.
func (m Matrix2[T]) At(r, c int) (T, error) {
	if err := validateCell(r, c, dim2); err != nil {
		return 0, matrixErrorf(typMatrix2, opAt, err)
	}

	return m.data[r*dim2+c], nil
}

// Set assigns the element at row r, column c.
func (m *Matrix2[T]) Set(r, c int, v T) error {
	if err := validateCell(r, c, dim2); err != nil {
		return matrixErrorf(typMatrix2, opSet, err)
	}
	m.data[r*dim2+c] = v

	return nil
}

// Field returns the element named 'a'..'d'.
func (m Matrix2[T]) Field(name byte) (T, error) {
	i, err := fieldIndex(name, size2)
	if err != nil {
		return 0, matrixErrorf(typMatrix2, opField, err)
	}

	return m.data[i], nil
}

// Row returns row i.
func (m Matrix2[T]) Row(i int) (vector.Vector2[T], error) {
	if err := validateIndex(i, dim2); err != nil {
		return vector.Vector2[T]{}, matrixErrorf(typMatrix2, opRow, err)
	}

	return vector.New2(m.data[i*dim2], m.data[i*dim2+1]), nil
}

// Col returns column i.
func (m Matrix2[T]) Col(i int) (vector.Vector2[T], error) {
	if err := validateIndex(i, dim2); err != nil {
		return vector.Vector2[T]{}, matrixErrorf(typMatrix2, opCol, err)
	}

	return vector.New2(m.data[i], m.data[dim2+i]), nil
}

// SetRow replaces row i with v.
func (m *Matrix2[T]) SetRow(i int, v vector.Vector2[T]) error {
	if err := validateIndex(i, dim2); err != nil {
		return matrixErrorf(typMatrix2, opSetRow, err)
	}
	m.data[i*dim2], m.data[i*dim2+1] = v.X, v.Y

	return nil
}

// SetCol replaces column i with v.
func (m *Matrix2[T]) SetCol(i int, v vector.Vector2[T]) error {
	if err := validateIndex(i, dim2); err != nil {
		return matrixErrorf(typMatrix2, opSetCol, err)
	}
	m.data[i], m.data[dim2+i] = v.X, v.Y

	return nil
}

// String renders the grid layout.
func (m Matrix2[T]) String() string { return m.Render() }

// Render lays out m according to opts (see WithLayout, WithPrecision).
func (m Matrix2[T]) Render(opts ...Option) string {
	return render(typMatrix2, dim2, m.data[:], gatherOptions(opts...))
}
