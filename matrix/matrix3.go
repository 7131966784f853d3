// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/mpml/numbers"
	"github.com/katalvlaran/mpml/vector"
)

const (
	dim3  = 3
	size3 = dim3 * dim3
)

// Matrix3 is a 3×3 matrix stored row-major with fields named a..i:
//
//	| a b c |
//	| d e f |
//	| g h i |
type Matrix3[T numbers.Scalar] struct {
	data [size3]T
}

// New3 returns the matrix with the given elements in row-major order.
func New3[T numbers.Scalar](a, b, c, d, e, f, g, h, i T) Matrix3[T] {
	return Matrix3[T]{data: [size3]T{a, b, c, d, e, f, g, h, i}}
}

// FromArray3 wraps a row-major array.
func FromArray3[T numbers.Scalar](elems [size3]T) Matrix3[T] { return Matrix3[T]{data: elems} }

// FromColumns3 builds a matrix whose columns are c0, c1 and c2.
func FromColumns3[T numbers.Scalar](c0, c1, c2 vector.Vector3[T]) Matrix3[T] {
	return New3(
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	)
}

// FromRows3 builds a matrix whose rows are r0, r1 and r2.
func FromRows3[T numbers.Scalar](r0, r1, r2 vector.Vector3[T]) Matrix3[T] {
	return New3(
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	)
}

// Identity3 returns the 3×3 identity.
func Identity3[T numbers.Scalar]() Matrix3[T] {
	var m Matrix3[T]
	identityInto(m.data[:], dim3, false)

	return m
}

// AntiDiagonalIdentity3 returns ones on the anti-diagonal.
func AntiDiagonalIdentity3[T numbers.Scalar]() Matrix3[T] {
	var m Matrix3[T]
	identityInto(m.data[:], dim3, true)

	return m
}

// Det expands along the first row: a·A − b·B + c·C.
func (m Matrix3[T]) Det() T {
	return m.data[0]*m.minor(0).Det() - m.data[1]*m.minor(1).Det() + m.data[2]*m.minor(2).Det()
}

func (m Matrix3[T]) minor(idx int) Matrix2[T] {
	var out Matrix2[T]
	extractMinor(out.data[:], m.data[:], dim3, idx)

	return out
}

// Minor returns the 2×2 submatrix left after deleting the row and column
// of flat index idx.
func (m Matrix3[T]) Minor(idx int) (Matrix2[T], error) {
	if err := validateIndex(idx, size3); err != nil {
		return Matrix2[T]{}, matrixErrorf(typMatrix3, opMinor, err)
	}

	return m.minor(idx), nil
}

func (m Matrix3[T]) cofactor(idx int) T { return signed(dim3, idx, m.minor(idx).Det()) }

// Cofactor returns (-1)^(row+col) · det(Minor(idx)).
func (m Matrix3[T]) Cofactor(idx int) (T, error) {
	if err := validateIndex(idx, size3); err != nil {
		return 0, matrixErrorf(typMatrix3, opCofactor, err)
	}

	return m.cofactor(idx), nil
}

// CofactorMatrix returns the matrix of cofactors.
func (m Matrix3[T]) CofactorMatrix() Matrix3[T] {
	var out Matrix3[T]
	for i := range out.data {
		out.data[i] = m.cofactor(i)
	}

	return out
}

// Adj returns the adjugate.
func (m Matrix3[T]) Adj() Matrix3[T] { return m.CofactorMatrix().Transpose() }

// Transpose returns mᵀ.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	var out Matrix3[T]
	transposeInto(out.data[:], m.data[:], dim3)

	return out
}

// DetAlongRow computes the determinant by Laplace expansion along row r.
func (m Matrix3[T]) DetAlongRow(r int) (T, error) {
	if err := validateIndex(r, dim3); err != nil {
		return 0, matrixErrorf(typMatrix3, opDetRow, err)
	}
	var s T
	for j := 0; j < dim3; j++ {
		s += m.data[r*dim3+j] * m.cofactor(r*dim3+j)
	}

	return s, nil
}

// DetAlongCol computes the determinant by Laplace expansion along column c.
func (m Matrix3[T]) DetAlongCol(c int) (T, error) {
	if err := validateIndex(c, dim3); err != nil {
		return 0, matrixErrorf(typMatrix3, opDetCol, err)
	}
	var s T
	for i := 0; i < dim3; i++ {
		s += m.data[i*dim3+c] * m.cofactor(i*dim3+c)
	}

	return s, nil
}

// Trace returns a + e + i.
func (m Matrix3[T]) Trace() T { return traceOf(m.data[:], dim3) }

// Pow returns mⁿ; Pow(0) is the identity.
func (m Matrix3[T]) Pow(n uint) Matrix3[T] {
	out := Identity3[T]()
	for ; n > 0; n-- {
		out = out.Mul(m)
	}

	return out
}

// Add returns m + o.
func (m Matrix3[T]) Add(o Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	addInto(out.data[:], m.data[:], o.data[:])

	return out
}

// Sub returns m − o.
func (m Matrix3[T]) Sub(o Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	subInto(out.data[:], m.data[:], o.data[:])

	return out
}

// Mul returns the matrix product m·o.
func (m Matrix3[T]) Mul(o Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	mulInto(out.data[:], m.data[:], o.data[:], dim3)

	return out
}

// Scale returns k·m.
func (m Matrix3[T]) Scale(k T) Matrix3[T] {
	var out Matrix3[T]
	scaleInto(out.data[:], m.data[:], k)

	return out
}

// DivScalar returns m/k elementwise.
func (m Matrix3[T]) DivScalar(k T) Matrix3[T] {
	var out Matrix3[T]
	divInto(out.data[:], m.data[:], k)

	return out
}

// Neg returns −m.
func (m Matrix3[T]) Neg() Matrix3[T] {
	var out Matrix3[T]
	negInto(out.data[:], m.data[:])

	return out
}

// AddAssign sets m = m + o.
func (m *Matrix3[T]) AddAssign(o Matrix3[T]) { *m = m.Add(o) }

// SubAssign sets m = m − o.
func (m *Matrix3[T]) SubAssign(o Matrix3[T]) { *m = m.Sub(o) }

// MulAssign sets m = m·o.
func (m *Matrix3[T]) MulAssign(o Matrix3[T]) { *m = m.Mul(o) }

// ScaleAssign sets m = k·m.
func (m *Matrix3[T]) ScaleAssign(k T) { *m = m.Scale(k) }

// DivScalarAssign sets m = m/k.
func (m *Matrix3[T]) DivScalarAssign(k T) { *m = m.DivScalar(k) }

// MulVec returns m·v.
func (m Matrix3[T]) MulVec(v vector.Vector3[T]) vector.Vector3[T] {
	var out [dim3]T
	in := v.Array()
	mulVecInto(out[:], m.data[:], in[:], dim3)

	return vector.New3(out[0], out[1], out[2])
}

// Index returns the element at flat row-major index i.
func (m Matrix3[T]) Index(i int) (T, error) {
	if err := validateIndex(i, size3); err != nil {
		return 0, matrixErrorf(typMatrix3, opIndex, err)
	}

	return m.data[i], nil
}

// Array returns a copy of the row-major storage.
func (m Matrix3[T]) Array() [size3]T { return m.data }

// At returns the element at row r, column c.
func (m Matrix3[T]) At(r, c int) (T, error) {
	if err := validateCell(r, c, dim3); err != nil {
		return 0, matrixErrorf(typMatrix3, opAt, err)
	}

	return m.data[r*dim3+c], nil
}

// Set assigns the element at row r, column c.
func (m *Matrix3[T]) Set(r, c int, v T) error {
	if err := validateCell(r, c, dim3); err != nil {
		return matrixErrorf(typMatrix3, opSet, err)
	}
	m.data[r*dim3+c] = v

	return nil
}

// Field returns the element named 'a'..'i'.
func (m Matrix3[T]) Field(name byte) (T, error) {
	i, err := fieldIndex(name, size3)
	if err != nil {
		return 0, matrixErrorf(typMatrix3, opField, err)
	}

	return m.data[i], nil
}

// Row returns row i.
func (m Matrix3[T]) Row(i int) (vector.Vector3[T], error) {
	if err := validateIndex(i, dim3); err != nil {
		return vector.Vector3[T]{}, matrixErrorf(typMatrix3, opRow, err)
	}
	r := m.data[i*dim3:]

	return vector.New3(r[0], r[1], r[2]), nil
}

// Col returns column i.
func (m Matrix3[T]) Col(i int) (vector.Vector3[T], error) {
	if err := validateIndex(i, dim3); err != nil {
		return vector.Vector3[T]{}, matrixErrorf(typMatrix3, opCol, err)
	}

	return vector.New3(m.data[i], m.data[dim3+i], m.data[2*dim3+i]), nil
}

// SetRow replaces row i with v.
func (m *Matrix3[T]) SetRow(i int, v vector.Vector3[T]) error {
	if err := validateIndex(i, dim3); err != nil {
		return matrixErrorf(typMatrix3, opSetRow, err)
	}
	copy(m.data[i*dim3:], []T{v.X, v.Y, v.Z})

	return nil
}

// SetCol replaces column i with v.
func (m *Matrix3[T]) SetCol(i int, v vector.Vector3[T]) error {
	if err := validateIndex(i, dim3); err != nil {
		return matrixErrorf(typMatrix3, opSetCol, err)
	}
	m.data[i], m.data[dim3+i], m.data[2*dim3+i] = v.X, v.Y, v.Z

	return nil
}

// String renders the grid layout.
func (m Matrix3[T]) String() string { return m.Render() }

// Render lays out m according to opts.
func (m Matrix3[T]) Render(opts ...Option) string {
	return render(typMatrix3, dim3, m.data[:], gatherOptions(opts...))
}
