// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/mpml/numbers"
	"github.com/katalvlaran/mpml/vector"
)

const (
	dim4  = 4
	size4 = dim4 * dim4
)

// Matrix4 is a 4×4 matrix stored row-major with fields named a..p:
//
//	| a b c d |
//	| e f g h |
//	| i j k l |
//	| m n o p |
//
// As a homogeneous transform the top-left 3×3 block is the linear part and
// column 3 (rows 0–2) is the translation.
type Matrix4[T numbers.Scalar] struct {
	data [size4]T
}

// New4 returns the matrix with the given elements in row-major order.
func New4[T numbers.Scalar](a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p T) Matrix4[T] {
	return Matrix4[T]{data: [size4]T{a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p}}
}

// FromArray4 wraps a row-major array.
func FromArray4[T numbers.Scalar](elems [size4]T) Matrix4[T] { return Matrix4[T]{data: elems} }

// FromColumns4 builds a matrix whose columns are c0..c3.
func FromColumns4[T numbers.Scalar](c0, c1, c2, c3 vector.Vector4[T]) Matrix4[T] {
	return New4(
		c0.X, c1.X, c2.X, c3.X,
		c0.Y, c1.Y, c2.Y, c3.Y,
		c0.Z, c1.Z, c2.Z, c3.Z,
		c0.W, c1.W, c2.W, c3.W,
	)
}

// FromRows4 builds a matrix whose rows are r0..r3.
func FromRows4[T numbers.Scalar](r0, r1, r2, r3 vector.Vector4[T]) Matrix4[T] {
	return New4(
		r0.X, r0.Y, r0.Z, r0.W,
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
	)
}

// FromMatrix3 embeds m3 as the linear part of a homogeneous transform:
// top-left block m3, zero translation, last row (0, 0, 0, 1).
func FromMatrix3[T numbers.Scalar](m3 Matrix3[T]) Matrix4[T] {
	d := m3.data

	return New4(
		d[0], d[1], d[2], 0,
		d[3], d[4], d[5], 0,
		d[6], d[7], d[8], 0,
		0, 0, 0, 1,
	)
}

// Identity4 returns the 4×4 identity.
func Identity4[T numbers.Scalar]() Matrix4[T] {
	var m Matrix4[T]
	identityInto(m.data[:], dim4, false)

	return m
}

// AntiDiagonalIdentity4 returns ones on the anti-diagonal.
func AntiDiagonalIdentity4[T numbers.Scalar]() Matrix4[T] {
	var m Matrix4[T]
	identityInto(m.data[:], dim4, true)

	return m
}

// Det expands along the first row with signs +, −, +, −.
func (m Matrix4[T]) Det() T {
	d := m.data

	return d[0]*m.minor(0).Det() -
		d[1]*m.minor(1).Det() +
		d[2]*m.minor(2).Det() -
		d[3]*m.minor(3).Det()
}

func (m Matrix4[T]) minor(idx int) Matrix3[T] {
	var out Matrix3[T]
	extractMinor(out.data[:], m.data[:], dim4, idx)

	return out
}

// Minor returns the 3×3 submatrix left after deleting the row and column
// of flat index idx.
//
// Errors:
//   - ErrOutOfRange when idx is outside [0,16).
func (m Matrix4[T]) Minor(idx int) (Matrix3[T], error) {
	if err := validateIndex(idx, size4); err != nil {
		return Matrix3[T]{}, matrixErrorf(typMatrix4, opMinor, err)
	}

	return m.minor(idx), nil
}

func (m Matrix4[T]) cofactor(idx int) T { return signed(dim4, idx, m.minor(idx).Det()) }

// Cofactor returns (-1)^(row+col) · det(Minor(idx)).
func (m Matrix4[T]) Cofactor(idx int) (T, error) {
	if err := validateIndex(idx, size4); err != nil {
		return 0, matrixErrorf(typMatrix4, opCofactor, err)
	}

	return m.cofactor(idx), nil
}

// CofactorMatrix returns the matrix of cofactors.
// Complexity: 16 3×3 determinants.
func (m Matrix4[T]) CofactorMatrix() Matrix4[T] {
	var out Matrix4[T]
	for i := range out.data {
		out.data[i] = m.cofactor(i)
	}

	return out
}

// Adj returns the adjugate.
func (m Matrix4[T]) Adj() Matrix4[T] { return m.CofactorMatrix().Transpose() }

// Transpose returns mᵀ.
func (m Matrix4[T]) Transpose() Matrix4[T] {
	var out Matrix4[T]
	transposeInto(out.data[:], m.data[:], dim4)

	return out
}

// DetAlongRow computes the determinant by Laplace expansion along row r.
func (m Matrix4[T]) DetAlongRow(r int) (T, error) {
	if err := validateIndex(r, dim4); err != nil {
		return 0, matrixErrorf(typMatrix4, opDetRow, err)
	}
	var s T
	for j := 0; j < dim4; j++ {
		s += m.data[r*dim4+j] * m.cofactor(r*dim4+j)
	}

	return s, nil
}

// DetAlongCol computes the determinant by Laplace expansion along column c.
func (m Matrix4[T]) DetAlongCol(c int) (T, error) {
	if err := validateIndex(c, dim4); err != nil {
		return 0, matrixErrorf(typMatrix4, opDetCol, err)
	}
	var s T
	for i := 0; i < dim4; i++ {
		s += m.data[i*dim4+c] * m.cofactor(i*dim4+c)
	}

	return s, nil
}

// Trace returns the sum of the diagonal.
func (m Matrix4[T]) Trace() T { return traceOf(m.data[:], dim4) }

// Pow returns mⁿ; Pow(0) is the identity.
func (m Matrix4[T]) Pow(n uint) Matrix4[T] {
	out := Identity4[T]()
	for ; n > 0; n-- {
		out = out.Mul(m)
	}

	return out
}

// Add returns m + o.
func (m Matrix4[T]) Add(o Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	addInto(out.data[:], m.data[:], o.data[:])

	return out
}

// Sub returns m − o.
func (m Matrix4[T]) Sub(o Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	subInto(out.data[:], m.data[:], o.data[:])

	return out
}

// Mul returns the matrix product m·o. Applied to a vector, o acts first.
func (m Matrix4[T]) Mul(o Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	mulInto(out.data[:], m.data[:], o.data[:], dim4)

	return out
}

// Scale returns k·m.
func (m Matrix4[T]) Scale(k T) Matrix4[T] {
	var out Matrix4[T]
	scaleInto(out.data[:], m.data[:], k)

	return out
}

// DivScalar divides every element by k with T's division semantics.
func (m Matrix4[T]) DivScalar(k T) Matrix4[T] {
	var out Matrix4[T]
	divInto(out.data[:], m.data[:], k)

	return out
}

// Neg returns −m.
func (m Matrix4[T]) Neg() Matrix4[T] {
	var out Matrix4[T]
	negInto(out.data[:], m.data[:])

	return out
}

// AddAssign sets m = m + o.
func (m *Matrix4[T]) AddAssign(o Matrix4[T]) { *m = m.Add(o) }

// SubAssign sets m = m − o.
func (m *Matrix4[T]) SubAssign(o Matrix4[T]) { *m = m.Sub(o) }

// MulAssign sets m = m·o.
func (m *Matrix4[T]) MulAssign(o Matrix4[T]) { *m = m.Mul(o) }

// ScaleAssign sets m = k·m.
func (m *Matrix4[T]) ScaleAssign(k T) { *m = m.Scale(k) }

// DivScalarAssign sets m = m/k.
func (m *Matrix4[T]) DivScalarAssign(k T) { *m = m.DivScalar(k) }

// MulVec4 applies m to the homogeneous vector v. Rows 0–2 produce x, y, z;
// the homogeneous component passes through, so the result's W equals v.W.
func (m Matrix4[T]) MulVec4(v vector.Vector4[T]) vector.Vector4[T] {
	var out [dim4]T
	in := v.Array()
	mulVecInto(out[:], m.data[:], in[:], dim4)

	return vector.New4(out[0], out[1], out[2], v.W)
}

// MulVec3 treats v as the point (v, 1) and returns the xyz of m·(v, 1).
func (m Matrix4[T]) MulVec3(v vector.Vector3[T]) vector.Vector3[T] { return m.MulVec3W(v, 1) }

// MulVec3W treats v as (v, w) and returns the xyz of the product. Use w=0
// to transform a direction without translation.
func (m Matrix4[T]) MulVec3W(v vector.Vector3[T], w T) vector.Vector3[T] {
	return m.MulVec4(vector.FromVector3(v, w)).XYZ()
}

// Linear returns the top-left 3×3 block. Linear(FromMatrix3(m3)) == m3.
func (m Matrix4[T]) Linear() Matrix3[T] {
	d := m.data

	return New3(
		d[0], d[1], d[2],
		d[4], d[5], d[6],
		d[8], d[9], d[10],
	)
}

// Index returns the element at flat row-major index i.
func (m Matrix4[T]) Index(i int) (T, error) {
	if err := validateIndex(i, size4); err != nil {
		return 0, matrixErrorf(typMatrix4, opIndex, err)
	}

	return m.data[i], nil
}

// Array returns a copy of the row-major storage.
func (m Matrix4[T]) Array() [size4]T { return m.data }

// At returns the element at row r, column c.
func (m Matrix4[T]) At(r, c int) (T, error) {
	if err := validateCell(r, c, dim4); err != nil {
		return 0, matrixErrorf(typMatrix4, opAt, err)
	}

	return m.data[r*dim4+c], nil
}

// Set assigns the element at row r, column c.
func (m *Matrix4[T]) Set(r, c int, v T) error {
	if err := validateCell(r, c, dim4); err != nil {
		return matrixErrorf(typMatrix4, opSet, err)
	}
	m.data[r*dim4+c] = v

	return nil
}

// Field returns the element named 'a'..'p'.
func (m Matrix4[T]) Field(name byte) (T, error) {
	i, err := fieldIndex(name, size4)
	if err != nil {
		return 0, matrixErrorf(typMatrix4, opField, err)
	}

	return m.data[i], nil
}

// Row returns row i.
func (m Matrix4[T]) Row(i int) (vector.Vector4[T], error) {
	if err := validateIndex(i, dim4); err != nil {
		return vector.Vector4[T]{}, matrixErrorf(typMatrix4, opRow, err)
	}
	r := m.data[i*dim4:]

	return vector.New4(r[0], r[1], r[2], r[3]), nil
}

// Col returns column i.
func (m Matrix4[T]) Col(i int) (vector.Vector4[T], error) {
	if err := validateIndex(i, dim4); err != nil {
		return vector.Vector4[T]{}, matrixErrorf(typMatrix4, opCol, err)
	}
	d := m.data

	return vector.New4(d[i], d[dim4+i], d[2*dim4+i], d[3*dim4+i]), nil
}

// SetRow replaces row i with v.
func (m *Matrix4[T]) SetRow(i int, v vector.Vector4[T]) error {
	if err := validateIndex(i, dim4); err != nil {
		return matrixErrorf(typMatrix4, opSetRow, err)
	}
	copy(m.data[i*dim4:], []T{v.X, v.Y, v.Z, v.W})

	return nil
}

// SetCol replaces column i with v.
func (m *Matrix4[T]) SetCol(i int, v vector.Vector4[T]) error {
	if err := validateIndex(i, dim4); err != nil {
		return matrixErrorf(typMatrix4, opSetCol, err)
	}
	m.data[i], m.data[dim4+i], m.data[2*dim4+i], m.data[3*dim4+i] = v.X, v.Y, v.Z, v.W

	return nil
}

// String renders the grid layout.
func (m Matrix4[T]) String() string { return m.Render() }

// Render lays out m according to opts.
func (m Matrix4[T]) Render(opts ...Option) string {
	return render(typMatrix4, dim4, m.data[:], gatherOptions(opts...))
}
