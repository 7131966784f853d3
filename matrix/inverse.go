// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Inversion and matrix division for floating-point element types.
//
// Contract:
//   - A matrix is singular iff Det() == 0 exactly; there is no tolerance.
//   - Non-mutating forms report singularity through ok=false and never error.
//   - Compound (in-place) forms return an error wrapping ErrSingular and
//     leave the target untouched.
//
// Complexity:
//   - Inverse via the adjugate: N² cofactors of size (N-1).

package matrix

import "github.com/katalvlaran/mpml/numbers"

// Inverse2 returns m⁻¹ = Adj(m)/Det(m), or ok=false when Det(m) == 0.
func Inverse2[T numbers.Float](m Matrix2[T]) (Matrix2[T], bool) {
	det := m.Det()
	if det == 0 {
		return Matrix2[T]{}, false
	}

	return m.Adj().DivScalar(det), true
}

// Inverse3 returns m⁻¹, or ok=false when Det(m) == 0.
func Inverse3[T numbers.Float](m Matrix3[T]) (Matrix3[T], bool) {
	det := m.Det()
	if det == 0 {
		return Matrix3[T]{}, false
	}

	return m.Adj().DivScalar(det), true
}

// Inverse4 returns m⁻¹, or ok=false when Det(m) == 0.
func Inverse4[T numbers.Float](m Matrix4[T]) (Matrix4[T], bool) {
	det := m.Det()
	if det == 0 {
		return Matrix4[T]{}, false
	}

	return m.Adj().DivScalar(det), true
}

// Div2 returns a·b⁻¹, or ok=false when b is singular.
func Div2[T numbers.Float](a, b Matrix2[T]) (Matrix2[T], bool) {
	inv, ok := Inverse2(b)
	if !ok {
		return Matrix2[T]{}, false
	}

	return a.Mul(inv), true
}

// Div3 returns a·b⁻¹, or ok=false when b is singular.
func Div3[T numbers.Float](a, b Matrix3[T]) (Matrix3[T], bool) {
	inv, ok := Inverse3(b)
	if !ok {
		return Matrix3[T]{}, false
	}

	return a.Mul(inv), true
}

// Div4 returns a·b⁻¹, or ok=false when b is singular.
func Div4[T numbers.Float](a, b Matrix4[T]) (Matrix4[T], bool) {
	inv, ok := Inverse4(b)
	if !ok {
		return Matrix4[T]{}, false
	}

	return a.Mul(inv), true
}

// DivAssign2 sets *a = a·b⁻¹.
//
// Errors:
//   - ErrNilMatrix if a is nil.
//   - ErrSingular if Det(b) == 0; *a is left unchanged.
func DivAssign2[T numbers.Float](a *Matrix2[T], b Matrix2[T]) error {
	if a == nil {
		return matrixErrorf(typMatrix2, opDivAssign, ErrNilMatrix)
	}
	q, ok := Div2(*a, b)
	if !ok {
		return matrixErrorf(typMatrix2, opDivAssign, ErrSingular)
	}
	*a = q

	return nil
}

// DivAssign3 sets *a = a·b⁻¹. See DivAssign2 for errors.
func DivAssign3[T numbers.Float](a *Matrix3[T], b Matrix3[T]) error {
	if a == nil {
		return matrixErrorf(typMatrix3, opDivAssign, ErrNilMatrix)
	}
	q, ok := Div3(*a, b)
	if !ok {
		return matrixErrorf(typMatrix3, opDivAssign, ErrSingular)
	}
	*a = q

	return nil
}

// DivAssign4 sets *a = a·b⁻¹. See DivAssign2 for errors.
func DivAssign4[T numbers.Float](a *Matrix4[T], b Matrix4[T]) error {
	if a == nil {
		return matrixErrorf(typMatrix4, opDivAssign, ErrNilMatrix)
	}
	q, ok := Div4(*a, b)
	if !ok {
		return matrixErrorf(typMatrix4, opDivAssign, ErrSingular)
	}
	*a = q

	return nil
}
