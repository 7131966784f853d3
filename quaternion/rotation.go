// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/mpml/angle"
	"github.com/katalvlaran/mpml/matrix"
	"github.com/katalvlaran/mpml/numbers"
	"github.com/katalvlaran/mpml/vector"
)

// RotationMatrix returns the 3×3 rotation matrix of q, assumed unit length.
func RotationMatrix[T numbers.Scalar](q Quaternion[T]) matrix.Matrix3[T] {
	s, x, y, z := q.S, q.X, q.Y, q.Z

	return matrix.New3(
		1-2*(y*y+z*z), 2*(x*y-s*z), 2*(x*z+s*y),
		2*(x*y+s*z), 1-2*(x*x+z*z), 2*(y*z-s*x),
		2*(x*z-s*y), 2*(y*z+s*x), 1-2*(x*x+y*y),
	)
}

// RotationMatrix4 embeds RotationMatrix(q) in a homogeneous transform.
func RotationMatrix4[T numbers.Scalar](q Quaternion[T]) matrix.Matrix4[T] {
	return matrix.FromMatrix3(RotationMatrix(q))
}

// Rotate returns the homogeneous transform rotating by a about axis.
func Rotate[T numbers.Float](a angle.Angle, axis vector.Vector3[T]) matrix.Matrix4[T] {
	return RotationMatrix4(FromAxisAngle(a, axis))
}

// RotateMatrix returns m·Rotate(a, axis): the rotation applies before m.
func RotateMatrix[T numbers.Float](m matrix.Matrix4[T], a angle.Angle, axis vector.Vector3[T]) matrix.Matrix4[T] {
	return m.Mul(Rotate(a, axis))
}

// RotateAsQuaternion rotates v by a about axis as q·(0, v)·q̄ and returns
// the full product; its scalar part is zero up to rounding.
func RotateAsQuaternion[T numbers.Float](a angle.Angle, v, axis vector.Vector3[T]) Quaternion[T] {
	q := FromAxisAngle(a, axis)

	return q.Mul(FromScalarVector(0, v)).Mul(q.Conjugate())
}

// RotateVector rotates v by a about axis.
func RotateVector[T numbers.Float](a angle.Angle, v, axis vector.Vector3[T]) vector.Vector3[T] {
	return RotateAsQuaternion(a, v, axis).Vector()
}
