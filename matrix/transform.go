// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Homogeneous transform builders: Translate, Scale, Perspective, LookAt.
//
// Conventions:
//   - Row-major storage, column vectors: a point p maps to M·p, so the
//     translation lives in column 3 of rows 0–2.
//   - Right-handed camera space: the camera looks down −Z.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mpml/angle"
	"github.com/katalvlaran/mpml/numbers"
	"github.com/katalvlaran/mpml/vector"
)

// Translate returns a copy of m with v added to the translation column,
// entries (0,3), (1,3) and (2,3). m is not modified.
func Translate[T numbers.Scalar](m Matrix4[T], v vector.Vector3[T]) Matrix4[T] {
	m.data[3] += v.X
	m.data[7] += v.Y
	m.data[11] += v.Z

	return m
}

// Scale returns a copy of m with s ADDED to the diagonal entries (0,0),
// (1,1) and (2,2).
//
// Notes:
//   - This is an additive bump, not a multiplicative scale. For a uniform
//     scale transform use m.Mul(FromMatrix3(Identity3[T]().Scale(s))).
func Scale[T numbers.Scalar](m Matrix4[T], s T) Matrix4[T] {
	m.data[0] += s
	m.data[5] += s
	m.data[10] += s

	return m
}

// Perspective builds a projection matrix from a viewport size, the
// near/far clipping distances and a vertical field of view.
//
// With f = 1/tan(fov/2) and a = width/height the right-handed layout is:
//
//	| f/a  0        0                       0            |
//	|  0   f        0                       0            |
//	|  0   0  (far+near)/(near-far)  2·far·near/(near-far) |
//	|  0   0       -1                       0            |
//
// Errors, checked in this order:
//   - ErrInvalidPlanes when near < 0 or far < near.
//   - ErrDivisionByZero when width, height or far-near is zero.
//   - ErrNotImplemented for WithHandedness(LeftHanded).
func Perspective[T numbers.Float](width, height, near, far T, fov angle.Angle, opts ...Option) (Matrix4[T], error) {
	if near < 0 || far < near {
		return Matrix4[T]{}, matrixErrorf("", opPerspective, fmt.Errorf("near=%v far=%v: %w", near, far, ErrInvalidPlanes))
	}
	if width == 0 || height == 0 {
		return Matrix4[T]{}, matrixErrorf("", opPerspective, fmt.Errorf("viewport %vx%v: %w", width, height, ErrDivisionByZero))
	}
	if near == far {
		return Matrix4[T]{}, matrixErrorf("", opPerspective, fmt.Errorf("near == far: %w", ErrDivisionByZero))
	}
	if o := gatherOptions(opts...); o.handedness == LeftHanded {
		return Matrix4[T]{}, matrixErrorf("", opPerspective, fmt.Errorf("left-handed: %w", ErrNotImplemented))
	}

	f := T(1 / math.Tan(float64(fov.Radians())/2))
	aspect := width / height
	depth := near - far

	return New4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)/depth, 2*far*near/depth,
		0, 0, -1, 0,
	), nil
}

// LookAt builds a right-handed view matrix for a camera at eye looking at
// center:
//
//	f = normal(center − eye), s = normal(f × up), u = s × f
//
// Rows 0–2 are s, u and −f; the translation column holds −s·eye, −u·eye
// and f·eye.
//
// Notes:
//   - up parallel to the view direction is not checked. The side and up
//     vectors collapse to zero, leaving rows 0 and 1 zero and row 2 as −f.
func LookAt[T numbers.Float](eye, center, up vector.Vector3[T]) Matrix4[T] {
	f := center.Sub(eye).Normal()
	s := f.Cross(up).Normal()
	u := s.Cross(f)

	return LookAtBasis(eye, f, u, s)
}

// LookAtBasis builds a view matrix from a caller-supplied orthonormal
// basis (forward, up, side) and camera position pos. No normalisation is
// performed, so it works for any Scalar.
func LookAtBasis[T numbers.Scalar](pos, forward, up, side vector.Vector3[T]) Matrix4[T] {
	return New4(
		side.X, side.Y, side.Z, -side.Dot(pos),
		up.X, up.Y, up.Z, -up.Dot(pos),
		-forward.X, -forward.Y, -forward.Z, forward.Dot(pos),
		0, 0, 0, 1,
	)
}
