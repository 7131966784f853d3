// SPDX-License-Identifier: MIT

// Package quaternion provides quaternions over numbers.Scalar and the
// rotation utilities built on them. Quaternions are plain values; Set is
// the only method with a pointer receiver.
package quaternion

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mpml/angle"
	"github.com/katalvlaran/mpml/numbers"
	"github.com/katalvlaran/mpml/vector"
)

// ErrOutOfRange indicates that a component index is outside [0, 4).
var ErrOutOfRange = errors.New("quaternion: index out of range")

// Quaternion is s + xi + yj + zk.
type Quaternion[T numbers.Scalar] struct {
	S, X, Y, Z T
}

// New returns s + xi + yj + zk.
func New[T numbers.Scalar](s, x, y, z T) Quaternion[T] { return Quaternion[T]{S: s, X: x, Y: y, Z: z} }

// FromScalarVector returns s + v.X·i + v.Y·j + v.Z·k.
func FromScalarVector[T numbers.Scalar](s T, v vector.Vector3[T]) Quaternion[T] {
	return Quaternion[T]{S: s, X: v.X, Y: v.Y, Z: v.Z}
}

// Identity returns 1 + 0i + 0j + 0k.
func Identity[T numbers.Scalar]() Quaternion[T] { return Quaternion[T]{S: 1} }

// FromAxisAngle returns the unit quaternion rotating by a about axis:
// (cos(a/2), sin(a/2)·normal(axis)). A zero axis yields (cos(a/2), 0, 0, 0).
func FromAxisAngle[T numbers.Float](a angle.Angle, axis vector.Vector3[T]) Quaternion[T] {
	sin, cos := math.Sincos(float64(a.Radians()) / 2)
	n := axis.Normal().Scale(T(sin))

	return FromScalarVector(T(cos), n)
}

// Rotate returns the rotation by a about q's own vector part.
func (q Quaternion[T]) Rotate(a angle.Angle) Quaternion[T] {
	sin, cos := math.Sincos(float64(a.Radians()) / 2)
	n := q.Vector().Normal()

	return New(T(cos), n.X*T(sin), n.Y*T(sin), n.Z*T(sin))
}

// Vector returns the imaginary part (x, y, z).
func (q Quaternion[T]) Vector() vector.Vector3[T] { return vector.New3(q.X, q.Y, q.Z) }

// Dot returns the 4-component dot product.
func (q Quaternion[T]) Dot(p Quaternion[T]) T { return q.S*p.S + q.X*p.X + q.Y*p.Y + q.Z*p.Z }

// Conjugate returns s − xi − yj − zk.
func (q Quaternion[T]) Conjugate() Quaternion[T] { return Quaternion[T]{q.S, -q.X, -q.Y, -q.Z} }

// LengthSquared returns q·q.
func (q Quaternion[T]) LengthSquared() T { return q.Dot(q) }

// Length returns |q|; the zero quaternion has length 0.
func (q Quaternion[T]) Length() T {
	l2 := q.LengthSquared()
	if l2 == 0 {
		return 0
	}

	return numbers.Sqrt(l2)
}

// Normal returns q/|q|, or the zero quaternion when |q| == 0.
func (q Quaternion[T]) Normal() Quaternion[T] {
	l := q.Length()
	if l == 0 {
		return Quaternion[T]{}
	}

	return q.DivScalar(l)
}

// Inverse returns conj(q)/|q|², or the zero quaternion when q is zero.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	l2 := q.LengthSquared()
	if l2 == 0 {
		return Quaternion[T]{}
	}

	return q.Conjugate().DivScalar(l2)
}

// Mul returns the Hamilton product q·p.
func (q Quaternion[T]) Mul(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		S: q.S*p.S - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.S*p.X + p.S*q.X + q.Y*p.Z - p.Y*q.Z,
		Y: q.S*p.Y + p.S*q.Y + q.Z*p.X - p.Z*q.X,
		Z: q.S*p.Z + p.S*q.Z + q.X*p.Y - p.X*q.Y,
	}
}

// Add returns q + p.
func (q Quaternion[T]) Add(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.S + p.S, q.X + p.X, q.Y + p.Y, q.Z + p.Z}
}

// Sub returns q − p.
func (q Quaternion[T]) Sub(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.S - p.S, q.X - p.X, q.Y - p.Y, q.Z - p.Z}
}

// Scale returns k·q.
func (q Quaternion[T]) Scale(k T) Quaternion[T] {
	return Quaternion[T]{q.S * k, q.X * k, q.Y * k, q.Z * k}
}

// DivScalar returns q/k.
func (q Quaternion[T]) DivScalar(k T) Quaternion[T] {
	return Quaternion[T]{q.S / k, q.X / k, q.Y / k, q.Z / k}
}

// At returns component i (0→S, 1→X, 2→Y, 3→Z).
func (q Quaternion[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return q.S, nil
	case 1:
		return q.X, nil
	case 2:
		return q.Y, nil
	case 3:
		return q.Z, nil
	}

	return 0, fmt.Errorf("Quaternion.At(%d): %w", i, ErrOutOfRange)
}

// Set assigns component i.
func (q *Quaternion[T]) Set(i int, v T) error {
	switch i {
	case 0:
		q.S = v
	case 1:
		q.X = v
	case 2:
		q.Y = v
	case 3:
		q.Z = v
	default:
		return fmt.Errorf("Quaternion.Set(%d): %w", i, ErrOutOfRange)
	}

	return nil
}

// String implements fmt.Stringer.
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v; %v, %v, %v)", q.S, q.X, q.Y, q.Z)
}
