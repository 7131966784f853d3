// SPDX-License-Identifier: MIT

// Package vector provides 2-, 3- and 4-component vectors over any
// numbers.Scalar. All types are plain values: methods never mutate the
// receiver except Set, which takes a pointer.
package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mpml/angle"
	"github.com/katalvlaran/mpml/numbers"
)

// Vector3 is a 3-component vector.
type Vector3[T numbers.Scalar] struct {
	X, Y, Z T
}

// New3 returns (x, y, z).
func New3[T numbers.Scalar](x, y, z T) Vector3[T] { return Vector3[T]{X: x, Y: y, Z: z} }

// Splat3 returns (s, s, s).
func Splat3[T numbers.Scalar](s T) Vector3[T] { return Vector3[T]{X: s, Y: s, Z: s} }

// XAxis3 returns the unit x axis.
func XAxis3[T numbers.Scalar]() Vector3[T] { return Vector3[T]{X: 1} }

// YAxis3 returns the unit y axis.
func YAxis3[T numbers.Scalar]() Vector3[T] { return Vector3[T]{Y: 1} }

// ZAxis3 returns the unit z axis.
func ZAxis3[T numbers.Scalar]() Vector3[T] { return Vector3[T]{Z: 1} }

// Add returns v + w.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns the componentwise product of v and w.
func (v Vector3[T]) Mul(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Scale returns k·v.
func (v Vector3[T]) Scale(k T) Vector3[T] {
	return Vector3[T]{v.X * k, v.Y * k, v.Z * k}
}

// DivScalar returns v/k componentwise.
func (v Vector3[T]) DivScalar(k T) Vector3[T] {
	return Vector3[T]{v.X / k, v.Y / k, v.Z / k}
}

// AddScalar returns v + (k, k, k).
func (v Vector3[T]) AddScalar(k T) Vector3[T] {
	return Vector3[T]{v.X + k, v.Y + k, v.Z + k}
}

// SubScalar returns v - (k, k, k).
func (v Vector3[T]) SubScalar(k T) Vector3[T] {
	return Vector3[T]{v.X - k, v.Y - k, v.Z - k}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] { return Vector3[T]{-v.X, -v.Y, -v.Z} }

// Dot returns v ⋅ w.
func (v Vector3[T]) Dot(w Vector3[T]) T { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns v × w.
func (v Vector3[T]) Cross(w Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns v ⋅ v.
func (v Vector3[T]) LengthSquared() T { return v.Dot(v) }

// Length returns |v|. The zero vector has length 0.
func (v Vector3[T]) Length() T {
	l2 := v.LengthSquared()
	if l2 == 0 {
		return 0
	}

	return numbers.Sqrt(l2)
}

// Normal returns v/|v|, or the zero vector when |v| == 0.
func (v Vector3[T]) Normal() Vector3[T] {
	l := v.Length()
	if l == 0 {
		return Vector3[T]{}
	}

	return v.DivScalar(l)
}

// Distance returns |v - w|.
func (v Vector3[T]) Distance(w Vector3[T]) T { return v.Sub(w).Length() }

// DistanceSquared returns |v - w|².
func (v Vector3[T]) DistanceSquared(w Vector3[T]) T { return v.Sub(w).LengthSquared() }

// Angle returns the unsigned angle between v and w.
// Either operand being zero yields NaN radians.
func (v Vector3[T]) Angle(w Vector3[T]) angle.Angle {
	c := float64(v.Dot(w)) / (float64(v.Length()) * float64(w.Length()))
	return angle.FromRadians(float32(math.Acos(c)))
}

// Project returns the projection of v onto the direction of w.
func (v Vector3[T]) Project(w Vector3[T]) Vector3[T] {
	n := w.Normal()
	return n.Scale(v.Dot(n))
}

// Reflect returns v - 2·project(v, w).
func (v Vector3[T]) Reflect(w Vector3[T]) Vector3[T] {
	return v.Sub(v.Project(w).Scale(2))
}

// Reject returns v - project(v, w).
func (v Vector3[T]) Reject(w Vector3[T]) Vector3[T] {
	return v.Sub(v.Project(w))
}

// At returns component i (0→X, 1→Y, 2→Z) or ErrOutOfRange.
func (v Vector3[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}

	return 0, indexErrorf("Vector3", "At", i, ErrOutOfRange)
}

// Set assigns component i or returns ErrOutOfRange.
func (v *Vector3[T]) Set(i int, x T) error {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		return indexErrorf("Vector3", "Set", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components in index order.
func (v Vector3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// String implements fmt.Stringer.
func (v Vector3[T]) String() string { return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z) }
