// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mpml/angle"
	"github.com/katalvlaran/mpml/numbers"
)

// Vector2 is a 2-component vector.
type Vector2[T numbers.Scalar] struct {
	X, Y T
}

// New2 returns (x, y).
func New2[T numbers.Scalar](x, y T) Vector2[T] { return Vector2[T]{X: x, Y: y} }

// Splat2 returns (s, s).
func Splat2[T numbers.Scalar](s T) Vector2[T] { return Vector2[T]{X: s, Y: s} }

// XAxis2 returns the unit x axis.
func XAxis2[T numbers.Scalar]() Vector2[T] { return Vector2[T]{X: 1} }

// YAxis2 returns the unit y axis.
func YAxis2[T numbers.Scalar]() Vector2[T] { return Vector2[T]{Y: 1} }

// Add returns v + w.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] { return Vector2[T]{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] { return Vector2[T]{v.X - w.X, v.Y - w.Y} }

// Mul returns the componentwise product of v and w.
func (v Vector2[T]) Mul(w Vector2[T]) Vector2[T] { return Vector2[T]{v.X * w.X, v.Y * w.Y} }

// Scale returns k·v.
func (v Vector2[T]) Scale(k T) Vector2[T] { return Vector2[T]{v.X * k, v.Y * k} }

// DivScalar returns v/k componentwise.
func (v Vector2[T]) DivScalar(k T) Vector2[T] { return Vector2[T]{v.X / k, v.Y / k} }

// AddScalar returns v + (k, k).
func (v Vector2[T]) AddScalar(k T) Vector2[T] { return Vector2[T]{v.X + k, v.Y + k} }

// SubScalar returns v - (k, k).
func (v Vector2[T]) SubScalar(k T) Vector2[T] { return Vector2[T]{v.X - k, v.Y - k} }

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] { return Vector2[T]{-v.X, -v.Y} }

// Dot returns v ⋅ w.
func (v Vector2[T]) Dot(w Vector2[T]) T { return v.X*w.X + v.Y*w.Y }

// Cross returns the z component of (v, 0) × (w, 0).
func (v Vector2[T]) Cross(w Vector2[T]) T { return v.X*w.Y - v.Y*w.X }

// LengthSquared returns v ⋅ v.
func (v Vector2[T]) LengthSquared() T { return v.Dot(v) }

// Length returns |v|. The zero vector has length 0.
func (v Vector2[T]) Length() T {
	l2 := v.LengthSquared()
	if l2 == 0 {
		return 0
	}

	return numbers.Sqrt(l2)
}

// Normal returns v/|v|, or the zero vector when |v| == 0.
func (v Vector2[T]) Normal() Vector2[T] {
	l := v.Length()
	if l == 0 {
		return Vector2[T]{}
	}

	return v.DivScalar(l)
}

// Distance returns |v - w|.
func (v Vector2[T]) Distance(w Vector2[T]) T { return v.Sub(w).Length() }

// DistanceSquared returns |v - w|².
func (v Vector2[T]) DistanceSquared(w Vector2[T]) T { return v.Sub(w).LengthSquared() }

// Angle returns the unsigned angle between v and w.
func (v Vector2[T]) Angle(w Vector2[T]) angle.Angle {
	c := float64(v.Dot(w)) / (float64(v.Length()) * float64(w.Length()))
	return angle.FromRadians(float32(math.Acos(c)))
}

// Project returns the projection of v onto the direction of w.
func (v Vector2[T]) Project(w Vector2[T]) Vector2[T] {
	n := w.Normal()
	return n.Scale(v.Dot(n))
}

// Reflect returns v - 2·project(v, w).
func (v Vector2[T]) Reflect(w Vector2[T]) Vector2[T] { return v.Sub(v.Project(w).Scale(2)) }

// Reject returns v - project(v, w).
func (v Vector2[T]) Reject(w Vector2[T]) Vector2[T] { return v.Sub(v.Project(w)) }

// At returns component i (0→X, 1→Y) or ErrOutOfRange.
func (v Vector2[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}

	return 0, indexErrorf("Vector2", "At", i, ErrOutOfRange)
}

// Set assigns component i or returns ErrOutOfRange.
func (v *Vector2[T]) Set(i int, x T) error {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		return indexErrorf("Vector2", "Set", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components in index order.
func (v Vector2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// String implements fmt.Stringer.
func (v Vector2[T]) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }
