// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/mpml/angle"
	"github.com/katalvlaran/mpml/numbers"
)

// Vector4 is a homogeneous 4-component vector.
//
// Geometry and arithmetic act on X, Y, Z only; W is the homogeneous
// coordinate and is carried through unchanged from the receiver. This lets
// points (W=1) and directions (W=0) go through vector math without the
// fourth component leaking into lengths or dot products.
type Vector4[T numbers.Scalar] struct {
	X, Y, Z, W T
}

// New4 returns (x, y, z, w).
func New4[T numbers.Scalar](x, y, z, w T) Vector4[T] { return Vector4[T]{X: x, Y: y, Z: z, W: w} }

// Point4 returns the homogeneous point (x, y, z, 1).
func Point4[T numbers.Scalar](x, y, z T) Vector4[T] { return Vector4[T]{X: x, Y: y, Z: z, W: 1} }

// Splat4 returns (s, s, s, s).
func Splat4[T numbers.Scalar](s T) Vector4[T] { return Vector4[T]{X: s, Y: s, Z: s, W: s} }

// FromVector3 promotes v to (v.X, v.Y, v.Z, w).
func FromVector3[T numbers.Scalar](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// FromVector2s concatenates a and b into (a.X, a.Y, b.X, b.Y).
func FromVector2s[T numbers.Scalar](a, b Vector2[T]) Vector4[T] {
	return Vector4[T]{X: a.X, Y: a.Y, Z: b.X, W: b.Y}
}

// XAxis4 returns (1, 0, 0, 0).
func XAxis4[T numbers.Scalar]() Vector4[T] { return Vector4[T]{X: 1} }

// YAxis4 returns (0, 1, 0, 0).
func YAxis4[T numbers.Scalar]() Vector4[T] { return Vector4[T]{Y: 1} }

// ZAxis4 returns (0, 0, 1, 0).
func ZAxis4[T numbers.Scalar]() Vector4[T] { return Vector4[T]{Z: 1} }

// WAxis4 returns (0, 0, 0, 1).
func WAxis4[T numbers.Scalar]() Vector4[T] { return Vector4[T]{W: 1} }

// XYZ drops the homogeneous component.
func (v Vector4[T]) XYZ() Vector3[T] { return Vector3[T]{X: v.X, Y: v.Y, Z: v.Z} }

// with rebuilds a Vector4 from xyz and the receiver's W.
func (v Vector4[T]) with(u Vector3[T]) Vector4[T] { return FromVector3(u, v.W) }

// Add returns v + w on xyz.
func (v Vector4[T]) Add(w Vector4[T]) Vector4[T] { return v.with(v.XYZ().Add(w.XYZ())) }

// Sub returns v - w on xyz.
func (v Vector4[T]) Sub(w Vector4[T]) Vector4[T] { return v.with(v.XYZ().Sub(w.XYZ())) }

// Mul returns the componentwise product on xyz.
func (v Vector4[T]) Mul(w Vector4[T]) Vector4[T] { return v.with(v.XYZ().Mul(w.XYZ())) }

// Scale returns k·v on xyz.
func (v Vector4[T]) Scale(k T) Vector4[T] { return v.with(v.XYZ().Scale(k)) }

// DivScalar returns v/k on xyz.
func (v Vector4[T]) DivScalar(k T) Vector4[T] { return v.with(v.XYZ().DivScalar(k)) }

// AddScalar adds k to x, y and z.
func (v Vector4[T]) AddScalar(k T) Vector4[T] { return v.with(v.XYZ().AddScalar(k)) }

// SubScalar subtracts k from x, y and z.
func (v Vector4[T]) SubScalar(k T) Vector4[T] { return v.with(v.XYZ().SubScalar(k)) }

// Neg negates x, y and z.
func (v Vector4[T]) Neg() Vector4[T] { return v.with(v.XYZ().Neg()) }

// Dot returns the xyz dot product.
func (v Vector4[T]) Dot(w Vector4[T]) T { return v.XYZ().Dot(w.XYZ()) }

// Cross returns the xyz cross product with W = 1.
func (v Vector4[T]) Cross(w Vector4[T]) Vector4[T] { return FromVector3(v.XYZ().Cross(w.XYZ()), 1) }

// LengthSquared returns the squared xyz length.
func (v Vector4[T]) LengthSquared() T { return v.XYZ().LengthSquared() }

// Length returns the xyz length.
func (v Vector4[T]) Length() T { return v.XYZ().Length() }

// Normal returns v with xyz normalised; a zero xyz stays zero.
func (v Vector4[T]) Normal() Vector4[T] { return v.with(v.XYZ().Normal()) }

// Distance returns the xyz distance between v and w.
func (v Vector4[T]) Distance(w Vector4[T]) T { return v.XYZ().Distance(w.XYZ()) }

// DistanceSquared returns the squared xyz distance between v and w.
func (v Vector4[T]) DistanceSquared(w Vector4[T]) T { return v.XYZ().DistanceSquared(w.XYZ()) }

// Angle returns the unsigned xyz angle between v and w.
func (v Vector4[T]) Angle(w Vector4[T]) angle.Angle { return v.XYZ().Angle(w.XYZ()) }

// Project returns the xyz projection of v onto w.
func (v Vector4[T]) Project(w Vector4[T]) Vector4[T] { return v.with(v.XYZ().Project(w.XYZ())) }

// Reflect returns the xyz reflection of v about w.
func (v Vector4[T]) Reflect(w Vector4[T]) Vector4[T] { return v.with(v.XYZ().Reflect(w.XYZ())) }

// Reject returns the xyz rejection of v from w.
func (v Vector4[T]) Reject(w Vector4[T]) Vector4[T] { return v.with(v.XYZ().Reject(w.XYZ())) }

// EqualXYZ reports whether v and w agree on x, y and z, ignoring W.
func (v Vector4[T]) EqualXYZ(w Vector4[T]) bool { return v.XYZ() == w.XYZ() }

// At returns component i (0→X … 3→W) or ErrOutOfRange.
func (v Vector4[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}

	return 0, indexErrorf("Vector4", "At", i, ErrOutOfRange)
}

// Set assigns component i or returns ErrOutOfRange.
func (v *Vector4[T]) Set(i int, x T) error {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		return indexErrorf("Vector4", "Set", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components in index order.
func (v Vector4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// String implements fmt.Stringer.
func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
