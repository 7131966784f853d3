// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/mpml/numbers"

// Componentwise helpers. Vector4 variants operate on all four components,
// since abs/min/max are meaningful for the homogeneous coordinate too.

// Abs2 returns (|v.X|, |v.Y|).
func Abs2[T numbers.Scalar](v Vector2[T]) Vector2[T] {
	return Vector2[T]{numbers.Abs(v.X), numbers.Abs(v.Y)}
}

// Min2 returns the componentwise minimum of a and b.
func Min2[T numbers.Scalar](a, b Vector2[T]) Vector2[T] {
	return Vector2[T]{numbers.Min(a.X, b.X), numbers.Min(a.Y, b.Y)}
}

// Max2 returns the componentwise maximum of a and b.
func Max2[T numbers.Scalar](a, b Vector2[T]) Vector2[T] {
	return Vector2[T]{numbers.Max(a.X, b.X), numbers.Max(a.Y, b.Y)}
}

// Average2 returns (a + b) / 2.
func Average2[T numbers.Scalar](a, b Vector2[T]) Vector2[T] { return a.Add(b).DivScalar(2) }

// Abs3 returns the componentwise absolute value of v.
func Abs3[T numbers.Scalar](v Vector3[T]) Vector3[T] {
	return Vector3[T]{numbers.Abs(v.X), numbers.Abs(v.Y), numbers.Abs(v.Z)}
}

// Min3 returns the componentwise minimum of a and b.
func Min3[T numbers.Scalar](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{numbers.Min(a.X, b.X), numbers.Min(a.Y, b.Y), numbers.Min(a.Z, b.Z)}
}

// Max3 returns the componentwise maximum of a and b.
func Max3[T numbers.Scalar](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{numbers.Max(a.X, b.X), numbers.Max(a.Y, b.Y), numbers.Max(a.Z, b.Z)}
}

// Average3 returns (a + b) / 2.
func Average3[T numbers.Scalar](a, b Vector3[T]) Vector3[T] { return a.Add(b).DivScalar(2) }

// Abs4 returns the componentwise absolute value of v.
func Abs4[T numbers.Scalar](v Vector4[T]) Vector4[T] {
	return Vector4[T]{numbers.Abs(v.X), numbers.Abs(v.Y), numbers.Abs(v.Z), numbers.Abs(v.W)}
}

// Min4 returns the componentwise minimum of a and b.
func Min4[T numbers.Scalar](a, b Vector4[T]) Vector4[T] {
	return Vector4[T]{numbers.Min(a.X, b.X), numbers.Min(a.Y, b.Y), numbers.Min(a.Z, b.Z), numbers.Min(a.W, b.W)}
}

// Max4 returns the componentwise maximum of a and b.
func Max4[T numbers.Scalar](a, b Vector4[T]) Vector4[T] {
	return Vector4[T]{numbers.Max(a.X, b.X), numbers.Max(a.Y, b.Y), numbers.Max(a.Z, b.Z), numbers.Max(a.W, b.W)}
}

// Average4 returns the componentwise mean of a and b, W included.
func Average4[T numbers.Scalar](a, b Vector4[T]) Vector4[T] {
	return Vector4[T]{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2, (a.W + b.W) / 2}
}
