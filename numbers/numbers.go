// SPDX-License-Identifier: MIT

// Package numbers defines the scalar contract shared by every mpml type,
// a handful of math constants and small pure numeric helpers.
//
// Purpose:
//   - Provide one canonical type-set (Scalar) for vectors, matrices and quaternions.
//   - Provide a narrower type-set (Float) for operations that need true division.
//
// Notes:
//   - Unsigned integers are intentionally left out of Scalar: cofactor signs,
//     negation and conjugation are meaningless on them.
package numbers

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the element constraint of every vector, matrix and quaternion type.
// It admits signed integers and floating-point numbers.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Float restricts a type parameter to floating-point scalars.
// Operations built on non-exact division (Inverse, Perspective, LookAt…)
// require it so that integer misuse is rejected at compile time.
type Float interface {
	constraints.Float
}

// Math constants in both precisions.
const (
	// PiF is π as float32.
	PiF float32 = math.Pi
	// PiD is π as float64.
	PiD float64 = math.Pi

	// EF is Euler's number as float32.
	EF float32 = math.E
	// ED is Euler's number as float64.
	ED float64 = math.E
)

// Abs returns |x|.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Min returns the smaller of a and b.
func Min[T Scalar](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func Max[T Scalar](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Sqrt returns √x computed in float64 and converted back to T.
// For integer T the result is truncated toward zero.
func Sqrt[T Scalar](x T) T {
	return T(math.Sqrt(float64(x)))
}
