// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and seeded random generators.
//   - Keep random data bounded so determinants stay well inside float64 range.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/mpml/matrix"
)

// tol is the absolute tolerance for well-conditioned float64 fixtures.
const tol = 1e-9

// trials is the number of random cases per property.
const trials = 200

// fixture3 has det 24 and integer cofactors.
func fixture3[T int | float64]() matrix.Matrix3[T] {
	return matrix.New3[T](
		2, -1, 0,
		1, 3, 2,
		0, 1, 4,
	)
}

// fixture4 has det 30; column 1 has a single non-zero entry.
func fixture4[T int | float64]() matrix.Matrix4[T] {
	return matrix.New4[T](
		1, 0, 2, -1,
		3, 0, 0, 5,
		2, 1, 4, -3,
		1, 0, 5, 0,
	)
}

// randFloat returns a value in [-5, 5).
func randFloat(rng *rand.Rand) float64 { return rng.Float64()*10 - 5 }

// randInt returns a value in [-9, 9].
func randInt(rng *rand.Rand) int { return rng.Intn(19) - 9 }

func randMatrix2(rng *rand.Rand) matrix.Matrix2[float64] {
	var a [4]float64
	for i := range a {
		a[i] = randFloat(rng)
	}

	return matrix.FromArray2(a)
}

func randMatrix3(rng *rand.Rand) matrix.Matrix3[float64] {
	var a [9]float64
	for i := range a {
		a[i] = randFloat(rng)
	}

	return matrix.FromArray3(a)
}

func randMatrix4(rng *rand.Rand) matrix.Matrix4[float64] {
	var a [16]float64
	for i := range a {
		a[i] = randFloat(rng)
	}

	return matrix.FromArray4(a)
}

func randIntMatrix4(rng *rand.Rand) matrix.Matrix4[int] {
	var a [16]int
	for i := range a {
		a[i] = randInt(rng)
	}

	return matrix.FromArray4(a)
}

// requireAllClose fails the test unless want and got agree within eps.
func requireAllClose(t testing.TB, want, got matrix.Square[float64], eps float64) {
	t.Helper()
	require.Truef(t, matrix.AllClose(want, got, eps), "want\n%s\ngot\n%s", want.Render(), got.Render())
}

// requireRelClose compares scalars with a tolerance scaled by |want|.
func requireRelClose(t testing.TB, want, got, rel float64) {
	t.Helper()
	require.InDelta(t, want, got, rel*math.Max(1, math.Abs(want)))
}

// apply4 multiplies m by the full homogeneous vector v, recomputing w.
func apply4(m matrix.Matrix4[float64], v [4]float64) [4]float64 {
	a := m.Array()
	var out [4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i] += a[i*4+j] * v[j]
		}
	}

	return out
}
