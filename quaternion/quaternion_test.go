// SPDX-License-Identifier: MIT
package quaternion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	refq "github.com/westphae/quaternion"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/mpml/angle"
	"github.com/katalvlaran/mpml/matrix"
	"github.com/katalvlaran/mpml/quaternion"
	"github.com/katalvlaran/mpml/vector"
)

const tol = 1e-6

func requireVecClose(t *testing.T, want, got vector.Vector3[float64]) {
	t.Helper()
	require.InDeltaf(t, 0, want.Distance(got), tol, "want %v got %v", want, got)
}

func TestQuaternion_Algebra(t *testing.T) {
	i := quaternion.New(0, 1, 0, 0)
	j := quaternion.New(0, 0, 1, 0)
	k := quaternion.New(0, 0, 0, 1)
	minusOne := quaternion.New(-1, 0, 0, 0)

	// Hamilton's rules.
	assert.Equal(t, minusOne, i.Mul(i))
	assert.Equal(t, minusOne, j.Mul(j))
	assert.Equal(t, minusOne, k.Mul(k))
	assert.Equal(t, minusOne, i.Mul(j).Mul(k))
	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, k.Scale(-1), j.Mul(i))

	q := quaternion.New(1, 2, 3, 4)
	assert.Equal(t, quaternion.New(1, -2, -3, -4), q.Conjugate())
	assert.Equal(t, 30, q.LengthSquared())
	assert.Equal(t, 30, q.Dot(q))
	assert.Equal(t, quaternion.New(30, 0, 0, 0), q.Mul(q.Conjugate()))
	assert.Equal(t, q, q.Mul(quaternion.Identity[int]()))
	assert.Equal(t, quaternion.New(2, 4, 6, 8), q.Add(q))
	assert.Equal(t, quaternion.Quaternion[int]{}, q.Sub(q))
	assert.Equal(t, quaternion.New(0, 1, 1, 2), q.DivScalar(2))
	assert.Equal(t, vector.New3(2, 3, 4), q.Vector())
	assert.Equal(t, q, quaternion.FromScalarVector(1, vector.New3(2, 3, 4)))
	assert.Equal(t, "(1; 2, 3, 4)", q.String())
}

func TestQuaternion_LengthNormalInverse(t *testing.T) {
	q := quaternion.New(0.0, 3, 0, 4)
	assert.Equal(t, 5.0, q.Length())
	assert.Equal(t, quaternion.New(0.0, 0.6, 0, 0.8), q.Normal())

	inv := q.Inverse()
	got := q.Mul(inv)
	assert.InDelta(t, 1.0, got.S, tol)
	assert.InDelta(t, 0.0, got.Vector().Length(), tol)

	var zero quaternion.Quaternion[float64]
	assert.Equal(t, 0.0, zero.Length())
	assert.Equal(t, zero, zero.Normal())
	assert.Equal(t, zero, zero.Inverse())
}

func TestQuaternion_Index(t *testing.T) {
	q := quaternion.New(1, 2, 3, 4)
	for i, want := range []int{1, 2, 3, 4} {
		v, err := q.At(i)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	_, err := q.At(4)
	require.ErrorIs(t, err, quaternion.ErrOutOfRange)

	require.NoError(t, q.Set(0, 9))
	require.NoError(t, q.Set(3, 0))
	require.Equal(t, quaternion.New(9, 2, 3, 0), q)
	require.ErrorIs(t, q.Set(-1, 0), quaternion.ErrOutOfRange)
}

func TestFromAxisAngle(t *testing.T) {
	q := quaternion.FromAxisAngle(angle.FromDegrees(180), vector.New3(0.0, 0, 2))
	assert.InDelta(t, 0.0, q.S, tol)
	assert.InDelta(t, 1.0, q.Z, tol)
	assert.InDelta(t, 1.0, q.Length(), tol)

	// Rotate re-uses the receiver's vector part as the axis.
	r := quaternion.New(0.0, 0, 0, 5).Rotate(angle.FromDegrees(180))
	assert.InDelta(t, q.S, r.S, tol)
	assert.InDelta(t, q.Z, r.Z, tol)
}

func TestRotationMatrix(t *testing.T) {
	assert.Equal(t, matrix.Identity3[float64](), quaternion.RotationMatrix(quaternion.Identity[float64]()))
	assert.Equal(t, matrix.Identity4[float64](), quaternion.RotationMatrix4(quaternion.Identity[float64]()))

	quarter := angle.FromDegrees(90)
	z := vector.ZAxis3[float64]()
	m := quaternion.RotationMatrix(quaternion.FromAxisAngle(quarter, z))
	requireVecClose(t, vector.YAxis3[float64](), m.MulVec(vector.XAxis3[float64]()))
	assert.InDelta(t, 1.0, m.Det(), tol)

	m4 := quaternion.Rotate(quarter, z)
	requireVecClose(t, vector.New3(-1.0, 0, 0), m4.MulVec3(vector.YAxis3[float64]()))
	assert.Equal(t, m4.Linear(), m)
}

func TestRotateMatrix(t *testing.T) {
	tr := matrix.Translate(matrix.Identity4[float64](), vector.New3(10.0, 0, 0))
	m := quaternion.RotateMatrix(tr, angle.FromDegrees(90), vector.ZAxis3[float64]())

	// Rotation first, then translation.
	requireVecClose(t, vector.New3(10.0, 1, 0), m.MulVec3(vector.XAxis3[float64]()))
}

func TestRotateVector(t *testing.T) {
	got := quaternion.RotateVector(angle.FromDegrees(90), vector.XAxis3[float64](), vector.ZAxis3[float64]())
	requireVecClose(t, vector.YAxis3[float64](), got)

	q := quaternion.RotateAsQuaternion(angle.FromDegrees(90), vector.XAxis3[float64](), vector.ZAxis3[float64]())
	assert.InDelta(t, 0.0, q.S, tol)
}

// Quaternion sandwich and rotation matrix agree on random inputs.
func TestRotateVector_MatchesMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	r := func() float64 { return rng.Float64()*2 - 1 }

	for n := 0; n < 100; n++ {
		axis := vector.New3(r(), r(), r())
		if axis.Length() < 1e-3 {
			continue
		}
		v := vector.New3(r(), r(), r())
		a := angle.FromRadians(float32(r() * math.Pi))

		viaQ := quaternion.RotateVector(a, v, axis)
		viaM := quaternion.Rotate(a, axis).MulVec3(v)
		requireVecClose(t, viaM, viaQ)
		assert.InDelta(t, v.Length(), viaQ.Length(), tol)
	}
}

// Hamilton product and sandwich rotation agree with an independent
// float64 quaternion package.
func TestAgainstReferenceQuaternion(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	r := func() float64 { return rng.Float64()*2 - 1 }
	toRef := func(q quaternion.Quaternion[float64]) refq.Quaternion {
		return refq.Quaternion{W: q.S, X: q.X, Y: q.Y, Z: q.Z}
	}

	for n := 0; n < 100; n++ {
		p := quaternion.New(r(), r(), r(), r())
		q := quaternion.New(r(), r(), r(), r())

		want := refq.Prod(toRef(p), toRef(q))
		got := p.Mul(q)
		assert.InDelta(t, want.W, got.S, tol)
		assert.InDelta(t, want.X, got.X, tol)
		assert.InDelta(t, want.Y, got.Y, tol)
		assert.InDelta(t, want.Z, got.Z, tol)

		axis := vector.New3(r(), r(), r())
		if axis.Length() < 1e-3 {
			continue
		}
		v := vector.New3(r(), r(), r())
		e := toRef(quaternion.FromAxisAngle(angle.FromRadians(float32(r()*math.Pi)), axis))
		rotated := refq.Prod(e, refq.Quaternion{X: v.X, Y: v.Y, Z: v.Z}, refq.Conj(e))
		e64 := quaternion.Quaternion[float64]{S: e.W, X: e.X, Y: e.Y, Z: e.Z}
		requireVecClose(t, vector.New3(rotated.X, rotated.Y, rotated.Z),
			e64.Mul(quaternion.FromScalarVector(0, v)).Mul(e64.Conjugate()).Vector())
	}
}
