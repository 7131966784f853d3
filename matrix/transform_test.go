// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpml/angle"
	"github.com/katalvlaran/mpml/matrix"
	"github.com/katalvlaran/mpml/vector"
)

func TestTranslate(t *testing.T) {
	id := matrix.Identity4[int]()
	m := matrix.Translate(id, vector.New3(1, 2, 3))

	assert.Equal(t, matrix.Identity4[int](), id, "input not modified")
	assert.Equal(t, vector.New3(2, 3, 4), m.MulVec3(vector.New3(1, 1, 1)))
	assert.Equal(t, vector.New3(5, 7, 9), matrix.Translate(m, vector.New3(4, 5, 6)).MulVec3(vector.Vector3[int]{}))
}

func TestScale_IsAdditive(t *testing.T) {
	m := matrix.Scale(matrix.Identity4[int](), 2)
	assert.Equal(t, matrix.New4(
		3, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 3, 0,
		0, 0, 0, 1,
	), m)
	assert.Equal(t, matrix.Identity4[int](), matrix.Scale(m, -2))
}

func TestPerspective(t *testing.T) {
	const near, far = 1.0, 100.0
	m, err := matrix.Perspective(800.0, 600, near, far, angle.FromDegrees(90))
	require.NoError(t, err)

	a := m.Array()
	assert.InDelta(t, 0.75, a[0], 1e-6) // f/aspect with f = 1/tan(45°)
	assert.InDelta(t, 1.0, a[5], 1e-6)
	assert.InDelta(t, (far+near)/(near-far), a[10], tol)
	assert.InDelta(t, 2*far*near/(near-far), a[11], tol)
	assert.Equal(t, -1.0, a[14])
	assert.Equal(t, 0.0, a[15])

	// The near plane maps to NDC z = -1 and the far plane to z = +1.
	pn := apply4(m, [4]float64{0, 0, -near, 1})
	assert.InDelta(t, -1.0, pn[2]/pn[3], tol)
	pf := apply4(m, [4]float64{0, 0, -far, 1})
	assert.InDelta(t, 1.0, pf[2]/pf[3], 1e-6)
}

func TestPerspective_Errors(t *testing.T) {
	fov := angle.FromDegrees(60)

	tests := []struct {
		name                     string
		width, height, near, far float64
		opts                     []matrix.Option
		want                     error
	}{
		{"negative near", 4, 3, -1, 10, nil, matrix.ErrInvalidPlanes},
		{"far before near", 4, 3, 10, 1, nil, matrix.ErrInvalidPlanes},
		{"zero width", 0, 3, 1, 10, nil, matrix.ErrDivisionByZero},
		{"zero height", 4, 0, 1, 10, nil, matrix.ErrDivisionByZero},
		{"near equals far", 4, 3, 5, 5, nil, matrix.ErrDivisionByZero},
		{"left handed", 4, 3, 1, 10, []matrix.Option{matrix.WithHandedness(matrix.LeftHanded)}, matrix.ErrNotImplemented},
		{"left handed, negative near", 4, 3, -1, 10, []matrix.Option{matrix.WithHandedness(matrix.LeftHanded)}, matrix.ErrInvalidPlanes},
		{"left handed, zero width", 0, 3, 1, 10, []matrix.Option{matrix.WithHandedness(matrix.LeftHanded)}, matrix.ErrDivisionByZero},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.Perspective(tc.width, tc.height, tc.near, tc.far, fov, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, matrix.Matrix4[float64]{}, m)
		})
	}

	_, err := matrix.Perspective(4.0, 3, 0, 10, fov, matrix.WithHandedness(matrix.RightHanded))
	require.NoError(t, err, "near == 0 is allowed")
}

func TestLookAt(t *testing.T) {
	eye := vector.New3(0.0, 0, 5)
	m := matrix.LookAt(eye, vector.Vector3[float64]{}, vector.YAxis3[float64]())

	requireAllClose(t, matrix.New4[float64](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, -5,
		0, 0, 0, 1,
	), m, tol)

	var rows [3]vector.Vector3[float64]
	for i := range rows {
		r, err := m.Row(i)
		require.NoError(t, err)
		rows[i] = r.XYZ()
		assert.InDelta(t, 1.0, rows[i].Length(), tol, "row %d is unit length", i)
	}
	assert.InDelta(t, 0.0, rows[0].Dot(rows[1]), tol)
	assert.InDelta(t, 0.0, rows[0].Dot(rows[2]), tol)
	assert.InDelta(t, 0.0, rows[1].Dot(rows[2]), tol)

	// The eye moves to the origin; the target sits on -Z.
	assert.Equal(t, vector.Vector3[float64]{}, m.MulVec3(eye))
	assert.Equal(t, vector.New3(0.0, 0, -5), m.MulVec3(vector.Vector3[float64]{}))
}

// Looking straight along up leaves no side vector: rows 0 and 1 collapse
// to zero and row 2 is the negated view direction.
func TestLookAt_UpParallelToForward(t *testing.T) {
	m := matrix.LookAt(vector.Vector3[float64]{}, vector.New3(0.0, 5, 0), vector.YAxis3[float64]())

	requireAllClose(t, matrix.New4[float64](
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, 0, 1,
	), m, tol)
	assert.Equal(t, 0.0, m.Linear().Det())
	_, ok := matrix.Inverse4(m)
	assert.False(t, ok)
}

func TestLookAt_Oblique(t *testing.T) {
	eye := vector.New3(3.0, 4, -2)
	center := vector.New3(-1.0, 0.5, 6)
	m := matrix.LookAt(eye, center, vector.YAxis3[float64]())

	// A rigid view transform: the linear block is orthonormal (det 1)
	// and distances are preserved.
	assert.InDelta(t, 1.0, m.Linear().Det(), tol)
	got := m.MulVec3(center)
	assert.InDelta(t, eye.Distance(center), got.Length(), tol)
	assert.InDelta(t, 0.0, got.X, tol)
	assert.InDelta(t, 0.0, got.Y, tol)
	assert.Less(t, got.Z, 0.0)
}

func TestLookAtBasis(t *testing.T) {
	pos := vector.New3(1, 2, 3)
	m := matrix.LookAtBasis(pos, vector.New3(0, 0, -1), vector.YAxis3[int](), vector.XAxis3[int]())

	assert.Equal(t, matrix.New4(
		1, 0, 0, -1,
		0, 1, 0, -2,
		0, 0, 1, -3,
		0, 0, 0, 1,
	), m)
	assert.Equal(t, vector.Vector3[int]{}, m.MulVec3(pos))
}
