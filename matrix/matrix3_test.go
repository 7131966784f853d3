// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpml/matrix"
	"github.com/katalvlaran/mpml/vector"
)

func TestMatrix3_Det(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Matrix3[int]
		want int
	}{
		{"identity", matrix.Identity3[int](), 1},
		{"anti-diagonal", matrix.AntiDiagonalIdentity3[int](), -1},
		{"fixture", fixture3[int](), 24},
		{"rank 2", matrix.New3(1, 2, 3, 4, 5, 6, 7, 8, 9), 0},
		{"zero", matrix.Matrix3[int]{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.m.Det())
		})
	}
}

func TestMatrix3_Minor(t *testing.T) {
	m := fixture3[int]()

	cases := map[int]matrix.Matrix2[int]{
		0: matrix.New2(3, 2, 1, 4),
		4: matrix.New2(2, 0, 0, 4),
		5: matrix.New2(2, -1, 0, 1),
		8: matrix.New2(2, -1, 1, 3),
	}
	for idx, want := range cases {
		got, err := m.Minor(idx)
		require.NoError(t, err)
		require.Equalf(t, want, got, "minor %d", idx)
	}

	_, err := m.Minor(9)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Minor(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMatrix3_CofactorAdj(t *testing.T) {
	m := fixture3[int]()

	require.Equal(t, matrix.New3(
		10, -4, 1,
		4, 8, -2,
		-2, -4, 7,
	), m.CofactorMatrix())
	require.Equal(t, matrix.New3(
		10, 4, -2,
		-4, 8, -4,
		1, -2, 7,
	), m.Adj())

	// A·adj(A) = det(A)·I
	require.Equal(t, matrix.Identity3[int]().Scale(m.Det()), m.Mul(m.Adj()))

	c, err := m.Cofactor(7)
	require.NoError(t, err)
	require.Equal(t, -4, c)
	_, err = m.Cofactor(9)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMatrix3_CofactorExpansionConsistency(t *testing.T) {
	m := fixture3[int]()
	for i := 0; i < 3; i++ {
		r, err := m.DetAlongRow(i)
		require.NoError(t, err)
		assert.Equalf(t, 24, r, "row %d", i)

		c, err := m.DetAlongCol(i)
		require.NoError(t, err)
		assert.Equalf(t, 24, c, "col %d", i)
	}
	_, err := m.DetAlongRow(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMatrix3_TransposeAndPow(t *testing.T) {
	m := matrix.New3(1, 2, 3, 4, 5, 6, 7, 8, 9)

	assert.Equal(t, matrix.New3(1, 4, 7, 2, 5, 8, 3, 6, 9), m.Transpose())
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, matrix.Identity3[int](), m.Pow(0))
	assert.Equal(t, m, m.Pow(1))
	assert.Equal(t, m.Mul(m), m.Pow(2))
	assert.Equal(t, 15, m.Trace())
}

func TestMatrix3_ArithmeticAndMulVec(t *testing.T) {
	a := fixture3[int]()
	i := matrix.Identity3[int]()

	assert.Equal(t, a, a.Mul(i))
	assert.Equal(t, a, i.Mul(a))
	assert.Equal(t, a.Scale(2), a.Add(a))
	assert.Equal(t, matrix.Matrix3[int]{}, a.Sub(a))
	assert.Equal(t, a.Neg(), a.Scale(-1))
	assert.Equal(t, a, a.Scale(4).DivScalar(4))

	// Row-major linear map: result[i] = Σ_j m[i][j]·v[j].
	assert.Equal(t, vector.New3(1, 6, 5), a.MulVec(vector.New3(1, 1, 1)))
	assert.Equal(t, vector.New3(2, 1, 0), a.MulVec(vector.XAxis3[int]()))

	b := a
	b.AddAssign(i)
	b.SubAssign(i)
	b.MulAssign(i)
	b.ScaleAssign(3)
	b.DivScalarAssign(3)
	assert.Equal(t, a, b)
}

func TestMatrix3_Views(t *testing.T) {
	c0, c1, c2 := vector.New3(1, 4, 7), vector.New3(2, 5, 8), vector.New3(3, 6, 9)
	m := matrix.FromColumns3(c0, c1, c2)

	require.Equal(t, matrix.New3(1, 2, 3, 4, 5, 6, 7, 8, 9), m)
	require.Equal(t, m, matrix.FromRows3(vector.New3(1, 2, 3), vector.New3(4, 5, 6), vector.New3(7, 8, 9)))

	for i, want := range []vector.Vector3[int]{c0, c1, c2} {
		got, err := m.Col(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	for name := byte('a'); name <= 'i'; name++ {
		v, err := m.Field(name)
		require.NoError(t, err)
		require.Equal(t, int(name-'a')+1, v)
	}
	_, err := m.Field('j')
	require.ErrorIs(t, err, matrix.ErrUnknownField)

	require.NoError(t, m.SetCol(2, vector.New3(0, 0, 0)))
	e, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0, e)
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, vector.New3(4, 5, 0), row)

	require.NoError(t, m.SetRow(0, vector.New3(-1, -1, -1)))
	f, err := m.Index(1)
	require.NoError(t, err)
	require.Equal(t, -1, f)

	require.ErrorIs(t, m.Set(3, 3, 0), matrix.ErrOutOfRange)
	_, err = m.Index(9)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
