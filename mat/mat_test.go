package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xernobyl/ionmath/vec"
)

func TestIdentity(t *testing.T) {
	m := IdentityMat4[float32]()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, m[i][j], "element %d,%d", i, j)
		}
	}

	assert.Equal(t, Mat3i{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, IdentityMat3[int32]())
}

func TestIdentitySquared(t *testing.T) {
	assert.Equal(t, IdentityMat3[float32](), IdentityMat3[float32]().Mul(IdentityMat3[float32]()))
	assert.Equal(t, IdentityMat4[float64](), IdentityMat4[float64]().Mul(IdentityMat4[float64]()))
}

func TestMulIdentity(t *testing.T) {
	m3 := NewMat3(1.5, -2, 3, 4, 5, 6.25, 7, 8, -9)
	assert.Equal(t, m3, IdentityMat3[float64]().Mul(m3))
	assert.Equal(t, m3, m3.Mul(IdentityMat3[float64]()))

	m4 := Translation[float32](1, 2, 3)
	id := IdentityMat4[float32]()
	assert.Equal(t, m4, m4.Mul(id))
	assert.Equal(t, m4, id.Mul(m4))
}

func TestMat3Mul(t *testing.T) {
	a := NewMat3[int32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := NewMat3[int32](9, 8, 7, 6, 5, 4, 3, 2, 1)

	want := NewMat3[int32](
		30, 24, 18,
		84, 69, 54,
		138, 114, 90,
	)
	assert.Equal(t, want, a.Mul(b))
	assert.NotEqual(t, a.Mul(b), b.Mul(a))
}

func TestMat4MulFullRange(t *testing.T) {
	a := NewMat4[int32](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	got := a.Mul(a)
	assert.Equal(t, vec.Vec4i{90, 100, 110, 120}, got[0])
	assert.Equal(t, vec.Vec4i{426, 484, 542, 600}, got[3])
}

func TestMulAssociative(t *testing.T) {
	a := NewMat4[float64](
		0.5, 1, -2, 3,
		4, 0.25, 6, -1,
		7, 8, 9, 10,
		-0.75, 2, 0, 1,
	)
	b := Translation(3.0, -1, 2).Mul(Scaling(0.5, 2, 1.5))
	c := NewMat4[float64](
		1, 0, 2, 0,
		0, 3, 0, 4,
		5, 0, 6, 0,
		0, 7, 0, 8,
	)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	assert.True(t, left.ApproxEqual(right, 1e-9), "(AB)C = %v\nA(BC) = %v", left, right)

	a3, b3, c3 := a.Mat3(), b.Mat3(), c.Mat3()
	assert.True(t, a3.Mul(b3).Mul(c3).ApproxEqual(a3.Mul(b3.Mul(c3)), 1e-9))
}

func TestMulAssign(t *testing.T) {
	m := Scaling[int32](2, 2, 2)
	m.MulAssign(Scaling[int32](3, 1, 1))
	assert.Equal(t, Scaling[int32](6, 2, 2), m)

	m3 := SplatMat3[int32](1)
	m3.MulAssign(SplatMat3[int32](2))
	assert.Equal(t, SplatMat3[int32](6), m3)
}

func TestIndexing(t *testing.T) {
	m := NewMat3[int32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, vec.Vec3i{4, 5, 6}, m[1])
	assert.Equal(t, int32(6), m[1][2])
	assert.Equal(t, vec.Vec3i{3, 6, 9}, m.Col(2))
	assert.Equal(t, m[2], m.Row(2))

	m[2][0] = 70
	assert.Equal(t, int32(70), m[2].X())

	assert.Panics(t, func() { _ = m.Row(3) })
	assert.Panics(t, func() { _ = IdentityMat4[float32]().Col(4) })
}

func TestConstructors(t *testing.T) {
	r := vec.Vec3f{1, 2, 3}
	assert.Equal(t, Mat3f{r, r, r}, Mat3FromRow(r))
	assert.Equal(t, Mat3f{r, r.Scale(2), r.Scale(3)}, Mat3FromRows(r, r.Scale(2), r.Scale(3)))

	r4 := vec.Vec4u{1, 2, 3, 4}
	assert.Equal(t, Mat4u{r4, r4, r4, r4}, Mat4FromRow(r4))
	assert.Equal(t, Mat4u{r4, {}, {}, r4}, Mat4FromRows(r4, vec.Vec4u{}, vec.Vec4u{}, r4))

	assert.Equal(t, Mat4d{}, ZeroMat4[float64]())
	assert.Equal(t, Mat3d{}, ZeroMat3[float64]())
	assert.Equal(t, Mat3FromRow(vec.Splat3(7.0)), SplatMat3(7.0))
	assert.Equal(t, Mat4FromRow(vec.Splat4[int32](-1)), SplatMat4[int32](-1))
}

func TestCast(t *testing.T) {
	m := NewMat3(1.9, -1.9, 0, 0, 2.5, 0, 0, 0, 3)
	assert.Equal(t, NewMat3[int32](1, -1, 0, 0, 2, 0, 0, 0, 3), CastMat3[int32](m))
	assert.Equal(t, IdentityMat4[float32](), CastMat4[float32](IdentityMat4[uint32]()))
}

func TestTranspose(t *testing.T) {
	m := NewMat3[int32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, NewMat3[int32](1, 4, 7, 2, 5, 8, 3, 6, 9), m.Transpose())
	assert.Equal(t, m, m.Transpose().Transpose())

	m4 := Translation[int32](1, 2, 3)
	assert.Equal(t, vec.Vec4i{1, 2, 3, 1}, m4.Transpose()[3])
	assert.Equal(t, m4, m4.Transpose().Transpose())
}

func TestMulVec(t *testing.T) {
	m := NewMat3[int32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, vec.Vec3i{14, 32, 50}, m.MulVec(vec.Vec3i{1, 2, 3}))

	v := vec.Vec4d{1, -2, 0.5, 1}
	assert.Equal(t, v, IdentityMat4[float64]().MulVec(v))
}

func TestTransform(t *testing.T) {
	m := Translation[float32](1, 2, 3).Mul(Scaling[float32](2, 2, 2))
	assert.Equal(t, vec.Vec3f{3, 4, 5}, m.TransformPoint(vec.Vec3f{1, 1, 1}))
	assert.Equal(t, vec.Vec3f{2, 0, 0}, m.TransformDirection(vec.Vec3f{1, 0, 0}))
}

func TestMat3Mat4RoundTrip(t *testing.T) {
	m3 := NewMat3(1.0, 2, 3, 4, 5, 6, 7, 8, 9)
	m4 := m3.Mat4()
	require.Equal(t, vec.Vec4d{0, 0, 0, 1}, m4[3])
	assert.Equal(t, 0.0, m4[0][3])
	assert.Equal(t, m3, m4.Mat3())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[(1, 0, 0) (0, 1, 0) (0, 0, 1)]", IdentityMat3[int32]().String())
}
