package mat

import (
	"fmt"

	"github.com/xernobyl/ionmath/vec"
)

// Mat4 is a 4x4 matrix stored as four rows.
type Mat4[T vec.Number] [4]vec.Vec4[T]

// NewMat4 builds a matrix from sixteen elements in row-major order.
func NewMat4[T vec.Number](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 T,
) Mat4[T] {
	return Mat4[T]{
		{m11, m12, m13, m14},
		{m21, m22, m23, m24},
		{m31, m32, m33, m34},
		{m41, m42, m43, m44},
	}
}

func Mat4FromRows[T vec.Number](r0, r1, r2, r3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}
}

// Mat4FromRow repeats r in every row.
func Mat4FromRow[T vec.Number](r vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{r, r, r, r}
}

func SplatMat4[T vec.Number](s T) Mat4[T] {
	return Mat4FromRow(vec.Splat4(s))
}

// IdentityMat4 returns an identity matrix.
func IdentityMat4[T vec.Number]() Mat4[T] {
	return NewMat4[T](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

func ZeroMat4[T vec.Number]() Mat4[T] {
	return Mat4[T]{}
}

// Translation returns a matrix that moves points by (x, y, z).
// The offset lives in the last column.
func Translation[T vec.Number](x, y, z T) Mat4[T] {
	return NewMat4[T](
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scaling returns a matrix that scales along each axis.
func Scaling[T vec.Number](x, y, z T) Mat4[T] {
	return NewMat4[T](
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

func CastMat4[T, U vec.Number](m Mat4[U]) Mat4[T] {
	return Mat4[T]{
		vec.CastVec4[T](m[0]),
		vec.CastVec4[T](m[1]),
		vec.CastVec4[T](m[2]),
		vec.CastVec4[T](m[3]),
	}
}

// Mul returns m * o over the full 4x4 range.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			for inner := 0; inner < 4; inner++ {
				r[row][col] += m[row][inner] * o[inner][col]
			}
		}
	}
	return r
}

func (m *Mat4[T]) MulAssign(o Mat4[T]) {
	*m = m.Mul(o)
}

// MulVec returns m * v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	return vec.Vec4[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// TransformPoint transforms p as (x, y, z, 1) without a perspective divide.
func (m Mat4[T]) TransformPoint(p vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(vec.Vec4[T]{p[0], p[1], p[2], 1}).Vec3()
}

// TransformDirection transforms d as (x, y, z, 0), ignoring translation.
func (m Mat4[T]) TransformDirection(d vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(d.Vec4()).Vec3()
}

func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.Col(0), m.Col(1), m.Col(2), m.Col(3)}
}

func (m Mat4[T]) Row(i int) vec.Vec4[T] {
	return m[i]
}

func (m Mat4[T]) Col(j int) vec.Vec4[T] {
	return vec.Vec4[T]{m[0][j], m[1][j], m[2][j], m[3][j]}
}

// Mat3 returns the upper-left 3x3 portion of the matrix.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{m[0].Vec3(), m[1].Vec3(), m[2].Vec3()}
}

func (m Mat4[T]) ApproxEqual(o Mat4[T], eps T) bool {
	for i := range m {
		if !m[i].ApproxEqual(o[i], eps) {
			return false
		}
	}
	return true
}

func (m Mat4[T]) String() string {
	return fmt.Sprintf("[%v %v %v %v]", m[0], m[1], m[2], m[3])
}

type (
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
	Mat4i = Mat4[int32]
	Mat4u = Mat4[uint32]
)
