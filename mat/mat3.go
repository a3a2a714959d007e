// Package mat provides 3x3 and 4x4 matrices over the vec scalar types.
//
// Matrices are row-major arrays of row vectors: m[i] is row i and m[i][j] is
// the element at row i, column j. Vectors are treated as columns, so
// m.MulVec(v) computes m * v.
package mat

import (
	"fmt"

	"github.com/xernobyl/ionmath/vec"
)

// Mat3 is a 3x3 matrix stored as three rows.
type Mat3[T vec.Number] [3]vec.Vec3[T]

// NewMat3 builds a matrix from nine elements in row-major order.
func NewMat3[T vec.Number](
	m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 T,
) Mat3[T] {
	return Mat3[T]{
		{m11, m12, m13},
		{m21, m22, m23},
		{m31, m32, m33},
	}
}

func Mat3FromRows[T vec.Number](r0, r1, r2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{r0, r1, r2}
}

// Mat3FromRow repeats r in every row.
func Mat3FromRow[T vec.Number](r vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{r, r, r}
}

// SplatMat3 sets every element to s.
func SplatMat3[T vec.Number](s T) Mat3[T] {
	return Mat3FromRow(vec.Splat3(s))
}

func IdentityMat3[T vec.Number]() Mat3[T] {
	return NewMat3[T](
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

func ZeroMat3[T vec.Number]() Mat3[T] {
	return Mat3[T]{}
}

// CastMat3 converts every element to T. See vec.CastVec3 for the rules.
func CastMat3[T, U vec.Number](m Mat3[U]) Mat3[T] {
	return Mat3[T]{
		vec.CastVec3[T](m[0]),
		vec.CastVec3[T](m[1]),
		vec.CastVec3[T](m[2]),
	}
}

// Mul returns m * o. Each element is accumulated from zero over the inner
// index in ascending order.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			for inner := 0; inner < 3; inner++ {
				r[row][col] += m[row][inner] * o[inner][col]
			}
		}
	}
	return r
}

// MulAssign sets m to m * o.
func (m *Mat3[T]) MulAssign(o Mat3[T]) {
	*m = m.Mul(o)
}

// MulVec returns m * v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return vec.Vec3[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{m.Col(0), m.Col(1), m.Col(2)}
}

func (m Mat3[T]) Row(i int) vec.Vec3[T] {
	return m[i]
}

func (m Mat3[T]) Col(j int) vec.Vec3[T] {
	return vec.Vec3[T]{m[0][j], m[1][j], m[2][j]}
}

// Mat4 embeds m in the upper-left corner of an identity matrix.
func (m Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

func (m Mat3[T]) ApproxEqual(o Mat3[T], eps T) bool {
	return m[0].ApproxEqual(o[0], eps) &&
		m[1].ApproxEqual(o[1], eps) &&
		m[2].ApproxEqual(o[2], eps)
}

func (m Mat3[T]) String() string {
	return fmt.Sprintf("[%v %v %v]", m[0], m[1], m[2])
}

type (
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
	Mat3i = Mat3[int32]
	Mat3u = Mat3[uint32]
)
