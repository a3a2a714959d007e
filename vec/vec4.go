package vec

import (
	"fmt"

	"github.com/xernobyl/ionmath/internal/scalar"
)

// Vec4 is a 4-component vector.
type Vec4[T Number] [4]T

func NewVec4[T Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

func Splat4[T Number](s T) Vec4[T] {
	return Vec4[T]{s, s, s, s}
}

// CastVec4 converts each component of v to T. See CastVec3.
func CastVec4[T, U Number](v Vec4[U]) Vec4[T] {
	return Vec4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

// Directional presets leave w at zero.
func Zero4[T Number]() Vec4[T]    { return Vec4[T]{} }
func Up4[T Number]() Vec4[T]      { return Vec4[T]{0, 1, 0, 0} }
func Down4[T Signed]() Vec4[T]    { return Vec4[T]{0, -1, 0, 0} }
func Left4[T Signed]() Vec4[T]    { return Vec4[T]{-1, 0, 0, 0} }
func Right4[T Number]() Vec4[T]   { return Vec4[T]{1, 0, 0, 0} }
func Forward4[T Number]() Vec4[T] { return Vec4[T]{0, 0, 1, 0} }
func Back4[T Signed]() Vec4[T]    { return Vec4[T]{0, 0, -1, 0} }

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v Vec4[T]) At(a Axis) T { return v[a] }

func (v *Vec4[T]) Set(a Axis, s T) { v[a] = s }

// Vec2 drops z and w.
func (v Vec4[T]) Vec2() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// Vec3 drops w.
func (v Vec4[T]) Vec3() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{v[0] + s, v[1] + s, v[2] + s, v[3] + s}
}

func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{v[0] - s, v[1] - s, v[2] - s, v[3] - s}
}

func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

func (v *Vec4[T]) AddAssign(o Vec4[T]) { *v = v.Add(o) }
func (v *Vec4[T]) SubAssign(o Vec4[T]) { *v = v.Sub(o) }
func (v *Vec4[T]) MulAssign(o Vec4[T]) { *v = v.Mul(o) }
func (v *Vec4[T]) DivAssign(o Vec4[T]) { *v = v.Div(o) }
func (v *Vec4[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }
func (v *Vec4[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }
func (v *Vec4[T]) ScaleAssign(s T)     { *v = v.Scale(s) }
func (v *Vec4[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

func (v Vec4[T]) LengthSquared() T {
	return v.Dot(v)
}

func (v Vec4[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

func (v Vec4[T]) Distance(o Vec4[T]) T {
	return v.Sub(o).Length()
}

// Normalize returns a unit vector, or the zero vector if v has zero length.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Length()
	if l == 0 {
		return Vec4[T]{}
	}
	return v.DivScalar(l)
}

func (v Vec4[T]) Clamp(min, max Vec4[T]) Vec4[T] {
	return Vec4[T]{
		Clamp(v[0], min[0], max[0]),
		Clamp(v[1], min[1], max[1]),
		Clamp(v[2], min[2], max[2]),
		Clamp(v[3], min[3], max[3]),
	}
}

func (v Vec4[T]) Lerp(end Vec4[T], t float64) Vec4[T] {
	return v.LerpUnclamped(end, Clamp(t, 0, 1))
}

func (v Vec4[T]) LerpUnclamped(end Vec4[T], t float64) Vec4[T] {
	return Vec4[T]{
		LerpUnclamped(v[0], end[0], t),
		LerpUnclamped(v[1], end[1], t),
		LerpUnclamped(v[2], end[2], t),
		LerpUnclamped(v[3], end[3], t),
	}
}

func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	return Vec4[T]{Min(v[0], o[0]), Min(v[1], o[1]), Min(v[2], o[2]), Min(v[3], o[3])}
}

func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	return Vec4[T]{Max(v[0], o[0]), Max(v[1], o[1]), Max(v[2], o[2]), Max(v[3], o[3])}
}

func (v Vec4[T]) ApproxEqual(o Vec4[T], eps T) bool {
	return ApproxEqual(v[0], o[0], eps) &&
		ApproxEqual(v[1], o[1], eps) &&
		ApproxEqual(v[2], o[2], eps) &&
		ApproxEqual(v[3], o[3], eps)
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}
