package vec

import (
	"fmt"

	"github.com/xernobyl/ionmath/internal/scalar"
)

// Vec3 is a 3D vector.
type Vec3[T Number] [3]T

func NewVec3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Splat3 returns a Vec3 with every component set to s.
func Splat3[T Number](s T) Vec3[T] {
	return Vec3[T]{s, s, s}
}

// CastVec3 converts each component of v to T using Go's numeric conversion
// rules: floats truncate toward zero when converted to integers, and values
// that do not fit in T give an implementation-specific result.
func CastVec3[T, U Number](v Vec3[U]) Vec3[T] {
	return Vec3[T]{T(v[0]), T(v[1]), T(v[2])}
}

func Zero3[T Number]() Vec3[T]    { return Vec3[T]{} }
func Up3[T Number]() Vec3[T]      { return Vec3[T]{0, 1, 0} }
func Down3[T Signed]() Vec3[T]    { return Vec3[T]{0, -1, 0} }
func Left3[T Signed]() Vec3[T]    { return Vec3[T]{-1, 0, 0} }
func Right3[T Number]() Vec3[T]   { return Vec3[T]{1, 0, 0} }
func Forward3[T Number]() Vec3[T] { return Vec3[T]{0, 0, 1} }
func Back3[T Signed]() Vec3[T]    { return Vec3[T]{0, 0, -1} }

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

// At returns the component selected by a. AxisW panics.
func (v Vec3[T]) At(a Axis) T { return v[a] }

// Set assigns the component selected by a. AxisW panics.
func (v *Vec3[T]) Set(a Axis, s T) { v[a] = s }

// Vec2 drops z.
func (v Vec3[T]) Vec2() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// Vec4 copies x, y, z and sets w to zero.
func (v Vec3[T]) Vec4() Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], 0}
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Mul multiplies component-wise.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// Div divides component-wise.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] / o[0], v[1] / o[1], v[2] / o[2]}
}

func (v Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{v[0] + s, v[1] + s, v[2] + s}
}

func (v Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{v[0] - s, v[1] - s, v[2] - s}
}

func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{v[0] / s, v[1] / s, v[2] / s}
}

func (v *Vec3[T]) AddAssign(o Vec3[T]) { *v = v.Add(o) }
func (v *Vec3[T]) SubAssign(o Vec3[T]) { *v = v.Sub(o) }
func (v *Vec3[T]) MulAssign(o Vec3[T]) { *v = v.Mul(o) }
func (v *Vec3[T]) DivAssign(o Vec3[T]) { *v = v.Div(o) }
func (v *Vec3[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }
func (v *Vec3[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }
func (v *Vec3[T]) ScaleAssign(s T)     { *v = v.Scale(s) }
func (v *Vec3[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the magnitude. Integer vectors get a truncated result.
func (v Vec3[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// Distance returns the distance to another point.
func (v Vec3[T]) Distance(o Vec3[T]) T {
	return v.Sub(o).Length()
}

// Normalize returns a unit vector, or the zero vector if v has zero length.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	if l == 0 {
		return Vec3[T]{}
	}
	return v.DivScalar(l)
}

// Clamp clamps each component between the matching components of min and max.
func (v Vec3[T]) Clamp(min, max Vec3[T]) Vec3[T] {
	return Vec3[T]{
		Clamp(v[0], min[0], max[0]),
		Clamp(v[1], min[1], max[1]),
		Clamp(v[2], min[2], max[2]),
	}
}

func (v Vec3[T]) Lerp(end Vec3[T], t float64) Vec3[T] {
	return v.LerpUnclamped(end, Clamp(t, 0, 1))
}

func (v Vec3[T]) LerpUnclamped(end Vec3[T], t float64) Vec3[T] {
	return Vec3[T]{
		LerpUnclamped(v[0], end[0], t),
		LerpUnclamped(v[1], end[1], t),
		LerpUnclamped(v[2], end[2], t),
	}
}

func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{Min(v[0], o[0]), Min(v[1], o[1]), Min(v[2], o[2])}
}

func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{Max(v[0], o[0]), Max(v[1], o[1]), Max(v[2], o[2])}
}

func (v Vec3[T]) ApproxEqual(o Vec3[T], eps T) bool {
	return ApproxEqual(v[0], o[0], eps) &&
		ApproxEqual(v[1], o[1], eps) &&
		ApproxEqual(v[2], o[2], eps)
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}
