package vec

import (
	"fmt"

	"github.com/xernobyl/ionmath/internal/scalar"
)

// Vec2 is a 2D vector.
type Vec2[T Number] [2]T

func NewVec2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Splat2 returns a Vec2 with both components set to s.
func Splat2[T Number](s T) Vec2[T] {
	return Vec2[T]{s, s}
}

// CastVec2 converts each component of v to T. See CastVec3.
func CastVec2[T, U Number](v Vec2[U]) Vec2[T] {
	return Vec2[T]{T(v[0]), T(v[1])}
}

func Zero2[T Number]() Vec2[T]  { return Vec2[T]{} }
func Up2[T Number]() Vec2[T]    { return Vec2[T]{0, 1} }
func Down2[T Signed]() Vec2[T]  { return Vec2[T]{0, -1} }
func Left2[T Signed]() Vec2[T]  { return Vec2[T]{-1, 0} }
func Right2[T Number]() Vec2[T] { return Vec2[T]{1, 0} }

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

// At returns the component selected by a. AxisZ and AxisW panic.
func (v Vec2[T]) At(a Axis) T { return v[a] }

func (v *Vec2[T]) Set(a Axis, s T) { v[a] = s }

// Vec3 copies x and y and sets z to zero.
func (v Vec2[T]) Vec3() Vec3[T] {
	return Vec3[T]{v[0], v[1], 0}
}

// Vec4 copies x and y and sets z and w to zero.
func (v Vec2[T]) Vec4() Vec4[T] {
	return Vec4[T]{v[0], v[1], 0, 0}
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] + o[0], v[1] + o[1]}
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] - o[0], v[1] - o[1]}
}

func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] * o[0], v[1] * o[1]}
}

func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] / o[0], v[1] / o[1]}
}

func (v Vec2[T]) AddScalar(s T) Vec2[T] {
	return Vec2[T]{v[0] + s, v[1] + s}
}

func (v Vec2[T]) SubScalar(s T) Vec2[T] {
	return Vec2[T]{v[0] - s, v[1] - s}
}

// Scale returns v * s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v[0] * s, v[1] * s}
}

func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{v[0] / s, v[1] / s}
}

func (v *Vec2[T]) AddAssign(o Vec2[T]) { *v = v.Add(o) }
func (v *Vec2[T]) SubAssign(o Vec2[T]) { *v = v.Sub(o) }
func (v *Vec2[T]) MulAssign(o Vec2[T]) { *v = v.Mul(o) }
func (v *Vec2[T]) DivAssign(o Vec2[T]) { *v = v.Div(o) }
func (v *Vec2[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }
func (v *Vec2[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }
func (v *Vec2[T]) ScaleAssign(s T)     { *v = v.Scale(s) }
func (v *Vec2[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

// Dot returns the dot product.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v[0]*o[0] + v[1]*o[1]
}

func (v Vec2[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec2[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// Distance returns the distance to another point.
func (v Vec2[T]) Distance(o Vec2[T]) T {
	return v.Sub(o).Length()
}

// Normalize returns a unit vector, or the zero vector if v has zero length.
func (v Vec2[T]) Normalize() Vec2[T] {
	l := v.Length()
	if l == 0 {
		return Vec2[T]{}
	}
	return v.DivScalar(l)
}

func (v Vec2[T]) Clamp(min, max Vec2[T]) Vec2[T] {
	return Vec2[T]{
		Clamp(v[0], min[0], max[0]),
		Clamp(v[1], min[1], max[1]),
	}
}

func (v Vec2[T]) Lerp(end Vec2[T], t float64) Vec2[T] {
	return v.LerpUnclamped(end, Clamp(t, 0, 1))
}

func (v Vec2[T]) LerpUnclamped(end Vec2[T], t float64) Vec2[T] {
	return Vec2[T]{
		LerpUnclamped(v[0], end[0], t),
		LerpUnclamped(v[1], end[1], t),
	}
}

func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{Min(v[0], o[0]), Min(v[1], o[1])}
}

func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{Max(v[0], o[0]), Max(v[1], o[1])}
}

func (v Vec2[T]) ApproxEqual(o Vec2[T], eps T) bool {
	return ApproxEqual(v[0], o[0], eps) && ApproxEqual(v[1], o[1], eps)
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}
