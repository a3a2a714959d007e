/*
A small generic math vector library for graphics and games.

Vectors are fixed-size arrays, so they copy by value, compare with ==, and
index natively: v[0] is x, v[1] is y, v[2] is z and v[3] is w. Indexing past
the end panics like any other array access.

Division is never checked. Floating point vectors follow IEEE-754 (inf, NaN)
and integer vectors panic with the runtime's divide-by-zero error.
*/
package vec

// Axis selects a vector component.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisW:
		return "w"
	}
	return "invalid"
}

// Vector is the operation set shared by Vec2, Vec3 and Vec4, letting generic
// code work over any of them. V is the vector type and T its scalar.
type Vector[V any, T Number] interface {
	Add(o V) V
	Sub(o V) V
	Mul(o V) V
	Div(o V) V
	AddScalar(s T) V
	SubScalar(s T) V
	Scale(s T) V
	DivScalar(s T) V

	Dot(o V) T
	Clamp(min, max V) V
	Lerp(end V, t float64) V
	LerpUnclamped(end V, t float64) V
	Min(o V) V
	Max(o V) V
}

// FloatVector is a Vector with a floating point scalar, which is what the
// length based operations need to make sense.
type FloatVector[V any, T Float] interface {
	Vector[V, T]

	Length() T
	Distance(o V) T
	Normalize() V
}

var (
	_ Vector[Vec2[int32], int32]   = Vec2[int32]{}
	_ Vector[Vec3[uint32], uint32] = Vec3[uint32]{}
	_ Vector[Vec4[int], int]       = Vec4[int]{}

	_ FloatVector[Vec2[float32], float32] = Vec2[float32]{}
	_ FloatVector[Vec3[float64], float64] = Vec3[float64]{}
	_ FloatVector[Vec4[float32], float32] = Vec4[float32]{}
)

// Bounds returns the component-wise minimum and maximum of points.
// Both are the zero vector when points is empty.
func Bounds[T Number, V Vector[V, T]](points []V) (min, max V) {
	if len(points) == 0 {
		return min, max
	}

	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}

	return min, max
}

// Centroid returns the average of points, or the zero vector for none.
// The point count is converted to T, so it must fit: a Vec2[int8] centroid
// of 128 or more points overflows the divisor. The component sums can
// overflow small integer types in the same way.
func Centroid[T Number, V Vector[V, T]](points []V) V {
	var sum V
	if len(points) == 0 {
		return sum
	}

	for _, p := range points {
		sum = sum.Add(p)
	}

	return sum.DivScalar(T(len(points)))
}

// MoveTowards moves current in a straight line towards target by at most
// maxDelta, never overshooting.
func MoveTowards[T Float, V FloatVector[V, T]](current, target V, maxDelta T) V {
	delta := target.Sub(current)
	dist := delta.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}

	return current.Add(delta.Scale(maxDelta / dist))
}

type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec2i = Vec2[int32]
	Vec2u = Vec2[uint32]

	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec3i = Vec3[int32]
	Vec3u = Vec3[uint32]

	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
	Vec4i = Vec4[int32]
	Vec4u = Vec4[uint32]
)
