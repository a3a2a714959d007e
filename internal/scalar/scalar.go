// Package scalar holds the float kernels shared by the vector, angle and
// colour packages. float32 arguments go through math32 so they never take
// the float64 round trip.
package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sqrt returns the square root of x converted back to T.
// Integer results are truncated toward zero.
func Sqrt[T Number](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

func Sin[T constraints.Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(math.Sin(float64(x)))
}

func Cos[T constraints.Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(math.Cos(float64(x)))
}

func Tan[T constraints.Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(x)))
}

// Mod is the floating point remainder of x/y with the sign of x.
func Mod[T constraints.Float](x, y T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Mod(f, float32(y)))
	}
	return T(math.Mod(float64(x), float64(y)))
}
