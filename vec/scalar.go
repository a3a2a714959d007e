package vec

import (
	"golang.org/x/exp/constraints"

	"github.com/xernobyl/ionmath/internal/scalar"
)

// Number is the scalar constraint shared by every vector and matrix type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is a Number that can hold -1.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Float is a floating point Number.
type Float interface {
	constraints.Float
}

// Clamp returns min if v < min, max if v > max and v otherwise.
// min must be less than max; this is only checked in ionmath_debug builds.
func Clamp[T Number](v, min, max T) T {
	if scalar.Debug && !(min < max) {
		panic("vec: min must be less than max")
	}

	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}

func Saturate[T Float](v T) T {
	return Clamp(v, T(0.0), T(1.0))
}

// Lerp interpolates between start and end with t clamped to [0, 1].
func Lerp[T Number](start, end T, t float64) T {
	return LerpUnclamped(start, end, Clamp(t, 0, 1))
}

// LerpUnclamped interpolates between start and end without clamping t, so
// values outside [0, 1] extrapolate. The arithmetic is done in float64 and
// converted back, which truncates toward zero for integer T. t == 0 yields
// start and t == 1 yields end exactly.
func LerpUnclamped[T Number](start, end T, t float64) T {
	switch t {
	case 0:
		return start
	case 1:
		return end
	}

	s := float64(start)
	return T(s + (float64(end)-s)*t)
}

// Min returns lhs if lhs < rhs, otherwise rhs.
func Min[T Number](lhs, rhs T) T {
	if lhs < rhs {
		return lhs
	}
	return rhs
}

// Max returns lhs if lhs > rhs, otherwise rhs.
func Max[T Number](lhs, rhs T) T {
	if lhs > rhs {
		return lhs
	}
	return rhs
}

func Min3[T Number](a, b, c T) T {
	return Min(a, Min(b, c))
}

func Max3[T Number](a, b, c T) T {
	return Max(a, Max(b, c))
}

func Sign[T Signed](a T) T {
	if a > 0 {
		return 1
	}

	if a < 0 {
		return -1
	}

	return 0
}

// ApproxEqual reports whether a and b differ by at most eps.
// NaN is never approximately equal to anything.
func ApproxEqual[T Number](a, b, eps T) bool {
	if a == b {
		return true
	}
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}
