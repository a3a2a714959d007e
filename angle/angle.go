// Package angle provides degree and radian angle types.
package angle

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/xernobyl/ionmath/internal/scalar"
)

// Deg is an angle in degrees.
type Deg[T constraints.Float] struct {
	Value T `json:"value" yaml:"value"`
}

// Rad is an angle in radians.
type Rad[T constraints.Float] struct {
	Value T `json:"value" yaml:"value"`
}

func NewDeg[T constraints.Float](v T) Deg[T] {
	return Deg[T]{Value: v}
}

func NewRad[T constraints.Float](v T) Rad[T] {
	return Rad[T]{Value: v}
}

func (d Deg[T]) Rad() Rad[T] {
	return Rad[T]{Value: d.Value * T(math.Pi/180)}
}

func (r Rad[T]) Deg() Deg[T] {
	return Deg[T]{Value: r.Value * T(180/math.Pi)}
}

// Normalize wraps d into [0, 360).
func (d Deg[T]) Normalize() Deg[T] {
	v := scalar.Mod(d.Value, 360)
	if v < 0 {
		v += 360
	}
	if v >= 360 {
		v = 0
	}
	return Deg[T]{Value: v}
}

func (r Rad[T]) Sin() T { return scalar.Sin(r.Value) }
func (r Rad[T]) Cos() T { return scalar.Cos(r.Value) }
func (r Rad[T]) Tan() T { return scalar.Tan(r.Value) }
