// Package colour provides an RGBA colour with float32 channels.
package colour

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/xernobyl/ionmath/vec"
)

// RGBA is a straight (not premultiplied) colour. Channels are nominally in
// [0, 1] but arithmetic does not clamp them.
type RGBA struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
	A float32 `json:"a" yaml:"a"`
}

var (
	Black       = RGBA{0, 0, 0, 1}
	LightGrey   = RGBA{0.75, 0.75, 0.75, 1}
	Grey        = RGBA{0.5, 0.5, 0.5, 1}
	DarkGrey    = RGBA{0.25, 0.25, 0.25, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
	Yellow      = RGBA{1, 1, 0, 1}
	Cyan        = RGBA{0, 1, 1, 1}
	Magenta     = RGBA{1, 0, 1, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

var _ color.Color = RGBA{}

func New(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Splat sets all four channels to v.
func Splat(v float32) RGBA {
	return RGBA{v, v, v, v}
}

// FromVec2 maps x, y to red and green with blue 0 and alpha 1.
func FromVec2[T vec.Number](v vec.Vec2[T]) RGBA {
	return RGBA{float32(v[0]), float32(v[1]), 0, 1}
}

// FromVec3 maps x, y, z to red, green and blue with alpha 1.
func FromVec3[T vec.Number](v vec.Vec3[T]) RGBA {
	return RGBA{float32(v[0]), float32(v[1]), float32(v[2]), 1}
}

func FromVec4[T vec.Number](v vec.Vec4[T]) RGBA {
	return RGBA{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// FromRGBA8 converts 8-bit channels.
func FromRGBA8(r, g, b, a uint8) RGBA {
	return RGBA{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

func (c RGBA) Vec4() vec.Vec4f {
	return vec.Vec4f{c.R, c.G, c.B, c.A}
}

func (c RGBA) Add(o RGBA) RGBA      { return FromVec4(c.Vec4().Add(o.Vec4())) }
func (c RGBA) Sub(o RGBA) RGBA      { return FromVec4(c.Vec4().Sub(o.Vec4())) }
func (c RGBA) Mul(o RGBA) RGBA      { return FromVec4(c.Vec4().Mul(o.Vec4())) }
func (c RGBA) Div(o RGBA) RGBA      { return FromVec4(c.Vec4().Div(o.Vec4())) }
func (c RGBA) Scale(s float32) RGBA { return FromVec4(c.Vec4().Scale(s)) }

// Clamp clamps each channel between the matching channels of min and max.
func (c RGBA) Clamp(min, max RGBA) RGBA {
	return FromVec4(c.Vec4().Clamp(min.Vec4(), max.Vec4()))
}

func (c RGBA) Lerp(end RGBA, t float64) RGBA {
	return FromVec4(c.Vec4().Lerp(end.Vec4(), t))
}

func (c RGBA) LerpUnclamped(end RGBA, t float64) RGBA {
	return FromVec4(c.Vec4().LerpUnclamped(end.Vec4(), t))
}

// RGBA8 converts to 8-bit channels, clamping to [0, 1] and rounding to
// nearest. NaN maps to 0.
func (c RGBA) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := unit(c.A)
	return to16(unit(c.R) * alpha), to16(unit(c.G) * alpha), to16(unit(c.B) * alpha), to16(alpha)
}

func unit(f float32) float32 {
	if !(f > 0) {
		return 0
	}
	return vec.Min(f, 1)
}

func to8(f float32) uint8 {
	return uint8(math32.Floor(unit(f)*255 + 0.5))
}

func to16(f float32) uint32 {
	return uint32(math32.Floor(f*0xffff + 0.5))
}
