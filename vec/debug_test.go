//go:build ionmath_debug

package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampRejectsInvertedRange(t *testing.T) {
	assert.PanicsWithValue(t, "vec: min must be less than max", func() { Clamp(5, 10, 0) })
	assert.Panics(t, func() { Clamp(1.0, 2.0, 2.0) })
	assert.Panics(t, func() { Vec2f{}.Clamp(Vec2f{0, 1}, Vec2f{1, 0}) })
	assert.NotPanics(t, func() { Clamp(5, 0, 10) })
}
