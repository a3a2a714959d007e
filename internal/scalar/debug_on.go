//go:build ionmath_debug

package scalar

// Debug enables precondition checks that panic on programmer errors.
const Debug = true
