//go:build !ionmath_debug

package scalar

// Debug enables precondition checks that panic on programmer errors.
// Build with -tags ionmath_debug to turn them on.
const Debug = false
