//go:build !vecmath_permissive

package vecmath

// Permissive reports whether the library was built with the permissive conversion
// policy (build tag vecmath_permissive).
const Permissive = false
