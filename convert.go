package vecmath

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/num"
)

// Convertible reports whether an element of kind from may be converted into kind to
// under the conversion policy selected at build time.
//
// The strict policy (default) admits only conversions that never lose
// information: integer widening, integers of at most 32 bits into float64,
// 8/16-bit integers into float32, float32 into float64 and complex64 into
// complex128. Real and complex kinds never mix. 64-bit integers (int, uint and
// uintptr included) do not fit the 53-bit mantissa of float64 and are rejected.
//
// The permissive policy (build tag vecmath_permissive) admits every ordinary value
// conversion, narrowing included, plus real into complex. Complex into real is
// rejected in both modes.
func Convertible(from, to Kind) bool {
	if from == KindInvalid || to == KindInvalid {
		return false
	}
	if from == to {
		return true
	}
	if from.IsComplex() && !to.IsComplex() {
		return false
	}
	if Permissive {
		return true
	}
	return widens(from, to)
}

func widens(from, to Kind) bool {
	switch {
	case from.IsComplex() || to.IsComplex():
		return from.IsComplex() && to.IsComplex() && to.Bits() > from.Bits()
	case from.IsInteger() && to.IsInteger():
		switch {
		case from.IsUnsigned() == to.IsUnsigned():
			return to.Bits() >= from.Bits()
		case from.IsUnsigned():
			return to.Bits() > from.Bits()
		default:
			return false
		}
	case from.IsInteger() && to.IsFloat():
		if to == KindFloat64 {
			return from.Bits() <= 32
		}
		return from.Bits() <= 16
	case from.IsFloat() && to.IsFloat():
		return to.Bits() >= from.Bits()
	default:
		return false
	}
}

// CanConvert reports whether U converts to T under the active policy.
func CanConvert[U, T Scalar]() bool {
	return Convertible(KindOf[U](), KindOf[T]())
}

// Cast converts a single scalar from U to T. Floating point values truncate toward
// zero when cast to integers, reals gain a zero imaginary part, and complex values
// cast to real kinds keep their real part. Cast does not consult the policy.
func Cast[T, U Scalar](u U) T {
	return num.Cast[T](u)
}

func requireConvertible[U, T Scalar](op string) {
	from, to := KindOf[U](), KindOf[T]()
	if !Convertible(from, to) {
		fault(op, ErrTypeNotConvertible, fmt.Sprintf("%s to %s", from, to))
	}
}

// convertInto casts src element-wise into dst after checking the policy.
func convertInto[T, U Scalar](op string, dst []T, src []U) {
	requireConvertible[U, T](op)
	for i, u := range src {
		dst[i] = num.Cast[T](u)
	}
}
