package vecmath

import (
	"math"

	"github.com/hupe1980/vecmath/internal/num"
)

// Element kernels shared by Fixed and Vector. Binary kernels walk the first
// min(len(dst), len(src)) positions and leave the rest of dst untouched.

func addInto[T Scalar](dst, src []T) {
	for i := range min(len(dst), len(src)) {
		dst[i] += src[i]
	}
}

func subInto[T Scalar](dst, src []T) {
	warnUnsigned[T]("subtract")
	for i := range min(len(dst), len(src)) {
		dst[i] -= src[i]
	}
}

func addScalar[T Scalar](dst []T, x T) {
	for i := range dst {
		dst[i] += x
	}
}

func subScalar[T Scalar](dst []T, x T) {
	warnUnsigned[T]("subtract")
	for i := range dst {
		dst[i] -= x
	}
}

func scale[T Scalar](dst []T, x T) {
	warnUnsigned[T]("multiply")
	for i := range dst {
		dst[i] *= x
	}
}

func divScalar[T Scalar](dst []T, x T) {
	requireNonZero("divide", x)
	for i := range dst {
		dst[i] /= x
	}
}

func reset[T Scalar](dst []T) {
	clear(dst)
}

func isZero[T Scalar](s []T) bool {
	for _, x := range s {
		if x != 0 {
			return false
		}
	}
	return true
}

func magnitude[T Scalar](s []T) float64 {
	var sum float64
	for _, x := range s {
		sum += num.AbsSquared(x)
	}
	return math.Sqrt(sum)
}

func normalize[T Scalar](s []T) {
	m := magnitude(s)
	if m == 0 {
		fault("normalize", ErrDivisionByZero, "zero magnitude")
	}
	inv := num.FromFloat[T](1 / m)
	for i := range s {
		s[i] *= inv
	}
}
