package vecmath

import (
	"math"

	"github.com/hupe1980/vecmath/internal/num"
)

// IsNearZero reports whether |x| ≤ |eps|.
func IsNearZero(x, eps float64) bool {
	return math.Abs(x) <= math.Abs(eps)
}

// IsNearZeroComplex reports whether both parts of c are near zero.
func IsNearZeroComplex(c complex128, eps float64) bool {
	return IsNearZero(real(c), eps) && IsNearZero(imag(c), eps)
}

// nearZero dispatches on the element classification of T.
func nearZero[T Scalar](x T, eps float64) bool {
	if num.IsComplex[T]() {
		return IsNearZeroComplex(num.ToComplex(x), eps)
	}
	return IsNearZero(num.Real(x), eps)
}

// AreParallel reports whether a and b point along the same line.
//
// Real vectors of size three pass when every component of a × b lies in
// [0, ε]. The components are not made absolute first, so any negative component
// fails the test, rounding noise included. Other real sizes use the Cauchy–Schwarz equality
// |‖a‖²‖b‖² − ⟨a,b⟩²| ≤ ε. Complex vectors pass when the modulus of the inner
// product of their normalized copies is within ε of 1.
func AreParallel[T Scalar, V Vec[T, V]](a, b V, opts ...Option) bool {
	requireSameLen("parallel", a.Len(), b.Len())
	o := applyOptions(opts)

	if num.IsComplex[T]() {
		ua, ub := a.Clone(), b.Clone()
		normalize(ua.elems())
		normalize(ub.elems())
		m := num.Abs(innerProduct(ua.elems(), ub.elems(), o.convention))
		return math.Abs(m-1) <= o.epsilon
	}

	if a.Len() == 3 {
		var c [3]T
		crossInto(c[:], a.elems(), b.elems())
		for _, x := range c {
			r := num.Real(x)
			if r < 0 || r > o.epsilon {
				return false
			}
		}
		return true
	}

	var aa, bb, ab float64
	for i, x := range a.elems() {
		y := num.Real(b.At(i))
		xr := num.Real(x)
		aa += xr * xr
		bb += y * y
		ab += xr * y
	}
	return IsNearZero(aa*bb-ab*ab, o.epsilon)
}

// ArePerpendicular reports whether ⟨a, b⟩ is near zero. For complex kinds both
// parts of the inner product must be near zero.
func ArePerpendicular[T Scalar, V Vec[T, V]](a, b V, opts ...Option) bool {
	requireSameLen("perpendicular", a.Len(), b.Len())
	o := applyOptions(opts)
	return nearZero(innerProduct(a.elems(), b.elems(), o.convention), o.epsilon)
}

// AreCoplanar reports whether the scalar triple product of a, b and c is near
// zero. All three vectors must have three elements.
func AreCoplanar[T Scalar, V Space3[T, V]](a, b, c V, opts ...Option) bool {
	requireDim("coplanar", a.Len(), 3)
	requireDim("coplanar", b.Len(), 3)
	requireDim("coplanar", c.Len(), 3)
	o := applyOptions(opts)
	return nearZero(ScalarTripleProduct[T](a, b, c, opts...), o.epsilon)
}
