package vecmath

import (
	"github.com/hupe1980/vecmath/internal/num"
)

// InnerProduct returns ⟨a, b⟩. Real kinds accumulate Σ aᵢ·bᵢ starting at zero.
// Complex kinds conjugate one operand first, chosen with WithConvention
// (AntilinearFirst by default). Dynamic operands of different sizes fault with
// ErrSizeMismatch.
func InnerProduct[T Scalar, V Vec[T, V]](a, b V, opts ...Option) T {
	requireSameLen("inner product", a.Len(), b.Len())
	return innerProduct(a.elems(), b.elems(), applyOptions(opts).convention)
}

func innerProduct[T Scalar](a, b []T, conv Convention) T {
	var sum T
	if !num.IsComplex[T]() {
		for i := range a {
			sum += a[i] * b[i]
		}
		return sum
	}
	for i := range a {
		if conv == AntilinearSecond {
			sum += a[i] * num.Conj(b[i])
		} else {
			sum += num.Conj(a[i]) * b[i]
		}
	}
	return sum
}

// ComplexInnerProduct treats two complex scalars as plane vectors and returns
// re(a)·re(b) + im(a)·im(b).
func ComplexInnerProduct[C Complex](a, b C) float64 {
	x, y := num.ToComplex(a), num.ToComplex(b)
	return real(x)*real(y) + imag(x)*imag(y)
}

// ComplexCrossProduct treats two complex scalars as plane vectors and returns the
// determinant re(a)·im(b) − im(a)·re(b).
func ComplexCrossProduct[C Complex](a, b C) float64 {
	x, y := num.ToComplex(a), num.ToComplex(b)
	return real(x)*imag(y) - imag(x)*real(y)
}

// CrossInPlace stores a × b in a and returns it. Complex components are
// conjugated after the determinant step. Both operands must have three elements.
func CrossInPlace[T Scalar, V Space3[T, V]](a, b V) V {
	requireDim("cross product", a.Len(), 3)
	requireDim("cross product", b.Len(), 3)
	warnUnsigned[T]("cross product")
	crossInto(a.elems(), a.elems(), b.elems())
	return a
}

// Cross returns a × b without modifying either operand.
func Cross[T Scalar, V Space3[T, V]](a, b V) V {
	return CrossInPlace[T](a.Clone(), b)
}

// crossInto writes a × b to dst, which may alias a or b.
func crossInto[T Scalar](dst, a, b []T) {
	x := T(a[1]*b[2]) - T(a[2]*b[1])
	y := T(a[2]*b[0]) - T(a[0]*b[2])
	z := T(a[0]*b[1]) - T(a[1]*b[0])
	if num.IsComplex[T]() {
		x, y, z = num.Conj(x), num.Conj(y), num.Conj(z)
	}
	dst[0], dst[1], dst[2] = x, y, z
}

// ScalarTripleProduct returns ⟨c, a × b⟩ using the inner product convention in
// opts.
func ScalarTripleProduct[T Scalar, V Space3[T, V]](a, b, c V, opts ...Option) T {
	requireDim("scalar triple product", c.Len(), 3)
	return InnerProduct[T](c, Cross[T](a, b), opts...)
}

// VectorTripleProduct returns c × (a × b).
func VectorTripleProduct[T Scalar, V Space3[T, V]](a, b, c V) V {
	return CrossInPlace[T](c.Clone(), Cross[T](a, b))
}
