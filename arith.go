package vecmath

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/vecmath/internal/num"
)

// Plus returns a copy of a with b added over the first min(a.Len(), b.Len())
// positions. The result has the size of a.
func Plus[T Scalar, V Vec[T, V]](a V, b View[T]) V {
	c := a.Clone()
	addInto(c.elems(), b.elems())
	return c
}

// Minus returns a copy of a with b subtracted over the first min(a.Len(), b.Len())
// positions.
func Minus[T Scalar, V Vec[T, V]](a V, b View[T]) V {
	c := a.Clone()
	subInto(c.elems(), b.elems())
	return c
}

// Times returns a copy of a scaled by x.
func Times[T Scalar, V Vec[T, V]](a V, x T) V {
	c := a.Clone()
	scale(c.elems(), x)
	return c
}

// Quotient returns a copy of a divided by x.
func Quotient[T Scalar, V Vec[T, V]](a V, x T) V {
	c := a.Clone()
	divScalar(c.elems(), x)
	return c
}

// Negate returns a copy of a with every sign flipped. Unsigned kinds do not
// satisfy Signed and are rejected at compile time.
func Negate[T Signed, V Vec[T, V]](a V) V {
	c := a.Clone()
	s := c.elems()
	for i := range s {
		s[i] = -s[i]
	}
	return c
}

// ModInPlace replaces every element of v by its remainder modulo x, truncated
// toward zero as Go's % operator does.
func ModInPlace[T constraints.Integer, V Vec[T, V]](v V, x T) V {
	requireNonZero("modulo", x)
	s := v.elems()
	for i := range s {
		s[i] %= x
	}
	return v
}

// Mod returns a copy of a with every element reduced modulo x.
func Mod[T constraints.Integer, V Vec[T, V]](a V, x T) V {
	return ModInPlace[T](a.Clone(), x)
}

// AddBy adds a scalar of another kind to every element of v in place. The kind of
// x must convert to T under the active policy.
func AddBy[T Scalar, V Vec[T, V], U Scalar](v V, x U) V {
	mixScalar("add", v.elems(), x, opAdd)
	return v
}

// SubBy subtracts a scalar of another kind from every element of v in place.
func SubBy[T Scalar, V Vec[T, V], U Scalar](v V, x U) V {
	warnUnsigned[T]("subtract")
	mixScalar("subtract", v.elems(), x, opSub)
	return v
}

// ScaleBy multiplies every element of v by a scalar of another kind in place.
// Integer elements truncate the product toward zero.
func ScaleBy[T Scalar, V Vec[T, V], U Scalar](v V, x U) V {
	warnUnsigned[T]("multiply")
	mixScalar("multiply", v.elems(), x, opMul)
	return v
}

// DivBy divides every element of v by a scalar of another kind in place.
func DivBy[T Scalar, V Vec[T, V], U Scalar](v V, x U) V {
	requireNonZero("divide", x)
	mixScalar("divide", v.elems(), x, opDiv)
	return v
}

type scalarOp uint8

const (
	opAdd scalarOp = iota
	opSub
	opMul
	opDiv
)

// mixScalar applies op between each element and x in the wider of the two
// representations, then narrows back to T.
func mixScalar[T, U Scalar](name string, dst []T, x U, op scalarOp) {
	requireConvertible[U, T](name)
	if KindOf[T]() == KindOf[U]() {
		applyOp(dst, num.Cast[T](x), op)
		return
	}
	if !num.IsComplex[T]() && !num.IsComplex[U]() {
		y := num.Real(x)
		for i, e := range dst {
			dst[i] = num.FromFloat[T](applyScalar(num.Real(e), y, op))
		}
		return
	}
	y := num.ToComplex(x)
	for i, e := range dst {
		dst[i] = num.FromComplex[T](applyScalar(num.ToComplex(e), y, op))
	}
}

func applyOp[T Scalar](dst []T, x T, op scalarOp) {
	switch op {
	case opAdd:
		addScalar(dst, x)
	case opSub:
		for i := range dst {
			dst[i] -= x
		}
	case opMul:
		for i := range dst {
			dst[i] *= x
		}
	case opDiv:
		for i := range dst {
			dst[i] /= x
		}
	}
}

func applyScalar[F float64 | complex128](a, b F, op scalarOp) F {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	case opMul:
		return a * b
	default:
		return a / b
	}
}
