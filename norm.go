package vecmath

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecmath/internal/num"
)

// NormKind selects a norm whose value is a float64. The L∞ norm yields an
// element of the vector instead and is computed by NormInf.
type NormKind int

const (
	// L0 counts the non-zero elements. It is not a true norm.
	L0 NormKind = iota
	// L1 is the sum of absolute values.
	L1
	// L2 is the Euclidean norm.
	L2
)

func (k NormKind) String() string {
	switch k {
	case L0:
		return "l0"
	case L1:
		return "l1"
	case L2:
		return "l2"
	default:
		return fmt.Sprintf("NormKind(%d)", int(k))
	}
}

// ParseNormKind parses the names produced by NormKind.String.
func ParseNormKind(s string) (NormKind, error) {
	for _, k := range []NormKind{L0, L1, L2} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown norm %q", ErrInvalidArgument, s)
}

// Norm returns the norm of v selected by kind. Complex elements contribute their
// modulus.
func Norm[T Scalar](v View[T], kind NormKind) float64 {
	s := v.elems()
	switch kind {
	case L0:
		n := 0
		for _, x := range s {
			if x != 0 {
				n++
			}
		}
		return float64(n)
	case L1:
		var sum float64
		for _, x := range s {
			sum += num.Abs(x)
		}
		return sum
	case L2:
		return magnitude(s)
	default:
		fault("norm", ErrInvalidArgument, kind.String())
		return 0
	}
}

// PNorm returns (Σ|xᵢ|ᵖ)^(1/p). p must be finite and at least 1; otherwise PNorm
// faults with ErrInvalidArgument. Use NormInf for p = ∞.
func PNorm[T Scalar](v View[T], p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 1 {
		fault("p-norm", ErrInvalidArgument, fmt.Sprintf("p must be finite and >= 1, got %g", p))
	}
	var sum float64
	for _, x := range v.elems() {
		sum += math.Pow(num.Abs(x), p)
	}
	return math.Pow(sum, 1/p)
}

// NormInf returns the L∞ norm of v as the element of largest absolute value
// itself, sign or phase included, not its magnitude. The first such element wins
// ties. An empty vector yields zero.
func NormInf[T Scalar](v View[T]) T {
	var best T
	bestAbs := -1.0
	for _, x := range v.elems() {
		if a := num.Abs(x); a > bestAbs {
			best, bestAbs = x, a
		}
	}
	return best
}

// Magnitude returns ‖v‖, the Euclidean norm.
func Magnitude[T Scalar](v View[T]) float64 {
	return magnitude(v.elems())
}

// Normalized returns a unit-length copy of v. A zero vector faults with
// ErrDivisionByZero.
func Normalized[T Scalar, V Vec[T, V]](v V) V {
	c := v.Clone()
	normalize(c.elems())
	return c
}
