package vecmath

import (
	"math"

	"github.com/hupe1980/vecmath/internal/num"
	"github.com/hupe1980/vecmath/internal/rng"
)

// RandomVector returns count elements drawn uniformly from [lower, higher).
// Real and imaginary parts of complex elements are drawn independently; integer
// kinds truncate the draw toward zero.
//
// Draws come from a process-wide generator seeded on first use.
func RandomVector[T Scalar](lower, higher float64, count int) *Vector[T] {
	v := NewVector[T](count)
	fillRandom(rng.Default(), "random vector", v.data, lower, higher)
	return v
}

// RandomFixed returns a fixed vector with elements drawn as in RandomVector.
func RandomFixed[T Scalar, A Array[T]](lower, higher float64) *Fixed[T, A] {
	v := new(Fixed[T, A])
	fillRandom(rng.Default(), "random fixed", v.elems(), lower, higher)
	return v
}

func fillRandom[T Scalar](r *rng.RNG, op string, dst []T, lower, higher float64) {
	if math.IsNaN(lower) || math.IsNaN(higher) || lower > higher {
		fault(op, ErrInvalidArgument, "lower bound must not exceed higher bound")
	}
	parts := 1
	if num.IsComplex[T]() {
		parts = 2
	}
	draws := make([]float64, len(dst)*parts)
	r.FillUniform(draws, lower, higher)
	for i := range dst {
		if parts == 2 {
			dst[i] = num.FromComplex[T](complex(draws[2*i], draws[2*i+1]))
			continue
		}
		dst[i] = num.FromFloat[T](draws[i])
	}
}
