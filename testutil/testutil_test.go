package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestUniformRangeVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformRangeVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	for _, vec := range v {
		for _, x := range vec {
			assert.GreaterOrEqual(t, x, -1.0)
			assert.Less(t, x, 1.0)
		}
	}
}

func TestComplexVectors(t *testing.T) {
	rng := NewRNG(4711)

	n := 1 + rng.Intn(16)
	assert.LessOrEqual(t, n, 16)

	v := rng.ComplexVectors(4, n)
	assert.Len(t, v, 4)
	for _, vec := range v {
		assert.Len(t, vec, n)
		for _, x := range vec {
			assert.GreaterOrEqual(t, real(x), -1.0)
			assert.Less(t, real(x), 1.0)
			assert.GreaterOrEqual(t, imag(x), -1.0)
			assert.Less(t, imag(x), 1.0)
		}
	}
}

func TestUnitVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UnitVectors(8, 3)

	for _, vec := range v {
		var sum float64
		for _, x := range vec {
			sum += x * x
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Float64()
	rng.Reset()
	assert.Equal(t, first, rng.Float64())
	assert.Equal(t, int64(42), rng.Seed())
}

func TestNonZeroVectors(t *testing.T) {
	rng := NewRNG(1)
	for _, v := range rng.NonZeroVectors(64, 3) {
		assert.NotZero(t, v[0])
	}
}

func TestApprox(t *testing.T) {
	assert.True(t, cmp.Equal([]float64{1, 2}, []float64{1 + 1e-10, 2}, Approx(1e-9)))
	assert.False(t, cmp.Equal([]float64{1, 2}, []float64{1.1, 2}, Approx(1e-9)))
	assert.True(t, cmp.Equal([]complex128{complex(1, 1)}, []complex128{complex(1, 1+1e-12)}, Approx(1e-9)))
}

func TestRecover(t *testing.T) {
	sentinel := errors.New("boom")

	assert.NoError(t, Recover(func() {}))
	assert.ErrorIs(t, Recover(func() { panic(sentinel) }), sentinel)
	assert.EqualError(t, Recover(func() { panic("text") }), "panic: text")

	RequireFault(t, sentinel, func() { panic(sentinel) })
}
