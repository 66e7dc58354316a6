package num

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type meters float64

func TestKind(t *testing.T) {
	assert.Equal(t, reflect.Float64, KindOf[meters]())
	assert.True(t, IsComplex[complex64]())
	assert.False(t, IsComplex[float64]())
	assert.True(t, IsUnsigned[uint16]())
	assert.False(t, IsUnsigned[int16]())
}

func TestToFromComplex(t *testing.T) {
	assert.Equal(t, complex(3, 0), ToComplex(int8(3)))
	assert.Equal(t, complex(2.5, 0), ToComplex(meters(2.5)))
	assert.Equal(t, complex(1, -2), ToComplex(complex64(complex(1, -2))))

	assert.Equal(t, 5, FromComplex[int](complex(5.9, 1)))
	assert.Equal(t, -5, FromComplex[int](complex(-5.9, 0)))
	assert.Equal(t, float32(1.5), FromComplex[float32](complex(1.5, 3)))
	assert.Equal(t, complex64(complex(1, 2)), FromComplex[complex64](complex(1, 2)))
	assert.Equal(t, meters(4), FromFloat[meters](4))
}

func TestCast(t *testing.T) {
	t.Run("SameKind", func(t *testing.T) {
		big := int64(math.MaxInt64)
		assert.Equal(t, big, Cast[int64](big))
	})

	t.Run("Integers", func(t *testing.T) {
		assert.Equal(t, uint64(math.MaxUint64), Cast[uint64](int64(-1)))
		assert.Equal(t, int8(-1), Cast[int8](uint8(255)))
		assert.Equal(t, int64(1<<40), Cast[int64](uint64(1<<40)))
	})

	t.Run("Mixed", func(t *testing.T) {
		assert.Equal(t, 4, Cast[int](4.6))
		assert.Equal(t, complex(3.0, 0), Cast[complex128](3))
		assert.Equal(t, 2.0, Cast[float64](complex(2.0, 7)))
	})
}

func TestConjAbs(t *testing.T) {
	assert.Equal(t, complex(3, 4), Conj(complex(3, -4)))
	assert.Equal(t, complex64(complex(1, -1)), Conj(complex64(complex(1, 1))))
	assert.Equal(t, -7, Conj(-7))

	assert.InDelta(t, 5.0, Abs(complex(3, 4)), 1e-12)
	assert.InDelta(t, 5.0, Abs(-5), 1e-12)
	assert.InDelta(t, 25.0, AbsSquared(complex(3, -4)), 1e-12)
	assert.InDelta(t, 2.5, Real(complex(2.5, 9)), 1e-12)
}
