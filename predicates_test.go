package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/vecmath/testutil"
)

func TestIsNearZero(t *testing.T) {
	assert.True(t, IsNearZero(0, 1e-6))
	assert.True(t, IsNearZero(-1e-7, 1e-6))
	assert.True(t, IsNearZero(1e-7, -1e-6))
	assert.False(t, IsNearZero(1e-5, 1e-6))

	assert.True(t, IsNearZeroComplex(complex(1e-7, -1e-7), 1e-6))
	assert.False(t, IsNearZeroComplex(complex(0, 1), 1e-6))
}

func TestAreParallel(t *testing.T) {
	t.Run("Plane", func(t *testing.T) {
		assert.True(t, AreParallel(Vec2Of(4, 6), Vec2Of(10, 15)))
		assert.True(t, AreParallel(VectorOf(4.0, 6.0), VectorOf(10.0, 15.0)))
		assert.False(t, AreParallel(Vec2Of(1.0, 0.0), Vec2Of(0.0, 1.0)))
	})

	t.Run("Space", func(t *testing.T) {
		assert.True(t, AreParallel(Vec3Of(3.3, 4.4, 5.5), Vec3Of(6.6, 8.8, 11)))
		assert.False(t, AreParallel(Vec3Of(1.0, 0, 0), Vec3Of(0, 1.0, 0)))
	})

	t.Run("RawComponentCheck", func(t *testing.T) {
		// (0,1,0) × (0,0,1) = (1,0,0): a positive component above ε.
		assert.False(t, AreParallel(Vec3Of(0.0, 1, 0), Vec3Of(0.0, 0, 1)))
		// (0,0,1) × (0,1,0) = (-1,0,0): negative components fail regardless of ε.
		assert.False(t, AreParallel(Vec3Of(0.0, 0, 1), Vec3Of(0.0, 1, 0), WithEpsilon(10)))
	})

	t.Run("HigherDimension", func(t *testing.T) {
		assert.True(t, AreParallel(VectorOf(1.0, 2, 3, 4), VectorOf(-2.0, -4, -6, -8)))
		assert.False(t, AreParallel(VectorOf(1.0, 2, 3, 4), VectorOf(1.0, 2, 3, 5)))
	})

	t.Run("Complex", func(t *testing.T) {
		a := VectorOf(complex(1, 1), complex(2, 0))
		b := Times(a, complex(0, 2))
		assert.True(t, AreParallel(a, b))
		assert.True(t, AreParallel(a, b, WithConvention(AntilinearSecond)))
		assert.False(t, AreParallel(a, VectorOf(complex(2, 0), complex(-1, 1))))
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		testutil.RequireFault(t, ErrSizeMismatch, func() {
			AreParallel(VectorOf(1, 2), VectorOf(1, 2, 3, 4))
		})
	})
}

func TestArePerpendicular(t *testing.T) {
	assert.True(t, ArePerpendicular(Vec3Of(10, 10, 2), Vec3Of(2, -3, 5)))
	assert.False(t, ArePerpendicular(Vec3Of(1, 1, 1), Vec3Of(1, 0, 0)))

	a := VectorOf(complex(1, 0), complex(0, 1))
	b := VectorOf(complex(1, 0), complex(0, -1))
	// conj(1)·1 + conj(i)·(−i) = 1 − 1 = 0
	assert.True(t, ArePerpendicular(a, b))
	assert.False(t, ArePerpendicular(a, a))

	testutil.RequireFault(t, ErrSizeMismatch, func() {
		ArePerpendicular(VectorOf(1.0), VectorOf(1.0, 2.0))
	})
}

func TestAreCoplanar(t *testing.T) {
	assert.True(t, AreCoplanar(Vec3Of(1, 1, 1), Vec3Of(1, 3, 1), Vec3Of(2, 2, 2)))
	assert.False(t, AreCoplanar(Vec3Of(1, 0, 0), Vec3Of(0, 1, 0), Vec3Of(0, 0, 1)))

	c := VectorOf(complex(1, 1), 0, 0)
	assert.True(t, AreCoplanar(c, Times(c, 2), VectorOf(0, complex(0, 1), 0)))

	testutil.RequireFault(t, ErrWrongDimension, func() {
		AreCoplanar(VectorOf(1, 1), VectorOf(1, 3), VectorOf(2, 2))
	})
}
