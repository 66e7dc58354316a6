package vecmath

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath/testutil"
)

func TestFixedConstruction(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		v := NewFixed[float64, [4]float64]()
		assert.Equal(t, 4, v.Len())
		assert.Equal(t, Extent(4), v.Extent())
		assert.True(t, v.IsZero())

		var z Vec3[int]
		assert.Equal(t, []int{0, 0, 0}, z.Slice())
	})

	t.Run("Fill", func(t *testing.T) {
		v := FillFixed[int, [5]int](7)
		assert.Equal(t, 5, v.Len())
		for x := range v.Values() {
			assert.Equal(t, 7, x)
		}
	})

	t.Run("Literal", func(t *testing.T) {
		v := FixedOf[int, [5]int](1, 2, 3)
		assert.Equal(t, []int{1, 2, 3, 0, 0}, v.Slice())

		assert.Equal(t, [3]float64{1, 2, 3}, Vec3Of(1.0, 2.0, 3.0).Array())
		assert.Equal(t, 4.0, Vec4Of(1.0, 2.0, 3.0, 4.0).W())
		assert.Equal(t, []int{1, 2}, FixedFromArray[int]([2]int{1, 2}).Slice())
	})

	t.Run("TooManyValues", func(t *testing.T) {
		testutil.RequireFault(t, ErrSizeMismatch, func() {
			FixedOf[int, [2]int](1, 2, 3)
		})
	})

	t.Run("FromSlice", func(t *testing.T) {
		v := FixedFrom[float64, [4]float64]([]int32{1, 2, 3})
		assert.Equal(t, []float64{1, 2, 3, 0}, v.Slice())

		testutil.RequireFault(t, ErrSizeMismatch, func() {
			FixedFrom[float64, [2]float64]([]float64{1, 2, 3})
		})
	})

	t.Run("FromSeq", func(t *testing.T) {
		v := FixedFromSeq[int64, [3]int64](slices.Values([]int8{4, 5}))
		assert.Equal(t, []int64{4, 5, 0}, v.Slice())

		testutil.RequireFault(t, ErrSizeMismatch, func() {
			FixedFromSeq[int64, [1]int64](slices.Values([]int64{4, 5}))
		})
	})

	t.Run("CopyIsDeep", func(t *testing.T) {
		a := Vec3Of(1, 2, 3)
		b := *a
		b.Set(0, 9)
		assert.Equal(t, 1, a.X())

		c := a.Clone()
		c.Set(1, 9)
		assert.Equal(t, 2, a.Y())
	})
}

func TestVectorConstruction(t *testing.T) {
	t.Run("Count", func(t *testing.T) {
		v := NewVector[float64](3)
		assert.Equal(t, 3, v.Len())
		assert.True(t, v.Extent().IsDynamic())
		assert.True(t, v.IsZero())

		testutil.RequireFault(t, ErrInvalidArgument, func() { NewVector[int](-1) })
	})

	t.Run("Literal", func(t *testing.T) {
		src := []int{1, 2, 3}
		v := VectorOf(src...)
		src[0] = 9
		assert.Equal(t, []int{1, 2, 3}, v.Slice())
	})

	t.Run("Widening", func(t *testing.T) {
		v := VectorFrom[float64]([]int32{1, 2, 3})
		assert.Equal(t, []float64{1, 2, 3}, v.Slice())

		s := VectorFromSeq[int64](slices.Values([]uint32{7, 8}))
		assert.Equal(t, []int64{7, 8}, s.Slice())

		c := ConvertVector[complex128](VectorOf(complex64(complex(1, 2))))
		assert.Equal(t, []complex128{complex(1, 2)}, c.Slice())
	})

	t.Run("Narrowing", func(t *testing.T) {
		if Permissive {
			v := VectorFrom[int]([]float64{1.9, -2.9})
			assert.Equal(t, []int{1, -2}, v.Slice())
			return
		}
		testutil.RequireFault(t, ErrTypeNotConvertible, func() {
			VectorFrom[int]([]float64{1.9})
		})
	})

	t.Run("ComplexToReal", func(t *testing.T) {
		testutil.RequireFault(t, ErrTypeNotConvertible, func() {
			ConvertVector[float64](VectorOf(complex(1.0, 1.0)))
		})
	})

	t.Run("WideIntegerToFloat64", func(t *testing.T) {
		src := []int64{1<<53 + 1}
		if Permissive {
			v := VectorFrom[float64](src)
			assert.Equal(t, []float64{1 << 53}, v.Slice())
			return
		}
		testutil.RequireFault(t, ErrTypeNotConvertible, func() { VectorFrom[float64](src) })
		testutil.RequireFault(t, ErrTypeNotConvertible, func() { VectorFrom[float64]([]uint64{1}) })
		testutil.RequireFault(t, ErrTypeNotConvertible, func() { VectorFrom[float64]([]int{1}) })
		testutil.RequireFault(t, ErrTypeNotConvertible, func() { ScaleBy(VectorOf(1.0), int64(2)) })
	})

	t.Run("Append", func(t *testing.T) {
		v := VectorOf(1, 2)
		v.Append(3, 4)
		assert.Equal(t, 4, v.Len())
		assert.Equal(t, 4, v.W())

		var z Vector[int]
		z.Append(5)
		assert.Equal(t, []int{5}, z.Slice())
	})
}

func TestConvertAndMove(t *testing.T) {
	t.Run("ConvertFixedFromDynamic", func(t *testing.T) {
		v := ConvertFixed[float64, [4]float64](VectorOf[int16](1, 2))
		assert.Equal(t, []float64{1, 2, 0, 0}, v.Slice())

		testutil.RequireFault(t, ErrSizeMismatch, func() {
			ConvertFixed[float64, [1]float64](VectorOf(1.0, 2.0))
		})
	})

	t.Run("MoveDynamicSameType", func(t *testing.T) {
		src := VectorOf(1.0, 2.0, 3.0)
		dst := MoveVector[float64](src)
		assert.Equal(t, []float64{1, 2, 3}, dst.Slice())
		assert.Equal(t, 0, src.Len())
	})

	t.Run("MoveDynamicConverted", func(t *testing.T) {
		src := VectorOf[int32](1, 2)
		dst := MoveVector[int64](src)
		assert.Equal(t, []int64{1, 2}, dst.Slice())
		assert.Equal(t, 0, src.Len())
	})

	t.Run("MoveFixedSource", func(t *testing.T) {
		src := Vec3Of(1.0, 2.0, 3.0)
		dst := MoveVector[float64](src)
		assert.Equal(t, []float64{1, 2, 3}, dst.Slice())
		assert.Equal(t, []float64{1, 2, 3}, src.Slice())

		f := MoveFixed[float64, [4]float64](src)
		assert.Equal(t, []float64{1, 2, 3, 0}, f.Slice())
		assert.Equal(t, 3, src.Len())
	})

	t.Run("MoveFixedFromDynamic", func(t *testing.T) {
		src := VectorOf(1, 2)
		dst := MoveFixed[int, [2]int](src)
		assert.Equal(t, []int{1, 2}, dst.Slice())
		assert.Equal(t, 0, src.Len())
	})
}

func TestRandom(t *testing.T) {
	t.Run("Float", func(t *testing.T) {
		v := RandomVector[float64](1, 5, 100)
		require.Equal(t, 100, v.Len())
		for x := range v.Values() {
			assert.GreaterOrEqual(t, x, 1.0)
			assert.Less(t, x, 5.0)
		}
	})

	t.Run("Complex", func(t *testing.T) {
		v := RandomVector[complex128](-2, 2, 50)
		for x := range v.Values() {
			assert.GreaterOrEqual(t, real(x), -2.0)
			assert.Less(t, real(x), 2.0)
			assert.GreaterOrEqual(t, imag(x), -2.0)
			assert.Less(t, imag(x), 2.0)
		}
	})

	t.Run("FixedInt", func(t *testing.T) {
		v := RandomFixed[int, [8]int](0, 10)
		for x := range v.Values() {
			assert.GreaterOrEqual(t, x, 0)
			assert.Less(t, x, 10)
		}
	})

	t.Run("InvalidBounds", func(t *testing.T) {
		testutil.RequireFault(t, ErrInvalidArgument, func() { RandomVector[float64](5, 1, 3) })
	})
}

func TestTruncatedAddSub(t *testing.T) {
	a := VectorOf(1, 2, 3, 4)
	b := VectorOf(1, 1, 1, 1, 2)

	assert.Equal(t, []int{2, 3, 4, 5}, Plus(a, b).Slice())
	assert.Equal(t, []int{2, 3, 4, 5, 2}, Plus(b, a).Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, a.Slice(), "Plus must not modify its operands")

	fa := FixedOf[int, [4]int](1, 2, 3, 4)
	fb := FixedOf[int, [5]int](1, 1, 1, 1, 2)
	assert.Equal(t, []int{2, 3, 4, 5}, Plus(fa, fb).Slice())
	assert.Equal(t, []int{2, 3, 4, 5, 2}, Plus(fb, fa).Slice())

	d := VectorOf(1, 2, 3, 4, 5)
	assert.Equal(t, []int{2, 4, 3, 4, 5}, d.Add(Vec2Of(1, 2)).Slice())

	assert.Equal(t, []int{0, 1, 2, 3}, Minus(a, b).Slice())
	assert.True(t, a.Clone().Add(b).Equal(VectorOf(2, 3, 4, 5)))
	assert.Equal(t, []int{0, -1, -2, -3, 2}, b.Sub(a).Slice())
}

func TestScalarArithmetic(t *testing.T) {
	t.Run("Chaining", func(t *testing.T) {
		v := VectorOf(1.0, 2.0, 3.0).AddScalar(1).Scale(2).SubScalar(4)
		assert.Equal(t, []float64{0, 2, 4}, v.Slice())
	})

	t.Run("Divide", func(t *testing.T) {
		assert.Equal(t, []int{2, 3, 4}, VectorOf(4, 6, 8).DivScalar(2).Slice())
		assert.Equal(t, []float64{2, 3, 4}, Quotient(Vec3Of(4.0, 6.0, 8.0), 2).Slice())
		testutil.RequireFault(t, ErrDivisionByZero, func() { VectorOf(1.0).DivScalar(0) })
	})

	t.Run("Times", func(t *testing.T) {
		a := Vec3Of(1, 2, 3)
		assert.Equal(t, []int{3, 6, 9}, Times(a, 3).Slice())
		assert.Equal(t, []int{1, 2, 3}, a.Slice())
	})

	t.Run("Negate", func(t *testing.T) {
		assert.Equal(t, []float64{-1, 2, -3}, Negate(Vec3Of(1.0, -2.0, 3.0)).Slice())
		assert.Equal(t, []complex128{complex(-1, 1)}, Negate(VectorOf(complex(1, -1))).Slice())
	})

	t.Run("Mod", func(t *testing.T) {
		assert.Equal(t, []int{3, 0, 1, -3}, Mod(VectorOf(7, 8, 9, -7), 4).Slice())
		v := Vec2Of[uint8](10, 11)
		ModInPlace(v, 3)
		assert.Equal(t, []uint8{1, 2}, v.Slice())
		testutil.RequireFault(t, ErrDivisionByZero, func() { Mod(VectorOf(1), 0) })
	})

	t.Run("MixedKindWidening", func(t *testing.T) {
		v := ScaleBy(VectorOf(1.0, 2.0), int32(3))
		assert.Equal(t, []float64{3, 6}, v.Slice())
		assert.Equal(t, []float64{4, 7}, AddBy(v, int8(1)).Slice())
		assert.Equal(t, []float64{2, 5}, SubBy(v, uint16(2)).Slice())
		assert.Equal(t, []float64{1, 2.5}, DivBy(v, uint32(2)).Slice())
		testutil.RequireFault(t, ErrDivisionByZero, func() { DivBy(v, int32(0)) })
	})

	t.Run("MixedKindNarrowing", func(t *testing.T) {
		v := VectorOf(1, 2, 3)
		if !Permissive {
			testutil.RequireFault(t, ErrTypeNotConvertible, func() { ScaleBy(v, 5.6) })
			return
		}
		assert.Equal(t, []int{5, 11, 16}, ScaleBy(v, 5.6).Slice())
	})

	t.Run("RealToComplex", func(t *testing.T) {
		v := VectorOf(complex(1.0, 1.0))
		if !Permissive {
			testutil.RequireFault(t, ErrTypeNotConvertible, func() { ScaleBy(v, 2.0) })
			return
		}
		assert.Equal(t, []complex128{complex(2, 2)}, ScaleBy(v, 2.0).Slice())
	})
}

func TestMutation(t *testing.T) {
	v := VectorOf(1, 2, 3)
	v.Apply(func(x *int) { *x *= *x })
	assert.Equal(t, []int{1, 4, 9}, v.Slice())

	f := Vec3Of(1, 2, 3).Apply(func(x *int) { *x = -*x })
	assert.Equal(t, []int{-1, -2, -3}, f.Slice())

	assert.True(t, v.Reset().IsZero())
	assert.True(t, f.Reset().IsZero())
	assert.Equal(t, 3, v.Len())

	var empty Vector[float64]
	assert.True(t, empty.IsZero())
	assert.False(t, VectorOf(0, 1).IsZero())
}

func TestIteration(t *testing.T) {
	v := VectorOf(10, 20, 30)
	var idx, vals []int
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []int{10, 20, 30}, vals)

	for x := range Vec3Of(1, 2, 3).Values() {
		if x == 2 {
			break
		}
		assert.Equal(t, 1, x)
	}
}

func TestEqualCompare(t *testing.T) {
	assert.True(t, Equal[int](Vec3Of(1, 2, 3), VectorOf(1, 2, 3)))
	assert.False(t, Equal[int](Vec3Of(1, 2, 3), VectorOf(1, 2)))
	assert.False(t, VectorOf(1, 2).Equal(VectorOf(1, 3)))

	assert.Equal(t, -1, Compare[int](VectorOf(1, 2), VectorOf(1, 3)))
	assert.Equal(t, 1, Compare[int](VectorOf(1, 2, 0), VectorOf(1, 2)))
	assert.Equal(t, 0, Compare[float64](Vec2Of(1.0, 2.0), VectorOf(1.0, 2.0)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", VectorOf(1, 2, 3).String())
	assert.Equal(t, "[1.5 0]", Vec2Of(1.5, 0).String())
	assert.Equal(t, "[]", NewVector[int](0).String())
}

func TestNormalize(t *testing.T) {
	v := VectorOf(1.3, 4.2, 5.2, 0.8).Normalize()
	testutil.RequireApprox(t, []float64{0.189604, 0.612568, 0.758417, 0.11668}, v.Slice(), 1e-5)
	assert.InDelta(t, 1.0, v.Magnitude(), 1e-12)

	again := Normalized(v)
	testutil.RequireApprox(t, v.Slice(), again.Slice(), 1e-12)

	testutil.RequireFault(t, ErrDivisionByZero, func() { NewFixed[float64, [3]float64]().Normalize() })
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 19.8494, VectorOf(1, 4, 19, -4).Magnitude(), 1e-4)
	assert.InDelta(t, 5.0, Vec2Of(complex(3.0, 0), complex(0, 4.0)).Magnitude(), 1e-12)
}
