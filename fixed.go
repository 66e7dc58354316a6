package vecmath

import (
	"iter"
	"unsafe"
)

// Array is the set of inline storage types a Fixed vector may use.
type Array[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T
}

// Fixed is a vector whose size is part of its type: the length of the array A.
//
// The zero value is the all-zero vector. Fixed is a plain value; copying it
// copies the elements.
type Fixed[T Scalar, A Array[T]] struct {
	data A
}

type (
	// Vec2 is a two-dimensional fixed vector.
	Vec2[T Scalar] = Fixed[T, [2]T]
	// Vec3 is a three-dimensional fixed vector.
	Vec3[T Scalar] = Fixed[T, [3]T]
	// Vec4 is a four-dimensional fixed vector.
	Vec4[T Scalar] = Fixed[T, [4]T]
)

var _ Vec[float64, *Vec3[float64]] = (*Vec3[float64])(nil)

// NewFixed returns a zero vector.
func NewFixed[T Scalar, A Array[T]]() *Fixed[T, A] {
	return new(Fixed[T, A])
}

// FillFixed returns a vector with every element set to value.
func FillFixed[T Scalar, A Array[T]](value T) *Fixed[T, A] {
	v := new(Fixed[T, A])
	s := v.elems()
	for i := range s {
		s[i] = value
	}
	return v
}

// FixedOf returns a vector holding values in order, padding with zeros.
// Passing more values than the vector holds faults with ErrSizeMismatch.
func FixedOf[T Scalar, A Array[T]](values ...T) *Fixed[T, A] {
	v := new(Fixed[T, A])
	requireFits("fixed of", v.Len(), len(values))
	copy(v.elems(), values)
	return v
}

// FixedFromArray wraps a copy of arr.
func FixedFromArray[T Scalar, A Array[T]](arr A) *Fixed[T, A] {
	return &Fixed[T, A]{data: arr}
}

// Vec2Of returns the vector (x, y).
func Vec2Of[T Scalar](x, y T) *Vec2[T] {
	return &Vec2[T]{data: [2]T{x, y}}
}

// Vec3Of returns the vector (x, y, z).
func Vec3Of[T Scalar](x, y, z T) *Vec3[T] {
	return &Vec3[T]{data: [3]T{x, y, z}}
}

// Vec4Of returns the vector (x, y, z, w).
func Vec4Of[T Scalar](x, y, z, w T) *Vec4[T] {
	return &Vec4[T]{data: [4]T{x, y, z, w}}
}

// Len returns the number of elements.
func (v *Fixed[T, A]) Len() int { return len(v.data) }

// Extent returns the committed size.
func (v *Fixed[T, A]) Extent() Extent { return Extent(len(v.data)) }

// At returns element i.
func (v *Fixed[T, A]) At(i int) T { return v.elems()[i] }

// Set stores x at index i.
func (v *Fixed[T, A]) Set(i int, x T) { v.elems()[i] = x }

func (v *Fixed[T, A]) elems() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.data)), len(v.data))
}

// Array returns a copy of the backing array.
func (v *Fixed[T, A]) Array() A { return v.data }

// X returns the first component.
func (v *Fixed[T, A]) X() T { return v.At(0) }

// Y returns the second component.
func (v *Fixed[T, A]) Y() T { return v.At(1) }

// Z returns the third component.
func (v *Fixed[T, A]) Z() T { return v.At(2) }

// W returns the fourth component.
func (v *Fixed[T, A]) W() T { return v.At(3) }

// Clone returns a copy of v.
func (v *Fixed[T, A]) Clone() *Fixed[T, A] {
	c := *v
	return &c
}

// Slice returns a copy of the elements.
func (v *Fixed[T, A]) Slice() []T {
	return append([]T(nil), v.elems()...)
}

// All iterates over index/element pairs.
func (v *Fixed[T, A]) All() iter.Seq2[int, T] { return allOf(v.elems()) }

// Values iterates over the elements.
func (v *Fixed[T, A]) Values() iter.Seq[T] { return valuesOf(v.elems()) }

// Equal reports whether v and o have the same size and elements.
func (v *Fixed[T, A]) Equal(o View[T]) bool { return Equal[T](v, o) }

// IsZero reports whether all elements are zero.
func (v *Fixed[T, A]) IsZero() bool { return isZero(v.elems()) }

func (v *Fixed[T, A]) String() string { return format(v.elems()) }

// Reset sets every element to zero.
func (v *Fixed[T, A]) Reset() *Fixed[T, A] {
	var zero A
	v.data = zero
	return v
}

// Apply calls fn with a pointer to each element in order.
func (v *Fixed[T, A]) Apply(fn func(*T)) *Fixed[T, A] {
	s := v.elems()
	for i := range s {
		fn(&s[i])
	}
	return v
}

// Add adds o element-wise over the first min(v.Len(), o.Len()) positions.
func (v *Fixed[T, A]) Add(o View[T]) *Fixed[T, A] {
	addInto(v.elems(), o.elems())
	return v
}

// Sub subtracts o element-wise over the first min(v.Len(), o.Len()) positions.
func (v *Fixed[T, A]) Sub(o View[T]) *Fixed[T, A] {
	subInto(v.elems(), o.elems())
	return v
}

// AddScalar adds x to every element.
func (v *Fixed[T, A]) AddScalar(x T) *Fixed[T, A] {
	addScalar(v.elems(), x)
	return v
}

// SubScalar subtracts x from every element.
func (v *Fixed[T, A]) SubScalar(x T) *Fixed[T, A] {
	subScalar(v.elems(), x)
	return v
}

// Scale multiplies every element by x.
func (v *Fixed[T, A]) Scale(x T) *Fixed[T, A] {
	scale(v.elems(), x)
	return v
}

// DivScalar divides every element by x. A zero divisor faults with ErrDivisionByZero.
func (v *Fixed[T, A]) DivScalar(x T) *Fixed[T, A] {
	divScalar(v.elems(), x)
	return v
}

// Magnitude returns the Euclidean norm ‖v‖.
func (v *Fixed[T, A]) Magnitude() float64 { return magnitude(v.elems()) }

// Normalize scales v to unit length. A zero vector faults with ErrDivisionByZero.
func (v *Fixed[T, A]) Normalize() *Fixed[T, A] {
	normalize(v.elems())
	return v
}
