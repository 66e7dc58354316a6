package vecmath

import (
	"iter"
	"slices"
)

// Vector is a dynamic-extent vector: its size is decided at construction and may
// grow with Append.
//
// The zero value is an empty vector ready to use. Assigning a Vector value shares
// its storage; use Clone for an independent copy.
type Vector[T Scalar] struct {
	data []T
}

var _ Vec[float64, *Vector[float64]] = (*Vector[float64])(nil)

// NewVector returns a vector of count zero-valued elements.
func NewVector[T Scalar](count int) *Vector[T] {
	if count < 0 {
		fault("new vector", ErrInvalidArgument, "negative count")
	}
	return &Vector[T]{data: make([]T, count)}
}

// VectorOf returns a vector holding values in order.
func VectorOf[T Scalar](values ...T) *Vector[T] {
	return &Vector[T]{data: slices.Clone(values)}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// Extent returns DynamicExtent.
func (v *Vector[T]) Extent() Extent { return DynamicExtent }

// At returns element i.
func (v *Vector[T]) At(i int) T { return v.data[i] }

// Set stores x at index i.
func (v *Vector[T]) Set(i int, x T) { v.data[i] = x }

func (v *Vector[T]) elems() []T { return v.data }

// X returns the first component.
func (v *Vector[T]) X() T { return v.data[0] }

// Y returns the second component.
func (v *Vector[T]) Y() T { return v.data[1] }

// Z returns the third component.
func (v *Vector[T]) Z() T { return v.data[2] }

// W returns the fourth component.
func (v *Vector[T]) W() T { return v.data[3] }

// Append adds elements to the end of the vector.
func (v *Vector[T]) Append(values ...T) *Vector[T] {
	v.data = append(v.data, values...)
	return v
}

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: slices.Clone(v.data)}
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T { return slices.Clone(v.data) }

// All iterates over index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] { return allOf(v.data) }

// Values iterates over the elements.
func (v *Vector[T]) Values() iter.Seq[T] { return valuesOf(v.data) }

// Equal reports whether v and o have the same size and elements.
func (v *Vector[T]) Equal(o View[T]) bool { return Equal[T](v, o) }

// IsZero reports whether v is empty or all of its elements are zero.
func (v *Vector[T]) IsZero() bool { return isZero(v.data) }

func (v *Vector[T]) String() string { return format(v.data) }

// Reset sets every element to zero.
func (v *Vector[T]) Reset() *Vector[T] {
	reset(v.data)
	return v
}

// Apply calls fn with a pointer to each element in order.
func (v *Vector[T]) Apply(fn func(*T)) *Vector[T] {
	for i := range v.data {
		fn(&v.data[i])
	}
	return v
}

// Add adds o element-wise over the first min(v.Len(), o.Len()) positions.
func (v *Vector[T]) Add(o View[T]) *Vector[T] {
	addInto(v.data, o.elems())
	return v
}

// Sub subtracts o element-wise over the first min(v.Len(), o.Len()) positions.
func (v *Vector[T]) Sub(o View[T]) *Vector[T] {
	subInto(v.data, o.elems())
	return v
}

// AddScalar adds x to every element.
func (v *Vector[T]) AddScalar(x T) *Vector[T] {
	addScalar(v.data, x)
	return v
}

// SubScalar subtracts x from every element.
func (v *Vector[T]) SubScalar(x T) *Vector[T] {
	subScalar(v.data, x)
	return v
}

// Scale multiplies every element by x.
func (v *Vector[T]) Scale(x T) *Vector[T] {
	scale(v.data, x)
	return v
}

// DivScalar divides every element by x. A zero divisor faults with ErrDivisionByZero.
func (v *Vector[T]) DivScalar(x T) *Vector[T] {
	divScalar(v.data, x)
	return v
}

// Magnitude returns the Euclidean norm ‖v‖.
func (v *Vector[T]) Magnitude() float64 { return magnitude(v.data) }

// Normalize scales v to unit length. A zero vector faults with ErrDivisionByZero.
func (v *Vector[T]) Normalize() *Vector[T] {
	normalize(v.data)
	return v
}
