package vecmath

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// View is read access shared by fixed- and dynamic-extent vectors.
//
// The interface is sealed: only *Fixed and *Vector implement it, which lets one
// instantiation read another's storage without exposing it.
type View[T Scalar] interface {
	// Len returns the number of elements.
	Len() int
	// Extent returns the committed size, or DynamicExtent.
	Extent() Extent
	// At returns element i. Indices must be in [0, Len()).
	At(i int) T

	elems() []T
}

// Vec is the constraint satisfied by *Fixed[T, A] and *Vector[T]; V is the
// implementing pointer type itself. Algorithms generic over V require both
// operands to have the same vector type, so mixing fixed sizes does not compile.
type Vec[T Scalar, V any] interface {
	View[T]
	// Set stores x at index i.
	Set(i int, x T)
	// Clone returns a deep copy.
	Clone() V
}

// Plane restricts V to two-dimensional fixed vectors or dynamic vectors, whose
// size is checked at run time.
type Plane[T Scalar, V any] interface {
	*Fixed[T, [2]T] | *Vector[T]
	Vec[T, V]
}

// Space3 restricts V to three-dimensional fixed vectors or dynamic vectors, whose
// size is checked at run time.
type Space3[T Scalar, V any] interface {
	*Fixed[T, [3]T] | *Vector[T]
	Vec[T, V]
}

func allOf[T Scalar](s []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range s {
			if !yield(i, x) {
				return
			}
		}
	}
}

func valuesOf[T Scalar](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s {
			if !yield(x) {
				return
			}
		}
	}
}

func format[T Scalar](s []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b have the same size and equal elements.
func Equal[T Scalar](a, b View[T]) bool {
	return slices.Equal(a.elems(), b.elems())
}

// Compare orders a and b lexicographically; a shorter prefix orders first.
func Compare[T Real](a, b View[T]) int {
	return slices.Compare(a.elems(), b.elems())
}
