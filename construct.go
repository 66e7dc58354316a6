package vecmath

import (
	"iter"

	"github.com/hupe1980/vecmath/internal/num"
)

// VectorFrom copies src into a new dynamic vector, converting every element from U
// to T. The conversion must be admitted by the active policy.
func VectorFrom[T, U Scalar](src []U) *Vector[T] {
	v := &Vector[T]{data: make([]T, len(src))}
	convertInto("vector from", v.data, src)
	return v
}

// VectorFromSeq drains seq into a new dynamic vector.
func VectorFromSeq[T, U Scalar](seq iter.Seq[U]) *Vector[T] {
	requireConvertible[U, T]("vector from seq")
	v := &Vector[T]{}
	for u := range seq {
		v.data = append(v.data, num.Cast[T](u))
	}
	return v
}

// FixedFrom copies src into a new fixed vector. Trailing elements stay zero; a
// source longer than the vector faults with ErrSizeMismatch.
func FixedFrom[T Scalar, A Array[T], U Scalar](src []U) *Fixed[T, A] {
	v := new(Fixed[T, A])
	requireFits("fixed from", v.Len(), len(src))
	convertInto("fixed from", v.elems()[:len(src)], src)
	return v
}

// FixedFromSeq drains seq into a new fixed vector. It faults with ErrSizeMismatch
// as soon as seq yields more elements than the vector holds.
func FixedFromSeq[T Scalar, A Array[T], U Scalar](seq iter.Seq[U]) *Fixed[T, A] {
	requireConvertible[U, T]("fixed from seq")
	v := new(Fixed[T, A])
	dst := v.elems()
	n := 0
	for u := range seq {
		n++
		requireFits("fixed from seq", len(dst), n)
		dst[n-1] = num.Cast[T](u)
	}
	return v
}

// ConvertVector returns a dynamic copy of src with elements converted to T.
func ConvertVector[T, U Scalar](src View[U]) *Vector[T] {
	return VectorFrom[T](src.elems())
}

// ConvertFixed returns a fixed copy of src with elements converted to T. src may
// be fixed or dynamic but must not be longer than the target.
func ConvertFixed[T Scalar, A Array[T], U Scalar](src View[U]) *Fixed[T, A] {
	return FixedFrom[T, A](src.elems())
}

// MoveVector transfers src into a new dynamic vector. A dynamic source is left
// empty and, when no conversion is needed, its storage is reused. A fixed source
// keeps its elements.
func MoveVector[T, U Scalar](src View[U]) *Vector[T] {
	d, ok := src.(*Vector[U])
	if !ok {
		return ConvertVector[T](src)
	}
	if same, ok := any(d.data).([]T); ok {
		d.data = nil
		return &Vector[T]{data: same}
	}
	v := VectorFrom[T](d.data)
	d.data = nil
	return v
}

// MoveFixed transfers src into a new fixed vector under the same size and
// conversion rules as ConvertFixed. A dynamic source is left empty.
func MoveFixed[T Scalar, A Array[T], U Scalar](src View[U]) *Fixed[T, A] {
	v := ConvertFixed[T, A](src)
	if d, ok := src.(*Vector[U]); ok {
		d.data = nil
	}
	return v
}
