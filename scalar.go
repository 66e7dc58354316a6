package vecmath

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/vecmath/internal/num"
)

// Real is the set of arithmetic element types: integers and floating point numbers.
//
// Go has no distinct character types (byte and rune alias uint8 and int32) and no
// const-qualified types, so every integer type is admitted.
type Real interface {
	constraints.Integer | constraints.Float
}

// Complex is the set of complex element types.
type Complex interface {
	constraints.Complex
}

// Scalar is the set of element types a vector can hold.
type Scalar interface {
	Real | Complex
}

// Signed is the set of element types that support negation without wrap-around.
type Signed interface {
	constraints.Signed | constraints.Float | constraints.Complex
}

// Kind classifies an element type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

var kindNames = [...]string{
	KindInvalid:    "invalid",
	KindInt:        "int",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindUint:       "uint",
	KindUint8:      "uint8",
	KindUint16:     "uint16",
	KindUint32:     "uint32",
	KindUint64:     "uint64",
	KindUintptr:    "uintptr",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindComplex64:  "complex64",
	KindComplex128: "complex128",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the kind named s, as produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if k != int(KindInvalid) && name == s {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}

// IsComplex reports whether k is a complex kind.
func (k Kind) IsComplex() bool {
	return k == KindComplex64 || k == KindComplex128
}

// IsFloat reports whether k is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsInteger reports whether k is an integer kind.
func (k Kind) IsInteger() bool {
	return k >= KindInt && k <= KindUintptr
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= KindUint && k <= KindUintptr
}

// Component returns the kind of the real and imaginary parts of a complex kind.
// Real kinds are their own component.
func (k Kind) Component() Kind {
	switch k {
	case KindComplex64:
		return KindFloat32
	case KindComplex128:
		return KindFloat64
	default:
		return k
	}
}

// Bits returns the storage size of k in bits.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt, KindUint, KindUintptr:
		return 32 << (^uint(0) >> 63)
	case KindInt64, KindUint64, KindFloat64, KindComplex64:
		return 64
	case KindComplex128:
		return 128
	default:
		return 0
	}
}

// KindOf returns the kind of T. Named types report the kind of their underlying type.
func KindOf[T Scalar]() Kind {
	switch num.KindOf[T]() {
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uintptr:
		return KindUintptr
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Complex64:
		return KindComplex64
	case reflect.Complex128:
		return KindComplex128
	default:
		return KindInvalid
	}
}

// IsComplex reports whether T is a complex element type.
func IsComplex[T Scalar]() bool {
	return KindOf[T]().IsComplex()
}

// Extent is the element count a vector type commits to. Fixed-extent vectors report
// their array length; dynamic-extent vectors report DynamicExtent.
type Extent int

// DynamicExtent marks a vector whose size is decided at run time.
const DynamicExtent Extent = -1

// IsDynamic reports whether e is the dynamic sentinel.
func (e Extent) IsDynamic() bool {
	return e == DynamicExtent
}

func (e Extent) String() string {
	if e.IsDynamic() {
		return "dynamic"
	}
	return fmt.Sprintf("%d", int(e))
}
