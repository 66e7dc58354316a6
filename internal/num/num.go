// Package num provides kind-dispatched scalar helpers for generic vector code.
// This is an internal package - external users should use the vecmath package.
//
// Go's type sets cannot express "convert any scalar to any other scalar" or
// "conjugate if complex", so the helpers below switch on the reflected kind of the
// type argument and reinterpret the value through its underlying representation.
// Named types (e.g. `type Meters float64`) are handled like their underlying type.
package num

import (
	"math"
	"math/cmplx"
	"reflect"
	"unsafe"
)

// KindOf returns the reflect kind of T's underlying type.
func KindOf[T any]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

// IsComplex reports whether T is a complex kind.
func IsComplex[T any]() bool {
	k := KindOf[T]()
	return k == reflect.Complex64 || k == reflect.Complex128
}

// IsUnsigned reports whether T is an unsigned integer kind.
func IsUnsigned[T any]() bool {
	switch KindOf[T]() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// ToComplex widens x to complex128. Real kinds get a zero imaginary part.
func ToComplex[T any](x T) complex128 {
	p := unsafe.Pointer(&x)
	switch KindOf[T]() {
	case reflect.Int:
		return complex(float64(*(*int)(p)), 0)
	case reflect.Int8:
		return complex(float64(*(*int8)(p)), 0)
	case reflect.Int16:
		return complex(float64(*(*int16)(p)), 0)
	case reflect.Int32:
		return complex(float64(*(*int32)(p)), 0)
	case reflect.Int64:
		return complex(float64(*(*int64)(p)), 0)
	case reflect.Uint:
		return complex(float64(*(*uint)(p)), 0)
	case reflect.Uint8:
		return complex(float64(*(*uint8)(p)), 0)
	case reflect.Uint16:
		return complex(float64(*(*uint16)(p)), 0)
	case reflect.Uint32:
		return complex(float64(*(*uint32)(p)), 0)
	case reflect.Uint64:
		return complex(float64(*(*uint64)(p)), 0)
	case reflect.Uintptr:
		return complex(float64(*(*uintptr)(p)), 0)
	case reflect.Float32:
		return complex(float64(*(*float32)(p)), 0)
	case reflect.Float64:
		return complex(*(*float64)(p), 0)
	case reflect.Complex64:
		return complex128(*(*complex64)(p))
	case reflect.Complex128:
		return *(*complex128)(p)
	default:
		panic("num: unsupported kind " + KindOf[T]().String())
	}
}

// Real returns the real part of x as float64.
func Real[T any](x T) float64 {
	return real(ToComplex(x))
}

// FromComplex narrows c to T. Real kinds keep the real part; integer kinds truncate
// toward zero.
func FromComplex[T any](c complex128) T {
	var out T
	p := unsafe.Pointer(&out)
	re := real(c)
	switch KindOf[T]() {
	case reflect.Int:
		*(*int)(p) = int(re)
	case reflect.Int8:
		*(*int8)(p) = int8(re)
	case reflect.Int16:
		*(*int16)(p) = int16(re)
	case reflect.Int32:
		*(*int32)(p) = int32(re)
	case reflect.Int64:
		*(*int64)(p) = int64(re)
	case reflect.Uint:
		*(*uint)(p) = uint(re)
	case reflect.Uint8:
		*(*uint8)(p) = uint8(re)
	case reflect.Uint16:
		*(*uint16)(p) = uint16(re)
	case reflect.Uint32:
		*(*uint32)(p) = uint32(re)
	case reflect.Uint64:
		*(*uint64)(p) = uint64(re)
	case reflect.Uintptr:
		*(*uintptr)(p) = uintptr(re)
	case reflect.Float32:
		*(*float32)(p) = float32(re)
	case reflect.Float64:
		*(*float64)(p) = re
	case reflect.Complex64:
		*(*complex64)(p) = complex64(c)
	case reflect.Complex128:
		*(*complex128)(p) = c
	default:
		panic("num: unsupported kind " + KindOf[T]().String())
	}
	return out
}

// FromFloat narrows f to T.
func FromFloat[T any](f float64) T {
	return FromComplex[T](complex(f, 0))
}

// Cast converts a scalar of kind U into kind T.
func Cast[T, U any](u U) T {
	if KindOf[T]() == KindOf[U]() {
		// Same underlying representation; avoid the float64 round trip so that
		// 64-bit integers keep full precision.
		return *(*T)(unsafe.Pointer(&u))
	}
	if !IsComplex[T]() && !IsComplex[U]() && isInteger(KindOf[T]()) && isInteger(KindOf[U]()) {
		return castInteger[T](u)
	}
	return FromComplex[T](ToComplex(u))
}

// Conj returns the complex conjugate of x; real kinds are returned unchanged.
func Conj[T any](x T) T {
	p := unsafe.Pointer(&x)
	switch KindOf[T]() {
	case reflect.Complex64:
		c := *(*complex64)(p)
		*(*complex64)(p) = complex(real(c), -imag(c))
	case reflect.Complex128:
		*(*complex128)(p) = cmplx.Conj(*(*complex128)(p))
	}
	return x
}

// Abs returns |x| (the modulus for complex kinds).
func Abs[T any](x T) float64 {
	c := ToComplex(x)
	if imag(c) == 0 {
		return math.Abs(real(c))
	}
	return cmplx.Abs(c)
}

// AbsSquared returns |x|², i.e. re² + im².
func AbsSquared[T any](x T) float64 {
	c := ToComplex(x)
	return real(c)*real(c) + imag(c)*imag(c)
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// castInteger converts between integer kinds with Go's wrap-around semantics,
// going through uint64/int64 instead of float64.
func castInteger[T, U any](u U) T {
	p := unsafe.Pointer(&u)
	var wide int64
	var uwide uint64
	signed := true
	switch KindOf[U]() {
	case reflect.Int:
		wide = int64(*(*int)(p))
	case reflect.Int8:
		wide = int64(*(*int8)(p))
	case reflect.Int16:
		wide = int64(*(*int16)(p))
	case reflect.Int32:
		wide = int64(*(*int32)(p))
	case reflect.Int64:
		wide = *(*int64)(p)
	case reflect.Uint:
		uwide, signed = uint64(*(*uint)(p)), false
	case reflect.Uint8:
		uwide, signed = uint64(*(*uint8)(p)), false
	case reflect.Uint16:
		uwide, signed = uint64(*(*uint16)(p)), false
	case reflect.Uint32:
		uwide, signed = uint64(*(*uint32)(p)), false
	case reflect.Uint64:
		uwide, signed = *(*uint64)(p), false
	case reflect.Uintptr:
		uwide, signed = uint64(*(*uintptr)(p)), false
	}
	if signed {
		uwide = uint64(wide)
	}

	var out T
	q := unsafe.Pointer(&out)
	switch KindOf[T]() {
	case reflect.Int:
		*(*int)(q) = int(uwide)
	case reflect.Int8:
		*(*int8)(q) = int8(uwide)
	case reflect.Int16:
		*(*int16)(q) = int16(uwide)
	case reflect.Int32:
		*(*int32)(q) = int32(uwide)
	case reflect.Int64:
		*(*int64)(q) = int64(uwide)
	case reflect.Uint:
		*(*uint)(q) = uint(uwide)
	case reflect.Uint8:
		*(*uint8)(q) = uint8(uwide)
	case reflect.Uint16:
		*(*uint16)(q) = uint16(uwide)
	case reflect.Uint32:
		*(*uint32)(q) = uint32(uwide)
	case reflect.Uint64:
		*(*uint64)(q) = uwide
	case reflect.Uintptr:
		*(*uintptr)(q) = uintptr(uwide)
	}
	return out
}
