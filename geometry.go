package vecmath

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecmath/internal/num"
)

// Axis names a Cartesian axis of three-dimensional space.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: unknown axis %q", ErrInvalidArgument, s)
	}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Angle returns the angle between a and b in radians, acos(⟨a,b⟩ / (‖a‖‖b‖)).
// Complex kinds use the real part of the inner product. A zero operand faults with
// ErrDivisionByZero.
func Angle[T Scalar, V Vec[T, V]](a, b V, opts ...Option) float64 {
	requireSameLen("angle", a.Len(), b.Len())
	m := magnitude(a.elems()) * magnitude(b.elems())
	if m == 0 {
		fault("angle", ErrDivisionByZero, "zero magnitude")
	}
	inner := num.Real(innerProduct(a.elems(), b.elems(), applyOptions(opts).convention))
	// Rounding can push the ratio just past ±1 for (anti)parallel operands.
	return math.Acos(max(-1, min(1, inner/m)))
}

// AngleDegrees returns Angle in degrees.
func AngleDegrees[T Scalar, V Vec[T, V]](a, b V, opts ...Option) float64 {
	return degrees(Angle[T](a, b, opts...))
}

// ProjectInPlace replaces to with the projection of from onto it,
// (⟨from,to⟩ / ⟨to,to⟩)·to. The coefficient is computed in T, so integer kinds
// truncate it. A zero to faults with ErrDivisionByZero.
func ProjectInPlace[T Scalar, V Vec[T, V]](to, from V, opts ...Option) V {
	requireSameLen("projection", to.Len(), from.Len())
	conv := applyOptions(opts).convention
	den := innerProduct(to.elems(), to.elems(), conv)
	if den == 0 {
		fault("projection", ErrDivisionByZero, "zero target vector")
	}
	coef := innerProduct(from.elems(), to.elems(), conv) / den
	s := to.elems()
	for i := range s {
		s[i] *= coef
	}
	return to
}

// Projection returns the projection of from onto to, leaving both unchanged.
func Projection[T Scalar, V Vec[T, V]](to, from V, opts ...Option) V {
	return ProjectInPlace[T](to.Clone(), from, opts...)
}

// DirectionCosine returns the cosine of the angle between v and the given axis.
func DirectionCosine[T Real, V Space3[T, V]](v V, axis Axis) float64 {
	requireDim("direction cosine", v.Len(), 3)
	if axis < AxisX || axis > AxisZ {
		fault("direction cosine", ErrInvalidArgument, axis.String())
	}
	m := magnitude(v.elems())
	if m == 0 {
		fault("direction cosine", ErrDivisionByZero, "zero magnitude")
	}
	return num.Real(v.At(int(axis))) / m
}

// DirectionAngle returns the angle in radians between v and the given axis.
func DirectionAngle[T Real, V Space3[T, V]](v V, axis Axis) float64 {
	return math.Acos(DirectionCosine[T](v, axis))
}

// DirectionAngleDegrees returns DirectionAngle in degrees.
func DirectionAngleDegrees[T Real, V Space3[T, V]](v V, axis Axis) float64 {
	return degrees(DirectionAngle[T](v, axis))
}

// DirectionX returns the direction of a plane vector measured from the x axis,
// atan2(y, x), in radians.
func DirectionX[T Real, V Plane[T, V]](v V) float64 {
	requireDim("direction", v.Len(), 2)
	return math.Atan2(num.Real(v.At(1)), num.Real(v.At(0)))
}

// DirectionY returns the direction of a plane vector measured from the y axis,
// atan2(x, y), in radians.
func DirectionY[T Real, V Plane[T, V]](v V) float64 {
	requireDim("direction", v.Len(), 2)
	return math.Atan2(num.Real(v.At(0)), num.Real(v.At(1)))
}

// DirectionXDegrees returns DirectionX in degrees.
func DirectionXDegrees[T Real, V Plane[T, V]](v V) float64 {
	return degrees(DirectionX[T](v))
}

// DirectionYDegrees returns DirectionY in degrees.
func DirectionYDegrees[T Real, V Plane[T, V]](v V) float64 {
	return degrees(DirectionY[T](v))
}
