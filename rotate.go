package vecmath

import (
	"math"

	"github.com/hupe1980/vecmath/internal/num"
)

// RotateX rotates v about the x axis by angle radians, in place. The x component is
// left unchanged.
func RotateX[T Real, V Space3[T, V]](v V, angle float64) V {
	requireDim("rotate x", v.Len(), 3)
	rotatePlane(v.elems(), 1, 2, angle)
	return v
}

// RotateY rotates v about the y axis by angle radians, in place. The y component is
// left unchanged.
func RotateY[T Real, V Space3[T, V]](v V, angle float64) V {
	requireDim("rotate y", v.Len(), 3)
	rotatePlane(v.elems(), 2, 0, angle)
	return v
}

// RotateZ rotates v about the z axis by angle radians, in place. The z component is
// left unchanged.
func RotateZ[T Real, V Space3[T, V]](v V, angle float64) V {
	requireDim("rotate z", v.Len(), 3)
	rotatePlane(v.elems(), 0, 1, angle)
	return v
}

// Rotate rotates v about axis by angle radians, in place.
func Rotate[T Real, V Space3[T, V]](v V, axis Axis, angle float64) V {
	switch axis {
	case AxisX:
		return RotateX[T](v, angle)
	case AxisY:
		return RotateY[T](v, angle)
	case AxisZ:
		return RotateZ[T](v, angle)
	default:
		fault("rotate", ErrInvalidArgument, axis.String())
		return v
	}
}

// rotatePlane applies the 2D rotation to components (i, j), counter-clockwise
// from i towards j.
func rotatePlane[T Real](s []T, i, j int, angle float64) {
	sin, cos := math.Sincos(angle)
	a, b := num.Real(s[i]), num.Real(s[j])
	s[i] = num.FromFloat[T](a*cos - b*sin)
	s[j] = num.FromFloat[T](a*sin + b*cos)
}
