package vecmath

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecmath/internal/num"
)

// Polar holds plane polar coordinates. Theta is in radians.
type Polar struct {
	R     float64
	Theta float64
}

func (p Polar) String() string { return fmt.Sprintf("(r=%g, θ=%g)", p.R, p.Theta) }

// Spherical holds physics-convention spherical coordinates: radius, azimuth in the
// xy plane measured from x, and polar angle measured from z. Angles are in radians.
type Spherical struct {
	R       float64
	Azimuth float64
	Polar   float64
}

func (s Spherical) String() string {
	return fmt.Sprintf("(r=%g, φ=%g, θ=%g)", s.R, s.Azimuth, s.Polar)
}

// Cylindrical holds cylindrical coordinates: radial distance, azimuth in radians
// and height.
type Cylindrical struct {
	R       float64
	Azimuth float64
	Z       float64
}

func (c Cylindrical) String() string {
	return fmt.Sprintf("(ρ=%g, φ=%g, z=%g)", c.R, c.Azimuth, c.Z)
}

func xyz[T Real](s []T) (x, y, z float64) {
	x, y = num.Real(s[0]), num.Real(s[1])
	if len(s) > 2 {
		z = num.Real(s[2])
	}
	return x, y, z
}

// ToPolar converts a plane vector to polar coordinates. A zero x component faults
// with ErrDivisionByZero.
func ToPolar[T Real, V Plane[T, V]](v V) Polar {
	requireDim("to polar", v.Len(), 2)
	x, y, _ := xyz(v.elems())
	if x == 0 {
		fault("to polar", ErrDivisionByZero, "zero x component")
	}
	return Polar{R: math.Hypot(x, y), Theta: math.Atan2(y, x)}
}

// ToSpherical converts a three-dimensional vector to spherical coordinates. A zero
// radius or a zero x component faults with ErrDivisionByZero.
func ToSpherical[T Real, V Space3[T, V]](v V) Spherical {
	requireDim("to spherical", v.Len(), 3)
	x, y, z := xyz(v.elems())
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		fault("to spherical", ErrDivisionByZero, "zero radius")
	}
	if x == 0 {
		fault("to spherical", ErrDivisionByZero, "zero x component")
	}
	return Spherical{R: r, Azimuth: math.Atan2(y, x), Polar: math.Acos(z / r)}
}

// ToCylindrical converts a three-dimensional vector to cylindrical coordinates. A
// zero x component faults with ErrDivisionByZero.
func ToCylindrical[T Real, V Space3[T, V]](v V) Cylindrical {
	requireDim("to cylindrical", v.Len(), 3)
	x, y, z := xyz(v.elems())
	if x == 0 {
		fault("to cylindrical", ErrDivisionByZero, "zero x component")
	}
	return Cylindrical{R: math.Hypot(x, y), Azimuth: math.Atan2(y, x), Z: z}
}

// SetPolar loads the Cartesian form of p into v and returns v.
func SetPolar[T Real, V Plane[T, V]](v V, p Polar) V {
	requireDim("from polar", v.Len(), 2)
	v.Set(0, num.FromFloat[T](p.R*math.Cos(p.Theta)))
	v.Set(1, num.FromFloat[T](p.R*math.Sin(p.Theta)))
	return v
}

// SetSpherical loads the Cartesian form of s into v and returns v.
func SetSpherical[T Real, V Space3[T, V]](v V, s Spherical) V {
	requireDim("from spherical", v.Len(), 3)
	sin := math.Sin(s.Polar)
	v.Set(0, num.FromFloat[T](s.R*sin*math.Cos(s.Azimuth)))
	v.Set(1, num.FromFloat[T](s.R*sin*math.Sin(s.Azimuth)))
	v.Set(2, num.FromFloat[T](s.R*math.Cos(s.Polar)))
	return v
}

// SetCylindrical loads the Cartesian form of c into v and returns v.
func SetCylindrical[T Real, V Space3[T, V]](v V, c Cylindrical) V {
	requireDim("from cylindrical", v.Len(), 3)
	v.Set(0, num.FromFloat[T](c.R*math.Cos(c.Azimuth)))
	v.Set(1, num.FromFloat[T](c.R*math.Sin(c.Azimuth)))
	v.Set(2, num.FromFloat[T](c.Z))
	return v
}

// FromPolar returns the plane vector with polar coordinates p.
func FromPolar[T Real](p Polar) *Vec2[T] {
	return SetPolar[T](new(Vec2[T]), p)
}

// FromSpherical returns the vector with spherical coordinates s.
func FromSpherical[T Real](s Spherical) *Vec3[T] {
	return SetSpherical[T](new(Vec3[T]), s)
}

// FromCylindrical returns the vector with cylindrical coordinates c.
func FromCylindrical[T Real](c Cylindrical) *Vec3[T] {
	return SetCylindrical[T](new(Vec3[T]), c)
}
