package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-analytic-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Origin   core.Vec3
	Radius   float32
	Colour   core.Colour
	Material Material
}

// NewSphere creates a new sphere
func NewSphere(origin core.Vec3, radius float32, colour core.Colour, material Material) Sphere {
	return Sphere{
		Origin:   origin,
		Radius:   radius,
		Colour:   colour,
		Material: material,
	}
}

// Hit returns the nearest non-negative distance at which the ray meets the
// sphere. Only the near root is considered: when it lies behind the ray
// origin the sphere is reported as missed, which includes rays starting
// inside the sphere.
func (s Sphere) Hit(ray core.Ray) (float32, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - math32.Sqrt(discriminant)) / (2 * a)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Normal returns the unit surface normal at a point on the sphere
func (s Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Origin).Normalize()
}
