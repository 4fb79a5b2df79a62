package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-analytic-raytracer/pkg/core"
)

// DirectionalLight is an infinitely distant light shining along Direction
type DirectionalLight struct {
	Direction core.Vec3 // Unit vector pointing away from the light
}

// NewDirectionalLight creates a directional light, normalizing the direction
func NewDirectionalLight(direction core.Vec3) DirectionalLight {
	return DirectionalLight{Direction: direction.Normalize()}
}

// ToLight returns the vector from a surface toward the light
func (l DirectionalLight) ToLight() core.Vec3 {
	return l.Direction.Negate()
}

// Lambert sums the cosine term of every light at a surface with the given
// unit normal and clamps the result to [0, 1]. There is no attenuation and
// no shadow test.
func Lambert(normal core.Vec3, lights []DirectionalLight) float32 {
	var intensity float32
	for _, light := range lights {
		intensity += math32.Max(normal.Dot(light.ToLight()), 0)
	}
	return math32.Min(intensity, 1)
}
