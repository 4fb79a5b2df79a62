package scene

import (
	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering. Sphere order
// decides which sphere wins when two are hit at the same distance.
type Scene struct {
	Spheres []geometry.Sphere          // Objects in the scene
	Lights  []geometry.DirectionalLight // Lights in the scene
}

// NewScene creates an empty scene
func NewScene() Scene {
	return Scene{
		Spheres: make([]geometry.Sphere, 0),
		Lights:  make([]geometry.DirectionalLight, 0),
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(origin core.Vec3, radius float32, colour core.Colour, material geometry.Material) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(origin, radius, colour, material))
}

// AddLight appends a directional light, normalizing its direction
func (s *Scene) AddLight(direction core.Vec3) {
	s.Lights = append(s.Lights, geometry.NewDirectionalLight(direction))
}

// Clone returns a copy that shares no backing arrays with s
func (s Scene) Clone() Scene {
	return Scene{
		Spheres: append([]geometry.Sphere(nil), s.Spheres...),
		Lights:  append([]geometry.DirectionalLight(nil), s.Lights...),
	}
}

// NewGroundSphere creates the very large sphere used in place of a ground plane
func NewGroundSphere() geometry.Sphere {
	return geometry.NewSphere(core.NewVec3(0, -1000.5, 0), 1000, core.NewColourRGB8(88, 104, 117), geometry.Diffuse)
}
