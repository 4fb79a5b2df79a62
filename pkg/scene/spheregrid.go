package scene

import (
	"math/rand"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/geometry"
)

// placement describes one hand-placed sphere
type placement struct {
	center   core.Vec3
	radius   float32
	colour   core.Colour
	material geometry.Material
}

var manySpheres = []placement{
	{core.NewVec3(-3, 1, -5), 0.5, core.NewColourRGB8(11, 191, 77), geometry.Reflection},
	{core.NewVec3(-2, 0.25, -6.5), 0.25, core.NewColourRGB8(68, 70, 112), geometry.Diffuse},
	{core.NewVec3(1.5, 0.5, -5), 1, core.NewColourRGB8(74, 67, 16), geometry.Reflection},
	{core.NewVec3(-1, 0.75, -11), 1.75, core.NewColourRGB8(114, 158, 101), geometry.Refraction},
	{core.NewVec3(2.25, 1.5, -6.5), 0.5, core.NewColourRGB8(114, 112, 130), geometry.Diffuse},
	{core.NewVec3(4, 0, -8), 1.75, core.NewColourRGB8(26, 3, 24), geometry.Reflection},
	{core.NewVec3(1, 2.5, -4), 0.75, core.NewColourRGB8(43, 32, 34), geometry.Diffuse},
	{core.NewVec3(-3, 3, -7), 1.5, core.NewColourRGB8(56, 15, 92), geometry.Reflection},
	{core.NewVec3(3.5, 0.5, -12), 1, core.NewColourRGB8(133, 105, 224), geometry.Refraction},
	{core.NewVec3(-4, 0.25, -4), 0.5, core.NewColourRGB8(13, 5, 38), geometry.Diffuse},
	{core.NewVec3(1, 0.75, -6.5), 0.25, core.NewColourRGB8(14, 38, 5), geometry.Reflection},
}

// NewManySpheresScene creates a fixed field of spheres of mixed materials on the ground
func NewManySpheresScene() Scene {
	s := NewScene()
	s.Spheres = append(s.Spheres, NewGroundSphere())
	for _, p := range manySpheres {
		s.AddSphere(p.center, p.radius, p.colour, p.material)
	}
	s.AddLight(defaultLightDirection)
	return s
}

// Random layout bounds
const (
	minRandomSpheres = 20
	maxRandomSpheres = 25
	minRandomRadius  = 0.25
	maxRandomRadius  = 1.5
)

// NewRandomSpheresScene creates a ground sphere plus 20 to 25 randomly
// placed spheres whose materials cycle diffuse, reflection, refraction
func NewRandomSpheresScene(random *rand.Rand) Scene {
	s := NewScene()
	s.Spheres = append(s.Spheres, NewGroundSphere())

	count := minRandomSpheres + random.Intn(maxRandomSpheres-minRandomSpheres+1)
	material := geometry.Diffuse
	for i := 0; i < count; i++ {
		center := core.NewVec3(
			randomRange(random, -5, 5),
			randomRange(random, -0.5, 5),
			randomRange(random, -20, -0.5),
		)
		radius := randomRange(random, minRandomRadius, maxRandomRadius)
		colour := core.NewColour(random.Float32(), random.Float32(), random.Float32())

		s.AddSphere(center, radius, colour, material)
		material = material.Next()
	}

	s.AddLight(defaultLightDirection)
	return s
}

func randomRange(random *rand.Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*random.Float32()
}
