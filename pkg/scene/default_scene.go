package scene

import (
	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/geometry"
)

// defaultLightDirection is shared by every lit preset
var defaultLightDirection = core.NewVec3(-1, -1, -1)

// NewOneSphereScene creates a single pink sphere in front of the camera
func NewOneSphereScene() Scene {
	s := NewScene()
	s.AddSphere(core.NewVec3(0, 0, -2), 0.5, core.Pink, geometry.Diffuse)
	s.AddLight(defaultLightDirection)
	return s
}

// NewSphereOnPlaneScene creates the single sphere resting above a ground sphere
func NewSphereOnPlaneScene() Scene {
	s := NewScene()
	s.AddSphere(core.NewVec3(0, 0, -2), 0.5, core.Pink, geometry.Diffuse)
	s.Spheres = append(s.Spheres, NewGroundSphere())
	s.AddLight(defaultLightDirection)
	return s
}

// NewTwoSpheresScene creates a pink sphere with a larger blue one behind it
func NewTwoSpheresScene() Scene {
	s := NewScene()
	s.AddSphere(core.NewVec3(0, 0, -2), 0.5, core.Pink, geometry.Diffuse)
	s.AddSphere(core.NewVec3(1, 0, -4), 0.75, core.Blue, geometry.Diffuse)
	s.AddLight(defaultLightDirection)
	return s
}
