package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/geometry"
	"github.com/df07/go-analytic-raytracer/pkg/scene"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not registered
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm shades the nearest hit of a primary ray. One algorithm is used
// for every pixel of a frame; misses never reach it.
type Algorithm interface {
	Name() string
	Shade(hit Hit, sc *scene.Scene) core.Colour
}

// LightingAlgorithm shades hits with directional Lambertian lighting after
// resolving the material each sphere is treated as. Secondary rays are not
// traced, so the variants produce identical frames and differ only in the
// material Material reports, which /api/inspect exposes.
type LightingAlgorithm struct {
	name    string
	resolve func(hit Hit) geometry.Material
}

var (
	// BasicLighting uses each sphere's own material tag
	BasicLighting Algorithm = &LightingAlgorithm{"basic-lighting", func(hit Hit) geometry.Material {
		return hit.Sphere.Material
	}}

	// AllDiffuse treats every sphere as diffuse
	AllDiffuse Algorithm = &LightingAlgorithm{"all-diffuse", func(Hit) geometry.Material {
		return geometry.Diffuse
	}}

	// AllReflective treats every sphere as reflective
	AllReflective Algorithm = &LightingAlgorithm{"all-reflective", func(Hit) geometry.Material {
		return geometry.Reflection
	}}

	// RandomMaterials assigns each sphere a material from a hash of its
	// index, so the choice is stable from frame to frame
	RandomMaterials Algorithm = &LightingAlgorithm{"random-materials", func(hit Hit) geometry.Material {
		return geometry.Materials[hashIndex(hit.Index)%uint32(len(geometry.Materials))]
	}}

	// Normals colours hits by their surface normal
	Normals Algorithm = NormalsAlgorithm{}
)

// Algorithms lists every registered algorithm in display order
var Algorithms = []Algorithm{BasicLighting, AllDiffuse, AllReflective, RandomMaterials, Normals}

// ParseAlgorithm finds a registered algorithm by name
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a *LightingAlgorithm) Name() string { return a.name }

// Material returns the material the hit sphere is shaded as
func (a *LightingAlgorithm) Material(hit Hit) geometry.Material {
	return a.resolve(hit)
}

// Shade implements Algorithm
func (a *LightingAlgorithm) Shade(hit Hit, sc *scene.Scene) core.Colour {
	return shadeSurface(hit, sc.Lights)
}

// shadeSurface evaluates direct lighting at a hit. Every material tag
// receives the same diffuse term.
func shadeSurface(hit Hit, lights []geometry.DirectionalLight) core.Colour {
	intensity := geometry.Lambert(hit.Normal, lights)
	colour := hit.Sphere.Colour.Scale(intensity)
	colour.A = 1
	return colour
}

// NormalsAlgorithm maps the unit normal from [-1, 1] to [0, 1] per channel
type NormalsAlgorithm struct{}

func (NormalsAlgorithm) Name() string { return "normals" }

// Shade implements Algorithm
func (NormalsAlgorithm) Shade(hit Hit, _ *scene.Scene) core.Colour {
	n := hit.Normal
	return core.NewColour(0.5*(n.X+1), 0.5*(n.Y+1), 0.5*(n.Z+1))
}

// hashIndex is a 32-bit integer mix (lowbias32)
func hashIndex(i int) uint32 {
	x := uint32(i)
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}
