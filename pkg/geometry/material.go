package geometry

import "fmt"

// Material tags how a surface would like to be shaded. Only diffuse
// lighting is evaluated; the other tags are carried for algorithms that
// override or inspect them.
type Material int

const (
	Diffuse Material = iota
	Reflection
	Refraction
)

// Materials lists every material tag in declaration order
var Materials = []Material{Diffuse, Reflection, Refraction}

func (m Material) String() string {
	switch m {
	case Diffuse:
		return "diffuse"
	case Reflection:
		return "reflection"
	case Refraction:
		return "refraction"
	default:
		return fmt.Sprintf("material(%d)", int(m))
	}
}

// Next returns the tag that follows m in the Diffuse, Reflection,
// Refraction cycle
func (m Material) Next() Material {
	switch m {
	case Diffuse:
		return Reflection
	case Reflection:
		return Refraction
	default:
		return Diffuse
	}
}
