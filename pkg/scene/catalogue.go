package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnknownScene is returned when a preset name is not in the catalogue
var ErrUnknownScene = errors.New("unknown scene")

// Name identifies a preset scene
type Name int

const (
	OneSphere Name = iota
	SphereOnPlane
	TwoSpheres
	LargeAmountOfSpheres
	RandomSpheres
)

// Names lists every preset in catalogue order
var Names = []Name{OneSphere, SphereOnPlane, TwoSpheres, LargeAmountOfSpheres, RandomSpheres}

func (n Name) String() string {
	switch n {
	case OneSphere:
		return "one-sphere"
	case SphereOnPlane:
		return "sphere-on-plane"
	case TwoSpheres:
		return "two-spheres"
	case LargeAmountOfSpheres:
		return "many-spheres"
	case RandomSpheres:
		return "random-spheres"
	default:
		return fmt.Sprintf("scene(%d)", int(n))
	}
}

// ParseName converts a preset name as printed by String back to a Name
func ParseName(s string) (Name, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, n := range Names {
		if n.String() == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScene, s)
}

// Catalogue holds one instance of every preset. The random preset is built
// from the catalogue's own generator and can be regenerated on demand.
type Catalogue struct {
	presets map[Name]Scene
	random  *rand.Rand
}

// NewCatalogue builds every preset. The seed drives the random preset.
func NewCatalogue(seed int64) *Catalogue {
	c := &Catalogue{
		presets: make(map[Name]Scene, len(Names)),
		random:  rand.New(rand.NewSource(seed)),
	}
	c.presets[OneSphere] = NewOneSphereScene()
	c.presets[SphereOnPlane] = NewSphereOnPlaneScene()
	c.presets[TwoSpheres] = NewTwoSpheresScene()
	c.presets[LargeAmountOfSpheres] = NewManySpheresScene()
	c.presets[RandomSpheres] = NewRandomSpheresScene(c.random)
	return c
}

// Get returns a copy of the named preset
func (c *Catalogue) Get(name Name) (Scene, error) {
	s, ok := c.presets[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}
	return s.Clone(), nil
}

// Lookup resolves a preset by its string name
func (c *Catalogue) Lookup(name string) (Scene, error) {
	n, err := ParseName(name)
	if err != nil {
		return Scene{}, err
	}
	return c.Get(n)
}

// RegenerateRandomSpheres replaces the random preset with a fresh layout
func (c *Catalogue) RegenerateRandomSpheres() {
	c.presets[RandomSpheres] = NewRandomSpheresScene(c.random)
}
