package scene

// SceneInfo describes a preset for listings
type SceneInfo struct {
	ID          string `json:"id"`          // Name as accepted by ParseName
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Spheres     int    `json:"spheres"`     // Sphere count, including the ground
	Lights      int    `json:"lights"`      // Directional light count
	Random      bool   `json:"random"`      // Regenerable layout
}

var displayNames = map[Name]struct{ display, description string }{
	OneSphere:            {"One Sphere", "A single diffuse sphere lit from the upper left"},
	SphereOnPlane:        {"Sphere on Plane", "The single sphere above a ground sphere of radius 1000"},
	TwoSpheres:           {"Two Spheres", "A pink sphere with a larger blue sphere behind it"},
	LargeAmountOfSpheres: {"Many Spheres", "Eleven spheres of mixed materials plus the ground"},
	RandomSpheres:        {"Random Spheres", "20 to 25 random spheres, regenerated on request"},
}

// ListScenes describes every preset in catalogue order
func (c *Catalogue) ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(Names))
	for _, n := range Names {
		s := c.presets[n]
		meta := displayNames[n]
		infos = append(infos, SceneInfo{
			ID:          n.String(),
			DisplayName: meta.display,
			Description: meta.description,
			Spheres:     len(s.Spheres),
			Lights:      len(s.Lights),
			Random:      n == RandomSpheres,
		})
	}
	return infos
}
