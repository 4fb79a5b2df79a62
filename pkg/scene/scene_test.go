package scene

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/geometry"
)

func TestScene_CloneIsIndependent(t *testing.T) {
	original := NewTwoSpheresScene()
	clone := original.Clone()

	clone.Spheres[0].Radius = 42
	clone.Lights[0].Direction = core.NewVec3(0, 1, 0)
	clone.AddSphere(core.NewVec3(0, 0, 0), 1, core.White, geometry.Diffuse)

	if original.Spheres[0].Radius != 0.5 {
		t.Errorf("Clone shares sphere storage: radius became %f", original.Spheres[0].Radius)
	}
	if original.Lights[0].Direction == core.NewVec3(0, 1, 0) {
		t.Error("Clone shares light storage")
	}
	if len(original.Spheres) != 2 {
		t.Errorf("Expected original to keep 2 spheres, got %d", len(original.Spheres))
	}
}

func TestScene_AddLightNormalizes(t *testing.T) {
	s := NewScene()
	s.AddLight(core.NewVec3(0, -3, 0))

	if s.Lights[0].Direction != core.NewVec3(0, -1, 0) {
		t.Errorf("Expected normalized direction, got %v", s.Lights[0].Direction)
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		input       string
		expected    Name
		expectError bool
	}{
		{"one-sphere", OneSphere, false},
		{"sphere-on-plane", SphereOnPlane, false},
		{"two-spheres", TwoSpheres, false},
		{"many-spheres", LargeAmountOfSpheres, false},
		{" Random-Spheres ", RandomSpheres, false},
		{"cornell", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseName(tt.input)
			if tt.expectError {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCatalogue_Presets(t *testing.T) {
	c := NewCatalogue(1)

	tests := []struct {
		name    Name
		spheres int
		lights  int
	}{
		{OneSphere, 1, 1},
		{SphereOnPlane, 2, 1},
		{TwoSpheres, 2, 1},
		{LargeAmountOfSpheres, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name.String(), func(t *testing.T) {
			s, err := c.Get(tt.name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(s.Spheres) != tt.spheres {
				t.Errorf("Expected %d spheres, got %d", tt.spheres, len(s.Spheres))
			}
			if len(s.Lights) != tt.lights {
				t.Errorf("Expected %d lights, got %d", tt.lights, len(s.Lights))
			}
		})
	}

	if _, err := c.Get(Name(99)); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene for unknown preset, got %v", err)
	}
}

func TestCatalogue_GetReturnsCopy(t *testing.T) {
	c := NewCatalogue(1)

	s, _ := c.Get(OneSphere)
	s.Spheres[0].Radius = 10

	again, _ := c.Get(OneSphere)
	if again.Spheres[0].Radius != 0.5 {
		t.Errorf("Catalogue preset was mutated through a returned scene")
	}
}

func TestGroundSphere(t *testing.T) {
	ground := NewGroundSphere()

	// The top of the ground sits half a unit below the origin
	top := ground.Origin.Y + ground.Radius
	if top != -0.5 {
		t.Errorf("Expected ground top at y=-0.5, got %f", top)
	}
}

func TestRandomSpheresScene(t *testing.T) {
	s := NewRandomSpheresScene(rand.New(rand.NewSource(7)))

	count := len(s.Spheres) - 1 // ground
	if count < minRandomSpheres || count > maxRandomSpheres {
		t.Fatalf("Expected %d-%d random spheres, got %d", minRandomSpheres, maxRandomSpheres, count)
	}
	if s.Spheres[0] != NewGroundSphere() {
		t.Error("Expected the ground sphere first")
	}
	if len(s.Lights) != 1 {
		t.Errorf("Expected 1 light, got %d", len(s.Lights))
	}

	expected := geometry.Diffuse
	for i, sp := range s.Spheres[1:] {
		if sp.Material != expected {
			t.Errorf("Sphere %d: expected material %s, got %s", i, expected, sp.Material)
		}
		expected = expected.Next()

		if sp.Origin.X < -5 || sp.Origin.X > 5 ||
			sp.Origin.Y < -0.5 || sp.Origin.Y > 5 ||
			sp.Origin.Z < -20 || sp.Origin.Z > -0.5 {
			t.Errorf("Sphere %d outside layout bounds: %v", i, sp.Origin)
		}
		if sp.Radius < minRandomRadius || sp.Radius > maxRandomRadius {
			t.Errorf("Sphere %d radius out of range: %f", i, sp.Radius)
		}
		if sp.Colour.A != 1 {
			t.Errorf("Sphere %d should be opaque, alpha=%f", i, sp.Colour.A)
		}
	}
}

func TestCatalogue_RandomSpheresDeterministicPerSeed(t *testing.T) {
	a, _ := NewCatalogue(3).Get(RandomSpheres)
	b, _ := NewCatalogue(3).Get(RandomSpheres)

	if len(a.Spheres) != len(b.Spheres) {
		t.Fatalf("Same seed produced %d and %d spheres", len(a.Spheres), len(b.Spheres))
	}
	for i := range a.Spheres {
		if a.Spheres[i] != b.Spheres[i] {
			t.Fatalf("Same seed produced different sphere %d", i)
		}
	}
}

func TestCatalogue_RegenerateRandomSpheres(t *testing.T) {
	c := NewCatalogue(5)
	before, _ := c.Get(RandomSpheres)
	fixedBefore, _ := c.Get(TwoSpheres)

	c.RegenerateRandomSpheres()
	after, _ := c.Get(RandomSpheres)
	fixedAfter, _ := c.Get(TwoSpheres)

	if len(before.Spheres) == len(after.Spheres) && before.Spheres[1] == after.Spheres[1] {
		t.Error("Expected a new random layout after regeneration")
	}
	if fixedBefore.Spheres[0] != fixedAfter.Spheres[0] {
		t.Error("Regeneration must not touch fixed presets")
	}
}

func TestCatalogue_ListScenes(t *testing.T) {
	c := NewCatalogue(1)
	infos := c.ListScenes()

	if len(infos) != len(Names) {
		t.Fatalf("Expected %d scenes, got %d", len(Names), len(infos))
	}
	for i, info := range infos {
		if info.ID != Names[i].String() {
			t.Errorf("Entry %d: expected id %s, got %s", i, Names[i], info.ID)
		}
		if info.DisplayName == "" {
			t.Errorf("Entry %d has no display name", i)
		}
		if _, err := c.Lookup(info.ID); err != nil {
			t.Errorf("Listed scene %s cannot be looked up: %v", info.ID, err)
		}
	}
	if !infos[len(infos)-1].Random {
		t.Error("Expected the random preset to be flagged")
	}
}

func TestCatalogue_ListScenesCounts(t *testing.T) {
	tests := []struct {
		name        Name
		spheres     int
		description string
	}{
		{OneSphere, 1, "single"},
		{SphereOnPlane, 2, "ground sphere"},
		{TwoSpheres, 2, "sphere behind"},
		{LargeAmountOfSpheres, 12, "Eleven spheres of mixed materials plus the ground"},
	}

	infos := make(map[string]SceneInfo)
	for _, info := range NewCatalogue(1).ListScenes() {
		infos[info.ID] = info
	}

	for _, tt := range tests {
		t.Run(tt.name.String(), func(t *testing.T) {
			info, ok := infos[tt.name.String()]
			if !ok {
				t.Fatalf("Scene %s not listed", tt.name)
			}
			if info.Spheres != tt.spheres {
				t.Errorf("Expected %d spheres, got %d", tt.spheres, info.Spheres)
			}
			if !strings.Contains(info.Description, tt.description) {
				t.Errorf("Expected description to mention %q, got %q", tt.description, info.Description)
			}
		})
	}
}
