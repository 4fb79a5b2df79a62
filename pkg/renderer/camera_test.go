package renderer

import (
	"testing"

	"github.com/df07/go-analytic-raytracer/pkg/core"
)

func TestCamera_Move(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		expected  core.Vec3
	}{
		{"north", North, core.NewVec3(0, 0, -5)},
		{"south", South, core.NewVec3(0, 0, 5)},
		{"east", East, core.NewVec3(5, 0, 0)},
		{"west", West, core.NewVec3(-5, 0, 0)},
		{"up", Up, core.NewVec3(0, 5, 0)},
		{"down", Down, core.NewVec3(0, -5, 0)},
		{"unknown", Direction(42), core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera()
			camera.Move(tt.direction, 1)

			if camera.Position != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, camera.Position)
			}
		})
	}
}

func TestCamera_MoveScalesWithDeltaTime(t *testing.T) {
	camera := NewCamera()
	camera.Speed = 2
	camera.Move(North, 0.25)
	camera.Move(East, 0.5)

	expected := core.NewVec3(1, 0, -0.5)
	if camera.Position != expected {
		t.Errorf("Expected %v, got %v", expected, camera.Position)
	}
}
