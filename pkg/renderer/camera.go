package renderer

import (
	"github.com/df07/go-analytic-raytracer/pkg/core"
)

// Direction is a camera movement direction relative to its orientation
type Direction int

const (
	North Direction = iota // along Front
	South
	East // along Right
	West
	Up
	Down
)

// DefaultCameraSpeed is the camera speed in world units per second
const DefaultCameraSpeed = 5.0

// Camera is the viewpoint rays are cast from. Only Position feeds the
// renderer; Front, Right and Up orient movement.
type Camera struct {
	Position core.Vec3
	Front    core.Vec3
	Right    core.Vec3
	Up       core.Vec3
	Speed    float32
}

// NewCamera creates a camera at the origin looking down -Z
func NewCamera() *Camera {
	return &Camera{
		Position: core.NewVec3(0, 0, 0),
		Front:    core.NewVec3(0, 0, -1),
		Right:    core.NewVec3(1, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		Speed:    DefaultCameraSpeed,
	}
}

// Move advances the camera in a direction for deltaTime seconds
func (c *Camera) Move(d Direction, deltaTime float32) {
	velocity := c.Speed * deltaTime

	var axis core.Vec3
	switch d {
	case North:
		axis = c.Front
	case South:
		axis = c.Front.Negate()
	case East:
		axis = c.Right
	case West:
		axis = c.Right.Negate()
	case Up:
		axis = c.Up
	case Down:
		axis = c.Up.Negate()
	default:
		return
	}

	c.Position = c.Position.Add(axis.Multiply(velocity))
}
