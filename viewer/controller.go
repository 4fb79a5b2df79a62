package main

import (
	"fmt"
	"time"

	"golang.org/x/mobile/event/key"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/renderer"
	"github.com/df07/go-analytic-raytracer/pkg/scene"
)

// maxStep caps how far the camera travels between two paints, so a stalled
// frame does not teleport it
const maxStep = 100 * time.Millisecond

var movementKeys = []struct {
	code      key.Code
	direction renderer.Direction
}{
	{key.CodeW, renderer.North},
	{key.CodeS, renderer.South},
	{key.CodeA, renderer.West},
	{key.CodeD, renderer.East},
	{key.CodeSpacebar, renderer.Up},
	{key.CodeLeftShift, renderer.Down},
}

func isMovementKey(code key.Code) bool {
	for _, m := range movementKeys {
		if m.code == code {
			return true
		}
	}
	return false
}

var sceneKeys = map[key.Code]int{
	key.Code1: 0,
	key.Code2: 1,
	key.Code3: 2,
	key.Code4: 3,
	key.Code5: 4,
}

// controller owns the renderer state the window displays and maps key
// events onto it
type controller struct {
	catalogue *scene.Catalogue
	camera    *renderer.Camera
	rt        *renderer.Renderer
	logger    core.Logger
	scene     scene.Name
	algorithm int
	frameTime time.Duration

	held     map[key.Code]bool
	lastStep time.Time
	now      func() time.Time
}

func newController(width, height int, seed int64, logger core.Logger) *controller {
	c := &controller{
		catalogue: scene.NewCatalogue(seed),
		camera:    renderer.NewCamera(),
		logger:    logger,
		scene:     scene.TwoSpheres,
		held:      make(map[key.Code]bool),
		now:       time.Now,
	}
	c.resize(width, height)
	return c
}

// resize replaces the renderer with one of the new resolution, keeping
// the scene, algorithm and camera
func (c *controller) resize(width, height int) {
	c.rt = renderer.NewRenderer(width, height, c.camera)
	c.rt.SetAlgorithm(renderer.Algorithms[c.algorithm])
	c.loadScene(c.scene)
}

func (c *controller) loadScene(name scene.Name) {
	s, err := c.catalogue.Get(name)
	if err != nil {
		c.logger.Printf("Scene %s unavailable: %v\n", name, err)
		return
	}
	c.scene = name
	c.rt.SetScene(s)
}

// render advances held movement to the current time, draws a frame and
// logs one status line
func (c *controller) render() {
	c.step()
	c.rt.Render()
	c.frameTime = c.rt.Stats().Duration
	c.logger.Printf("%s\n", c.title())
}

// step moves the camera for every held key by the wall time since the last
// step, at the camera's speed
func (c *controller) step() {
	now := c.now()
	elapsed := min(now.Sub(c.lastStep), maxStep)
	c.lastStep = now
	if elapsed <= 0 {
		return
	}

	for _, m := range movementKeys {
		if c.held[m.code] {
			c.camera.Move(m.direction, float32(elapsed.Seconds()))
		}
	}
}

// moving reports whether any movement key is held
func (c *controller) moving() bool {
	return len(c.held) > 0
}

// handleKey applies a key event and reports whether the frame changed
func (c *controller) handleKey(e key.Event) bool {
	if isMovementKey(e.Code) {
		switch e.Direction {
		case key.DirPress:
			if c.held[e.Code] {
				return false
			}
			if !c.moving() {
				// Time spent idle does not count as travel
				c.lastStep = c.now()
			}
			c.held[e.Code] = true
			return true
		case key.DirRelease:
			if !c.held[e.Code] {
				return false
			}
			c.step()
			delete(c.held, e.Code)
			return true
		}
		return false
	}

	// Remaining bindings act once per press, not on key repeat
	if e.Direction != key.DirPress {
		return false
	}

	if i, ok := sceneKeys[e.Code]; ok && i < len(scene.Names) {
		c.loadScene(scene.Names[i])
		c.logger.Printf("Scene: %s\n", c.scene)
		return true
	}

	switch e.Code {
	case key.CodeTab:
		c.algorithm = (c.algorithm + 1) % len(renderer.Algorithms)
		c.rt.SetAlgorithm(renderer.Algorithms[c.algorithm])
		c.logger.Printf("Algorithm: %s\n", c.rt.Algorithm().Name())
		return true
	case key.CodeR:
		c.catalogue.RegenerateRandomSpheres()
		if c.scene == scene.RandomSpheres {
			c.loadScene(scene.RandomSpheres)
		}
		return true
	case key.CodeC:
		c.camera.Position = core.NewVec3(0, 0, 0)
		return true
	}
	return false
}

// title describes the current state for the window title bar
func (c *controller) title() string {
	p := c.camera.Position
	return fmt.Sprintf("%s | %s | camera (%.2f, %.2f, %.2f) | %dms",
		c.scene, c.rt.Algorithm().Name(), p.X, p.Y, p.Z, c.frameTime.Milliseconds())
}
