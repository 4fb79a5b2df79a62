package main

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/renderer"
	"github.com/df07/go-analytic-raytracer/pkg/scene"
)

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// fakeClock is advanced by hand so movement tests do not depend on wall time
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestController(logger core.Logger) (*controller, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	c := newController(8, 8, 1, logger)
	c.now = clock.now
	return c, clock
}

func press(code key.Code) key.Event {
	return key.Event{Code: code, Direction: key.DirPress}
}

func release(code key.Code) key.Event {
	return key.Event{Code: code, Direction: key.DirRelease}
}

func repeat(code key.Code) key.Event {
	return key.Event{Code: code, Direction: key.DirNone}
}

func TestController_Movement(t *testing.T) {
	tests := []struct {
		name string
		code key.Code
		axis core.Vec3
	}{
		{"W moves forward", key.CodeW, core.NewVec3(0, 0, -1)},
		{"S moves back", key.CodeS, core.NewVec3(0, 0, 1)},
		{"A moves left", key.CodeA, core.NewVec3(-1, 0, 0)},
		{"D moves right", key.CodeD, core.NewVec3(1, 0, 0)},
		{"Space moves up", key.CodeSpacebar, core.NewVec3(0, 1, 0)},
		{"Shift moves down", key.CodeLeftShift, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestController(nopLogger{})
			if !c.handleKey(press(tt.code)) {
				t.Fatal("Expected movement to request a repaint")
			}
			if c.camera.Position != (core.Vec3{}) {
				t.Fatalf("Camera moved before any time passed: %v", c.camera.Position)
			}

			clock.advance(50 * time.Millisecond)
			c.step()

			want := tt.axis.Multiply(renderer.DefaultCameraSpeed * 0.05)
			if got := c.camera.Position; got.Subtract(want).Length() > 1e-5 {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestController_HeldKeyTravel(t *testing.T) {
	tests := []struct {
		name    string
		frame   time.Duration
		frames  int
		repeats int
		want    float32
	}{
		{"one second at 50 fps", 20 * time.Millisecond, 50, 0, 5},
		{"one second at 500 fps", 2 * time.Millisecond, 500, 0, 5},
		{"key repeats add nothing", 20 * time.Millisecond, 50, 29, 5},
		{"stalled frame is capped", time.Second, 1, 0, renderer.DefaultCameraSpeed * float32(maxStep.Seconds())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestController(nopLogger{})
			c.handleKey(press(key.CodeW))
			for i := 0; i < tt.repeats; i++ {
				if c.handleKey(repeat(key.CodeW)) {
					t.Fatal("Key repeat should not request a repaint")
				}
			}

			for i := 0; i < tt.frames; i++ {
				clock.advance(tt.frame)
				c.render()
			}

			want := core.NewVec3(0, 0, -tt.want)
			if got := c.camera.Position; got.Subtract(want).Length() > 1e-3 {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestController_ReleaseStopsTravel(t *testing.T) {
	c, clock := newTestController(nopLogger{})
	c.handleKey(press(key.CodeD))
	for i := 0; i < 10; i++ {
		clock.advance(50 * time.Millisecond)
		c.step()
	}

	clock.advance(30 * time.Millisecond)
	if !c.handleKey(release(key.CodeD)) {
		t.Fatal("Expected release of a held key to request a repaint")
	}
	if c.moving() {
		t.Error("Expected no held keys after release")
	}

	// Travel up to the release counts, nothing after it
	want := core.NewVec3(renderer.DefaultCameraSpeed*0.53, 0, 0)
	for i := 0; i < 10; i++ {
		clock.advance(50 * time.Millisecond)
		c.step()
	}
	if got := c.camera.Position; got.Subtract(want).Length() > 1e-4 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestController_IdleTimeNotCounted(t *testing.T) {
	c, clock := newTestController(nopLogger{})
	c.render()

	clock.advance(10 * time.Second)
	c.handleKey(press(key.CodeW))
	clock.advance(20 * time.Millisecond)
	c.render()

	want := core.NewVec3(0, 0, -renderer.DefaultCameraSpeed*0.02)
	if got := c.camera.Position; got.Subtract(want).Length() > 1e-5 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestController_ReleaseIgnored(t *testing.T) {
	c, _ := newTestController(nopLogger{})
	if c.handleKey(release(key.CodeW)) {
		t.Error("Release of a key that is not held should not change the frame")
	}
	if c.handleKey(release(key.CodeTab)) {
		t.Error("Release of a non-movement key should not change the frame")
	}
	if c.camera.Position != (core.Vec3{}) {
		t.Errorf("Camera moved on release: %v", c.camera.Position)
	}
}

func TestController_OneLogLinePerFrame(t *testing.T) {
	logger := &recordingLogger{}
	c, _ := newTestController(logger)

	for i := 1; i <= 3; i++ {
		c.render()
		if len(logger.lines) != i {
			t.Fatalf("Expected %d log lines after %d frames, got %d: %q", i, i, len(logger.lines), logger.lines)
		}
	}
	if last := logger.lines[len(logger.lines)-1]; last != c.title()+"\n" {
		t.Errorf("Expected the title line, got %q", last)
	}
}

func TestController_SceneKeys(t *testing.T) {
	c, _ := newTestController(nopLogger{})

	codes := []key.Code{key.Code1, key.Code2, key.Code3, key.Code4, key.Code5}
	for i, code := range codes {
		if !c.handleKey(press(code)) {
			t.Fatalf("Expected key %d to switch scene", i+1)
		}
		if c.scene != scene.Names[i] {
			t.Errorf("Key %d: expected %s, got %s", i+1, scene.Names[i], c.scene)
		}
	}

	// Repeats do not reload
	if c.handleKey(key.Event{Code: key.Code1, Direction: key.DirNone}) {
		t.Error("Key repeat should not switch scene")
	}
}

func TestController_CycleAlgorithm(t *testing.T) {
	c, _ := newTestController(nopLogger{})

	for i := 1; i <= len(renderer.Algorithms); i++ {
		c.handleKey(press(key.CodeTab))
		want := renderer.Algorithms[i%len(renderer.Algorithms)]
		if c.rt.Algorithm() != want {
			t.Errorf("After %d presses expected %s, got %s", i, want.Name(), c.rt.Algorithm().Name())
		}
	}
}

func TestController_Regenerate(t *testing.T) {
	c, _ := newTestController(nopLogger{})
	c.handleKey(press(key.Code5))
	before := c.rt.Scene()

	if !c.handleKey(press(key.CodeR)) {
		t.Fatal("Expected regenerate to request a repaint")
	}
	after := c.rt.Scene()

	same := len(before.Spheres) == len(after.Spheres)
	for i := 0; same && i < len(before.Spheres); i++ {
		same = before.Spheres[i] == after.Spheres[i]
	}
	if same {
		t.Error("Expected a new random layout")
	}
}

func TestController_ResizeKeepsState(t *testing.T) {
	c, _ := newTestController(nopLogger{})
	c.handleKey(press(key.Code3))
	c.handleKey(press(key.CodeTab))
	c.handleKey(press(key.CodeW))
	position := c.camera.Position

	// The clock stands still, so the held key adds no travel
	c.resize(16, 9)
	c.render()

	if img := c.rt.Image(); img.Width != 16 || img.Height != 9 {
		t.Errorf("Expected 16x9, got %dx%d", img.Width, img.Height)
	}
	if c.scene != scene.TwoSpheres {
		t.Errorf("Scene lost on resize: %s", c.scene)
	}
	if c.rt.Algorithm() != renderer.AllDiffuse {
		t.Errorf("Algorithm lost on resize: %s", c.rt.Algorithm().Name())
	}
	if c.camera.Position != position {
		t.Errorf("Camera moved on resize")
	}
	if c.rt.Stats().TotalPixels != 16*9 {
		t.Errorf("Expected a full frame, got %+v", c.rt.Stats())
	}
	if c.title() == "" {
		t.Error("Expected a title")
	}
}

func TestController_Recenter(t *testing.T) {
	c, clock := newTestController(nopLogger{})
	c.handleKey(press(key.CodeD))
	clock.advance(maxStep)
	c.step()
	if c.camera.Position == (core.Vec3{}) {
		t.Fatal("Expected the camera to move before recentring")
	}
	c.handleKey(press(key.CodeC))
	if c.camera.Position != (core.Vec3{}) {
		t.Errorf("Expected origin, got %v", c.camera.Position)
	}
}
