package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/chewxy/math32"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/geometry"
	"github.com/df07/go-analytic-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains renderer configuration
type Config struct {
	NumWorkers int         // Number of parallel workers (0 = use CPU count)
	BandHeight int         // Scanlines per task (0 = derive from worker count)
	Background core.Colour // Colour of pixels whose ray misses every sphere
	Logger     core.Logger // Optional per-frame logging
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		BandHeight: 0,
		Background: core.Black,
	}
}

// Hit describes the nearest intersection of a primary ray
type Hit struct {
	T      float32         // Distance along the ray
	Point  core.Vec3       // World-space hit point
	Normal core.Vec3       // Unit outward normal
	Sphere geometry.Sphere // Sphere that was hit
	Index  int             // Position of the sphere in the scene
}

// Renderer casts one ray per pixel into the active scene and writes the
// shaded result into a buffer that is allocated once and reused.
type Renderer struct {
	image     *Image
	width     int
	height    int
	camera    *Camera
	scene     scene.Scene
	algorithm Algorithm
	config    Config
	stats     RenderStats
}

// NewRenderer creates a renderer with a fixed resolution. The camera is
// referenced, not copied, so moving it affects the next Render.
func NewRenderer(width, height int, camera *Camera) *Renderer {
	img := NewImage(width, height)
	return &Renderer{
		image:     img,
		width:     img.Width,
		height:    img.Height,
		camera:    camera,
		scene:     scene.NewScene(),
		algorithm: BasicLighting,
		config:    DefaultConfig(),
	}
}

// SetConfig replaces the renderer configuration
func (r *Renderer) SetConfig(config Config) {
	r.config = config
}

// SetScene replaces the active scene with a copy of s
func (r *Renderer) SetScene(s scene.Scene) {
	r.scene = s.Clone()
}

// Scene returns a copy of the active scene
func (r *Renderer) Scene() scene.Scene {
	return r.scene.Clone()
}

// SetAlgorithm selects the shading algorithm used for whole frames
func (r *Renderer) SetAlgorithm(a Algorithm) {
	if a == nil {
		a = BasicLighting
	}
	r.algorithm = a
}

// Algorithm returns the active shading algorithm
func (r *Renderer) Algorithm() Algorithm {
	return r.algorithm
}

// Image returns the pixel buffer. The same buffer is returned for the
// lifetime of the renderer and is safe to read once Render returns.
func (r *Renderer) Image() *Image {
	return r.image
}

// Stats returns statistics for the last frame
func (r *Renderer) Stats() RenderStats {
	return r.stats
}

// PixelDirection maps a pixel to an unnormalized view direction. The
// vertical coordinate is scaled by height/width so pixels stay square.
func (r *Renderer) PixelDirection(x, y int) core.Vec3 {
	w, h := float32(r.width), float32(r.height)
	u := float32(x)/w*2 - 1
	v := (float32(y)/h*2 - 1) * (h / w)
	return core.NewVec3(u, v, -1)
}

// Trace finds the nearest sphere hit by the ray. On equal distances the
// sphere that comes first in the scene wins.
func (r *Renderer) Trace(ray core.Ray) (Hit, bool) {
	return traceScene(&r.scene, ray)
}

func traceScene(sc *scene.Scene, ray core.Ray) (Hit, bool) {
	closest := math32.Inf(1)
	index := -1

	for i := range sc.Spheres {
		if t, ok := sc.Spheres[i].Hit(ray); ok && t < closest {
			closest = t
			index = i
		}
	}

	if index < 0 {
		return Hit{}, false
	}

	sphere := sc.Spheres[index]
	point := ray.At(closest)
	return Hit{
		T:      closest,
		Point:  point,
		Normal: sphere.Normal(point),
		Sphere: sphere,
		Index:  index,
	}, true
}

// frame is the read-only state shared by every worker during one Render
type frame struct {
	origin     core.Vec3
	scene      *scene.Scene
	algorithm  Algorithm
	background core.RGBA8
}

// Render fills the image by tracing every pixel. Scanline bands are
// rendered in parallel and Render returns once all of them are written.
func (r *Renderer) Render() {
	startTime := time.Now()

	f := frame{
		scene:      &r.scene,
		algorithm:  r.algorithm,
		background: r.config.Background.ToRGBA8(),
	}
	if r.camera != nil {
		f.origin = r.camera.Position
	}

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bandHeight := r.config.BandHeight
	if bandHeight <= 0 {
		// A few bands per worker keeps the load even when spheres cluster
		bandHeight = max(1, r.height/(numWorkers*4))
	}
	bands := NewBands(r.height, bandHeight)

	pool := NewWorkerPool(numWorkers, len(bands), func(task BandTask) int {
		return r.renderBand(f, task)
	})
	pool.Start()
	for _, band := range bands {
		pool.SubmitTask(band)
	}
	pool.Stop()

	hits := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		hits += result.HitPixels
	}

	r.stats = RenderStats{
		TotalPixels: r.width * r.height,
		HitPixels:   hits,
		Bands:       len(bands),
		Workers:     pool.GetNumWorkers(),
		Duration:    time.Since(startTime),
	}

	if r.config.Logger != nil {
		r.config.Logger.Printf("Rendered %dx%d with %s in %v (%d bands, %d workers, %.1f%% coverage)\n",
			r.width, r.height, r.algorithm.Name(), r.stats.Duration,
			r.stats.Bands, r.stats.Workers, 100*r.stats.Coverage())
	}
}

// renderBand renders scanlines [MinY, MaxY) in raster order
func (r *Renderer) renderBand(f frame, task BandTask) int {
	hits := 0
	for y := task.MinY; y < task.MaxY; y++ {
		for x := 0; x < r.width; x++ {
			if r.renderPixel(f, x, y) {
				hits++
			}
		}
	}
	return hits
}

// renderPixel traces and shades one pixel, reporting whether it hit
func (r *Renderer) renderPixel(f frame, x, y int) bool {
	ray := core.NewRay(f.origin, r.PixelDirection(x, y))

	hit, ok := traceScene(f.scene, ray)
	if !ok {
		r.image.Set(x, y, f.background)
		return false
	}

	r.image.Set(x, y, f.algorithm.Shade(hit, f.scene).ToRGBA8())
	return true
}
