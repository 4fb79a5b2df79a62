package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/loaders"
	"github.com/df07/go-analytic-raytracer/pkg/renderer"
	"github.com/df07/go-analytic-raytracer/pkg/scene"
)

// ErrInvalidSize is returned for non-positive image dimensions
var ErrInvalidSize = errors.New("invalid image size")

// Config holds the command line options
type Config struct {
	Scene     string
	Algorithm string
	Width     int
	Height    int
	Workers   int
	Seed      int64
	Camera    core.Vec3
	Output    string
}

func main() {
	config, help, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}
	if help {
		printHelp()
		return
	}

	fmt.Println("Starting Analytic Raytracer...")

	filename, err := run(config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func parseFlags(args []string) (Config, bool, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	config := Config{}
	var camera string

	fs.StringVar(&config.Scene, "scene", scene.OneSphere.String(), "Scene preset")
	fs.StringVar(&config.Algorithm, "algorithm", renderer.BasicLighting.Name(), "Shading algorithm")
	fs.IntVar(&config.Width, "width", 800, "Image width in pixels")
	fs.IntVar(&config.Height, "height", 450, "Image height in pixels")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	fs.Int64Var(&config.Seed, "seed", 42, "Seed for the random-spheres preset")
	fs.StringVar(&camera, "camera", "0,0,0", "Camera position as x,y,z")
	fs.StringVar(&config.Output, "out", "", "Output file (default output/<scene>/render_<timestamp>.png)")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}

	position, err := parseVec3(camera)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid -camera: %w", err)
	}
	config.Camera = position

	return config, *help, nil
}

func printHelp() {
	fmt.Println("Analytic Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -scene, -algorithm, -width, -height, -workers, -seed, -camera, -out")
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.NewCatalogue(0).ListScenes() {
		fmt.Printf("  %-16s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Available algorithms:")
	for _, a := range renderer.Algorithms {
		fmt.Printf("  %s\n", a.Name())
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// createScene resolves a preset by name from a freshly seeded catalogue
func createScene(name string, seed int64) (*scene.Scene, error) {
	s, err := scene.NewCatalogue(seed).Lookup(name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// run renders one frame and writes it to disk, returning the filename
func run(config Config, logger core.Logger) (string, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return "", fmt.Errorf("%w: %dx%d", ErrInvalidSize, config.Width, config.Height)
	}

	selectedScene, err := createScene(config.Scene, config.Seed)
	if err != nil {
		return "", err
	}
	algorithm, err := renderer.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return "", err
	}

	camera := renderer.NewCamera()
	camera.Position = config.Camera

	rt := renderer.NewRenderer(config.Width, config.Height, camera)
	rt.SetScene(*selectedScene)
	rt.SetAlgorithm(algorithm)

	rendererConfig := renderer.DefaultConfig()
	rendererConfig.NumWorkers = config.Workers
	rendererConfig.Logger = logger
	rt.SetConfig(rendererConfig)

	rt.Render()

	filename := config.Output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", strings.ToLower(strings.TrimSpace(config.Scene)), fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := loaders.SavePNG(filename, rt.Image()); err != nil {
		return "", err
	}
	if logger != nil {
		logger.Printf("Average luminance: %.4f\n", renderer.AverageLuminance(rt.Image()))
	}
	return filename, nil
}

// parseVec3 parses "x,y,z"
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}

	var values [3]float32
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		values[i] = float32(v)
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
