package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/loaders"
	"github.com/df07/go-analytic-raytracer/pkg/renderer"
	"github.com/df07/go-analytic-raytracer/pkg/scene"
)

// Server handles web requests for the analytic raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene     string    `json:"scene"`     // Scene name (e.g., "two-spheres")
	Algorithm string    `json:"algorithm"` // Algorithm name (e.g., "basic-lighting")
	Width     int       `json:"width"`     // Image width
	Height    int       `json:"height"`    // Image height
	Seed      int64     `json:"seed"`      // Seed for the random-spheres preset
	Camera    core.Vec3 `json:"camera"`    // Camera position
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/stream", s.handleStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the presets and algorithms a request may name
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	algorithms := make([]string, 0, len(renderer.Algorithms))
	for _, a := range renderer.Algorithms {
		algorithms = append(algorithms, a.Name())
	}

	response := map[string]interface{}{
		"scenes":     scene.NewCatalogue(0).ListScenes(),
		"algorithms": algorithms,
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": 1, "max": 2000},
			"height": map[string]int{"min": 1, "max": 2000},
			"frames": map[string]int{"min": 1, "max": 600},
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// handleRender renders a single frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	rt, _, err := s.newRenderer(req, nil)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rt.Render()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Coverage", strconv.FormatFloat(rt.Stats().Coverage(), 'f', 4, 64))
	if err := loaders.EncodePNG(w, rt.Image()); err != nil {
		log.Printf("Render error: %v", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:     query.Get("scene"),
		Algorithm: query.Get("algorithm"),
	}
	if req.Scene == "" {
		req.Scene = scene.OneSphere.String()
	}
	if req.Algorithm == "" {
		req.Algorithm = renderer.BasicLighting.Name()
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, 1, 2000); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", 42, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	if camera := query.Get("camera"); camera != "" {
		if req.Camera, err = parseVec3Param(camera); err != nil {
			return nil, fmt.Errorf("invalid camera: %w", err)
		}
	}

	return req, nil
}

// newRenderer builds a renderer for a request along with the camera it
// reads from. The scene comes from a catalogue seeded per request so
// identical queries give identical frames.
func (s *Server) newRenderer(req *RenderRequest, logger core.Logger) (*renderer.Renderer, *renderer.Camera, error) {
	selected, err := scene.NewCatalogue(req.Seed).Lookup(req.Scene)
	if err != nil {
		return nil, nil, err
	}
	algorithm, err := renderer.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, nil, err
	}

	camera := renderer.NewCamera()
	camera.Position = req.Camera

	rt := renderer.NewRenderer(req.Width, req.Height, camera)
	rt.SetScene(selected)
	rt.SetAlgorithm(algorithm)

	config := renderer.DefaultConfig()
	config.Logger = logger
	rt.SetConfig(config)
	return rt, camera, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseVec3Param parses "x,y,z"
func parseVec3Param(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", value)
	}

	var v [3]float32
	for i, part := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return core.Vec3{}, err
		}
		v[i] = float32(parsed)
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// writeError writes a JSON error body
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
