package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit       bool       `json:"hit"`
	Sphere    int        `json:"sphere"` // Index in the scene, -1 on a miss
	Material  string     `json:"material"`
	Resolved  string     `json:"resolved"` // Material after the algorithm override
	Point     [3]float32 `json:"point"`
	Normal    [3]float32 `json:"normal"`
	Distance  float32    `json:"distance"`
	Radius    float32    `json:"radius"`
	Color     string     `json:"color"`
	Shaded    string     `json:"shaded"`
	Direction [3]float32 `json:"direction"`
}

// inspectPixel casts the primary ray for a pixel. y is in image space with
// row 0 at the top, as a client sees the PNG.
func inspectPixel(rt *renderer.Renderer, camera *renderer.Camera, height, x, y int) InspectResponse {
	direction := rt.PixelDirection(x, height-1-y)
	response := InspectResponse{
		Sphere:    -1,
		Direction: [3]float32{direction.X, direction.Y, direction.Z},
	}

	hit, ok := rt.Trace(core.NewRay(camera.Position, direction))
	if !ok {
		return response
	}

	sc := rt.Scene()
	response.Hit = true
	response.Sphere = hit.Index
	response.Material = hit.Sphere.Material.String()
	response.Resolved = response.Material
	if la, ok := rt.Algorithm().(*renderer.LightingAlgorithm); ok {
		response.Resolved = la.Material(hit).String()
	}
	response.Point = [3]float32{hit.Point.X, hit.Point.Y, hit.Point.Z}
	response.Normal = [3]float32{hit.Normal.X, hit.Normal.Y, hit.Normal.Z}
	response.Distance = hit.T
	response.Radius = hit.Sphere.Radius
	response.Color = hexColour(hit.Sphere.Colour)
	response.Shaded = hexColour(rt.Algorithm().Shade(hit, &sc))
	return response
}

func hexColour(c core.Colour) string {
	p := c.ToRGBA8()
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// handleInspect reports what the primary ray through a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	x, err := parseIntParam(r.URL.Query(), "x", 0, 0, req.Width-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(r.URL.Query(), "y", 0, 0, req.Height-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rt, camera, err := s.newRenderer(req, nil)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(inspectPixel(rt, camera, req.Height, x, y))
}
