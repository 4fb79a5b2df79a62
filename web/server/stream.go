package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chewxy/math32"

	"github.com/df07/go-analytic-raytracer/pkg/core"
	"github.com/df07/go-analytic-raytracer/pkg/loaders"
	"github.com/df07/go-analytic-raytracer/pkg/renderer"
)

// FrameUpdate represents a single frame sent via SSE
type FrameUpdate struct {
	FrameNumber int       `json:"frameNumber"`
	TotalFrames int       `json:"totalFrames"`
	ImageData   string    `json:"imageData"` // Base64 encoded PNG
	Camera      core.Vec3 `json:"camera"`
	Stats       Stats     `json:"stats"`
	IsComplete  bool      `json:"isComplete"`
	ElapsedMs   int64     `json:"elapsedMs"`
}

// Stats represents render statistics for one frame
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	HitPixels   int     `json:"hitPixels"`
	Coverage    float64 `json:"coverage"`
	Bands       int     `json:"bands"`
	Workers     int     `json:"workers"`
	FrameMs     int64   `json:"frameMs"`
	Luminance   float64 `json:"luminance"`
}

// handleStream renders a sequence of frames with the camera orbiting its
// start position and streams each one as an SSE event
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	frames, err := parseIntParam(r.URL.Query(), "frames", 30, 1, 600)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	radius, err := parseFloatParam(r.URL.Query(), "radius", 0.5, 0, 100)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 16)
	logger := NewWebLogger(consoleChan)

	// The renderer holds the camera pointer, moving it moves the next frame
	rt, camera, err := s.newRenderer(req, logger)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}
	center := req.Camera

	ctx := r.Context()
	startTime := time.Now()

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		camera.Position = orbitPosition(center, float32(radius), i, frames)
		rt.Render()

		if err := s.drainConsole(w, consoleChan); err != nil {
			return
		}

		imageData, err := imageToBase64PNG(rt.Image())
		if err != nil {
			s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
			return
		}

		stats := rt.Stats()
		update := FrameUpdate{
			FrameNumber: i + 1,
			TotalFrames: frames,
			ImageData:   imageData,
			Camera:      camera.Position,
			Stats: Stats{
				TotalPixels: stats.TotalPixels,
				HitPixels:   stats.HitPixels,
				Coverage:    stats.Coverage(),
				Bands:       stats.Bands,
				Workers:     stats.Workers,
				FrameMs:     stats.Duration.Milliseconds(),
				Luminance:   renderer.AverageLuminance(rt.Image()),
			},
			IsComplete: i == frames-1,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		}
		if err := s.sendSSEUpdate(w, update); err != nil {
			return
		}
	}

	s.sendSSEEvent(w, "complete", "Streaming completed")
}

// orbitPosition places frame i of n on a circle in the XY plane
func orbitPosition(center core.Vec3, radius float32, i, n int) core.Vec3 {
	sin, cos := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
	return center.Add(core.NewVec3(radius*cos, radius*sin, 0))
}

// drainConsole forwards queued log lines as console events
func (s *Server) drainConsole(w http.ResponseWriter, consoleChan chan ConsoleMessage) error {
	for {
		select {
		case msg := <-consoleChan:
			data, err := json.Marshal(msg)
			if err != nil {
				return err
			}
			if err := s.sendSSEEvent(w, "console", string(data)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// imageToBase64PNG converts a frame to base64-encoded PNG
func imageToBase64PNG(img *renderer.Image) (string, error) {
	var buf bytes.Buffer
	if err := loaders.EncodePNG(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEUpdate sends a frame update via SSE
func (s *Server) sendSSEUpdate(w http.ResponseWriter, update FrameUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "frame", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
