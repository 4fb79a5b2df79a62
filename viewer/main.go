package main

import (
	"flag"
	"image"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/df07/go-analytic-raytracer/pkg/renderer"
)

func main() {
	width := flag.Int("width", 640, "Initial window width")
	height := flag.Int("height", 360, "Initial window height")
	seed := flag.Int64("seed", 42, "Seed for the random-spheres preset")
	flag.Parse()

	log.Printf("WASD/Space/Shift move, 1-5 switch scene, Tab cycles algorithm, R regenerates, C recenters, Esc quits")

	driver.Main(func(s screen.Screen) {
		window, err := s.NewWindow(&screen.NewWindowOptions{
			Title:  "Analytic Raytracer",
			Width:  *width,
			Height: *height,
		})
		if err != nil {
			log.Printf("Failed to create window: %v", err)
			return
		}
		defer window.Release()

		buffer, err := s.NewBuffer(image.Point{*width, *height})
		if err != nil {
			log.Printf("Failed to create pixel buffer: %v", err)
			return
		}

		c := newController(*width, *height, *seed, renderer.NewDefaultLogger())
		run(s, window, buffer, c)
	})
}

// run is the window event loop. Every state change queues a paint event
// and each paint renders one frame into the shared buffer. While a movement
// key is held, each paint queues the next one.
func run(s screen.Screen, window screen.Window, buffer screen.Buffer, c *controller) {
	defer func() { buffer.Release() }()

	for {
		switch e := window.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case size.Event:
			if e.WidthPx <= 0 || e.HeightPx <= 0 {
				continue
			}
			resized, err := s.NewBuffer(image.Point{e.WidthPx, e.HeightPx})
			if err != nil {
				log.Printf("Couldn't create buffer at size.Event: %v", err)
				continue
			}
			buffer.Release()
			buffer = resized
			c.resize(e.WidthPx, e.HeightPx)

		case key.Event:
			if e.Code == key.CodeEscape {
				return
			}
			if c.handleKey(e) {
				window.Send(paint.Event{})
			}

		case paint.Event:
			c.render()
			c.rt.Image().CopyTo(buffer.RGBA())
			window.Upload(image.Point{}, buffer, buffer.Bounds())
			window.Publish()
			if c.moving() {
				window.Send(paint.Event{})
			}
		}
	}
}
