package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-analytic-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Analytic Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=two-spheres", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
