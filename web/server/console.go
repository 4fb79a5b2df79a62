package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-analytic-raytracer/pkg/core"
)

// ConsoleMessage is a renderer log line forwarded to a stream client
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by queueing messages for the stream
// that owns it. Messages are dropped when the queue is full.
type WebLogger struct {
	console chan<- ConsoleMessage
}

// NewWebLogger creates a logger that feeds the given queue
func NewWebLogger(console chan<- ConsoleMessage) core.Logger {
	return &WebLogger{console: console}
}

// Printf implements core.Logger
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Print(message)

	if wl.console == nil {
		return
	}
	select {
	case wl.console <- ConsoleMessage{
		Message:   strings.TrimRight(message, "\n"),
		Timestamp: time.Now(),
		Level:     "info",
	}:
	default:
	}
}
