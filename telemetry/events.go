package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// Event kinds understood by the replay driver.
const (
	EventResize   = "resize"   // X, Y = new canvas width, height
	EventMove     = "move"     // X, Y = pointer position in pixels
	EventZoom     = "zoom"     // Delta = scroll amount
	EventPan      = "pan"      // X, Y = drag displacement in pixels
	EventRecenter = "recenter" // no arguments
	EventUpdate   = "update"   // no arguments
)

// Event is one scripted input event.
type Event struct {
	Kind  string  `csv:"kind"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Delta float64 `csv:"delta"`
}

// Validate checks that the event kind is known.
func (e Event) Validate() error {
	switch e.Kind {
	case EventResize, EventMove, EventZoom, EventPan, EventRecenter, EventUpdate:
		return nil
	}
	return fmt.Errorf("unknown event kind %q", e.Kind)
}

// LoadEvents parses an event script in CSV form.
func LoadEvents(rd io.Reader) ([]Event, error) {
	var events []Event
	if err := gocsv.Unmarshal(rd, &events); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}
	for i, e := range events {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return events, nil
}

// LoadEventsFile reads an event script from path.
func LoadEventsFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening events file: %w", err)
	}
	defer f.Close()
	return LoadEvents(f)
}
