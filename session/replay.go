package session

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/imagewatch/surface"
	"github.com/pthm-cable/imagewatch/telemetry"
)

// Replay applies events to the session in order. Pointer and size events
// update surf, which must be the surface the camera was built with. Each
// event is fully applied before the next one.
func (s *Session) Replay(surf *surface.Fixed, events []telemetry.Event) error {
	for i, e := range events {
		if err := s.apply(surf, e); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		slog.Debug("replayed event",
			"index", i,
			"kind", e.Kind,
			"zoom_power", s.Camera.ZoomPower(),
		)
	}
	return nil
}

func (s *Session) apply(surf *surface.Fixed, e telemetry.Event) error {
	cam := s.Camera
	switch e.Kind {
	case telemetry.EventResize:
		surf.Resize(int(e.X), int(e.Y))
		cam.Resize(int(e.X), int(e.Y))
	case telemetry.EventMove:
		surf.MoveTo(e.X, e.Y)
	case telemetry.EventZoom:
		cam.Zoom(e.Delta)
	case telemetry.EventPan:
		cam.Pan(e.X, e.Y)
	case telemetry.EventRecenter:
		cam.Recenter()
	case telemetry.EventUpdate:
		cam.Update()
	default:
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}
	return nil
}
