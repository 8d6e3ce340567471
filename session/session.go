// Package session assembles a viewing session: the scene stage with its
// camera and buffer nodes, and the camera bound to them.
package session

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/imagewatch/camera"
	"github.com/pthm-cable/imagewatch/config"
	"github.com/pthm-cable/imagewatch/mat4"
	"github.com/pthm-cable/imagewatch/scene"
)

// Node names on the stage.
const (
	CameraNode = "camera"
	BufferNode = "buffer"
)

// Session holds the stage and the camera that drives its view node.
type Session struct {
	Stage  *scene.Stage
	Camera *camera.Camera
	View   *scene.Node
	Buffer *scene.Node
}

// New builds a stage holding a w x h image buffer and a camera bound to
// surf, then runs the initial fit. Extra sinks receive every pose after the
// view node.
func New(cfg *config.Config, surf camera.Surface, w, h float64, extra ...camera.PoseSink) (*Session, error) {
	stage := scene.NewStage()

	buf, err := stage.AddBuffer(BufferNode, w, h, mat4.Identity())
	if err != nil {
		return nil, fmt.Errorf("adding buffer node: %w", err)
	}
	view, err := stage.AddNode(CameraNode, mat4.Identity())
	if err != nil {
		return nil, fmt.Errorf("adding camera node: %w", err)
	}

	var sink camera.PoseSink = view
	if len(extra) > 0 {
		sink = append(camera.Fanout{view}, extra...)
	}

	cam := camera.New(surf, sink, buf,
		camera.WithZoomFactor(cfg.Camera.ZoomFactor),
		camera.WithLogger(slog.Default()),
	)
	cam.PostInitialize()

	slog.Info("session ready",
		"image_w", w,
		"image_h", h,
		"canvas_w", surf.Width(),
		"canvas_h", surf.Height(),
		"zoom_power", cam.ZoomPower(),
	)

	return &Session{
		Stage:  stage,
		Camera: cam,
		View:   view,
		Buffer: buf,
	}, nil
}

// ImageCorners returns the world-space top-left and bottom-right corners of
// the buffer. The image is centered on the world origin with y up.
func (s *Session) ImageCorners() (left, top, right, bottom float64) {
	w, h := s.Buffer.Dimensions()
	return -w / 2, h / 2, w / 2, -h / 2
}
