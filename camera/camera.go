// Package camera provides the viewport transform of the image viewer.
//
// The camera keeps a world←camera matrix (the pose). Rendering applies the
// inverse of the pose to world geometry, so every composition below reads in
// the reverse of the order in which it acts on the image.
package camera

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/imagewatch/mat4"
)

// DefaultZoomFactor is the base of the exponential zoom curve.
const DefaultZoomFactor = 1.1

// Surface reports the render surface size and pointer position in pixels.
type Surface interface {
	Width() int
	Height() int
	MouseX() float64
	MouseY() float64
}

// PoseSink receives the camera pose after every state change.
// The camera is the only writer of the sink it is given.
type PoseSink interface {
	SetPose(m mat4.Mat4)
}

// Content is the image the camera fits to on initialization.
// Dimensions are in the content's local units and are mapped to canvas
// units through Pose.
type Content interface {
	Dimensions() (w, h float64)
	Pose() mat4.Mat4
}

// Option configures a Camera.
type Option func(*Camera)

// WithZoomFactor sets the base of the zoom curve. Values <= 1 are ignored.
func WithZoomFactor(f float64) Option {
	return func(c *Camera) {
		if f > 1 {
			c.zoomFactor = f
		}
	}
}

// WithLogger sets the logger used for fit diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Camera) {
		if l != nil {
			c.logger = l
		}
	}
}

// Camera controls pan and zoom of the viewport over the image.
type Camera struct {
	surface Surface
	sink    PoseSink
	content Content
	logger  *slog.Logger

	zoomFactor float64

	// Logical zoom level. The linear zoom is zoomFactor^zoomPower. Only the
	// fit search reads it; scale is the authoritative zoom state.
	zoomPower float64

	// Accumulated drag offset
	panX, panY float64

	canvasW, canvasH int

	// scale is path dependent: each Zoom composes a pivot zoom onto it.
	scale      mat4.Mat4
	projection mat4.Mat4
	pose       mat4.Mat4
}

// New creates a camera bound to its collaborators. sink and content may be
// nil; surface is required by Zoom and PostInitialize.
func New(surface Surface, sink PoseSink, content Content, opts ...Option) *Camera {
	c := &Camera{
		surface:    surface,
		sink:       sink,
		content:    content,
		logger:     slog.Default(),
		zoomFactor: DefaultZoomFactor,
		scale:      mat4.Identity(),
		projection: mat4.Identity(),
		pose:       mat4.Identity(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostInitialize sizes the projection from the surface and fits the content.
func (c *Camera) PostInitialize() {
	c.resize(c.surface.Width(), c.surface.Height())
	c.InitialFit()
}

// Resize rebuilds the orthographic projection for a canvas of w x h pixels.
// Zero or negative sizes produce a degenerate projection; the window layer
// must not deliver them.
func (c *Camera) Resize(w, h int) {
	c.resize(w, h)
	c.publish()
}

func (c *Camera) resize(w, h int) {
	c.projection = mat4.Ortho(float64(w)/2, float64(h)/2, -1, 1)
	c.canvasW = w
	c.canvasH = h
}

// Zoom scales the view by zoomFactor^delta around the world point under the
// pointer. Positive delta zooms in.
func (c *Camera) Zoom(delta float64) {
	ndc := c.toNDC(c.surface.MouseX(), c.surface.MouseY(),
		float64(c.surface.Width()), float64(c.surface.Height()))

	vpInv := c.pose.Mul(c.projection.Inverse())
	pivot := c.scale.Inverse().Mul(vpInv).MulVec(ndc)

	ratio := math.Pow(c.zoomFactor, -delta)

	// Reads right to left on the camera, left to right on the world.
	c.scale = c.scale.
		Mul(mat4.Translation(pivot)).
		Mul(mat4.Scale(ratio, ratio, 1)).
		Mul(mat4.Translation(pivot.Neg()))

	c.zoomPower += delta

	c.publish()
}

// Pan adds a pointer displacement to the camera offset. The displacement is
// added as is, without compensating for the current zoom.
func (c *Camera) Pan(dx, dy float64) {
	c.panX += dx
	c.panY += dy
	c.publish()
}

// Recenter clears the pan offset and fits the content again.
func (c *Camera) Recenter() {
	c.panX, c.panY = 0, 0
	c.InitialFit()
}

// InitialFit picks the integer zoom power that best fits the content in the
// canvas and resets scale to it.
func (c *Camera) InitialFit() {
	c.zoomPower = 0
	if c.content != nil {
		w, h := c.content.Dimensions()
		dim := c.content.Pose().MulVec(mat4.Point(w, h, 0))
		c.zoomPower = fitPower(c.zoomFactor,
			float64(c.canvasW), float64(c.canvasH), dim.X(), dim.Y())

		c.logger.Debug("camera fit",
			"canvas_w", c.canvasW,
			"canvas_h", c.canvasH,
			"content_w", dim.X(),
			"content_h", dim.Y(),
			"zoom_power", c.zoomPower,
		)
	}

	zoom := 1 / c.ComputeZoom()
	c.scale = mat4.Scale(zoom, zoom, 1)

	c.publish()
}

// Update is called once per frame.
func (c *Camera) Update() {
}

// CopyFrom copies the view state of o (zoom, pan, canvas size and scale) and
// publishes the resulting pose to c's own sink. The projection is not copied;
// it follows c's last Resize.
func (c *Camera) CopyFrom(o *Camera) {
	c.zoomPower = o.zoomPower
	c.panX, c.panY = o.panX, o.panY
	c.canvasW, c.canvasH = o.canvasW, o.canvasH
	c.scale = o.scale
	c.publish()
}

// ComputeZoom returns the linear zoom for the current zoom power.
func (c *Camera) ComputeZoom() float64 {
	return math.Pow(c.zoomFactor, c.zoomPower)
}

// ZoomPower returns the accumulated logical zoom level.
func (c *Camera) ZoomPower() float64 { return c.zoomPower }

// ZoomFactor returns the base of the zoom curve.
func (c *Camera) ZoomFactor() float64 { return c.zoomFactor }

// PanOffset returns the accumulated pan offset.
func (c *Camera) PanOffset() (x, y float64) { return c.panX, c.panY }

// CanvasSize returns the size given to the last Resize.
func (c *Camera) CanvasSize() (w, h int) { return c.canvasW, c.canvasH }

// Pose returns the current world←camera matrix.
func (c *Camera) Pose() mat4.Mat4 { return c.pose }

// Projection returns the current orthographic projection.
func (c *Camera) Projection() mat4.Mat4 { return c.projection }

// ScaleTransform returns the composed zoom matrix.
func (c *Camera) ScaleTransform() mat4.Mat4 { return c.scale }

// ScreenToWorld maps a pixel position on the canvas to world coordinates.
func (c *Camera) ScreenToWorld(px, py float64) (wx, wy float64) {
	ndc := c.toNDC(px, py, float64(c.canvasW), float64(c.canvasH))
	p := c.pose.Mul(c.projection.Inverse()).MulVec(ndc)
	return p.X(), p.Y()
}

// WorldToScreen maps a world point to a pixel position on the canvas.
func (c *Camera) WorldToScreen(wx, wy float64) (px, py float64) {
	ndc := c.projection.Mul(c.pose.Inverse()).MulVec(mat4.Point(wx, wy, 0))
	w, h := float64(c.canvasW), float64(c.canvasH)
	px = ndc.X()*w/2 + w/2
	py = h/2 - ndc.Y()*h/2
	return px, py
}

// toNDC maps pixels to normalized device coordinates. Screen y grows down,
// NDC y grows up.
func (c *Camera) toNDC(px, py, w, h float64) mat4.Vec4 {
	return mat4.Vec4{
		2 * (px - w/2) / w,
		-2 * (py - h/2) / h,
		0,
		1,
	}
}

// publish recomputes the pose and pushes it to the sink.
func (c *Camera) publish() {
	c.pose = c.scale.Mul(mat4.Translate(-c.panX, -c.panY, 0))
	if c.sink != nil {
		c.sink.SetPose(c.pose)
	}
}
