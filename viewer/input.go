package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/imagewatch/config"
)

// handleInput processes keyboard and mouse input.
func (v *Viewer) handleInput() {
	// Window resize propagation
	v.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		v.showHUD = !v.showHUD
	}

	v.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (v *Viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	if w == v.screenWidth && h == v.screenHeight {
		return
	}
	// A minimized window reports zero size
	if w <= 0 || h <= 0 {
		return
	}
	v.screenWidth = w
	v.screenHeight = h

	v.session.Camera.Resize(w, h)
}

// handleCameraInput processes camera pan/zoom controls.
func (v *Viewer) handleCameraInput() {
	cam := v.session.Camera
	camCfg := v.cfg.Camera

	// Zoom around the cursor with the wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.Zoom(float64(wheel) * camCfg.ScrollStep * v.cfg.Derived.ScrollDir)
	}

	// Keyboard zoom with +/- (= and - keys), also around the cursor
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		cam.Zoom(camCfg.KeyboardZoomStep)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		cam.Zoom(-camCfg.KeyboardZoomStep)
	}

	// Drag to pan. Screen y grows down, world y grows up.
	button := rl.MouseButtonLeft
	switch v.cfg.Derived.PanButton {
	case config.MouseRight:
		button = rl.MouseButtonRight
	case config.MouseMiddle:
		button = rl.MouseButtonMiddle
	}
	if rl.IsMouseButtonPressed(button) && !v.overHUD() {
		v.dragging = true
	}
	if !rl.IsMouseButtonDown(button) {
		v.dragging = false
	}
	if v.dragging {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			cam.Pan(float64(d.X), -float64(d.Y))
		}
	}

	// Home key to recenter
	if rl.IsKeyPressed(rl.KeyHome) {
		cam.Recenter()
	}
}
