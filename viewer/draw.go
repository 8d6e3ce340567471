package viewer

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/imagewatch/session"
)

const (
	hudX      = 10
	hudY      = 10
	hudWidth  = 220
	hudHeight = 110
)

// Draw renders one frame.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.NewColor(30, 30, 35, 255))

	DrawImage(v.session, v.texture)

	if v.showHUD {
		v.drawHUD()
	}
}

// DrawImage maps the buffer corners of s through its camera and stretches
// tex over the resulting screen rectangle.
func DrawImage(s *session.Session, tex rl.Texture2D) {
	cam := s.Camera
	l, t, r, b := s.ImageCorners()
	x0, y0 := cam.WorldToScreen(l, t)
	x1, y1 := cam.WorldToScreen(r, b)

	src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(tex.Height)}
	dst := rl.Rectangle{X: float32(x0), Y: float32(y0), Width: float32(x1 - x0), Height: float32(y1 - y0)}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

func (v *Viewer) drawHUD() {
	cam := v.session.Camera

	rl.DrawRectangle(hudX, hudY, hudWidth, hudHeight, rl.NewColor(0, 0, 0, 150))

	mx, my := cam.ScreenToWorld(Window{}.MouseX(), Window{}.MouseY())
	px, py := cam.PanOffset()
	rl.DrawText(fmt.Sprintf("Zoom: %.2fx (power %.1f)", cam.ComputeZoom(), cam.ZoomPower()), hudX+8, hudY+8, 14, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("Pan: (%.0f, %.0f)", px, py), hudX+8, hudY+26, 14, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("Cursor: (%.1f, %.1f)", mx, my), hudX+8, hudY+44, 14, rl.RayWhite)

	by := float32(hudY + 70)
	if gui.Button(rl.Rectangle{X: hudX + 8, Y: by, Width: 100, Height: 30}, "Recenter") {
		cam.Recenter()
	}
	if gui.Button(rl.Rectangle{X: hudX + 116, Y: by, Width: 44, Height: 30}, "+") {
		cam.Zoom(v.cfg.Camera.KeyboardZoomStep)
	}
	if gui.Button(rl.Rectangle{X: hudX + 166, Y: by, Width: 44, Height: 30}, "-") {
		cam.Zoom(-v.cfg.Camera.KeyboardZoomStep)
	}
}

// overHUD reports whether the cursor is over the HUD panel.
func (v *Viewer) overHUD() bool {
	if !v.showHUD {
		return false
	}
	p := rl.GetMousePosition()
	return rl.CheckCollisionPointRec(p, rl.Rectangle{X: hudX, Y: hudY, Width: hudWidth, Height: hudHeight})
}
