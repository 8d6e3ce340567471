package viewer

import rl "github.com/gen2brain/raylib-go/raylib"

// Window is the camera surface backed by the raylib window.
type Window struct{}

func (Window) Width() int      { return rl.GetScreenWidth() }
func (Window) Height() int     { return rl.GetScreenHeight() }
func (Window) MouseX() float64 { return float64(rl.GetMouseX()) }
func (Window) MouseY() float64 { return float64(rl.GetMouseY()) }
