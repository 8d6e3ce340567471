// Package viewer is the interactive raylib front end: it loads the image,
// owns the session and dispatches window input to the camera.
package viewer

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/imagewatch/camera"
	"github.com/pthm-cable/imagewatch/config"
	"github.com/pthm-cable/imagewatch/session"
)

// Viewer shows one image through the session camera.
type Viewer struct {
	cfg     *config.Config
	session *session.Session
	texture rl.Texture2D

	screenWidth, screenHeight int

	dragging bool
	showHUD  bool
}

// New loads the configured image and builds the session. The raylib window
// must already be open. Extra sinks receive every camera pose.
func New(cfg *config.Config, extra ...camera.PoseSink) (*Viewer, error) {
	tex, err := LoadTexture(cfg.Image)
	if err != nil {
		return nil, err
	}

	s, err := session.New(cfg, Window{}, float64(tex.Width), float64(tex.Height), extra...)
	if err != nil {
		rl.UnloadTexture(tex)
		return nil, err
	}

	return &Viewer{
		cfg:          cfg,
		session:      s,
		texture:      tex,
		screenWidth:  rl.GetScreenWidth(),
		screenHeight: rl.GetScreenHeight(),
		showHUD:      true,
	}, nil
}

// LoadTexture loads the image file, or a checkerboard when no path is set.
// A GL context must exist.
func LoadTexture(img config.ImageConfig) (rl.Texture2D, error) {
	if img.Path == "" {
		checker := rl.GenImageChecked(img.PlaceholderWidth, img.PlaceholderHeight, 32, 32, rl.LightGray, rl.Gray)
		tex := rl.LoadTextureFromImage(checker)
		rl.UnloadImage(checker)
		return tex, nil
	}

	tex := rl.LoadTexture(img.Path)
	if tex.ID == 0 {
		return tex, fmt.Errorf("loading image %s", img.Path)
	}
	slog.Info("image loaded", "path", img.Path, "width", tex.Width, "height", tex.Height)
	return tex, nil
}

// Camera returns the session camera.
func (v *Viewer) Camera() *camera.Camera {
	return v.session.Camera
}

// Update processes input for one frame.
func (v *Viewer) Update() {
	v.handleInput()
	v.session.Camera.Update()
}

// Unload releases the texture.
func (v *Viewer) Unload() {
	rl.UnloadTexture(v.texture)
}
