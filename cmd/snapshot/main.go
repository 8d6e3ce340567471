// Snapshot tool - replays an event script and renders the resulting view to a PNG.
//
// Usage: go run ./cmd/snapshot -image photo.png -events zoom.csv -out view.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/imagewatch/config"
	"github.com/pthm-cable/imagewatch/session"
	"github.com/pthm-cable/imagewatch/surface"
	"github.com/pthm-cable/imagewatch/telemetry"
	"github.com/pthm-cable/imagewatch/viewer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	imagePath := flag.String("image", "", "Image to view (empty = checkerboard)")
	eventsPath := flag.String("events", "", "Event script CSV to replay before rendering")
	outPath := flag.String("out", "view.png", "Output PNG path")
	width := flag.Int("width", 800, "Render width")
	height := flag.Int("height", 600, "Render height")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *imagePath != "" {
		cfg.Image.Path = *imagePath
	}

	var events []telemetry.Event
	if *eventsPath != "" {
		if events, err = telemetry.LoadEventsFile(*eventsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load events: %v\n", err)
			os.Exit(1)
		}
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Snapshot")
	defer rl.CloseWindow()

	tex, err := viewer.LoadTexture(cfg.Image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	defer rl.UnloadTexture(tex)

	surf := surface.NewFixed(*width, *height)
	s, err := session.New(cfg, surf, float64(tex.Width), float64(tex.Height))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build session: %v\n", err)
		os.Exit(1)
	}
	if err := s.Replay(surf, events); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to replay events: %v\n", err)
		os.Exit(1)
	}

	// Resize events may have changed the canvas
	w, h := s.Camera.CanvasSize()

	target := rl.LoadRenderTexture(int32(w), int32(h))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	viewer.DrawImage(s, tex)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("View rendered to: %s (%dx%d, zoom power %.1f)\n", *outPath, w, h, s.Camera.ZoomPower())
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
