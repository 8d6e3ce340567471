package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/imagewatch/camera"
	"github.com/pthm-cable/imagewatch/config"
	"github.com/pthm-cable/imagewatch/session"
	"github.com/pthm-cable/imagewatch/surface"
	"github.com/pthm-cable/imagewatch/telemetry"
	"github.com/pthm-cable/imagewatch/viewer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	imagePath := flag.String("image", "", "Image to view (overrides image.path)")
	headless := flag.Bool("headless", false, "Replay an event script without a window")
	eventsPath := flag.String("events", "", "Event script CSV for -headless")
	outputDir := flag.String("output-dir", "", "Output directory for the pose log and config snapshot")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *imagePath != "" {
		cfg.Image.Path = *imagePath
	}

	out, err := telemetry.NewOutputManager(*outputDir, cfg.Telemetry.PoseLog)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	var sinks []camera.PoseSink
	if rec := out.Recorder(); rec != nil {
		sinks = append(sinks, rec)
	}

	if *headless {
		err = runHeadless(cfg, *eventsPath, sinks)
	} else {
		err = runWindow(cfg, sinks)
	}

	if cerr := out.Close(); cerr != nil {
		slog.Error("failed to close output", "error", cerr)
	}
	if err != nil {
		slog.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}

// runHeadless replays an event script against a fixed surface.
func runHeadless(cfg *config.Config, eventsPath string, sinks []camera.PoseSink) error {
	var events []telemetry.Event
	if eventsPath != "" {
		var err error
		if events, err = telemetry.LoadEventsFile(eventsPath); err != nil {
			return err
		}
	}

	w, h := cfg.Image.PlaceholderWidth, cfg.Image.PlaceholderHeight
	if cfg.Image.Path != "" {
		var err error
		if w, h, err = session.ImageDimensions(cfg.Image.Path); err != nil {
			return err
		}
	}

	surf := surface.NewFixed(cfg.Screen.Width, cfg.Screen.Height)
	s, err := session.New(cfg, surf, float64(w), float64(h), sinks...)
	if err != nil {
		return err
	}

	slog.Info("starting headless replay", "events", len(events))
	if err := s.Replay(surf, events); err != nil {
		return err
	}

	px, py := s.Camera.PanOffset()
	slog.Info("replay finished",
		"zoom_power", s.Camera.ZoomPower(),
		"zoom", s.Camera.ComputeZoom(),
		"pan_x", px,
		"pan_y", py,
	)
	return nil
}

// runWindow opens the raylib window and runs the interactive viewer.
func runWindow(cfg *config.Config, sinks []camera.PoseSink) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	v, err := viewer.New(cfg, sinks...)
	if err != nil {
		return err
	}
	defer v.Unload()

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()
	}
	return nil
}
