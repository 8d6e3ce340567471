// Package config provides configuration loading and access for the viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Image     ImageConfig     `yaml:"image"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// CameraConfig holds pan and zoom settings.
type CameraConfig struct {
	ZoomFactor       float64 `yaml:"zoom_factor"`        // Linear zoom = zoom_factor^power
	ScrollStep       float64 `yaml:"scroll_step"`        // Zoom power per wheel notch
	KeyboardZoomStep float64 `yaml:"keyboard_zoom_step"` // Zoom power per +/- press
	PanButton        string  `yaml:"pan_button"`
	InvertScroll     bool    `yaml:"invert_scroll"`
}

// ImageConfig selects the image to view.
type ImageConfig struct {
	Path              string `yaml:"path"`
	PlaceholderWidth  int    `yaml:"placeholder_width"`
	PlaceholderHeight int    `yaml:"placeholder_height"`
}

// TelemetryConfig holds output file names.
type TelemetryConfig struct {
	PoseLog string `yaml:"pose_log"`
}

// Mouse button indices, matching raylib's numbering.
const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	PanButton int     // Mouse button index for dragging
	ScrollDir float64 // +1, or -1 with invert_scroll
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived validates the loaded values and fills Derived.
func (c *Config) computeDerived() error {
	if c.Camera.ZoomFactor <= 1 {
		return fmt.Errorf("camera.zoom_factor must be > 1, got %v", c.Camera.ZoomFactor)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}

	switch c.Camera.PanButton {
	case "", "left":
		c.Derived.PanButton = MouseLeft
	case "right":
		c.Derived.PanButton = MouseRight
	case "middle":
		c.Derived.PanButton = MouseMiddle
	default:
		return fmt.Errorf("camera.pan_button: unknown button %q", c.Camera.PanButton)
	}

	c.Derived.ScrollDir = 1
	if c.Camera.InvertScroll {
		c.Derived.ScrollDir = -1
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
