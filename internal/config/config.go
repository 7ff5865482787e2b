// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/spheretrace/internal/output"
	"github.com/Faultbox/spheretrace/pkg/rgb"
)

// Config holds all renderer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds canvas and camera settings.
type RenderConfig struct {
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	Workers    int            `yaml:"workers"`    // 0 = one per CPU
	Background string         `yaml:"background"` // "#RRGGBB"
	TMin       float64        `yaml:"t_min"`
	Viewport   ViewportConfig `yaml:"viewport"`
}

// ViewportConfig describes the virtual window in front of the camera.
type ViewportConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Distance float64 `yaml:"distance"`
}

// SceneConfig selects the scene to render.
type SceneConfig struct {
	File string `yaml:"file"` // empty = built-in scene
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Path    string `yaml:"path"`
	Preview bool   `yaml:"preview"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      1024,
			Height:     1024,
			Workers:    1,
			Background: "#FFFFFF",
			TMin:       1.0,
			Viewport: ViewportConfig{
				Width:    1,
				Height:   1,
				Distance: 1,
			},
		},
		Output: OutputConfig{
			Path: "output.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// BackgroundColor parses Render.Background.
func (c *Config) BackgroundColor() (rgb.Color, error) {
	return rgb.ParseHex(c.Render.Background)
}

// Validate reports every setting the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height))
	}
	if c.Render.Workers < 0 {
		errs = append(errs, fmt.Errorf("render.workers must not be negative, got %d", c.Render.Workers))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}
	vp := c.Render.Viewport
	if vp.Width <= 0 || vp.Height <= 0 || vp.Distance <= 0 {
		errs = append(errs, fmt.Errorf("render.viewport must be positive, got %+v", vp))
	}
	if c.Output.Path == "" {
		errs = append(errs, errors.New("output.path is empty"))
	} else if _, err := output.FormatFor(c.Output.Path); err != nil {
		errs = append(errs, fmt.Errorf("output.path: %w", err))
	}

	return errors.Join(errs...)
}
