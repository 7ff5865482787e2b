// Package main is the entry point for the spheretrace renderer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/spheretrace/internal/canvas"
	"github.com/Faultbox/spheretrace/internal/config"
	"github.com/Faultbox/spheretrace/internal/logger"
	"github.com/Faultbox/spheretrace/internal/output"
	"github.com/Faultbox/spheretrace/internal/preview"
	"github.com/Faultbox/spheretrace/internal/raytrace"
	"github.com/Faultbox/spheretrace/internal/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	s, err := loadScene(cfg.Scene.File)
	if err != nil {
		logger.Fatal("failed to load scene", zap.String("file", cfg.Scene.File), zap.Error(err))
	}

	opts, err := renderOptions(cfg)
	if err != nil {
		logger.Fatal("invalid render options", zap.Error(err))
	}
	opts.Logger = logger.Log

	c := canvas.New(cfg.Render.Width, cfg.Render.Height)
	raytrace.Render(c, s, opts)

	if err := output.Save(cfg.Output.Path, c.Image()); err != nil {
		logger.Fatal("failed to write image", zap.String("path", cfg.Output.Path), zap.Error(err))
	}
	logger.Info("image written", zap.String("path", cfg.Output.Path))

	if cfg.Output.Preview {
		if err := preview.Show(c.Image(), "spheretrace - "+cfg.Output.Path, logger.Log); err != nil {
			logger.Error("preview failed", zap.Error(err))
		}
	}
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		logger.Info("using built-in scene")
		return scene.Default(), nil
	}
	logger.Info("loading scene", zap.String("file", path))
	return scene.Load(path)
}

func renderOptions(cfg *config.Config) (raytrace.Options, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return raytrace.Options{}, err
	}
	vp := cfg.Render.Viewport
	return raytrace.Options{
		Viewport:   raytrace.Viewport{Width: vp.Width, Height: vp.Height, Distance: vp.Distance},
		Background: bg,
		TMin:       cfg.Render.TMin,
		Workers:    cfg.Render.Workers,
	}, nil
}
