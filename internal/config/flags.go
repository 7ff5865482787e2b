package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagScene      = flag.String("scene", "", "Path to scene file (default: built-in scene)")
	flagOutput     = flag.String("o", "", "Output image path (.png, .bmp, .tif)")
	flagWidth      = flag.Int("width", 0, "Canvas width")
	flagHeight     = flag.Int("height", 0, "Canvas height")
	flagWorkers    = flag.Int("workers", -1, "Render goroutines (0 = one per CPU)")
	flagBackground = flag.String("background", "", "Background color as #RRGGBB")
	flagPreview    = flag.Bool("preview", false, "Show the result in a window")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.File = *flagScene
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagWorkers >= 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagBackground != "" {
		cfg.Render.Background = *flagBackground
	}
	if *flagPreview {
		cfg.Output.Preview = true
	}
}
