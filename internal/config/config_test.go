package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/spheretrace/pkg/rgb"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test render defaults
	if cfg.Render.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 1024 {
		t.Errorf("expected height 1024, got %d", cfg.Render.Height)
	}
	if cfg.Render.Workers != 1 {
		t.Errorf("expected 1 worker, got %d", cfg.Render.Workers)
	}
	if cfg.Render.TMin != 1.0 {
		t.Errorf("expected t_min 1.0, got %f", cfg.Render.TMin)
	}
	if cfg.Render.Viewport != (ViewportConfig{Width: 1, Height: 1, Distance: 1}) {
		t.Errorf("unexpected viewport %+v", cfg.Render.Viewport)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil || bg != rgb.White {
		t.Errorf("expected white background, got %v (%v)", bg, err)
	}

	// Test output defaults
	if cfg.Output.Path != "output.png" {
		t.Errorf("expected output.png, got %s", cfg.Output.Path)
	}
	if cfg.Output.Preview {
		t.Error("expected preview to be false by default")
	}
	if cfg.Scene.File != "" {
		t.Errorf("expected built-in scene, got %s", cfg.Scene.File)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
render:
  width: 640
  height: 480
  workers: 0
  background: "#000000"
  t_min: 0.5
  viewport:
    width: 1.6
    height: 1.2
    distance: 2

scene:
  file: "scenes/demo.yaml"

output:
  path: "out/render.bmp"
  preview: true

logging:
  level: "debug"
  log_file: "render.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Render.Width != 640 || cfg.Render.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Workers != 0 {
		t.Errorf("expected workers 0, got %d", cfg.Render.Workers)
	}
	if cfg.Render.Background != "#000000" {
		t.Errorf("expected black background, got %s", cfg.Render.Background)
	}
	if cfg.Render.TMin != 0.5 {
		t.Errorf("expected t_min 0.5, got %f", cfg.Render.TMin)
	}
	if cfg.Render.Viewport.Distance != 2 {
		t.Errorf("expected viewport distance 2, got %f", cfg.Render.Viewport.Distance)
	}
	if cfg.Scene.File != "scenes/demo.yaml" {
		t.Errorf("expected scene file, got %s", cfg.Scene.File)
	}
	if cfg.Output.Path != "out/render.bmp" || !cfg.Output.Preview {
		t.Errorf("unexpected output %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "render.log" {
		t.Errorf("expected log file 'render.log', got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should be valid: %v", err)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  width: 320\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Render.Width != 320 {
		t.Errorf("expected width 320, got %d", cfg.Render.Width)
	}
	// Unset values keep their defaults.
	if cfg.Render.Height != 1024 || cfg.Output.Path != "output.png" {
		t.Errorf("defaults were overwritten: %+v", cfg)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
render:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Render.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Render.Height = -5 }, true},
		{"negative workers", func(c *Config) { c.Render.Workers = -1 }, true},
		{"bad background", func(c *Config) { c.Render.Background = "white" }, true},
		{"zero viewport", func(c *Config) { c.Render.Viewport.Distance = 0 }, true},
		{"empty output", func(c *Config) { c.Output.Path = "" }, true},
		{"jpeg output", func(c *Config) { c.Output.Path = "render.jpg" }, true},
		{"tiff output", func(c *Config) { c.Output.Path = "render.tiff" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "scene flag",
			setup: func() { *flagScene = "demo.yaml" },
			verify: func(cfg *Config) {
				if cfg.Scene.File != "demo.yaml" {
					t.Errorf("expected scene demo.yaml, got %s", cfg.Scene.File)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name:  "output flag",
			setup: func() { *flagOutput = "render.bmp" },
			verify: func(cfg *Config) {
				if cfg.Output.Path != "render.bmp" {
					t.Errorf("expected output render.bmp, got %s", cfg.Output.Path)
				}
			},
			teardown: func() { *flagOutput = "" },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 256
				*flagHeight = 128
			},
			verify: func(cfg *Config) {
				if cfg.Render.Width != 256 {
					t.Errorf("expected width 256, got %d", cfg.Render.Width)
				}
				if cfg.Render.Height != 128 {
					t.Errorf("expected height 128, got %d", cfg.Render.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "workers flag zero means all CPUs",
			setup: func() { *flagWorkers = 0 },
			verify: func(cfg *Config) {
				if cfg.Render.Workers != 0 {
					t.Errorf("expected workers 0, got %d", cfg.Render.Workers)
				}
			},
			teardown: func() { *flagWorkers = -1 },
		},
		{
			name:  "workers flag unset keeps default",
			setup: func() {},
			verify: func(cfg *Config) {
				if cfg.Render.Workers != 1 {
					t.Errorf("expected default workers 1, got %d", cfg.Render.Workers)
				}
			},
			teardown: func() {},
		},
		{
			name:  "background and preview flags",
			setup: func() {
				*flagBackground = "#102030"
				*flagPreview = true
			},
			verify: func(cfg *Config) {
				if cfg.Render.Background != "#102030" {
					t.Errorf("expected background #102030, got %s", cfg.Render.Background)
				}
				if !cfg.Output.Preview {
					t.Error("expected preview to be enabled")
				}
			},
			teardown: func() {
				*flagBackground = ""
				*flagPreview = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
render:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Render.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Render.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Render.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Render.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  path: render.gif\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for .gif output, got nil")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Render.Width = 333
	cfg.Output.Path = "saved.tif"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config %+v, want %+v", loaded, cfg)
	}
}
