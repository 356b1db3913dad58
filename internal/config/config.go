package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"voxed/internal/logger"
	"voxed/internal/palette"
)

// DefaultPath is the editor config file, relative to the process working directory.
const DefaultPath = "config/editor.yaml"

// PathEnv overrides DefaultPath when set (e.g. from .env).
const PathEnv = "VOXED_CONFIG"

// Window describes the editor window.
type Window struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Title      string `yaml:"title"`
	TargetFPS  int32  `yaml:"target_fps"`
}

// Config holds editor preferences. Grid contents are never stored here.
type Config struct {
	Window       Window            `yaml:"window"`
	ShowFPS      bool              `yaml:"show_fps"`
	ShowMemAlloc bool              `yaml:"show_memalloc"`
	ShowPanel    bool              `yaml:"show_panel"`
	Palette      []string          `yaml:"palette,omitempty"`
	Keys         map[string]string `yaml:"keys,omitempty"`
	LogPath      string            `yaml:"log_path"`
	// Font is a font file or a family name looked up under assets/fonts. Empty uses raylib's font.
	Font string `yaml:"font,omitempty"`
	// Stylesheet, if set, is a CSS file whose rules are layered over the built-in panel style.
	Stylesheet string `yaml:"stylesheet,omitempty"`
}

// Default returns a 1024x768 window, the panel shown, overlays off and the stock palette.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1024,
			Height:    768,
			Title:     "voxed",
			TargetFPS: 60,
		},
		ShowPanel: true,
		LogPath:   logger.DefaultPath,
	}
}

// Path returns $VOXED_CONFIG if set, else DefaultPath.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the config at path over Default(). A missing file is not an error. A file that
// does not parse yields Default() together with the parse error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	c.fillZeroes()
	return c, nil
}

func (c *Config) fillZeroes() {
	d := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.TargetFPS <= 0 {
		c.Window.TargetFPS = d.Window.TargetFPS
	}
}

// Save writes c as YAML to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// PaletteColours returns the palette defaults: stock entries overridden by the configured
// hex strings, in order. More than palette.NumColour entries is an error.
func (c Config) PaletteColours() ([palette.NumColour]palette.RGB, error) {
	out := palette.Default()
	if len(c.Palette) > palette.NumColour {
		return out, fmt.Errorf("config: palette has %d entries, at most %d allowed", len(c.Palette), palette.NumColour)
	}
	for i, s := range c.Palette {
		rgb, err := palette.ParseHex(s)
		if err != nil {
			return palette.Default(), fmt.Errorf("config: palette[%d]: %w", i, err)
		}
		out[i] = rgb
	}
	return out, nil
}
