package main

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FradSer/fluid/pause"
	"github.com/FradSer/fluid/rubberband"
	"github.com/FradSer/fluid/spring"
	"github.com/FradSer/fluid/utils"
)

// Config is the YAML configuration for the sandbox. Everything has a
// default, so the binary runs fine without a file; the file exists so
// the interaction tuning and the theme can be tweaked without
// rebuilding, and so no knob lives in process-wide mutable state.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Theme      ThemeConfig      `yaml:"theme"`
	Pause      PauseConfig      `yaml:"pause"`
	Rubberband RubberbandConfig `yaml:"rubberband"`
	Spring     SpringConfig     `yaml:"spring"`
	Panel      PanelConfig      `yaml:"panel"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Colors are "#RRGGBB" strings in the file.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Card       string `yaml:"card"`
	CardActive string `yaml:"card_active"`
	Accent     string `yaml:"accent"`
	Panel      string `yaml:"panel"`
}

type PauseConfig struct {
	WindowSize   int     `yaml:"window_size"`
	VelocityGate float64 `yaml:"velocity_gate"`
	MinTravel    float64 `yaml:"min_travel"`
	DropRatio    float64 `yaml:"drop_ratio"`
}

type RubberbandConfig struct {
	Exponent float64 `yaml:"exponent"`
	// Vertical travel allowed before the fold starts damping.
	VerticalBound float64 `yaml:"vertical_bound"`
}

type SpringConfig struct {
	Frequency       float64 `yaml:"frequency"`
	Damping         float64 `yaml:"damping"`
	DirectFrequency float64 `yaml:"direct_frequency"`
	DirectDamping   float64 `yaml:"direct_damping"`
}

// The floating element of the corner snap scene.
type PanelConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Theme is the parsed, render-ready form of ThemeConfig, passed into
// scenes instead of being read from globals.
type Theme struct {
	Background color.RGBA
	Card       color.RGBA
	CardActive color.RGBA
	Accent     color.RGBA
	Panel      color.RGBA
}

func defaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 420, Height: 640, Title: "fluid sandbox"},
		Theme: ThemeConfig{
			Background: "#101018",
			Card:       "#2e3440",
			CardActive: "#434c5e",
			Accent:     "#88c0d0",
			Panel:      "#bf616a",
		},
		Pause: PauseConfig{
			WindowSize:   pause.DefaultWindowSize,
			VelocityGate: pause.DefaultVelocityGate,
			MinTravel:    pause.DefaultMinTravel,
			DropRatio:    pause.DefaultDropRatio,
		},
		Rubberband: RubberbandConfig{
			Exponent:      rubberband.DefaultExponent,
			VerticalBound: 80,
		},
		Spring: SpringConfig{
			Frequency:       spring.DefaultFrequency,
			Damping:         spring.DefaultDamping,
			DirectFrequency: spring.DirectFrequency,
			DirectDamping:   spring.DirectDamping,
		},
		Panel: PanelConfig{Width: 120, Height: 180},
	}
}

// Loads the configuration from the given path, or returns the
// defaults when path is empty. Unknown keys fail loudly rather than
// being silently dropped.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return config, fmt.Errorf("validating config %q: %w", path, err)
	}
	return config, nil
}

func (self *Config) validate() error {
	if self.Window.Width < 1 || self.Window.Height < 1 {
		return fmt.Errorf("window size must be at least 1x1, got %dx%d", self.Window.Width, self.Window.Height)
	}
	if self.Pause.WindowSize < 1 {
		return fmt.Errorf("pause window_size must be >= 1, got %d", self.Pause.WindowSize)
	}
	if self.Pause.DropRatio <= 0 || self.Pause.DropRatio >= 1 {
		return fmt.Errorf("pause drop_ratio must be in (0, 1), got %g", self.Pause.DropRatio)
	}
	if self.Rubberband.Exponent <= 0 || self.Rubberband.Exponent >= 1 {
		return fmt.Errorf("rubberband exponent must be in (0, 1), got %g", self.Rubberband.Exponent)
	}
	if self.Rubberband.VerticalBound < 0 {
		return fmt.Errorf("rubberband vertical_bound must be >= 0, got %g", self.Rubberband.VerticalBound)
	}
	if self.Panel.Width <= 0 || self.Panel.Height <= 0 {
		return fmt.Errorf("panel size must be positive, got %gx%g", self.Panel.Width, self.Panel.Height)
	}
	if self.Spring.Frequency <= 0 || self.Spring.DirectFrequency <= 0 {
		return fmt.Errorf("spring frequencies must be > 0")
	}
	return nil
}

// Parses the theme colors. Invalid hex strings are reported with
// their key name so the file is easy to fix.
func (self *Config) theme() (Theme, error) {
	var theme Theme
	fields := []struct {
		name  string
		value string
		out   *color.RGBA
	}{
		{"background", self.Theme.Background, &theme.Background},
		{"card", self.Theme.Card, &theme.Card},
		{"card_active", self.Theme.CardActive, &theme.CardActive},
		{"accent", self.Theme.Accent, &theme.Accent},
		{"panel", self.Theme.Panel, &theme.Panel},
	}
	for _, field := range fields {
		clr, err := parseHexColor(field.value)
		if err != nil {
			return theme, fmt.Errorf("theme.%s: %w", field.name, err)
		}
		*field.out = clr
	}
	return theme, nil
}

func parseHexColor(value string) (color.RGBA, error) {
	if len(value) != 7 || value[0] != '#' {
		return color.RGBA{}, fmt.Errorf("expected \"#RRGGBB\", got %q", value)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(value[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("expected \"#RRGGBB\", got %q", value)
	}
	return utils.RGB(r, g, b), nil
}
