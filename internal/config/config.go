// Package config holds the animation settings loaded from YAML plus
// the built-in demo presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth            = 640
	DefaultHeight           = 480
	DefaultDPI              = 96
	DefaultFPS              = 30
	DefaultHoldFrames       = 10
	DefaultTransitionFrames = 100
	DefaultFramesPerPoint   = 2
	DefaultPadding          = 0.1
	DefaultPoints           = 60
)

type Config struct {
	Layouts          []string `yaml:"layouts"`
	Titles           []string `yaml:"titles"`
	Points           int      `yaml:"points"`
	Seed             int64    `yaml:"seed"`
	Width            int      `yaml:"width"`
	Height           int      `yaml:"height"`
	DPI              int      `yaml:"dpi"`
	FPS              int      `yaml:"fps"`
	HoldFrames       int      `yaml:"hold_frames"`
	TransitionFrames int      `yaml:"transition_frames"`
	FramesPerPoint   int      `yaml:"frames_per_point"`
	Easing           string   `yaml:"easing"`
	Padding          *float64 `yaml:"padding"`
	// XLim/YLim override the computed viewport: [min, max].
	XLim   []float64 `yaml:"x_lim"`
	YLim   []float64 `yaml:"y_lim"`
	XLabel string    `yaml:"x_label"`
	YLabel string    `yaml:"y_label"`
	Legend bool      `yaml:"legend"`
}

// Default returns a config with every knob at its default.
func Default() *Config {
	return &Config{
		Points:           DefaultPoints,
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		DPI:              DefaultDPI,
		FPS:              DefaultFPS,
		HoldFrames:       DefaultHoldFrames,
		TransitionFrames: DefaultTransitionFrames,
		FramesPerPoint:   DefaultFramesPerPoint,
		Easing:           "linear",
		XLabel:           "X",
		YLabel:           "Y",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Pad returns the viewport padding, defaulting to 0.1.
func (c *Config) Pad() float64 {
	if c.Padding == nil {
		return DefaultPadding
	}
	return *c.Padding
}

func (c *Config) Validate() error {
	if c.Points <= 0 {
		return fmt.Errorf("points must be positive, got %d", c.Points)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.HoldFrames < 0 {
		return fmt.Errorf("hold frames must be non-negative, got %d", c.HoldFrames)
	}
	if c.TransitionFrames <= 0 {
		return fmt.Errorf("transition frames must be positive, got %d", c.TransitionFrames)
	}
	if c.FramesPerPoint <= 0 {
		return fmt.Errorf("frames per point must be positive, got %d", c.FramesPerPoint)
	}
	if c.Padding != nil && *c.Padding < 0 {
		return fmt.Errorf("padding must be non-negative, got %v", *c.Padding)
	}
	for axis, lim := range map[string][]float64{"x_lim": c.XLim, "y_lim": c.YLim} {
		if len(lim) == 0 {
			continue
		}
		if len(lim) != 2 {
			return fmt.Errorf("%s needs exactly [min, max], got %d values", axis, len(lim))
		}
		if lim[0] >= lim[1] {
			return fmt.Errorf("%s min %v must be below max %v", axis, lim[0], lim[1])
		}
	}
	return nil
}
