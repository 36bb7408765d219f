// Package config holds the optional settings of a chessreel run. The zero
// configuration file reproduces the built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chessreel/pkg/render"
	"chessreel/pkg/snapshot"
	"chessreel/pkg/text"
)

// DefaultDuration is how long each frame stays on screen in the GIF.
const DefaultDuration = 1500 * time.Millisecond

// Config is the full run configuration.
type Config struct {
	Title    string        `yaml:"title"`
	Duration time.Duration `yaml:"duration"`
	// Backend is "auto", "gg" or "none".
	Backend string        `yaml:"backend"`
	Squares SquaresConfig `yaml:"squares"`
	Fonts   FontsConfig   `yaml:"fonts"`
}

// SquaresConfig selects how board squares are found in a snapshot.
type SquaresConfig struct {
	// Matcher is "dom" or "pattern".
	Matcher string `yaml:"matcher"`
	Marker  string `yaml:"marker"`
	Pattern string `yaml:"pattern"`
}

// FontsConfig points at the TrueType fonts used on frames.
type FontsConfig struct {
	Regular string `yaml:"regular"`
	Bold    string `yaml:"bold"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Title:    render.DefaultTitle,
		Duration: DefaultDuration,
		Backend:  "auto",
		Squares: SquaresConfig{
			Matcher: "dom",
			Marker:  snapshot.DefaultMarker,
		},
		Fonts: FontsConfig{
			Regular: text.DejaVuRegular,
			Bold:    text.DejaVuBold,
		},
	}
}

// Load reads the YAML file at path over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %s", c.Duration)
	}
	switch c.Backend {
	case "auto", "gg", "none":
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	switch c.Squares.Matcher {
	case "dom", "pattern":
	default:
		return fmt.Errorf("config: unknown square matcher %q", c.Squares.Matcher)
	}
	return nil
}

// FontConfig converts the fonts section for the text package.
func (c *Config) FontConfig() text.FontConfig {
	return text.FontConfig{Regular: c.Fonts.Regular, Bold: c.Fonts.Bold}
}

// SquareMatcher builds the configured square matcher.
func (c *Config) SquareMatcher() (snapshot.SquareMatcher, error) {
	return snapshot.NewMatcher(c.Squares.Matcher, c.Squares.Marker, c.Squares.Pattern)
}
