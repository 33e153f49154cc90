// Package config loads the YAML configuration of the svg2tikz command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vasalvit/svg2tikz"
)

// Config holds the settings of one conversion. Fields absent from a file
// keep their defaults.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	ForceQuadraticAsCubic   bool    `yaml:"force_quadratic_as_cubic"`
	JoinStrengthX           float64 `yaml:"join_strength_x"`
	JoinStrengthY           float64 `yaml:"join_strength_y"`
	SingleQuadraticStrength float64 `yaml:"single_quadratic_strength"`
	ShowControlPoints       bool    `yaml:"show_control_points"`
	// Scale multiplies every source coordinate.
	Scale float64 `yaml:"scale"`

	// TexScaleFactor is the value of \scale in the output.
	TexScaleFactor     float64  `yaml:"tex_scale_factor"`
	NoScaleDef         bool     `yaml:"no_scale_def"`
	NoColorDefs        bool     `yaml:"no_color_defs"`
	Standalone         bool     `yaml:"standalone"`
	Beamer             bool     `yaml:"beamer"`
	DrawHidden         bool     `yaml:"draw_hidden"`
	TikzpictureOptions []string `yaml:"tikzpicture_options"`
	Tikzset            []string `yaml:"tikzset"`

	// Colors maps hex colors to predefined names.
	Colors map[string]string `yaml:"colors"`
	// Preview is the PNG file to render, if any.
	Preview string `yaml:"preview"`
}

// ColorDefiner is implemented by color registries accepting predefined
// names.
type ColorDefiner interface {
	Define(hex, name string) error
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		JoinStrengthX:           100,
		JoinStrengthY:           100,
		SingleQuadraticStrength: 100,
		Scale:                   1,
		TexScaleFactor:          1,
	}
}

// Load reads filename over the defaults and validates the result. An
// empty filename returns the defaults.
func Load(filename string) (*Config, error) {
	c := Default()
	if filename == "" {
		return c, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	if err := c.decode(f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the numeric settings.
func (c *Config) Validate() error {
	strengths := []struct {
		name  string
		value float64
	}{
		{"join_strength_x", c.JoinStrengthX},
		{"join_strength_y", c.JoinStrengthY},
		{"single_quadratic_strength", c.SingleQuadraticStrength},
	}
	for _, s := range strengths {
		if s.value < 0 || s.value > 100 {
			return fmt.Errorf("%s must be within [0,100], got %v", s.name, s.value)
		}
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.TexScaleFactor <= 0 {
		return fmt.Errorf("tex_scale_factor must be positive, got %v", c.TexScaleFactor)
	}
	return nil
}

// Engine returns the translation settings.
func (c *Config) Engine() svg2tikz.Config {
	return svg2tikz.Config{
		ForceQuadraticAsCubic:   c.ForceQuadraticAsCubic,
		JoinStrengthX:           c.JoinStrengthX,
		JoinStrengthY:           c.JoinStrengthY,
		SingleQuadraticStrength: c.SingleQuadraticStrength,
		ShowControlPoints:       c.ShowControlPoints,
		Scale:                   c.Scale,
	}
}

// Tikz returns the writer settings. Color definitions are left to the
// caller, since they are only known once the document is translated.
func (c *Config) Tikz() svg2tikz.TikzOptions {
	return svg2tikz.TikzOptions{
		ScaleFactor:    c.TexScaleFactor,
		NoScaleDef:     c.NoScaleDef,
		PictureOptions: c.TikzpictureOptions,
		Tikzset:        c.Tikzset,
		Standalone:     c.Standalone,
		Beamer:         c.Beamer,
		DrawHidden:     c.DrawHidden,
	}
}

// DefineColors registers the configured palette.
func (c *Config) DefineColors(d ColorDefiner) error {
	for hex, name := range c.Colors {
		if err := d.Define(hex, name); err != nil {
			return fmt.Errorf("colors: %w", err)
		}
	}
	return nil
}
