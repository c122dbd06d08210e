// seehuhn.de/go/sketch - an interactive raster drawing program
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings of the drawing program.
//
// Settings are read from a TOML file like the following, where every
// key is optional:
//
//	log_level = "info"
//
//	[canvas]
//	width = 680
//	height = 600
//	background = "#ffffff"
//
//	[drawing]
//	color = "black"
//	filled = false
//	line_algorithm = "bresenham"
//	circle_algorithm = "naive"
//	polygon_sides = 5
//	bezier_steps = 20
//
//	[[palette]]
//	name = "teal"
//	color = "#008080"
//
// A palette given in the file replaces the built-in palette.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/sketch/raster"
)

// Limits for the number of polygon sides.
const (
	MinPolygonSides = 3
	MaxPolygonSides = 10
)

// Config is the complete set of settings.
type Config struct {
	LogLevel slog.Level `toml:"log_level"`
	Canvas   Canvas     `toml:"canvas"`
	Drawing  Drawing    `toml:"drawing"`
	Palette  []Swatch   `toml:"palette"`
}

// Canvas describes the drawing area.
type Canvas struct {
	Width      int   `toml:"width"`
	Height     int   `toml:"height"`
	Background Color `toml:"background"`
}

// Drawing holds the initial tool settings.
type Drawing struct {
	// Color is the name of the initially selected palette entry.
	Color string `toml:"color"`

	Filled          bool                   `toml:"filled"`
	LineAlgorithm   raster.LineAlgorithm   `toml:"line_algorithm"`
	CircleAlgorithm raster.CircleAlgorithm `toml:"circle_algorithm"`
	PolygonSides    int                    `toml:"polygon_sides"`
	BezierSteps     int                    `toml:"bezier_steps"`
}

// Swatch is a named palette color.
type Swatch struct {
	Name  string `toml:"name"`
	Color Color  `toml:"color"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: slog.LevelInfo,
		Canvas: Canvas{
			Width:      680,
			Height:     600,
			Background: Color{R: 255, G: 255, B: 255},
		},
		Drawing: Drawing{
			Color:           "black",
			LineAlgorithm:   raster.LineNaive,
			CircleAlgorithm: raster.CircleNaive,
			PolygonSides:    5,
			BezierSteps:     20,
		},
		Palette: []Swatch{
			{"yellow", Color{R: 255, G: 255}},
			{"blue", Color{B: 255}},
			{"red", Color{R: 255}},
			{"green", Color{G: 255}},
			{"orange", Color{R: 255, G: 165}},
			{"white", Color{R: 255, G: 255, B: 255}},
			{"gray", Color{R: 128, G: 128, B: 128}},
			{"black", Color{}},
		},
	}
}

// Load reads the settings from a TOML file. Keys missing from the file
// keep their default values. Unknown keys are an error.
func Load(fileName string) (*Config, error) {
	return load(fileName, true)
}

// Parse is like [Load] but reads the settings from a string.
func Parse(conf string) (*Config, error) {
	return load(conf, false)
}

func load(conf string, isFileName bool) (*Config, error) {
	c := Default()
	// A palette from the file replaces the default one instead of
	// overwriting its first entries.
	c.Palette = nil

	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, c)
	} else {
		md, err = toml.Decode(conf, c)
	}
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown configuration keys: %s", strings.Join(keys, ", "))
	}
	if len(c.Palette) == 0 {
		c.Palette = Default().Palette
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the settings are consistent.
// All problems found are reported together.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid canvas size %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	if n := c.Drawing.PolygonSides; n < MinPolygonSides || n > MaxPolygonSides {
		errs = append(errs, fmt.Errorf("polygon_sides must be between %d and %d, got %d",
			MinPolygonSides, MaxPolygonSides, n))
	}
	if c.Drawing.BezierSteps < 1 {
		errs = append(errs, fmt.Errorf("bezier_steps must be positive, got %d", c.Drawing.BezierSteps))
	}

	seen := make(map[string]bool)
	for _, s := range c.Palette {
		if s.Name == "" {
			errs = append(errs, errors.New("palette entry without a name"))
		} else if seen[s.Name] {
			errs = append(errs, fmt.Errorf("duplicate palette entry %q", s.Name))
		}
		seen[s.Name] = true
	}
	if _, ok := c.Lookup(c.Drawing.Color); !ok {
		errs = append(errs, fmt.Errorf("color %q is not in the palette", c.Drawing.Color))
	}
	return errors.Join(errs...)
}

// Lookup returns the palette entry with the given name.
func (c *Config) Lookup(name string) (Swatch, bool) {
	i := slices.IndexFunc(c.Palette, func(s Swatch) bool { return s.Name == name })
	if i < 0 {
		return Swatch{}, false
	}
	return c.Palette[i], true
}
