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

package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/sketch/raster"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Canvas.Width != 680 || c.Canvas.Height != 600 {
		t.Errorf("canvas %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if len(c.Palette) != 8 {
		t.Errorf("palette has %d colors", len(c.Palette))
	}
	s, ok := c.Lookup(c.Drawing.Color)
	if !ok || s.Color.RGBA() != (color.RGBA{A: 255}) {
		t.Errorf("initial color %q = %v", c.Drawing.Color, s.Color)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse(`
log_level = "debug"

[canvas]
width = 320
background = "#102030"

[drawing]
color = "red"
filled = true
line_algorithm = "DDA"
circle_algorithm = "bresenham"
polygon_sides = 8
`)
	if err != nil {
		t.Fatal(err)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("log level %v", c.LogLevel)
	}
	if c.Canvas.Width != 320 || c.Canvas.Height != 600 {
		t.Errorf("canvas %dx%d, want 320x600", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Background != (Color{R: 0x10, G: 0x20, B: 0x30}) {
		t.Errorf("background %v", c.Canvas.Background)
	}
	d := c.Drawing
	if d.Color != "red" || !d.Filled || d.PolygonSides != 8 || d.BezierSteps != 20 {
		t.Errorf("drawing settings %+v", d)
	}
	if d.LineAlgorithm != raster.LineDDA || d.CircleAlgorithm != raster.CircleBresenham {
		t.Errorf("algorithms %s, %s", d.LineAlgorithm, d.CircleAlgorithm)
	}
	if len(c.Palette) != 8 {
		t.Errorf("default palette not kept: %d colors", len(c.Palette))
	}
}

func TestPaletteReplaced(t *testing.T) {
	c, err := Parse(`
[drawing]
color = "teal"

[[palette]]
name = "teal"
color = "#008080"

[[palette]]
name = "plum"
color = "#dda0dd"
`)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Palette) != 2 {
		t.Fatalf("got %d colors, want 2", len(c.Palette))
	}
	if s, _ := c.Lookup("plum"); s.Color.String() != "#dda0dd" {
		t.Errorf("plum = %v", s.Color)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "[canvas]\ndepth = 3\n",
		"bad color":     "[canvas]\nbackground = \"white\"\n",
		"bad algorithm": "[drawing]\nline_algorithm = \"wu\"\n",
		"too few sides": "[drawing]\npolygon_sides = 2\n",
		"no steps":      "[drawing]\nbezier_steps = 0\n",
		"bad size":      "[canvas]\nwidth = -1\n",
		"missing color": "[drawing]\ncolor = \"mauve\"\n",
		"duplicate":     "[[palette]]\nname = \"a\"\ncolor = \"#000000\"\n[[palette]]\nname = \"a\"\ncolor = \"#ffffff\"\n",
		"syntax":        "[canvas\n",
	}
	for name, conf := range cases {
		if _, err := Parse(conf); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "sketch.toml")
	err := os.WriteFile(fileName, []byte("[canvas]\nheight = 100\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Load(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if c.Canvas.Height != 100 {
		t.Errorf("height %d", c.Canvas.Height)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("missing file accepted")
	}
}

func TestValidateReportsAll(t *testing.T) {
	c := Default()
	c.Canvas.Width = 0
	c.Drawing.BezierSteps = -1
	err := c.Validate()
	if err == nil {
		t.Fatal("no error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "canvas") || !strings.Contains(msg, "bezier_steps") {
		t.Errorf("incomplete error: %v", err)
	}
}
