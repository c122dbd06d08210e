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

// Package testcases contains named scenes which exercise the rasterizers.
//
// The scenes are used by the tests of the main package, by the
// sketch-render command, and by the tools in the export and genpdf
// subdirectories.
package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/shape"
)

// TestCase is a scene to be rasterized.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Shapes []shape.Shape
}

// Render draws the scene onto a new image filled with bg.
func (tc TestCase) Render(bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	for _, s := range tc.Shapes {
		shape.Draw(img, s)
	}
	return img
}

// Coverage rasterizes the scene into buf, a gray-scale buffer in
// row-major order with the given stride. Every pixel written by one of
// the shapes is set to 255; other bytes are left unchanged.
func (tc TestCase) Coverage(buf []byte, stride int) {
	dst := &coverage{buf: buf, w: tc.Width, h: tc.Height, stride: stride}
	for _, s := range tc.Shapes {
		shape.Draw(dst, s)
	}
}

// coverage is a raster.Surface which records pixels in a byte mask.
type coverage struct {
	buf    []byte
	w, h   int
	stride int
}

func (c *coverage) SetRGBA(x, y int, _ color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.buf[y*c.stride+x] = 255
}

// ink is the color used by all test scenes: white on black gives the
// same values as a coverage mask.
var ink = shape.Paint{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}

var filled = shape.Paint{Color: ink.Color, Filled: true}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// must panics if a shape could not be constructed.
// All test scenes are fixed, so this indicates a programming error.
func must[S shape.Shape](s S, err error) shape.Shape {
	if err != nil {
		panic(err)
	}
	return s
}
