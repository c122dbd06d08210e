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

// Command export writes the test scenes to testdata/testcases.json, for
// use by external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/shape"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Kind      string      `json:"kind"`
	Color     string      `json:"color"`
	Filled    bool        `json:"filled,omitempty"`
	Algorithm string      `json:"algorithm,omitempty"`
	Points    [][]float64 `json:"points"`
	Radius    int         `json:"radius,omitempty"`
	Steps     int         `json:"steps,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, s := range tc.Shapes {
		jtc.Shapes = append(jtc.Shapes, shapeToJSON(s))
	}
	return jtc
}

func shapeToJSON(s shape.Shape) jsonShape {
	js := jsonShape{Kind: s.Kind().String()}

	var paint shape.Paint
	switch s := s.(type) {
	case shape.Line:
		paint = s.Paint
		js.Algorithm = s.Algorithm.String()
		js.Points = points(s.Start, s.End)
	case shape.Rectangle:
		paint = s.Paint
		js.Points = box(s.Box.Min.X, s.Box.Min.Y, s.Box.Max.X, s.Box.Max.Y)
	case shape.Circle:
		paint = s.Paint
		js.Algorithm = s.Algorithm.String()
		js.Points = [][]float64{{float64(s.Center.X), float64(s.Center.Y)}}
		js.Radius = s.Radius
	case shape.Ellipse:
		paint = s.Paint
		js.Points = box(s.Box.Min.X, s.Box.Min.Y, s.Box.Max.X, s.Box.Max.Y)
	case shape.Triangle:
		paint = s.Paint
		js.Points = points(s.Points[:]...)
	case shape.Polygon:
		paint = s.Paint
		js.Points = points(s.Points()...)
	case shape.Bezier:
		paint = s.Paint
		ctrl := s.Control()
		js.Points = points(ctrl[:]...)
		js.Steps = s.Steps()
	}

	c := paint.Color
	js.Color = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	js.Filled = paint.Filled
	return js
}

func points(pts ...vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}

func box(x0, y0, x1, y1 int) [][]float64 {
	return [][]float64{
		{float64(x0), float64(y0)},
		{float64(x1), float64(y1)},
	}
}
