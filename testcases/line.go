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

package testcases

import (
	"math"

	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/shape"
)

var lineCases = []TestCase{
	{
		Name:   "horizontal_dda",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewLine(pt(5, 10), pt(58, 10), ink, raster.LineDDA)},
	},
	{
		Name:   "vertical_bresenham",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewLine(pt(32, 58), pt(32, 5), ink, raster.LineBresenham)},
	},
	{
		Name:   "diagonal_naive",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewLine(pt(5, 5), pt(58, 58), ink, raster.LineNaive)},
	},
	{
		Name:   "shallow_dda",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewLine(pt(4, 50), pt(60, 31), ink, raster.LineDDA)},
	},
	{
		Name:   "shallow_bresenham",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewLine(pt(4, 50), pt(60, 31), ink, raster.LineBresenham)},
	},
	{
		Name:   "shallow_naive",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewLine(pt(4, 50), pt(60, 31), ink, raster.LineNaive)},
	},
	{
		Name:   "steep_bresenham",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewLine(pt(40, 60), pt(22, 3), ink, raster.LineBresenham)},
	},
	{
		Name:   "subpixel_dda",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewLine(pt(3.4, 7.6), pt(59.5, 40.49), ink, raster.LineDDA)},
	},
	{
		Name:   "point",
		Width:  16,
		Height: 16,
		Shapes: []shape.Shape{
			shape.NewLine(pt(3, 3), pt(3, 3), ink, raster.LineDDA),
			shape.NewLine(pt(8, 8), pt(8.2, 7.9), ink, raster.LineBresenham),
			shape.NewLine(pt(12, 12), pt(12, 12), ink, raster.LineNaive),
		},
	},
	{
		Name:   "fan_bresenham",
		Width:  64,
		Height: 64,
		Shapes: fan(32, 32, 28, 16, raster.LineBresenham),
	},
	{
		Name:   "fan_naive",
		Width:  64,
		Height: 64,
		Shapes: fan(32, 32, 28, 16, raster.LineNaive),
	},
}

// fan returns n lines radiating from (cx, cy) in all directions.
func fan(cx, cy, r float64, n int, alg raster.LineAlgorithm) []shape.Shape {
	res := make([]shape.Shape, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		end := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		res[i] = shape.NewLine(pt(cx, cy), end, ink, alg)
	}
	return res
}
