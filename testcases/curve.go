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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/shape"
)

var curveCases = []TestCase{
	{
		Name:   "cubic",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{bezier(20, pt(5, 55), pt(15, 5), pt(50, 5), pt(58, 55))},
	},
	{
		Name:   "scurve",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{bezier(20, pt(5, 32), pt(25, -10), pt(39, 74), pt(59, 32))},
	},
	{
		Name:   "loop",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{bezier(40, pt(10, 50), pt(70, 5), pt(-6, 5), pt(54, 50))},
	},
	{
		Name:   "cusp",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{bezier(20, pt(8, 50), pt(56, 10), pt(8, 10), pt(56, 50))},
	},
	{
		Name:   "minimal_steps",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{bezier(1, pt(5, 55), pt(15, 5), pt(50, 5), pt(58, 55))},
	},
	{
		Name:   "few_steps",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{bezier(4, pt(5, 55), pt(15, 5), pt(50, 5), pt(58, 55))},
	},
	{
		Name:   "degenerate",
		Width:  16,
		Height: 16,
		Shapes: []shape.Shape{bezier(20, pt(8, 8), pt(8, 8), pt(8, 8), pt(8, 8))},
	},
}

var sceneCases = []TestCase{
	{
		Name:   "house",
		Width:  96,
		Height: 96,
		Shapes: []shape.Shape{
			shape.NewRectangle(pt(20, 45), pt(76, 90), ink),
			must(shape.NewTriangle([]vec.Vec2{pt(14, 46), pt(48, 10), pt(82, 46)}, ink)),
			shape.NewRectangle(pt(42, 64), pt(54, 90), filled),
			shape.NewCircle(pt(48, 32), pt(48, 26), ink, raster.CircleBresenham),
			shape.NewEllipse(pt(26, 54), pt(38, 62), filled),
			shape.NewEllipse(pt(58, 54), pt(70, 62), filled),
			shape.NewLine(pt(0, 90), pt(95, 90), ink, raster.LineBresenham),
			bezier(20, pt(60, 20), pt(66, 6), pt(80, 14), pt(90, 4)),
		},
	},
	{
		Name:   "overlap",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.NewCircle(pt(24, 24), pt(24, 6), filled, raster.CircleNaive),
			shape.NewCircle(pt(40, 40), pt(40, 22), filled, raster.CircleBresenham),
			must(shape.NewPolygon(regular(32, 32, 30, 6), ink)),
		},
	},
}

func bezier(steps int, p0, p1, p2, p3 vec.Vec2) shape.Shape {
	return must(shape.NewBezier([]vec.Vec2{p0, p1, p2, p3}, ink, steps))
}
