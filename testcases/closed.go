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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/shape"
)

var rectangleCases = []TestCase{
	{
		Name:   "outline",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewRectangle(pt(10, 12), pt(54, 50), ink)},
	},
	{
		Name:   "filled",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewRectangle(pt(54, 50), pt(10, 12), filled)},
	},
	{
		Name:   "thin",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.NewRectangle(pt(5, 5), pt(59, 6), ink),
			shape.NewRectangle(pt(5, 20), pt(6, 59), ink),
			shape.NewRectangle(pt(20, 20), pt(21, 21), filled),
		},
	},
}

var circleCases = []TestCase{
	{
		Name:   "outline_bresenham",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewCircle(pt(32, 32), pt(32, 7), ink, raster.CircleBresenham)},
	},
	{
		Name:   "outline_naive",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewCircle(pt(32, 32), pt(32, 7), ink, raster.CircleNaive)},
	},
	{
		Name:   "filled_bresenham",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewCircle(pt(32, 32), pt(50, 45), filled, raster.CircleBresenham)},
	},
	{
		Name:   "filled_naive",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewCircle(pt(32, 32), pt(50, 45), filled, raster.CircleNaive)},
	},
	{
		Name:   "small",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{
			shape.NewCircle(pt(8, 8), pt(9, 8), ink, raster.CircleBresenham),
			shape.NewCircle(pt(20, 8), pt(22, 8), ink, raster.CircleBresenham),
			shape.NewCircle(pt(8, 20), pt(11, 20), ink, raster.CircleNaive),
			shape.NewCircle(pt(20, 20), pt(20, 20), ink, raster.CircleNaive),
		},
	},
	{
		Name:   "concentric",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.NewCircle(pt(32, 32), pt(32, 4), ink, raster.CircleBresenham),
			shape.NewCircle(pt(32, 32), pt(32, 12), ink, raster.CircleBresenham),
			shape.NewCircle(pt(32, 32), pt(32, 20), ink, raster.CircleBresenham),
			shape.NewCircle(pt(32, 32), pt(32, 28), ink, raster.CircleBresenham),
		},
	},
}

var ellipseCases = []TestCase{
	{
		Name:   "wide",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewEllipse(pt(4, 20), pt(60, 44), ink)},
	},
	{
		Name:   "tall",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewEllipse(pt(20, 4), pt(44, 60), ink)},
	},
	{
		Name:   "filled",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewEllipse(pt(60, 50), pt(6, 14), filled)},
	},
	{
		Name:   "round",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.NewEllipse(pt(7, 7), pt(57, 57), ink)},
	},
	{
		Name:   "flat",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.NewEllipse(pt(5, 10), pt(59, 12), ink),
			shape.NewEllipse(pt(5, 30), pt(59, 31), filled),
		},
	},
}

var polygonCases = []TestCase{
	{
		Name:   "triangle_outline",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{must(shape.NewTriangle([]vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}, ink))},
	},
	{
		Name:   "triangle_filled",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{must(shape.NewTriangle([]vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}, filled))},
	},
	{
		Name:   "square_filled",
		Width:  16,
		Height: 16,
		Shapes: []shape.Shape{must(shape.NewPolygon([]vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}, filled))},
	},
	{
		Name:   "pentagon_outline",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{must(shape.NewPolygon(regular(32, 32, 26, 5), ink))},
	},
	{
		Name:   "octagon_filled",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{must(shape.NewPolygon(regular(32, 32, 26, 8), filled))},
	},
	{
		Name:   "star_filled",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{must(shape.NewPolygon(star(32, 32, 25), filled))},
	},
	{
		Name:   "concave_filled",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{must(shape.NewPolygon([]vec.Vec2{
			pt(6, 6), pt(26, 6), pt(26, 40), pt(38, 40),
			pt(38, 6), pt(58, 6), pt(58, 58), pt(6, 58),
		}, filled))},
	},
}

// regular returns the vertices of a regular polygon with n corners,
// the first of which points up.
func regular(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}

// star returns a self-intersecting five-pointed star.
func star(cx, cy, r float64) []vec.Vec2 {
	corners := regular(cx, cy, r, 5)
	order := []int{0, 2, 4, 1, 3}
	pts := make([]vec.Vec2, len(order))
	for i, k := range order {
		pts[i] = corners[k]
	}
	return pts
}
