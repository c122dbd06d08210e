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

package raster

import (
	"image"
	"image/color"
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

// DrawLine draws the segment from a to b using the given algorithm.
// Unknown algorithms fall back to Bresenham.
func DrawLine(dst Surface, a, b vec.Vec2, c color.RGBA, alg LineAlgorithm) {
	switch alg {
	case LineNaive:
		naiveLine(dst, a, b, c)
	case LineDDA:
		plot(dst, DDA(a, b), c)
	default:
		plot(dst, Bresenham(a, b), c)
	}
}

// DDA returns the pixels of the segment from a to b, computed by a digital
// differential analyzer. The number of steps is the length of the longer
// axis, rounded to an integer. The first pixel is a and the last pixel is
// b, both rounded to the nearest pixel.
func DDA(a, b vec.Vec2) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx := b.X - a.X
		dy := b.Y - a.Y
		steps := int(math.Round(max(math.Abs(dx), math.Abs(dy))))
		if steps == 0 {
			pa, pb := pixel(a), pixel(b)
			if yield(pa) && pb != pa {
				yield(pb)
			}
			return
		}

		xInc := dx / float64(steps)
		yInc := dy / float64(steps)
		x, y := a.X, a.Y
		for range steps {
			if !yield(pixel(vec.Vec2{X: x, Y: y})) {
				return
			}
			x += xInc
			y += yInc
		}
		// Emit the end point exactly, so that accumulated rounding
		// errors cannot move it.
		yield(pixel(b))
	}
}

// Bresenham returns the pixels of the segment from a to b, computed with
// integer arithmetic only. The end points are rounded to the nearest
// pixel. The sequence has one pixel per step along the major axis,
// including both end points.
func Bresenham(a, b vec.Vec2) iter.Seq[image.Point] {
	pa, pb := pixel(a), pixel(b)
	return bresenham(pa.X, pa.Y, pb.X, pb.Y)
}

func bresenham(x1, y1, x2, y2 int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx, dy := abs(x2-x1), abs(y2-y1)
		sx, sy := 1, 1
		if x2 < x1 {
			sx = -1
		}
		if y2 < y1 {
			sy = -1
		}

		steep := dy > dx
		if steep {
			x1, y1, x2, y2 = y1, x1, y2, x2
			dx, dy = dy, dx
			sx, sy = sy, sx
		}

		e := dx / 2
		y := y1
		for x := x1; ; x += sx {
			p := image.Point{X: x, Y: y}
			if steep {
				p = image.Point{X: y, Y: x}
			}
			if !yield(p) || x == x2 {
				return
			}
			e -= dy
			if e < 0 {
				y += sy
				e += dx
			}
		}
	}
}

// hline draws the horizontal run from x1 to x2 in row y.
func hline(dst Surface, x1, x2, y int, c color.RGBA) {
	plot(dst, bresenham(x1, y, x2, y), c)
}
