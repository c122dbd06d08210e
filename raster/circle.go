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
)

// DrawCircle draws the circle of radius r around center.
// A radius of zero or less draws the center pixel only.
func DrawCircle(dst Surface, center image.Point, r int, c color.RGBA, filled bool, alg CircleAlgorithm) {
	if alg == CircleNaive {
		naiveCircle(dst, center, r, c, filled)
		return
	}

	if r <= 0 {
		dst.SetRGBA(center.X, center.Y, c)
		return
	}
	if !filled {
		plot(dst, MidpointCircle(center, r), c)
		return
	}
	x0, y0 := center.X, center.Y
	for x, y := range midpointOctant(r) {
		hline(dst, x0-x, x0+x, y0+y, c)
		hline(dst, x0-x, x0+x, y0-y, c)
		hline(dst, x0-y, x0+y, y0+x, c)
		hline(dst, x0-y, x0+y, y0-x, c)
	}
}

// MidpointCircle returns the pixels of the circle of radius r around
// center, computed by the integer midpoint algorithm. Each step of the
// algorithm yields the eight symmetric points, so pixels on the diagonals
// and axes may be repeated. If r is zero or negative, only the center is
// returned.
func MidpointCircle(center image.Point, r int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if r <= 0 {
			yield(center)
			return
		}
		x0, y0 := center.X, center.Y
		for x, y := range midpointOctant(r) {
			pts := [8]image.Point{
				image.Pt(x0+x, y0+y), image.Pt(x0-x, y0+y),
				image.Pt(x0+x, y0-y), image.Pt(x0-x, y0-y),
				image.Pt(x0+y, y0+x), image.Pt(x0-y, y0+x),
				image.Pt(x0+y, y0-x), image.Pt(x0-y, y0-x),
			}
			for _, p := range pts {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// midpointOctant returns the offsets (x, y) of the second octant of a
// circle of radius r > 0, starting at (0, r) and ending when x exceeds y.
func midpointOctant(r int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		x, y := 0, r
		d := 3 - 2*r
		for x <= y {
			if !yield(x, y) {
				return
			}
			if d < 0 {
				d += 4*x + 6
			} else {
				d += 4*(x-y) + 10
				y--
			}
			x++
		}
	}
}
