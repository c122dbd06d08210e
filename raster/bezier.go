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

	"seehuhn.de/go/geom/vec"
)

// CubicBezier samples the cubic Bézier curve with control points ctrl at
// steps+1 evenly spaced parameter values t = i/steps, including both end
// points. The samples are truncated to integer coordinates.
// Values of steps below 1 are treated as 1.
func CubicBezier(ctrl [4]vec.Vec2, steps int) []image.Point {
	steps = max(steps, 1)
	res := make([]image.Point, steps+1)
	for i := range res {
		t := float64(i) / float64(steps)
		s := 1 - t
		p := ctrl[0].Mul(s * s * s).
			Add(ctrl[1].Mul(3 * s * s * t)).
			Add(ctrl[2].Mul(3 * s * t * t)).
			Add(ctrl[3].Mul(t * t * t))
		res[i] = truncate(p)
	}
	return res
}

// DrawPolyline connects consecutive points with Bresenham lines.
// A single point is drawn as one pixel.
func DrawPolyline(dst Surface, pts []image.Point, c color.RGBA) {
	switch len(pts) {
	case 0:
		return
	case 1:
		dst.SetRGBA(pts[0].X, pts[0].Y, c)
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		plot(dst, bresenham(a.X, a.Y, b.X, b.Y), c)
	}
}
