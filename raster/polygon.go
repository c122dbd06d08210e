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
	"image/color"
	"iter"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Span is a horizontal run of pixels from X0 to X1 (inclusive) in row Y.
type Span struct {
	Y, X0, X1 int
}

// DrawPolygon draws the closed polygon with vertices pts.
// Outlines are made of Bresenham lines; filled polygons use [ScanlineSpans].
// Fewer than two vertices draw nothing.
func DrawPolygon(dst Surface, pts []vec.Vec2, c color.RGBA, filled bool) {
	if len(pts) < 2 {
		return
	}
	if filled {
		for s := range ScanlineSpans(pts) {
			hline(dst, s.X0, s.X1, s.Y, c)
		}
		return
	}
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		plot(dst, Bresenham(a, b), c)
	}
}

// ScanlineSpans returns the interior spans of the polygon pts under the
// even-odd rule.
//
// Row y is intersected with every non-horizontal edge whose half-open
// y-range [min, max) contains y. The intersections are truncated to
// integers, sorted, and paired up left to right. If the number of
// intersections in a row is odd, the last one is ignored.
func ScanlineSpans(pts []vec.Vec2) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if len(pts) < 3 {
			return
		}
		minY, maxY := pts[0].Y, pts[0].Y
		for _, p := range pts[1:] {
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}

		var xs []int
		for y := int(minY); y <= int(maxY); y++ {
			fy := float64(y)
			xs = xs[:0]
			for i, a := range pts {
				b := pts[(i+1)%len(pts)]
				if a.Y == b.Y {
					continue
				}
				if (a.Y <= fy && fy < b.Y) || (b.Y <= fy && fy < a.Y) {
					x := a.X + (fy-a.Y)*(b.X-a.X)/(b.Y-a.Y)
					xs = append(xs, int(x))
				}
			}
			slices.Sort(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				if !yield(Span{Y: y, X0: xs[i], X1: xs[i+1]}) {
					return
				}
			}
		}
	}
}
