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
)

// DrawEllipse draws the axis-aligned ellipse inscribed in box.
//
// Boxes narrower or shorter than one pixel draw nothing. If one of the
// half-axes rounds down to zero, only the center pixel is drawn.
func DrawEllipse(dst Surface, box image.Rectangle, c color.RGBA, filled bool) {
	w, h := box.Dx(), box.Dy()
	if w < 1 || h < 1 {
		return
	}
	center := image.Point{X: box.Min.X + w/2, Y: box.Min.Y + h/2}
	rx, ry := w/2, h/2
	if rx <= 0 || ry <= 0 {
		dst.SetRGBA(center.X, center.Y, c)
		return
	}

	if !filled {
		plot(dst, MidpointEllipse(center, rx, ry), c)
		return
	}

	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)
	for y := center.Y - ry; y <= center.Y+ry; y++ {
		dy := float64(y - center.Y)
		term := rx2 * (1 - dy*dy/ry2)
		if term < 0 {
			continue
		}
		dx := int(math.Sqrt(term))
		hline(dst, center.X-dx, center.X+dx, y, c)
	}
}

// MidpointEllipse returns the outline pixels of the ellipse with half-axes
// rx and ry around center, using the two-region midpoint algorithm. Each
// step yields the four quadrant mirrors of the current point.
func MidpointEllipse(center image.Point, rx, ry int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if rx <= 0 || ry <= 0 {
			yield(center)
			return
		}

		xc, yc := center.X, center.Y
		quad := func(x, y int) bool {
			return yield(image.Pt(xc+x, yc+y)) &&
				yield(image.Pt(xc-x, yc+y)) &&
				yield(image.Pt(xc+x, yc-y)) &&
				yield(image.Pt(xc-x, yc-y))
		}

		rx2, ry2 := rx*rx, ry*ry
		x, y := 0, ry
		dx, dy := 0, 2*rx2*y

		// region 1: slope of magnitude less than one
		d1 := float64(ry2) - float64(rx2*ry) + 0.25*float64(rx2)
		for dx < dy {
			if !quad(x, y) {
				return
			}
			x++
			dx += 2 * ry2
			if d1 < 0 {
				d1 += float64(dx + ry2)
			} else {
				y--
				dy -= 2 * rx2
				d1 += float64(dx - dy + ry2)
			}
		}

		// region 2
		fx, fy := float64(x)+0.5, float64(y-1)
		d2 := float64(ry2)*fx*fx + float64(rx2)*fy*fy - float64(rx2)*float64(ry2)
		for y >= 0 {
			if !quad(x, y) {
				return
			}
			y--
			dy -= 2 * rx2
			if d2 > 0 {
				d2 += float64(rx2 - dy)
			} else {
				x++
				dx += 2 * ry2
				d2 += float64(dx - dy + rx2)
			}
		}
	}
}
