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
)

// DrawRectangle draws the pixels of box, which must be canonical.
// The outline consists of the first and last row and column of box.
// An empty box draws nothing.
func DrawRectangle(dst Surface, box image.Rectangle, c color.RGBA, filled bool) {
	if box.Empty() {
		return
	}
	x0, y0 := box.Min.X, box.Min.Y
	x1, y1 := box.Max.X-1, box.Max.Y-1

	if filled {
		for y := y0; y <= y1; y++ {
			hline(dst, x0, x1, y, c)
		}
		return
	}
	hline(dst, x0, x1, y0, c)
	plot(dst, bresenham(x1, y0, x1, y1), c)
	hline(dst, x0, x1, y1, c)
	plot(dst, bresenham(x0, y0, x0, y1), c)
}
