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

// Package raster converts geometric primitives into sets of pixels.
//
// All functions in this package are stateless. They write to a [Surface]
// which is passed in by the caller and is never retained after the call
// returns. The rasterizers never read pixels back, and they do not clip:
// keeping the coordinates inside the surface is the job of the caller.
// [*image.RGBA] can be used as a Surface directly; it silently ignores
// writes outside its bounds.
package raster

import (
	"image"
	"image/color"
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Surface is a pixel buffer which the rasterizers write to.
type Surface interface {
	SetRGBA(x, y int, c color.RGBA)
}

var _ Surface = (*image.RGBA)(nil)

// plot writes every pixel of the sequence to dst.
func plot(dst Surface, pixels iter.Seq[image.Point], c color.RGBA) {
	for p := range pixels {
		dst.SetRGBA(p.X, p.Y, c)
	}
}

// pixel returns the pixel nearest to the user-space point v.
func pixel(v vec.Vec2) image.Point {
	return image.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// truncate converts v to integer coordinates by truncation toward zero.
func truncate(v vec.Vec2) image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// BoxFromCorners returns the pixel rectangle spanned by two opposite
// corners. The corners are floored to pixel coordinates and the result is
// canonical, so that its width and height are never negative.
func BoxFromCorners(p1, p2 vec.Vec2) image.Rectangle {
	return image.Rect(
		int(math.Floor(p1.X)), int(math.Floor(p1.Y)),
		int(math.Floor(p2.X)), int(math.Floor(p2.Y)),
	)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
