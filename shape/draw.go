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

package shape

import (
	"fmt"

	"seehuhn.de/go/sketch/raster"
)

// Draw renders s onto dst.
//
// Lines and Bézier curves ignore the Filled flag. Circles use their own
// algorithm; all other outlines are drawn with Bresenham lines.
func Draw(dst raster.Surface, s Shape) {
	switch s := s.(type) {
	case Line:
		raster.DrawLine(dst, s.Start, s.End, s.Color, s.Algorithm)
	case Rectangle:
		raster.DrawRectangle(dst, s.Box, s.Color, s.Filled)
	case Circle:
		raster.DrawCircle(dst, s.Center, s.Radius, s.Color, s.Filled, s.Algorithm)
	case Ellipse:
		raster.DrawEllipse(dst, s.Box, s.Color, s.Filled)
	case Triangle:
		raster.DrawPolygon(dst, s.Points[:], s.Color, s.Filled)
	case Polygon:
		raster.DrawPolygon(dst, s.points, s.Color, s.Filled)
	case Bezier:
		raster.DrawPolyline(dst, s.points, s.Color)
	default:
		panic(fmt.Sprintf("unexpected shape type %T", s))
	}
}
