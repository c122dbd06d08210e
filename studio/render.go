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

package studio

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/shape"
)

const (
	markerRadius  = 5
	counterMargin = 10
	guideLighten  = 100
)

var (
	labelColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	counterColor = color.RGBA{A: 255}
)

// Render draws the canvas into dst: the background, all shapes of the
// scene, the preview of a drag in progress, and the construction guides
// of a multi-point shape in progress.
func (s *State) Render(dst *image.RGBA) {
	draw.Draw(dst, dst.Rect, image.NewUniform(s.background), image.Point{}, draw.Src)
	s.scene.Draw(dst)

	if p := s.Preview(); p != nil {
		shape.Draw(dst, p)
	}
	if s.tool.IsMultiPoint() && len(s.points) > 0 {
		s.renderGuides(dst)
	}
}

func (s *State) renderGuides(dst *image.RGBA) {
	pts := s.points

	switch s.tool {
	case CurveTool:
		guide := lighten(s.color, guideLighten)
		for i := 1; i < len(pts); i++ {
			raster.DrawLine(dst, pts[i-1], pts[i], guide, raster.LineNaive)
		}
	case TriangleTool, PolygonTool:
		for i := 1; i < len(pts); i++ {
			raster.DrawLine(dst, pts[i-1], pts[i], s.color, raster.LineNaive)
		}
		if len(pts) >= 3 {
			raster.DrawLine(dst, pts[len(pts)-1], pts[0], s.color, raster.LineNaive)
		}
	}

	face := basicfont.Face7x13
	for i, p := range pts {
		center := image.Pt(int(p.X), int(p.Y))
		raster.DrawCircle(dst, center, markerRadius, s.color, true, raster.CircleBresenham)
		drawText(dst, face, strconv.Itoa(i+1), center, labelColor, true)
	}

	if s.tool == PolygonTool {
		msg := fmt.Sprintf("point %d of %d", len(pts), s.sides)
		w := font.MeasureString(face, msg).Ceil()
		at := image.Pt(dst.Rect.Max.X-counterMargin-w, dst.Rect.Min.Y+counterMargin)
		drawText(dst, face, msg, at, counterColor, false)
	}
}

// drawText draws msg with the given face. If centered is true, the text is
// centred on at; otherwise at is the top-left corner of the text.
func drawText(dst *image.RGBA, face font.Face, msg string, at image.Point, c color.RGBA, centered bool) {
	m := face.Metrics()
	dot := fixed.P(at.X, at.Y).Add(fixed.Point26_6{Y: m.Ascent})
	if centered {
		w := font.MeasureString(face, msg)
		h := m.Ascent + m.Descent
		dot = dot.Sub(fixed.Point26_6{X: w / 2, Y: h / 2})
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(msg)
}

// lighten adds delta to every color channel, saturating at 255.
func lighten(c color.RGBA, delta int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(min(int(v)+delta, 255))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
