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

// Command genpdf generates reference images for the rasterizer tests.
//
// Every test scene is drawn as ideal vector geometry into a PDF file,
// which is then rendered to PNG using Ghostscript. Shapes are painted
// white on black, so that the gray values of the result can be compared
// with a coverage mask.
package main

import (
	"fmt"
	"image"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sketch/shape"
	"seehuhn.de/go/sketch/testcases"
)

const refDir = "testdata/reference"

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

func main() {
	if err := os.MkdirAll(refDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; the canvas origin is top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapSquare)

	for _, s := range tc.Shapes {
		drawShape(page, s)
	}

	return page.Close()
}

// drawShape paints the ideal version of s. Stroked geometry runs through
// pixel centres, filled geometry covers whole pixels.
func drawShape(page *document.Page, s shape.Shape) {
	switch s := s.(type) {
	case shape.Line:
		a, b := centre(round(s.Start)), centre(round(s.End))
		page.MoveTo(a.X, a.Y)
		page.LineTo(b.X, b.Y)
		page.Stroke()

	case shape.Rectangle:
		r := s.Box
		if r.Empty() {
			return
		}
		if s.Filled {
			page.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
			page.Fill()
		} else {
			page.Rectangle(float64(r.Min.X)+0.5, float64(r.Min.Y)+0.5, float64(r.Dx()-1), float64(r.Dy()-1))
			page.Stroke()
		}

	case shape.Circle:
		r := float64(s.Radius)
		ellipse(page, centre(s.Center), r, r, s.Filled)

	case shape.Ellipse:
		w, h := s.Box.Dx(), s.Box.Dy()
		if w < 1 || h < 1 {
			return
		}
		c := image.Pt(s.Box.Min.X+w/2, s.Box.Min.Y+h/2)
		ellipse(page, centre(c), float64(w/2), float64(h/2), s.Filled)

	case shape.Triangle:
		polygon(page, s.Points[:], s.Filled)

	case shape.Polygon:
		polygon(page, s.Points(), s.Filled)

	case shape.Bezier:
		c := s.Control()
		for i := range c {
			c[i] = c[i].Add(vec.Vec2{X: 0.5, Y: 0.5})
		}
		page.MoveTo(c[0].X, c[0].Y)
		page.CurveTo(c[1].X, c[1].Y, c[2].X, c[2].Y, c[3].X, c[3].Y)
		page.Stroke()
	}
}

// ellipse draws the ellipse with half-axes rx and ry around m. Filled
// ellipses are grown by half a pixel, so that the boundary pixels are
// covered.
func ellipse(page *document.Page, m vec.Vec2, rx, ry float64, filled bool) {
	if filled {
		rx += 0.5
		ry += 0.5
	}
	kx, ky := kappa*rx, kappa*ry
	page.MoveTo(m.X+rx, m.Y)
	page.CurveTo(m.X+rx, m.Y+ky, m.X+kx, m.Y+ry, m.X, m.Y+ry)
	page.CurveTo(m.X-kx, m.Y+ry, m.X-rx, m.Y+ky, m.X-rx, m.Y)
	page.CurveTo(m.X-rx, m.Y-ky, m.X-kx, m.Y-ry, m.X, m.Y-ry)
	page.CurveTo(m.X+kx, m.Y-ry, m.X+rx, m.Y-ky, m.X+rx, m.Y)
	page.ClosePath()
	if filled {
		page.Fill()
	} else {
		page.Stroke()
	}
}

func polygon(page *document.Page, pts []vec.Vec2, filled bool) {
	if filled {
		page.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.ClosePath()
		page.FillEvenOdd()
		return
	}
	a := centre(round(pts[0]))
	page.MoveTo(a.X, a.Y)
	for _, p := range pts[1:] {
		b := centre(round(p))
		page.LineTo(b.X, b.Y)
	}
	page.ClosePath()
	page.Stroke()
}

func round(v vec.Vec2) image.Point {
	return image.Pt(int(v.X+0.5), int(v.Y+0.5))
}

func centre(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
