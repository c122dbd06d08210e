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
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
)

var (
	blue  = Paint{Color: color.RGBA{B: 255, A: 255}}
	green = Paint{Color: color.RGBA{G: 255, A: 255}, Filled: true}
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestConstructorErrors(t *testing.T) {
	four := []vec.Vec2{pt(1, 1), pt(9, 2), pt(5, 8), pt(2, 6)}

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"triangle/2", second(NewTriangle(four[:2], blue)), ErrPointCount},
		{"triangle/4", second(NewTriangle(four, blue)), ErrPointCount},
		{"triangle/3", second(NewTriangle(four[:3], blue)), nil},
		{"polygon/2", second(NewPolygon(four[:2], blue)), ErrPointCount},
		{"polygon/3", second(NewPolygon(four[:3], blue)), nil},
		{"bezier/3", second(NewBezier(four[:3], blue, 20)), ErrPointCount},
		{"bezier/steps", second(NewBezier(four, blue, 0)), ErrSteps},
		{"bezier/ok", second(NewBezier(four, blue, 1)), nil},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.want) || (tc.want == nil) != (tc.err == nil) {
			t.Errorf("%s: got error %v, want %v", tc.name, tc.err, tc.want)
		}
	}
}

func second[T any](_ T, err error) error {
	return err
}

func TestTwoPointConstructors(t *testing.T) {
	r := NewRectangle(pt(40.6, 10.2), pt(12.9, 30.7), blue)
	if want := image.Rect(12, 10, 40, 30); r.Box != want {
		t.Errorf("rectangle box %v, want %v", r.Box, want)
	}

	e := NewEllipse(pt(5, 50), pt(25, 10), blue)
	if e.Box.Dx() != 20 || e.Box.Dy() != 40 {
		t.Errorf("ellipse box %v", e.Box)
	}

	c := NewCircle(pt(10.8, 20.3), pt(13.8, 24.6), blue, raster.CircleBresenham)
	if c.Center != image.Pt(10, 20) || c.Radius != 5 {
		t.Errorf("circle center %v radius %d", c.Center, c.Radius)
	}
}

func TestPointsAreCopied(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(10, 0), pt(5, 9)}
	p, err := NewPolygon(pts, blue)
	if err != nil {
		t.Fatal(err)
	}
	pts[0] = pt(100, 100)
	p.Points()[1] = pt(-1, -1)
	if got := p.Points(); got[0] != pt(0, 0) || got[1] != pt(10, 0) {
		t.Errorf("polygon vertices changed: %v", got)
	}

	ctrl := []vec.Vec2{pt(0, 0), pt(10, 30), pt(40, 30), pt(50, 0)}
	b, err := NewBezier(ctrl, blue, DefaultBezierSteps)
	if err != nil {
		t.Fatal(err)
	}
	samples := b.Points()
	if len(samples) != DefaultBezierSteps+1 {
		t.Fatalf("got %d samples", len(samples))
	}
	samples[0] = image.Pt(999, 999)
	if b.Points()[0] != image.Pt(0, 0) {
		t.Error("bezier samples changed")
	}
	if b.Steps() != DefaultBezierSteps || b.Control()[3] != pt(50, 0) {
		t.Errorf("steps %d, control %v", b.Steps(), b.Control())
	}
}

func allShapes(t *testing.T) []Shape {
	t.Helper()
	tri, err := NewTriangle([]vec.Vec2{pt(10, 60), pt(40, 15), pt(70, 70)}, green)
	if err != nil {
		t.Fatal(err)
	}
	poly, err := NewPolygon([]vec.Vec2{pt(5, 5), pt(60, 12), pt(45, 50), pt(20, 70), pt(8, 30)}, blue)
	if err != nil {
		t.Fatal(err)
	}
	curve, err := NewBezier([]vec.Vec2{pt(3, 70), pt(20, 0), pt(60, 90), pt(77, 4)}, blue, 20)
	if err != nil {
		t.Fatal(err)
	}
	return []Shape{
		NewLine(pt(2, 3), pt(70, 41), blue, raster.LineNaive),
		NewLine(pt(2, 3), pt(70, 41), blue, raster.LineDDA),
		NewLine(pt(70, 3), pt(20, 77), blue, raster.LineBresenham),
		NewRectangle(pt(10, 10), pt(50, 30), blue),
		NewRectangle(pt(10, 10), pt(50, 30), green),
		NewCircle(pt(40, 40), pt(60, 50), blue, raster.CircleNaive),
		NewCircle(pt(40, 40), pt(60, 50), green, raster.CircleNaive),
		NewCircle(pt(40, 40), pt(60, 50), blue, raster.CircleBresenham),
		NewCircle(pt(40, 40), pt(60, 50), green, raster.CircleBresenham),
		NewEllipse(pt(5, 20), pt(75, 60), blue),
		NewEllipse(pt(5, 20), pt(75, 60), green),
		tri,
		poly,
		curve,
	}
}

func TestDrawDeterministic(t *testing.T) {
	for _, s := range allShapes(t) {
		a := image.NewRGBA(image.Rect(0, 0, 80, 80))
		b := image.NewRGBA(image.Rect(0, 0, 80, 80))
		Draw(a, s)
		Draw(b, s)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("%s: two renderings differ", s.Kind())
		}
		Draw(a, s)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("%s: drawing twice changed the image", s.Kind())
		}
	}
}

func TestDrawWithinBounds(t *testing.T) {
	for _, s := range allShapes(t) {
		img := image.NewRGBA(image.Rect(-20, -20, 120, 120))
		Draw(img, s)
		bounds := Bounds(s)
		n := 0
		for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
			for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
				if img.RGBAAt(x, y).A == 0 {
					continue
				}
				n++
				if !image.Pt(x, y).In(bounds) {
					t.Errorf("%s: pixel (%d, %d) outside %v", s.Kind(), x, y, bounds)
				}
			}
		}
		if n == 0 {
			t.Errorf("%s: nothing drawn", s.Kind())
		}
	}
}

func TestDrawEmptyRectangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Draw(img, NewRectangle(pt(5, 5), pt(5, 15), green))
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("empty rectangle drew pixels")
		}
	}
}

func TestZeroValues(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for _, s := range []Shape{Polygon{}, Bezier{}} {
		if b := Bounds(s); !b.Empty() {
			t.Errorf("%s: bounds %v, want empty", s.Kind(), b)
		}
		Draw(img, s)
	}
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("zero value shape drew pixels")
		}
	}
}

type bogus struct{}

func (bogus) Kind() Kind { return Kind(99) }
func (bogus) isShape()   {}

func TestDrawUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for unknown shape")
		}
	}()
	Draw(image.NewRGBA(image.Rect(0, 0, 1, 1)), bogus{})
}
