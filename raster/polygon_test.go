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
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestScanlineSquare(t *testing.T) {
	square := []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}
	got := slices.Collect(ScanlineSpans(square))

	var want []Span
	for y := range 10 {
		want = append(want, Span{Y: y, X0: 0, X1: 10})
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanlineTriangle(t *testing.T) {
	tri := []vec.Vec2{pt(0, 0), pt(10, 0), pt(0, 10)}
	got := slices.Collect(ScanlineSpans(tri))
	if len(got) != 10 {
		t.Fatalf("got %d spans, want 10", len(got))
	}
	for _, s := range got {
		if s.X0 != 0 || s.X1 != 10-s.Y {
			t.Errorf("row %d: span %d..%d, want 0..%d", s.Y, s.X0, s.X1, 10-s.Y)
		}
	}
}

func TestScanlineConcave(t *testing.T) {
	// a "U" shape, open at the top between x=3 and x=7
	u := []vec.Vec2{
		pt(0, 0), pt(3, 0), pt(3, 6), pt(7, 6),
		pt(7, 0), pt(10, 0), pt(10, 10), pt(0, 10),
	}
	rows := make(map[int][]Span)
	for s := range ScanlineSpans(u) {
		rows[s.Y] = append(rows[s.Y], s)
	}
	if n := len(rows[2]); n != 2 {
		t.Errorf("row 2: %d spans, want 2", n)
	}
	if n := len(rows[8]); n != 1 {
		t.Errorf("row 8: %d spans, want 1", n)
	}
	want := []Span{{Y: 2, X0: 0, X1: 3}, {Y: 2, X0: 7, X1: 10}}
	if !slices.Equal(rows[2], want) {
		t.Errorf("row 2: got %v, want %v", rows[2], want)
	}
}

func TestScanlineDegenerate(t *testing.T) {
	cases := map[string][]vec.Vec2{
		"nil":        nil,
		"two points": {pt(0, 0), pt(5, 5)},
		"flat":       {pt(0, 3), pt(5, 3), pt(9, 3)},
	}
	for name, pts := range cases {
		if got := slices.Collect(ScanlineSpans(pts)); len(got) != 0 {
			t.Errorf("%s: got %v", name, got)
		}
	}
}

func TestDrawPolygonOutline(t *testing.T) {
	pts := []vec.Vec2{pt(5, 5), pt(40, 8), pt(30, 35), pt(8, 28)}
	dst := pixelSet{}
	DrawPolygon(dst, pts, red, false)
	for _, v := range pts {
		if _, ok := dst[pixel(v)]; !ok {
			t.Errorf("vertex %v not set", v)
		}
	}

	filled := pixelSet{}
	DrawPolygon(filled, pts, red, true)
	if len(filled) <= len(dst) {
		t.Errorf("filled polygon has %d pixels, outline has %d", len(filled), len(dst))
	}
	if _, ok := filled[image.Pt(20, 20)]; !ok {
		t.Error("interior pixel (20, 20) not set")
	}
}
