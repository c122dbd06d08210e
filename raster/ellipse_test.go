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
	"testing"
)

func TestMidpointEllipseExtremes(t *testing.T) {
	cases := []struct{ rx, ry int }{
		{10, 5}, {5, 10}, {5, 5}, {1, 1}, {3, 7}, {20, 3}, {1, 8},
	}
	for _, tc := range cases {
		pts := make(map[image.Point]bool)
		maxX, maxY := 0, 0
		for p := range MidpointEllipse(image.Point{}, tc.rx, tc.ry) {
			pts[p] = true
			maxX = max(maxX, abs(p.X))
			maxY = max(maxY, abs(p.Y))
		}
		if maxX != tc.rx || maxY != tc.ry {
			t.Errorf("rx=%d ry=%d: extent %d×%d", tc.rx, tc.ry, maxX, maxY)
		}
		for _, p := range []image.Point{{tc.rx, 0}, {-tc.rx, 0}, {0, tc.ry}, {0, -tc.ry}} {
			if !pts[p] {
				t.Errorf("rx=%d ry=%d: vertex %v missing", tc.rx, tc.ry, p)
			}
		}
		for p := range pts {
			if !pts[image.Pt(-p.X, p.Y)] || !pts[image.Pt(p.X, -p.Y)] {
				t.Errorf("rx=%d ry=%d: mirror images of %v missing", tc.rx, tc.ry, p)
			}
		}
	}
}

func TestDrawEllipseDegenerate(t *testing.T) {
	cases := []struct {
		name string
		box  image.Rectangle
		want []image.Point
	}{
		{"empty", image.Rect(5, 5, 5, 20), nil},
		{"flat", image.Rect(5, 5, 30, 5), nil},
		{"single", image.Rect(5, 5, 6, 6), []image.Point{{5, 5}}},
		{"thin", image.Rect(5, 5, 6, 20), []image.Point{{5, 12}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, filled := range []bool{false, true} {
				dst := pixelSet{}
				DrawEllipse(dst, tc.box, red, filled)
				if len(dst) != len(tc.want) {
					t.Fatalf("filled=%t: got %d pixels, want %d", filled, len(dst), len(tc.want))
				}
				for _, p := range tc.want {
					if _, ok := dst[p]; !ok {
						t.Errorf("filled=%t: pixel %v not set", filled, p)
					}
				}
			}
		})
	}
}

func TestFilledEllipseRows(t *testing.T) {
	box := image.Rect(10, 20, 51, 41) // center (30, 30), rx = 20, ry = 10
	dst := pixelSet{}
	DrawEllipse(dst, box, red, true)

	rows := make(map[int][2]int)
	for p := range dst {
		r, ok := rows[p.Y]
		if !ok {
			r = [2]int{p.X, p.X}
		}
		rows[p.Y] = [2]int{min(r[0], p.X), max(r[1], p.X)}
	}
	if len(rows) != 21 {
		t.Errorf("got %d rows, want 21", len(rows))
	}
	if r := rows[30]; r != [2]int{10, 50} {
		t.Errorf("middle row spans %v, want [10 50]", r)
	}
	for y, r := range rows {
		if r[0]+r[1] != 60 {
			t.Errorf("row %d spans %v, not centred on x=30", y, r)
		}
		if n := r[1] - r[0] + 1; n != countRow(dst, y) {
			t.Errorf("row %d has gaps", y)
		}
	}
}

func countRow(s pixelSet, y int) int {
	n := 0
	for p := range s {
		if p.Y == y {
			n++
		}
	}
	return n
}
