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

var testCtrl = [4]vec.Vec2{pt(10.7, 20.2), pt(30, 80), pt(90, -10), pt(120.9, 40.5)}

func TestCubicBezierSteps(t *testing.T) {
	p0 := image.Pt(10, 20)
	p3 := image.Pt(120, 40)

	got := CubicBezier(testCtrl, 1)
	if want := []image.Point{p0, p3}; !slices.Equal(got, want) {
		t.Errorf("steps=1: got %v, want %v", got, want)
	}

	got = CubicBezier(testCtrl, 20)
	if len(got) != 21 {
		t.Fatalf("steps=20: got %d points, want 21", len(got))
	}
	if got[0] != p0 || got[20] != p3 {
		t.Errorf("steps=20: run %v..%v, want %v..%v", got[0], got[20], p0, p3)
	}

	for _, steps := range []int{0, -5} {
		if got := CubicBezier(testCtrl, steps); len(got) != 2 {
			t.Errorf("steps=%d: got %d points, want 2", steps, len(got))
		}
	}
}

func TestCubicBezierStraight(t *testing.T) {
	ctrl := [4]vec.Vec2{pt(0, 5), pt(8, 5), pt(16, 5), pt(24, 5)}
	for i, p := range CubicBezier(ctrl, 4) {
		if want := image.Pt(6*i, 5); p != want {
			t.Errorf("sample %d: got %v, want %v", i, p, want)
		}
	}
}

func TestDrawPolyline(t *testing.T) {
	pts := CubicBezier(testCtrl, 20)
	dst := pixelSet{}
	DrawPolyline(dst, pts, red)
	for _, p := range pts {
		if _, ok := dst[p]; !ok {
			t.Errorf("sample %v not set", p)
		}
	}

	dst = pixelSet{}
	DrawPolyline(dst, pts[:1], red)
	if len(dst) != 1 {
		t.Errorf("single point: %d pixels set", len(dst))
	}
}
