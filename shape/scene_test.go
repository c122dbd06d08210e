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
	"image"
	"testing"

	"seehuhn.de/go/sketch/raster"
)

func TestSceneOrder(t *testing.T) {
	var sc Scene
	sc.Add(NewRectangle(pt(0, 0), pt(10, 10), green))
	sc.Add(NewLine(pt(0, 5), pt(9, 5), blue, raster.LineBresenham))
	if sc.Len() != 2 {
		t.Fatalf("got %d shapes", sc.Len())
	}

	var kinds []Kind
	for i, s := range sc.All() {
		if i != len(kinds) {
			t.Errorf("index %d, want %d", i, len(kinds))
		}
		kinds = append(kinds, s.Kind())
	}
	if len(kinds) != 2 || kinds[0] != KindRectangle || kinds[1] != KindLine {
		t.Errorf("got kinds %v", kinds)
	}

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	sc.Draw(img)
	if c := img.RGBAAt(4, 5); c != blue.Color {
		t.Errorf("line pixel has color %v, want %v", c, blue.Color)
	}
	if c := img.RGBAAt(4, 4); c != green.Color {
		t.Errorf("rectangle pixel has color %v, want %v", c, green.Color)
	}

	sc.Clear()
	if sc.Len() != 0 {
		t.Errorf("%d shapes after Clear", sc.Len())
	}
	for range sc.All() {
		t.Error("cleared scene yields shapes")
	}
}
