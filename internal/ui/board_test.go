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

package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/studio"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	test.NewTempApp(t)

	cfg := config.Default()
	cfg.Canvas.Width, cfg.Canvas.Height = 100, 50
	b := NewBoard(studio.New(cfg))
	b.Resize(fyne.NewSize(200, 100))
	return b
}

func TestToCanvas(t *testing.T) {
	b := newTestBoard(t)

	cases := []struct {
		pos    fyne.Position
		x, y   float64
		inside bool
	}{
		{fyne.NewPos(0, 0), 0, 0, true},
		{fyne.NewPos(100, 50), 50, 25, true},
		{fyne.NewPos(199, 99), 99.5, 49.5, true},
		{fyne.NewPos(200, 10), 100, 5, false},
		{fyne.NewPos(-2, 10), -1, 5, false},
	}
	for _, c := range cases {
		p, inside := b.toCanvas(c.pos)
		if p.X != c.x || p.Y != c.y || inside != c.inside {
			t.Errorf("toCanvas(%v) = %v, %t, want (%g, %g), %t",
				c.pos, p, inside, c.x, c.y, c.inside)
		}
	}
}

func TestBoardDrag(t *testing.T) {
	b := newTestBoard(t)
	b.Update(func(st *studio.State) { st.SetTool(studio.RectangleTool) })

	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 20)},
		Button:     desktop.MouseButtonPrimary,
	})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 40)}})

	var preview bool
	b.Update(func(st *studio.State) { preview = st.Preview() != nil })
	if !preview {
		t.Error("no preview during drag")
	}

	b.MouseUp(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 40)},
		Button:     desktop.MouseButtonPrimary,
	})

	var n int
	b.Update(func(st *studio.State) { n = st.Scene().Len() })
	if n != 1 {
		t.Errorf("scene has %d shapes, want 1", n)
	}
}

func TestBoardSecondaryButton(t *testing.T) {
	b := newTestBoard(t)
	b.Update(func(st *studio.State) { st.SetTool(studio.TriangleTool) })

	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 20)},
		Button:     desktop.MouseButtonSecondary,
	})

	var pending int
	b.Update(func(st *studio.State) { pending = len(st.Pending()) })
	if pending != 0 {
		t.Errorf("secondary button placed %d points", pending)
	}
}

func TestBoardGenerate(t *testing.T) {
	b := newTestBoard(t)
	img := b.generate(0, 0)
	if got := img.Bounds().Size(); got.X != 100 || got.Y != 50 {
		t.Errorf("canvas size %v, want 100x50", got)
	}
}
