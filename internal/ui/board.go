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

// Package ui implements the desktop window of the drawing program.
package ui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/studio"
)

// Board is the drawing area. It forwards pointer events to a
// [studio.State] and shows the result of [studio.State.Render].
type Board struct {
	widget.BaseWidget

	mu    sync.Mutex
	state *studio.State
	img   *image.RGBA

	// OnError is called when a pointer action could not be completed.
	OnError func(error)
}

var (
	_ fyne.Widget       = (*Board)(nil)
	_ fyne.Draggable    = (*Board)(nil)
	_ desktop.Mouseable = (*Board)(nil)
	_ desktop.Hoverable = (*Board)(nil)
)

// NewBoard returns a board which draws into a canvas of the size given
// by st.
func NewBoard(st *studio.State) *Board {
	size := st.Size()
	b := &Board{
		state: st,
		img:   image.NewRGBA(image.Rect(0, 0, size.X, size.Y)),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Update runs fn with exclusive access to the drawing state and then
// redraws the board.
func (b *Board) Update(fn func(st *studio.State)) {
	b.mu.Lock()
	fn(b.state)
	b.mu.Unlock()
	b.Refresh()
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := canvas.NewRaster(b.generate)
	r.ScaleMode = canvas.ImageScalePixels
	size := b.state.Size()
	r.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))
	return widget.NewSimpleRenderer(r)
}

// generate is called by fyne whenever the raster needs to be redrawn.
// The canvas has a fixed size in pixels, fyne scales it to fit.
func (b *Board) generate(_, _ int) image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Render(b.img)
	return b.img
}

// toCanvas converts a widget position to canvas pixel coordinates.
// The second result is false if the position lies outside the canvas.
func (b *Board) toCanvas(pos fyne.Position) (vec.Vec2, bool) {
	size := b.Size()
	bounds := b.img.Rect
	if size.Width <= 0 || size.Height <= 0 {
		return vec.Vec2{}, false
	}
	p := vec.Vec2{
		X: float64(pos.X) * float64(bounds.Dx()) / float64(size.Width),
		Y: float64(pos.Y) * float64(bounds.Dy()) / float64(size.Height),
	}
	inside := p.X >= 0 && p.Y >= 0 && p.X < float64(bounds.Dx()) && p.Y < float64(bounds.Dy())
	return p, inside
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p, ok := b.toCanvas(e.Position)
	if !ok {
		return
	}
	var err error
	b.Update(func(st *studio.State) {
		err = st.PointerDown(p)
	})
	if err != nil && b.OnError != nil {
		b.OnError(err)
	}
}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p, _ := b.toCanvas(e.Position)
	b.Update(func(st *studio.State) {
		st.PointerUp(p)
	})
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	b.moved(e.Position)
}

func (b *Board) DragEnd() {}

func (b *Board) MouseIn(e *desktop.MouseEvent) {
	b.moved(e.Position)
}

func (b *Board) MouseMoved(e *desktop.MouseEvent) {
	b.moved(e.Position)
}

func (b *Board) MouseOut() {
	b.Update(func(st *studio.State) {
		st.PointerLeave()
	})
}

func (b *Board) moved(pos fyne.Position) {
	p, inside := b.toCanvas(pos)
	b.Update(func(st *studio.State) {
		if inside {
			st.PointerMove(p)
		} else {
			st.PointerLeave()
		}
	})
}
