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
	"iter"

	"seehuhn.de/go/sketch/raster"
)

// Scene is an ordered list of shapes. Shapes are drawn in the order they
// were added, so that later shapes cover earlier ones.
//
// The zero value is an empty scene ready to use. A Scene is not safe for
// concurrent use.
type Scene struct {
	shapes []Shape
}

// Add appends s to the scene.
func (sc *Scene) Add(s Shape) {
	sc.shapes = append(sc.shapes, s)
}

// Len returns the number of shapes in the scene.
func (sc *Scene) Len() int {
	return len(sc.shapes)
}

// All iterates over the shapes in drawing order.
func (sc *Scene) All() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i, s := range sc.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Clear removes all shapes.
func (sc *Scene) Clear() {
	clear(sc.shapes)
	sc.shapes = sc.shapes[:0]
}

// Draw renders all shapes onto dst.
func (sc *Scene) Draw(dst raster.Surface) {
	for _, s := range sc.shapes {
		Draw(dst, s)
	}
}
