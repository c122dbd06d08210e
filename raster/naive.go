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
	"image/color"
	"math"
	"sync"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

var rasteriserPool = sync.Pool{
	New: func() any { return NewRasteriser(rect.Rect{}) },
}

// fillThreshold fills p and sets every pixel whose coverage is at
// least one half. This turns the coverage rasteriser into a bi-level
// renderer without anti-aliasing.
func fillThreshold(dst Surface, p *path.Data, evenOdd bool, c color.RGBA) {
	r := rasteriserPool.Get().(*Rasteriser)
	defer rasteriserPool.Put(r)

	r.Reset(pathBounds(p))
	emit := func(y, xMin int, coverage []float32) {
		for i, v := range coverage {
			if v >= 0.5 {
				dst.SetRGBA(xMin+i, y, c)
			}
		}
	}
	if evenOdd {
		r.FillEvenOdd(p, emit)
	} else {
		r.FillNonZero(p, emit)
	}
}

// pathBounds returns an integer-aligned rectangle which contains all
// coordinates of p.
func pathBounds(p *path.Data) rect.Rect {
	if len(p.Coords) == 0 {
		return rect.Rect{}
	}
	lo, hi := p.Coords[0], p.Coords[0]
	for _, v := range p.Coords[1:] {
		lo = vec.Vec2{X: min(lo.X, v.X), Y: min(lo.Y, v.Y)}
		hi = vec.Vec2{X: max(hi.X, v.X), Y: max(hi.Y, v.Y)}
	}
	return rect.Rect{
		LLx: math.Floor(lo.X) - 1,
		LLy: math.Floor(lo.Y) - 1,
		URx: math.Ceil(hi.X) + 1,
		URy: math.Ceil(hi.Y) + 1,
	}
}

// naiveLine draws a one pixel wide band between the centres of the
// pixels nearest to a and b. The band has square ends, so that
// horizontal and vertical lines cover both end pixels completely.
func naiveLine(dst Surface, a, b vec.Vec2, c color.RGBA) {
	pa, pb := pixel(a), pixel(b)
	if pa == pb {
		dst.SetRGBA(pa.X, pa.Y, c)
		return
	}

	from := centre(pa)
	to := centre(pb)
	d := to.Sub(from)
	u := d.Mul(0.5 / d.Length())
	n := vec.Vec2{X: -u.Y, Y: u.X}

	p := (&path.Data{}).
		MoveTo(from.Sub(u).Add(n)).
		LineTo(to.Add(u).Add(n)).
		LineTo(to.Add(u).Sub(n)).
		LineTo(from.Sub(u).Sub(n)).
		Close()
	fillThreshold(dst, p, false, c)
}

// naiveCircle draws the circle of radius r around the centre of the given
// pixel. Filled circles are discs of radius r+1/2; outlines are rings
// between the radii r-1/2 and r+1/2.
func naiveCircle(dst Surface, center image.Point, r int, c color.RGBA, filled bool) {
	if r <= 0 {
		dst.SetRGBA(center.X, center.Y, c)
		return
	}

	m := centre(center)
	p := &path.Data{}
	appendCircle(p, m, float64(r)+0.5)
	if filled {
		fillThreshold(dst, p, false, c)
		return
	}
	appendCircle(p, m, float64(r)-0.5)
	fillThreshold(dst, p, true, c)
}

// appendCircle adds a closed circle, made from four cubic arcs, to p.
func appendCircle(p *path.Data, m vec.Vec2, radius float64) {
	k := kappa * radius
	east := m.Add(vec.Vec2{X: radius})
	south := m.Add(vec.Vec2{Y: radius})
	west := m.Sub(vec.Vec2{X: radius})
	north := m.Sub(vec.Vec2{Y: radius})

	p.MoveTo(east).
		CubeTo(east.Add(vec.Vec2{Y: k}), south.Add(vec.Vec2{X: k}), south).
		CubeTo(south.Sub(vec.Vec2{X: k}), west.Add(vec.Vec2{Y: k}), west).
		CubeTo(west.Sub(vec.Vec2{Y: k}), north.Sub(vec.Vec2{X: k}), north).
		CubeTo(north.Add(vec.Vec2{X: k}), east.Sub(vec.Vec2{Y: k}), east).
		Close()
}

// centre returns the centre of the pixel p in user space.
func centre(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}
