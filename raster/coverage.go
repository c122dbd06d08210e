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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal path segment, stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the segment points down in the path, -1 if up
}

// Rasteriser computes the pixel coverage of filled paths.
//
// A Rasteriser is the general purpose path filler of this package. The
// "naive" line and circle algorithms are built on top of it. Callers
// which need many fills should keep one instance and call [Rasteriser.Reset]
// between uses, so that the internal buffers can be reused.
type Rasteriser struct {
	// Clip is the output region in pixel coordinates. Coverage outside
	// the clip rectangle is never reported.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in pixels. Must be > 0.
	Flatness float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	lo, hi vec.Vec2 // bounding box of r.edges
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset prepares the Rasteriser for a new clip rectangle and restores the
// default flatness. Buffer capacity is retained.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills p using the nonzero winding rule.
//
// Coverage values in [0, 1] are reported one row at a time, left to right,
// with leading and trailing zeros removed. The slice passed to emit is only
// valid until emit returns.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// Coverage is reported in the same way as for [Rasteriser.FillNonZero].
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateEvenOdd, emit)
}

func (r *Rasteriser) fill(p *path.Data, integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	if !r.collect(p) {
		return
	}

	xMin := max(int(math.Floor(r.lo.X)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.hi.X))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.lo.Y)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.hi.Y))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, xMin, xMax)
		}
		integrate(r.cover, r.area)

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// collect flattens p into r.edges and records their bounding box.
// The return value is false if p contains no non-horizontal segments.
func (r *Rasteriser) collect(p *path.Data) bool {
	r.edges = r.edges[:0]

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// Degree elevation turns the quadratic into an equivalent cubic.
			c1 := current.Add(p.Coords[k].Sub(current).Mul(2.0 / 3))
			c2 := p.Coords[k+1].Add(p.Coords[k].Sub(p.Coords[k+1]).Mul(2.0 / 3))
			r.flattenCubic(current, c1, c2, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
	return len(r.edges) > 0
}

// flattenCubic approximates a cubic Bézier segment by straight edges.
// The number of edges is chosen by Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dir: 1}
	if dy < 0 {
		e = edge{x0: b.X, y0: b.Y, x1: a.X, y1: a.Y, dir: -1}
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)

	if len(r.edges) == 0 {
		r.lo = vec.Vec2{X: min(a.X, b.X), Y: e.y0}
		r.hi = vec.Vec2{X: max(a.X, b.X), Y: e.y1}
	} else {
		r.lo = vec.Vec2{X: min(r.lo.X, a.X, b.X), Y: min(r.lo.Y, e.y0)}
		r.hi = vec.Vec2{X: max(r.hi.X, a.X, b.X), Y: max(r.hi.Y, e.y1)}
	}
	r.edges = append(r.edges, e)
}

// Each pixel in a row carries two accumulators. cover[i] is the signed
// height of all edge pieces inside column i, and area[i] is the part of
// that height weighted by how much of the pixel lies right of the edge.
// Summing cover from the left gives the winding number entering column i;
// adding area[i] gives the signed covered fraction of the pixel itself.

// accumulate adds the part of e inside the row [top, top+1) to the
// cover and area buffers. The buffers start at pixel column xMin; any
// contribution left of xMin is folded into column 0.
func (r *Rasteriser) accumulate(e *edge, top float64, xMin, xMax int) {
	yA := max(top, e.y0)
	yB := min(top+1, e.y1)
	if yB <= yA {
		return
	}
	xA := e.x0 + e.dxdy*(yA-e.y0)
	xB := e.x0 + e.dxdy*(yB-e.y0)

	// Walk along the edge, splitting it wherever it crosses into a new
	// pixel column.
	x, y := xA, yA
	for {
		var bx float64
		if xB > xA {
			bx = math.Floor(x) + 1
		} else {
			bx = math.Ceil(x) - 1
		}
		if xA == xB || (xB > xA && bx >= xB) || (xB < xA && bx <= xB) {
			r.deposit(e.dir, x, y, xB, yB, xMin, xMax)
			return
		}
		by := e.y0 + (bx-e.x0)/e.dxdy
		by = min(max(by, y), yB)
		r.deposit(e.dir, x, y, bx, by, xMin, xMax)
		x, y = bx, by
	}
}

// deposit records an edge piece which lies within a single pixel column.
func (r *Rasteriser) deposit(dir float32, xs, ys, xe, ye float64, xMin, xMax int) {
	dy := ye - ys
	if dy <= 0 {
		return
	}
	h := dir * float32(dy)
	xm := (xs + xe) / 2
	pix := int(math.Floor(xm))

	switch {
	case pix < xMin:
		r.cover[0] += h
		r.area[0] += h
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-(xm-float64(pix)))
	}
}

func integrateNonZero(cover, area []float32) {
	var winding float32
	for i, c := range cover {
		v := winding + area[i]
		winding += c
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

func integrateEvenOdd(cover, area []float32) {
	var winding float32
	for i, c := range cover {
		v := winding + area[i]
		winding += c
		if v < 0 {
			v = -v
		}
		v = float32(math.Mod(float64(v), 2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the non-zero part of row and its offset within row.
// If row is entirely zero, the result is nil.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge.
	// Flatter edges do not change the coverage and are skipped.
	horizontalEdgeThreshold = 1e-10
)
