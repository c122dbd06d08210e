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

// Package shape defines the drawable shapes of a sketch.
//
// A [Shape] is an immutable value. Shapes are created from the points the
// user clicked, stored in a [Scene], and rendered with [Draw].
package shape

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
)

// DefaultBezierSteps is the number of line segments used to approximate a
// Bézier curve when nothing else is specified.
const DefaultBezierSteps = 20

var (
	// ErrPointCount is returned when a shape is given the wrong number of
	// points.
	ErrPointCount = errors.New("wrong number of points")

	// ErrSteps is returned when a Bézier curve has fewer than one step.
	ErrSteps = errors.New("invalid number of steps")
)

// Paint holds the attributes shared by all shapes.
type Paint struct {
	Color  color.RGBA
	Filled bool
}

// Shape is one of the types [Line], [Rectangle], [Circle], [Ellipse],
// [Triangle], [Polygon] and [Bezier].
type Shape interface {
	Kind() Kind
	isShape()
}

// Kind identifies the type of a shape.
type Kind int

// These are the supported kinds of shapes.
const (
	KindLine Kind = iota
	KindRectangle
	KindCircle
	KindEllipse
	KindTriangle
	KindPolygon
	KindBezier
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindTriangle:
		return "triangle"
	case KindPolygon:
		return "polygon"
	case KindBezier:
		return "bezier"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Line is a straight segment between two points.
type Line struct {
	Paint
	Start, End vec.Vec2
	Algorithm  raster.LineAlgorithm
}

// NewLine returns the segment from p1 to p2.
func NewLine(p1, p2 vec.Vec2, paint Paint, alg raster.LineAlgorithm) Line {
	return Line{Paint: paint, Start: p1, End: p2, Algorithm: alg}
}

func (Line) Kind() Kind { return KindLine }
func (Line) isShape()   {}

// Rectangle is an axis-aligned rectangle. Box is always canonical.
type Rectangle struct {
	Paint
	Box image.Rectangle
}

// NewRectangle returns the rectangle with opposite corners p1 and p2.
func NewRectangle(p1, p2 vec.Vec2, paint Paint) Rectangle {
	return Rectangle{Paint: paint, Box: raster.BoxFromCorners(p1, p2)}
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (Rectangle) isShape()   {}

// Circle is a circle around the pixel Center.
type Circle struct {
	Paint
	Center    image.Point
	Radius    int
	Algorithm raster.CircleAlgorithm
}

// NewCircle returns the circle around center which passes through rim.
// The center is truncated to pixel coordinates and the radius is the
// truncated distance between the two points.
func NewCircle(center, rim vec.Vec2, paint Paint, alg raster.CircleAlgorithm) Circle {
	return Circle{
		Paint:     paint,
		Center:    image.Point{X: int(center.X), Y: int(center.Y)},
		Radius:    int(rim.Sub(center).Length()),
		Algorithm: alg,
	}
}

func (Circle) Kind() Kind { return KindCircle }
func (Circle) isShape()   {}

// Ellipse is the axis-aligned ellipse inscribed in Box.
type Ellipse struct {
	Paint
	Box image.Rectangle
}

// NewEllipse returns the ellipse inscribed in the rectangle with opposite
// corners p1 and p2.
func NewEllipse(p1, p2 vec.Vec2, paint Paint) Ellipse {
	return Ellipse{Paint: paint, Box: raster.BoxFromCorners(p1, p2)}
}

func (Ellipse) Kind() Kind { return KindEllipse }
func (Ellipse) isShape()   {}

// Triangle is a triangle given by its three vertices.
type Triangle struct {
	Paint
	Points [3]vec.Vec2
}

// NewTriangle returns the triangle with the given vertices.
// The slice must contain exactly three points.
func NewTriangle(pts []vec.Vec2, paint Paint) (Triangle, error) {
	if len(pts) != 3 {
		return Triangle{}, fmt.Errorf("triangle needs 3 points, got %d: %w", len(pts), ErrPointCount)
	}
	return Triangle{Paint: paint, Points: [3]vec.Vec2(pts)}, nil
}

func (Triangle) Kind() Kind { return KindTriangle }
func (Triangle) isShape()   {}

// Polygon is a closed polygon with at least three vertices.
type Polygon struct {
	Paint
	points []vec.Vec2
}

// NewPolygon returns the polygon with the given vertices.
// At least three points are required. The slice is copied.
func NewPolygon(pts []vec.Vec2, paint Paint) (Polygon, error) {
	if len(pts) < 3 {
		return Polygon{}, fmt.Errorf("polygon needs at least 3 points, got %d: %w", len(pts), ErrPointCount)
	}
	return Polygon{Paint: paint, points: slices.Clone(pts)}, nil
}

// Points returns a copy of the vertices.
func (p Polygon) Points() []vec.Vec2 {
	return slices.Clone(p.points)
}

func (Polygon) Kind() Kind { return KindPolygon }
func (Polygon) isShape()   {}

// Bezier is a cubic Bézier curve, drawn as a polyline through a fixed
// number of samples.
type Bezier struct {
	Paint
	control [4]vec.Vec2
	steps   int
	points  []image.Point
}

// NewBezier returns the cubic Bézier curve with the given control points.
// Exactly four control points and at least one step are required.
// The curve is sampled once, here.
func NewBezier(ctrl []vec.Vec2, paint Paint, steps int) (Bezier, error) {
	if len(ctrl) != 4 {
		return Bezier{}, fmt.Errorf("bezier curve needs 4 control points, got %d: %w", len(ctrl), ErrPointCount)
	}
	if steps < 1 {
		return Bezier{}, fmt.Errorf("bezier curve with %d steps: %w", steps, ErrSteps)
	}
	c := [4]vec.Vec2(ctrl)
	return Bezier{
		Paint:   paint,
		control: c,
		steps:   steps,
		points:  raster.CubicBezier(c, steps),
	}, nil
}

// Control returns the four control points.
func (b Bezier) Control() [4]vec.Vec2 {
	return b.control
}

// Steps returns the number of line segments used to draw the curve.
func (b Bezier) Steps() int {
	return b.steps
}

// Points returns a copy of the sampled curve points.
func (b Bezier) Points() []image.Point {
	return slices.Clone(b.points)
}

func (Bezier) Kind() Kind { return KindBezier }
func (Bezier) isShape()   {}

// Bounds returns a rectangle which contains all pixels drawn for s.
// The result is used by the front end to limit redrawing.
func Bounds(s Shape) image.Rectangle {
	switch s := s.(type) {
	case Line:
		return pointBounds(s.Start, s.End).Inset(-1)
	case Rectangle:
		return s.Box
	case Circle:
		return image.Rectangle{Min: s.Center, Max: s.Center.Add(image.Pt(1, 1))}.Inset(-s.Radius - 1)
	case Ellipse:
		return s.Box.Inset(-1)
	case Triangle:
		return pointBounds(s.Points[:]...).Inset(-1)
	case Polygon:
		return pointBounds(s.points...).Inset(-1)
	case Bezier:
		var r image.Rectangle
		for i, p := range s.points {
			q := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
			if i == 0 {
				r = q
			} else {
				r = r.Union(q)
			}
		}
		return r
	default:
		panic(fmt.Sprintf("unexpected shape type %T", s))
	}
}

func pointBounds(pts ...vec.Vec2) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = vec.Vec2{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = vec.Vec2{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	return image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X))+1, int(math.Ceil(hi.Y))+1,
	)
}
