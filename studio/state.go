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

// Package studio holds the state of an interactive drawing session.
//
// A [State] receives pointer events in canvas pixel coordinates, turns
// completed gestures into shapes, and renders the scene together with a
// preview of the gesture in progress. It knows nothing about windows or
// widgets, so that any front end can drive it.
package studio

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/shape"
)

// State is the complete state of a drawing session.
// A State is not safe for concurrent use.
type State struct {
	size        image.Point
	background  color.RGBA
	bezierSteps int

	scene shape.Scene

	tool      Tool
	color     color.RGBA
	filled    bool
	lineAlg   raster.LineAlgorithm
	circleAlg raster.CircleAlgorithm
	sides     int

	// gesture in progress
	dragging bool
	start    vec.Vec2
	points   []vec.Vec2

	cursor    vec.Vec2
	hasCursor bool
}

// New returns a session with the settings from cfg and an empty scene.
// No tool is selected initially.
func New(cfg *config.Config) *State {
	s := &State{
		size:        image.Pt(cfg.Canvas.Width, cfg.Canvas.Height),
		background:  cfg.Canvas.Background.RGBA(),
		bezierSteps: cfg.Drawing.BezierSteps,
		color:       color.RGBA{A: 255},
		filled:      cfg.Drawing.Filled,
		lineAlg:     cfg.Drawing.LineAlgorithm,
		circleAlg:   cfg.Drawing.CircleAlgorithm,
		sides:       cfg.Drawing.PolygonSides,
	}
	if sw, ok := cfg.Lookup(cfg.Drawing.Color); ok {
		s.color = sw.Color.RGBA()
	}
	return s
}

// Size returns the canvas size in pixels.
func (s *State) Size() image.Point {
	return s.size
}

// Scene returns the shapes drawn so far.
func (s *State) Scene() *shape.Scene {
	return &s.scene
}

// Tool returns the selected tool.
func (s *State) Tool() Tool {
	return s.tool
}

// SetTool selects a tool. Any gesture in progress is discarded.
func (s *State) SetTool(t Tool) {
	if s.tool == t {
		return
	}
	s.discard("tool changed")
	s.tool = t
	sketch.Logger().Debug("tool selected", "tool", t)
}

// Color returns the drawing color.
func (s *State) Color() color.RGBA {
	return s.color
}

// SetColor sets the drawing color for new shapes.
func (s *State) SetColor(c color.RGBA) {
	s.color = c
}

// Filled reports whether new closed shapes are filled.
func (s *State) Filled() bool {
	return s.filled
}

// SetFilled sets whether new closed shapes are filled.
func (s *State) SetFilled(filled bool) {
	s.filled = filled
}

// LineAlgorithm returns the algorithm used for new lines.
func (s *State) LineAlgorithm() raster.LineAlgorithm {
	return s.lineAlg
}

// SetLineAlgorithm sets the algorithm used for new lines.
func (s *State) SetLineAlgorithm(alg raster.LineAlgorithm) {
	s.lineAlg = alg
}

// CircleAlgorithm returns the algorithm used for new circles.
func (s *State) CircleAlgorithm() raster.CircleAlgorithm {
	return s.circleAlg
}

// SetCircleAlgorithm sets the algorithm used for new circles.
func (s *State) SetCircleAlgorithm(alg raster.CircleAlgorithm) {
	s.circleAlg = alg
}

// PolygonSides returns the number of vertices of new polygons.
func (s *State) PolygonSides() int {
	return s.sides
}

// SetPolygonSides sets the number of vertices of new polygons.
// Points already placed for a polygon are discarded.
func (s *State) SetPolygonSides(n int) error {
	if n < config.MinPolygonSides || n > config.MaxPolygonSides {
		return fmt.Errorf("polygon must have between %d and %d sides, not %d",
			config.MinPolygonSides, config.MaxPolygonSides, n)
	}
	if n != s.sides && s.tool == PolygonTool {
		s.discard("polygon sides changed")
	}
	s.sides = n
	return nil
}

// Pending returns the points placed so far for a multi-point shape.
func (s *State) Pending() []vec.Vec2 {
	return slices.Clone(s.points)
}

// Clear removes all shapes and discards any gesture in progress.
func (s *State) Clear() {
	n := s.scene.Len()
	s.scene.Clear()
	s.dragging = false
	s.points = s.points[:0]
	sketch.Logger().Debug("canvas cleared", "shapes", n)
}

// PointerDown handles a press of the primary pointer button at p.
//
// For drag tools this starts a new shape. For multi-point tools it adds a
// point, and the shape is added to the scene once all of its points are
// known.
func (s *State) PointerDown(p vec.Vec2) error {
	s.cursor, s.hasCursor = p, true

	switch {
	case s.tool.IsDrag():
		s.dragging = true
		s.start = p
		return nil
	case s.tool.IsMultiPoint():
		s.points = append(s.points, p)
		if len(s.points) < s.needed() {
			return nil
		}
		sh, err := s.multiPointShape(s.points)
		s.points = s.points[:0]
		if err != nil {
			return err
		}
		s.commit(sh)
	}
	return nil
}

// PointerMove handles a movement of the pointer to p.
func (s *State) PointerMove(p vec.Vec2) {
	s.cursor, s.hasCursor = p, true
}

// PointerUp handles the release of the primary pointer button at p.
// If a drag is in progress, the finished shape is added to the scene.
func (s *State) PointerUp(p vec.Vec2) {
	s.cursor, s.hasCursor = p, true
	if !s.dragging {
		return
	}
	s.dragging = false
	if sh := s.dragShape(s.start, p); sh != nil {
		s.commit(sh)
	}
}

// PointerLeave is called when the pointer leaves the canvas. The preview
// is hidden until the pointer comes back; a drag in progress continues.
func (s *State) PointerLeave() {
	s.hasCursor = false
}

// Preview returns the shape which would be created if the current drag
// ended at the pointer position. The result is nil if no drag is in
// progress or the pointer is outside the canvas.
func (s *State) Preview() shape.Shape {
	if !s.dragging || !s.hasCursor {
		return nil
	}
	return s.dragShape(s.start, s.cursor)
}

// needed returns the number of points of a multi-point shape.
func (s *State) needed() int {
	switch s.tool {
	case TriangleTool:
		return 3
	case CurveTool:
		return 4
	case PolygonTool:
		return s.sides
	default:
		return 0
	}
}

func (s *State) paint() shape.Paint {
	return shape.Paint{Color: s.color, Filled: s.filled}
}

func (s *State) dragShape(a, b vec.Vec2) shape.Shape {
	switch s.tool {
	case LineTool:
		return shape.NewLine(a, b, s.paint(), s.lineAlg)
	case RectangleTool:
		return shape.NewRectangle(a, b, s.paint())
	case CircleTool:
		return shape.NewCircle(a, b, s.paint(), s.circleAlg)
	case EllipseTool:
		return shape.NewEllipse(a, b, s.paint())
	default:
		return nil
	}
}

func (s *State) multiPointShape(pts []vec.Vec2) (shape.Shape, error) {
	switch s.tool {
	case TriangleTool:
		return shape.NewTriangle(pts, s.paint())
	case PolygonTool:
		return shape.NewPolygon(pts, s.paint())
	case CurveTool:
		return shape.NewBezier(pts, s.paint(), s.bezierSteps)
	default:
		return nil, fmt.Errorf("tool %s has no points", s.tool)
	}
}

func (s *State) commit(sh shape.Shape) {
	s.scene.Add(sh)
	sketch.Logger().Debug("shape added",
		"kind", sh.Kind(),
		"bounds", shape.Bounds(sh),
		"shapes", s.scene.Len())
}

func (s *State) discard(reason string) {
	if !s.dragging && len(s.points) == 0 {
		return
	}
	sketch.Logger().Debug("gesture discarded",
		"reason", reason,
		"tool", s.tool,
		"points", len(s.points))
	s.dragging = false
	s.points = s.points[:0]
}
