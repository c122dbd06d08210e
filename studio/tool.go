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

package studio

import "fmt"

// Tool is a drawing tool.
type Tool int

// These are the available tools. Line, rectangle, circle and ellipse are
// drawn by dragging; triangle, polygon and curve are drawn by clicking
// their points one after another.
const (
	NoTool Tool = iota
	LineTool
	RectangleTool
	CircleTool
	EllipseTool
	TriangleTool
	PolygonTool
	CurveTool
)

// Tools lists all tools in the order of the tool panel.
var Tools = []Tool{
	LineTool, RectangleTool, CircleTool, EllipseTool,
	TriangleTool, PolygonTool, CurveTool,
}

func (t Tool) String() string {
	switch t {
	case NoTool:
		return "none"
	case LineTool:
		return "line"
	case RectangleTool:
		return "rectangle"
	case CircleTool:
		return "circle"
	case EllipseTool:
		return "ellipse"
	case TriangleTool:
		return "triangle"
	case PolygonTool:
		return "polygon"
	case CurveTool:
		return "curve"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// IsDrag reports whether shapes of this tool are drawn by dragging from
// one point to another.
func (t Tool) IsDrag() bool {
	switch t {
	case LineTool, RectangleTool, CircleTool, EllipseTool:
		return true
	}
	return false
}

// IsMultiPoint reports whether shapes of this tool are drawn by clicking
// a sequence of points.
func (t Tool) IsMultiPoint() bool {
	switch t {
	case TriangleTool, PolygonTool, CurveTool:
		return true
	}
	return false
}
