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
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/studio"
)

// colorSwatch is a small colored square which can be tapped.
type colorSwatch struct {
	widget.BaseWidget
	swatch   config.Swatch
	OnTapped func(config.Swatch)
}

func newColorSwatch(sw config.Swatch, tapped func(config.Swatch)) *colorSwatch {
	s := &colorSwatch{swatch: sw, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.swatch.Color.RGBA())
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.swatch)
	}
}

// NewPanel returns the tool panel for board: tool selection, palette,
// algorithm choices, polygon sides, fill mode and the clear button.
// Status messages are shown in status.
func NewPanel(board *Board, cfg *config.Config, status *widget.Label) fyne.CanvasObject {
	var st studio.Tool
	var current color.RGBA
	var lineAlg raster.LineAlgorithm
	var circleAlg raster.CircleAlgorithm
	var sides int
	var filled bool
	board.Update(func(s *studio.State) {
		st = s.Tool()
		current = s.Color()
		lineAlg = s.LineAlgorithm()
		circleAlg = s.CircleAlgorithm()
		sides = s.PolygonSides()
		filled = s.Filled()
	})

	// tools
	toolNames := make([]string, len(studio.Tools))
	for i, t := range studio.Tools {
		toolNames[i] = t.String()
	}
	tools := widget.NewRadioGroup(toolNames, func(name string) {
		tool := studio.NoTool
		for _, t := range studio.Tools {
			if t.String() == name {
				tool = t
			}
		}
		board.Update(func(s *studio.State) { s.SetTool(tool) })
		status.SetText(toolHint(tool))
	})
	if st != studio.NoTool {
		tools.SetSelected(st.String())
	}

	// palette
	preview := canvas.NewRectangle(current)
	preview.SetMinSize(fyne.NewSize(28, 28))
	swatches := container.NewGridWithColumns(4)
	for _, sw := range cfg.Palette {
		swatches.Add(newColorSwatch(sw, func(sw config.Swatch) {
			c := sw.Color.RGBA()
			board.Update(func(s *studio.State) { s.SetColor(c) })
			preview.FillColor = c
			preview.Refresh()
			status.SetText("color: " + sw.Name)
		}))
	}

	// algorithms
	lineNames := make([]string, len(raster.LineAlgorithms))
	for i, a := range raster.LineAlgorithms {
		lineNames[i] = a.String()
	}
	lineSelect := widget.NewSelect(lineNames, func(name string) {
		var alg raster.LineAlgorithm
		if err := alg.UnmarshalText([]byte(name)); err != nil {
			status.SetText(err.Error())
			return
		}
		board.Update(func(s *studio.State) { s.SetLineAlgorithm(alg) })
	})
	lineSelect.SetSelected(lineAlg.String())

	circleNames := make([]string, len(raster.CircleAlgorithms))
	for i, a := range raster.CircleAlgorithms {
		circleNames[i] = a.String()
	}
	circleSelect := widget.NewSelect(circleNames, func(name string) {
		var alg raster.CircleAlgorithm
		if err := alg.UnmarshalText([]byte(name)); err != nil {
			status.SetText(err.Error())
			return
		}
		board.Update(func(s *studio.State) { s.SetCircleAlgorithm(alg) })
	})
	circleSelect.SetSelected(circleAlg.String())

	// polygon sides
	var sideNames []string
	for n := config.MinPolygonSides; n <= config.MaxPolygonSides; n++ {
		sideNames = append(sideNames, strconv.Itoa(n))
	}
	sidesSelect := widget.NewSelect(sideNames, func(val string) {
		n, err := strconv.Atoi(val)
		if err == nil {
			board.Update(func(s *studio.State) { err = s.SetPolygonSides(n) })
		}
		if err != nil {
			status.SetText(err.Error())
		}
	})
	sidesSelect.SetSelected(strconv.Itoa(sides))

	fill := widget.NewCheck("Filled", func(on bool) {
		board.Update(func(s *studio.State) { s.SetFilled(on) })
	})
	fill.SetChecked(filled)

	clearButton := widget.NewButton("Clear", func() {
		board.Update(func(s *studio.State) { s.Clear() })
		status.SetText("canvas cleared")
	})

	return container.NewVBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		container.NewHBox(widget.NewLabel("Color:"), preview),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Line algorithm:"),
		lineSelect,
		widget.NewLabel("Circle algorithm:"),
		circleSelect,
		widget.NewLabel("Polygon sides:"),
		sidesSelect,
		fill,
		widget.NewSeparator(),
		clearButton,
	)
}

func toolHint(t studio.Tool) string {
	switch {
	case t.IsDrag():
		return t.String() + ": drag to draw"
	case t == studio.TriangleTool:
		return "triangle: click three points"
	case t == studio.PolygonTool:
		return "polygon: click the corners"
	case t == studio.CurveTool:
		return "curve: click four control points"
	default:
		return "select a tool"
	}
}
