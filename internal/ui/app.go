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
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/studio"
)

// AppID identifies the application to fyne, for storing preferences.
const AppID = "de.seehuhn.sketch"

// Run opens the main window and blocks until it is closed.
func Run(cfg *config.Config) {
	a := app.NewWithID(AppID)
	w := a.NewWindow("Sketch")

	status := widget.NewLabel("select a tool")
	board := NewBoard(studio.New(cfg))
	board.OnError = func(err error) {
		sketch.Logger().Warn("shape rejected", "error", err)
		status.SetText(err.Error())
	}
	panel := NewPanel(board, cfg, status)

	content := container.NewBorder(nil, status, container.NewVScroll(panel), nil, board)
	w.SetContent(content)
	w.Resize(fyne.NewSize(float32(cfg.Canvas.Width)+220, float32(cfg.Canvas.Height)+40))

	sketch.Logger().Info("window opened",
		"width", cfg.Canvas.Width, "height", cfg.Canvas.Height)
	w.ShowAndRun()
}
