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


// Command sketch opens a window in which lines, rectangles, circles,
// ellipses, triangles, polygons and Bézier curves can be drawn with a
// choice of rasterization algorithms.
//
// Usage:
//
//	sketch [-config file.toml] [-v]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/internal/ui"
)

func main() {
	confFile := flag.String("config", "", "read settings from this TOML `file`")
	verbose := flag.Bool("v", false, "log every drawing action")
	flag.Parse()

	cfg := config.Default()
	if *confFile != "" {
		var err error
		cfg, err = config.Load(*confFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sketch: %v\n", err)
			os.Exit(1)
		}
	}

	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketch.SetLogger(logger)
	if *confFile != "" {
		logger.Info("configuration loaded", "file", *confFile)
	}

	ui.Run(cfg)
}
