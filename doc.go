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

// Package sketch is a small drawing program which shows how classic
// rasterization algorithms turn lines, circles, ellipses, polygons and
// Bézier curves into pixels.
//
// The module is organised as follows:
//
//   - [seehuhn.de/go/sketch/raster] contains the stateless rasterizers
//     (DDA and Bresenham lines, midpoint circles and ellipses, scan-line
//     polygon fill, Bézier sampling) and a general coverage based path
//     filler.
//   - [seehuhn.de/go/sketch/shape] defines the drawable shapes and the
//     scene which holds them.
//   - [seehuhn.de/go/sketch/studio] keeps the interactive state: the
//     selected tool, color and algorithms, and the gesture in progress.
//   - [seehuhn.de/go/sketch/config] loads settings from TOML files.
//   - The commands sketch and sketch-render provide a desktop window and
//     a headless PNG renderer.
//
// This package itself only holds the module-wide logger.
package sketch
