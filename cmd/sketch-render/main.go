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


// Command sketch-render draws one of the built-in test scenes without a
// window and writes the result as a PNG file.
//
// Usage:
//
//	sketch-render -list
//	sketch-render [-scale n] [-config file.toml] -case name -out file.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	out := flag.String("out", "", "write the image to this `file`")
	name := flag.String("case", "", "name of the test scene, as printed by -list")
	scale := flag.Int("scale", 1, "magnify every pixel by this `factor`")
	list := flag.Bool("list", false, "list the available test scenes")
	confFile := flag.String("config", "", "take the background color from this TOML `file`")
	flag.Parse()

	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if *list {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				fmt.Printf("%s_%s\t%dx%d\n", category, tc.Name, tc.Width, tc.Height)
			}
		}
		return
	}

	if err := run(*name, *out, *scale, *confFile); err != nil {
		fmt.Fprintf(os.Stderr, "sketch-render: %v\n", err)
		os.Exit(1)
	}
}

func run(name, out string, scale int, confFile string) error {
	if name == "" || out == "" {
		return errors.New("both -case and -out are required")
	}
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}

	cfg := config.Default()
	if confFile != "" {
		var err error
		cfg, err = config.Load(confFile)
		if err != nil {
			return err
		}
	}

	tc, ok := testcases.Find(name)
	if !ok {
		return fmt.Errorf("unknown test scene %q", name)
	}

	var img image.Image = tc.Render(cfg.Canvas.Background.RGBA())
	if scale > 1 {
		big := image.NewRGBA(image.Rect(0, 0, tc.Width*scale, tc.Height*scale))
		draw.NearestNeighbor.Scale(big, big.Rect, img, img.Bounds(), draw.Src, nil)
		img = big
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	sketch.Logger().Info("image written", "case", name, "file", out,
		"width", tc.Width*scale, "height", tc.Height*scale)
	return nil
}
