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
	"fmt"
	"strings"
)

// LineAlgorithm selects the strategy used to rasterize line segments.
type LineAlgorithm int

const (
	// LineNaive uses the general path filler, see [Rasteriser].
	LineNaive LineAlgorithm = iota

	// LineDDA uses a floating point digital differential analyzer.
	LineDDA

	// LineBresenham uses the integer-only Bresenham algorithm.
	LineBresenham
)

// LineAlgorithms lists all line algorithms, in the order used by menus.
var LineAlgorithms = []LineAlgorithm{LineNaive, LineDDA, LineBresenham}

func (a LineAlgorithm) String() string {
	switch a {
	case LineNaive:
		return "naive"
	case LineDDA:
		return "dda"
	case LineBresenham:
		return "bresenham"
	default:
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (a LineAlgorithm) MarshalText() ([]byte, error) {
	switch a {
	case LineNaive, LineDDA, LineBresenham:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("invalid line algorithm %d", int(a))
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The name "pygame" is accepted as an alias for "naive".
func (a *LineAlgorithm) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "naive", "pygame":
		*a = LineNaive
	case "dda":
		*a = LineDDA
	case "bresenham":
		*a = LineBresenham
	default:
		return fmt.Errorf("unknown line algorithm %q", text)
	}
	return nil
}

// CircleAlgorithm selects the strategy used to rasterize circles.
type CircleAlgorithm int

const (
	// CircleNaive uses the general path filler, see [Rasteriser].
	CircleNaive CircleAlgorithm = iota

	// CircleBresenham uses the integer midpoint circle algorithm.
	CircleBresenham
)

// CircleAlgorithms lists all circle algorithms, in the order used by menus.
var CircleAlgorithms = []CircleAlgorithm{CircleNaive, CircleBresenham}

func (a CircleAlgorithm) String() string {
	switch a {
	case CircleNaive:
		return "naive"
	case CircleBresenham:
		return "bresenham"
	default:
		return fmt.Sprintf("CircleAlgorithm(%d)", int(a))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (a CircleAlgorithm) MarshalText() ([]byte, error) {
	switch a {
	case CircleNaive, CircleBresenham:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("invalid circle algorithm %d", int(a))
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The name "pygame" is accepted as an alias for "naive".
func (a *CircleAlgorithm) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "naive", "pygame":
		*a = CircleNaive
	case "bresenham", "midpoint":
		*a = CircleBresenham
	default:
		return fmt.Errorf("unknown circle algorithm %q", text)
	}
	return nil
}
