// seehuhn.de/go/shapes - outline rasterisation of simple shapes
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

package testcases

import "seehuhn.de/go/shapes"

// TestCase defines a single rasterisation test.
type TestCase struct {
	Name   string       // lowercase a-z, 0-9 and _ only
	Shape  shapes.Shape // the shape to rasterise
	Width  int          // canvas width in pixels
	Height int          // canvas height in pixels

	// Want is the exact set of pixels the shape must produce, in any
	// order. Nil means the case is only checked for general properties.
	Want []shapes.Point
}

// ink is the color source for all test cases.
var ink = shapes.White

func pt(x, y int32) shapes.Point {
	return shapes.Point{X: x, Y: y}
}
