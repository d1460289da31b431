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

package shapes

import (
	"image/color"

	"seehuhn.de/go/geom/path"
)

// Drawable is anything which can be drawn onto a canvas.
type Drawable interface {
	Draw(c Canvas)
}

// Shape is a drawable outline with a known pixel set.
type Shape interface {
	Drawable

	// AppendPoints appends the rasterised pixels of the shape to dst and
	// returns the extended slice. The result does not depend on any
	// canvas.
	AppendPoints(dst []Point) []Point

	// Outline returns the continuous geometry which the pixels approximate,
	// in pixel-centre coordinates (see [Point.Vec]).
	Outline() *path.Data
}

var (
	_ Shape = Dot{}
	_ Shape = Line{}
	_ Shape = Circle{}
	_ Shape = Triangle{}
	_ Shape = Rectangle{}
)

// drawPoints writes pts to c, all in the same color.
func drawPoints(c Canvas, kind string, pts []Point, col color.RGBA) {
	for _, p := range pts {
		c.SetPixel(int(p.X), int(p.Y), col)
	}
	Logger().Debug("draw", "shape", kind, "pixels", len(pts))
}
