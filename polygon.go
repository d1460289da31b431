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

// Triangle is the outline of a triangle, drawn as three independent lines
// A→B, B→C and C→A. Colors[i] is the color of the i-th of these edges.
type Triangle struct {
	A, B, C Point
	Colors  [3]color.RGBA
}

// NewTriangle returns the triangle with vertices a, b and c. The edges
// take three successive colors from colors.
func NewTriangle(a, b, c Point, colors ColorSource) Triangle {
	t := Triangle{A: a, B: b, C: c}
	for i := range t.Colors {
		t.Colors[i] = colors.NextColor()
	}
	return t
}

// Edges returns the three edges A→B, B→C and C→A, in this order.
func (t Triangle) Edges() [3]Line {
	return [3]Line{
		{Start: t.A, End: t.B, Color: t.Colors[0]},
		{Start: t.B, End: t.C, Color: t.Colors[1]},
		{Start: t.C, End: t.A, Color: t.Colors[2]},
	}
}

// AppendPoints appends the pixels of the three edges to dst, one edge
// after the other. Pixels shared by two edges appear twice.
func (t Triangle) AppendPoints(dst []Point) []Point {
	for _, e := range t.Edges() {
		dst = e.AppendPoints(dst)
	}
	return dst
}

// Points returns the pixels of the triangle, see [Triangle.AppendPoints].
func (t Triangle) Points() []Point {
	return t.AppendPoints(nil)
}

// Draw implements [Drawable]. The edges are drawn in order, each in its
// own color.
func (t Triangle) Draw(c Canvas) {
	var buf []Point
	n := 0
	for _, e := range t.Edges() {
		buf = e.AppendPoints(buf[:0])
		for _, p := range buf {
			c.SetPixel(int(p.X), int(p.Y), e.Color)
		}
		n += len(buf)
	}
	Logger().Debug("draw", "shape", "triangle", "pixels", n)
}

// Outline implements [Shape].
func (t Triangle) Outline() *path.Data {
	return (&path.Data{}).
		MoveTo(t.A.Vec()).
		LineTo(t.B.Vec()).
		LineTo(t.C.Vec()).
		Close()
}

// Rectangle is the outline of an axis-aligned rectangle, given by two
// opposite corners in any order.
type Rectangle struct {
	Corner1, Corner2 Point
	Color            color.RGBA
}

// NewRectangle returns the rectangle with opposite corners c1 and c2,
// colored by the next color from colors.
func NewRectangle(c1, c2 Point, colors ColorSource) Rectangle {
	return Rectangle{Corner1: c1, Corner2: c2, Color: colors.NextColor()}
}

// bounds returns the corners sorted so that x0 <= x1 and y0 <= y1.
func (r Rectangle) bounds() (x0, y0, x1, y1 int32) {
	x0, x1 = min(r.Corner1.X, r.Corner2.X), max(r.Corner1.X, r.Corner2.X)
	y0, y1 = min(r.Corner1.Y, r.Corner2.Y), max(r.Corner1.Y, r.Corner2.Y)
	return x0, y0, x1, y1
}

// AppendPoints appends the boundary pixels of the rectangle to dst: the
// rows y0 and y1 for x in [x0, x1], and the columns x0 and x1 for y
// strictly between y0 and y1. Both corners are included and no pixel is
// appended twice.
func (r Rectangle) AppendPoints(dst []Point) []Point {
	x0, y0, x1, y1 := r.bounds()

	for x := int64(x0); x <= int64(x1); x++ {
		dst = append(dst, Point{X: int32(x), Y: y0})
		if y1 != y0 {
			dst = append(dst, Point{X: int32(x), Y: y1})
		}
	}
	for y := int64(y0) + 1; y < int64(y1); y++ {
		dst = append(dst, Point{X: x0, Y: int32(y)})
		if x1 != x0 {
			dst = append(dst, Point{X: x1, Y: int32(y)})
		}
	}
	return dst
}

// Points returns the pixels of the rectangle, see [Rectangle.AppendPoints].
func (r Rectangle) Points() []Point {
	return r.AppendPoints(nil)
}

// Draw implements [Drawable].
func (r Rectangle) Draw(c Canvas) {
	drawPoints(c, "rectangle", r.Points(), r.Color)
}

// Outline implements [Shape].
func (r Rectangle) Outline() *path.Data {
	x0, y0, x1, y1 := r.bounds()
	return (&path.Data{}).
		MoveTo(Point{X: x0, Y: y0}.Vec()).
		LineTo(Point{X: x1, Y: y0}.Vec()).
		LineTo(Point{X: x1, Y: y1}.Vec()).
		LineTo(Point{X: x0, Y: y1}.Vec()).
		Close()
}
