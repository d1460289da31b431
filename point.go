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
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position. Points are not tied to any canvas; whether a
// point is visible is decided only when it is written to a [Canvas].
type Point struct {
	X, Y int32
}

// NewPoint returns the point (x, y).
func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// RandomPoint returns a point with X uniform in [0, maxW) and Y uniform
// in [0, maxH). A coordinate whose range is empty is set to 0.
func RandomPoint(rng *rand.Rand, maxW, maxH int32) Point {
	return Point{X: randInt32(rng, maxW), Y: randInt32(rng, maxH)}
}

func randInt32(rng *rand.Rand, n int32) int32 {
	if n <= 0 {
		return 0
	}
	return rng.Int32N(n)
}

// Distance returns the Euclidean distance between p and q, rounded to the
// nearest integer.
func (p Point) Distance(q Point) int32 {
	return int32(math.Round(p.Vec().Sub(q.Vec()).Length()))
}

// Vec returns the centre of the pixel p in continuous coordinates.
// Pixel (x, y) covers the unit square [x, x+1) × [y, y+1).
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// Dot is a single colored pixel.
type Dot struct {
	Point
	Color color.RGBA
}

// NewDot returns a one-pixel shape at p, colored by the next color from
// colors.
func NewDot(p Point, colors ColorSource) Dot {
	return Dot{Point: p, Color: colors.NextColor()}
}

// RandomDot returns a one-pixel shape at a random position inside a
// maxW × maxH canvas.
func RandomDot(rng *rand.Rand, colors ColorSource, maxW, maxH int32) Dot {
	return NewDot(RandomPoint(rng, maxW, maxH), colors)
}

// AppendPoints implements [Shape].
func (d Dot) AppendPoints(dst []Point) []Point {
	return append(dst, d.Point)
}

// Points returns the single pixel of the dot.
func (d Dot) Points() []Point {
	return d.AppendPoints(nil)
}

// Draw implements [Drawable].
func (d Dot) Draw(c Canvas) {
	drawPoints(c, "point", d.Points(), d.Color)
}

// Outline implements [Shape]. The outline of a dot is a degenerate
// subpath at the pixel centre.
func (d Dot) Outline() *path.Data {
	v := d.Vec()
	return (&path.Data{}).MoveTo(v).LineTo(v)
}
