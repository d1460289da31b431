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

// Circle is the outline of a circle around a pixel.
type Circle struct {
	Center Point
	Radius int32
	Color  color.RGBA
}

// NewCircle returns the circle of the given radius around center,
// colored by the next color from colors.
func NewCircle(center Point, radius int32, colors ColorSource) Circle {
	return Circle{Center: center, Radius: radius, Color: colors.NextColor()}
}

// RandomCircle returns a circle with a random center inside a
// maxW × maxH canvas and a radius uniform in [0, maxW).
// Large circles may extend beyond the canvas.
func RandomCircle(rng *rand.Rand, colors ColorSource, maxW, maxH int32) Circle {
	center := RandomPoint(rng, maxW, maxH)
	radius := randInt32(rng, maxW)
	return NewCircle(center, radius, colors)
}

// AppendPoints appends the pixels of the circle to dst.
//
// A pixel belongs to the circle if its distance from the center, rounded
// to the nearest integer, equals the radius. Only the two octants
// between 0° and 90° are searched, each within its own bounding box; the
// other six octants are obtained by reflection. Every pixel is appended
// exactly once. Radius 0 gives the center pixel, a negative radius gives
// no pixels. Pixels whose coordinates do not fit into an int32 are left
// out.
func (c Circle) AppendPoints(dst []Point) []Point {
	r := int64(c.Radius)
	if r < 0 {
		return dst
	}
	start := len(dst)

	// The search works on offsets from the center, which always fit
	// into an int32. They are moved to the center at the end.

	// The circle crosses the diagonal at offset d in both directions.
	// The boxes meet at floor(d) and ceil(d), so that together they
	// contain every pixel of the quarter circle.
	d := float64(r) * math.Sqrt2 / 2
	lo := int64(math.Floor(d))
	hi := int64(math.Ceil(d))

	// first octant: steep part near the y axis
	for u := int64(0); u <= hi; u++ {
		for v := lo; v <= r; v++ {
			if onCircle(u, v, r) {
				dst = append(dst, Point{X: int32(u), Y: int32(v)})
			}
		}
	}
	// second octant: flat part near the x axis, without the overlap
	for u := lo; u <= r; u++ {
		for v := int64(0); v <= hi; v++ {
			if u <= hi && v >= lo {
				continue
			}
			if onCircle(u, v, r) {
				dst = append(dst, Point{X: int32(u), Y: int32(v)})
			}
		}
	}

	// reflect the quarter at the vertical axis through the center
	end := len(dst)
	for _, p := range dst[start:end] {
		if p.X != 0 {
			dst = append(dst, Point{X: -p.X, Y: p.Y})
		}
	}
	// reflect the upper half at the center
	end = len(dst)
	for _, p := range dst[start:end] {
		if p.Y != 0 {
			dst = append(dst, Point{X: -p.X, Y: -p.Y})
		}
	}

	// move to the center, dropping what falls outside the int32 range
	cx, cy := int64(c.Center.X), int64(c.Center.Y)
	out := start
	for _, p := range dst[start:] {
		x, y := cx+int64(p.X), cy+int64(p.Y)
		if x < math.MinInt32 || x > math.MaxInt32 || y < math.MinInt32 || y > math.MaxInt32 {
			continue
		}
		dst[out] = Point{X: int32(x), Y: int32(y)}
		out++
	}
	return dst[:out]
}

// onCircle reports whether the offset (u, v) has rounded distance r from
// the origin.
func onCircle(u, v, r int64) bool {
	return int64(math.Round(math.Sqrt(float64(u*u+v*v)))) == r
}

// Points returns the pixels of the circle, see [Circle.AppendPoints].
func (c Circle) Points() []Point {
	return c.AppendPoints(nil)
}

// Draw implements [Drawable].
func (c Circle) Draw(cv Canvas) {
	drawPoints(cv, "circle", c.Points(), c.Color)
}

// Outline implements [Shape]. The circle is approximated by four cubic
// Bézier arcs.
func (c Circle) Outline() *path.Data {
	ctr := c.Center.Vec()
	r := float64(max(c.Radius, 0))

	// magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	p := (&path.Data{}).MoveTo(vec.Vec2{X: ctr.X + r, Y: ctr.Y})
	quarters := [4][3]vec.Vec2{
		{{X: ctr.X + r, Y: ctr.Y + kr}, {X: ctr.X + kr, Y: ctr.Y + r}, {X: ctr.X, Y: ctr.Y + r}},
		{{X: ctr.X - kr, Y: ctr.Y + r}, {X: ctr.X - r, Y: ctr.Y + kr}, {X: ctr.X - r, Y: ctr.Y}},
		{{X: ctr.X - r, Y: ctr.Y - kr}, {X: ctr.X - kr, Y: ctr.Y - r}, {X: ctr.X, Y: ctr.Y - r}},
		{{X: ctr.X + kr, Y: ctr.Y - r}, {X: ctr.X + r, Y: ctr.Y - kr}, {X: ctr.X + r, Y: ctr.Y}},
	}
	for _, q := range quarters {
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
		p.Coords = append(p.Coords, q[0], q[1], q[2])
	}
	return p.Close()
}
