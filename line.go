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
)

// Line is a straight line segment between two pixels.
type Line struct {
	Start, End Point
	Color      color.RGBA
}

// NewLine returns the segment from start to end, colored by the next
// color from colors.
func NewLine(start, end Point, colors ColorSource) Line {
	return Line{Start: start, End: end, Color: colors.NextColor()}
}

// RandomLine returns a segment between two random points of a
// maxW × maxH canvas.
func RandomLine(rng *rand.Rand, colors ColorSource, maxW, maxH int32) Line {
	start := RandomPoint(rng, maxW, maxH)
	end := RandomPoint(rng, maxW, maxH)
	return NewLine(start, end, colors)
}

// AppendPoints appends the pixels of the segment to dst.
//
// The coordinate with the larger span (the driving axis) advances by one
// pixel per step, starting from the endpoint with the smaller driving
// coordinate. The other coordinate follows the exact line, rounded to the
// nearest pixel. This gives max(|dx|, |dy|) pixels without gaps. The far
// endpoint along the driving axis is not included. A segment with
// coincident endpoints gives the single pixel Start.
//
// The set of pixels does not change when Start and End are swapped.
func (l Line) AppendPoints(dst []Point) []Point {
	dx := abs64(int64(l.Start.X) - int64(l.End.X))
	dy := abs64(int64(l.Start.Y) - int64(l.End.Y))

	if dx == 0 && dy == 0 {
		Logger().Debug("degenerate line", "x", l.Start.X, "y", l.Start.Y)
		return append(dst, l.Start)
	}

	dst = grow(dst, max(dx, dy))

	p, q := l.Start, l.End
	if dx < dy {
		// y is the driving axis; dy > 0 here
		if p.Y > q.Y {
			p, q = q, p
		}
		step := sign64(int64(q.X) - int64(p.X))
		cf := float64(dx) / float64(dy)
		for i := range dy {
			dst = append(dst, Point{
				X: int32(int64(p.X) + step*int64(math.Round(float64(i)*cf))),
				Y: int32(int64(p.Y) + i),
			})
		}
		return dst
	}

	// x is the driving axis; dx > 0 here
	if p.X > q.X {
		p, q = q, p
	}
	step := sign64(int64(q.Y) - int64(p.Y))
	cf := float64(dy) / float64(dx)
	for i := range dx {
		dst = append(dst, Point{
			X: int32(int64(p.X) + i),
			Y: int32(int64(p.Y) + step*int64(math.Round(float64(i)*cf))),
		})
	}
	return dst
}

// Points returns the pixels of the segment, see [Line.AppendPoints].
func (l Line) Points() []Point {
	return l.AppendPoints(nil)
}

// Draw implements [Drawable].
func (l Line) Draw(c Canvas) {
	drawPoints(c, "line", l.Points(), l.Color)
}

// Outline implements [Shape].
func (l Line) Outline() *path.Data {
	return (&path.Data{}).MoveTo(l.Start.Vec()).LineTo(l.End.Vec())
}

// grow makes room for n more elements in dst, if n is small enough to be
// worth allocating up front.
func grow(dst []Point, n int64) []Point {
	const maxPrealloc = 1 << 16
	if n <= 0 || n > maxPrealloc {
		return dst
	}
	if free := cap(dst) - len(dst); int64(free) >= n {
		return dst
	}
	out := make([]Point, len(dst), int64(len(dst))+n)
	copy(out, dst)
	return out
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func sign64(x int64) int64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
