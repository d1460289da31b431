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

package shapes_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

// minCoverage is the smallest coverage (out of 255) an emitted pixel must
// have in the band around the exact geometry.
const minCoverage = 32

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				pts := tc.Shape.AppendPoints(nil)

				if tc.Want != nil {
					if err := compareSets(pts, tc.Want); err != nil {
						t.Error(err)
					}
				}

				// drawing must deliver exactly the in-canvas pixels
				rec := shapes.NewRecorder(tc.Width, tc.Height)
				tc.Shape.Draw(rec)
				inside := 0
				for _, p := range pts {
					if p.X >= 0 && int(p.X) < tc.Width && p.Y >= 0 && int(p.Y) < tc.Height {
						inside++
					}
				}
				if len(rec.Writes) != inside || rec.Dropped != len(pts)-inside {
					t.Errorf("%d writes and %d dropped, want %d and %d",
						len(rec.Writes), rec.Dropped, inside, len(pts)-inside)
				}

				band := coverageBand(tc, pts)
				if band == nil {
					return
				}
				var far []shapes.Point
				for _, w := range rec.Writes {
					if band.AlphaAt(w.X, w.Y).A < minCoverage {
						far = append(far, shapes.Point{X: int32(w.X), Y: int32(w.Y)})
					}
				}
				if len(far) > 0 {
					_ = writeDebugImage(name, rec, band, tc.Width, tc.Height)
					t.Errorf("%d pixels away from the exact geometry, e.g. %v", len(far), far[0])
				}
			})
		}
	}
}

func compareSets(got, want []shapes.Point) error {
	g := make(map[shapes.Point]bool, len(got))
	for _, p := range got {
		g[p] = true
	}
	w := make(map[shapes.Point]bool, len(want))
	for _, p := range want {
		w[p] = true
	}
	for p := range w {
		if !g[p] {
			return fmt.Errorf("missing pixel %v", p)
		}
	}
	for p := range g {
		if !w[p] {
			return fmt.Errorf("unexpected pixel %v", p)
		}
	}
	return nil
}

// coverageBand uses x/image/vector to compute the anti-aliased coverage of
// a band of half-width 1 around the exact geometry of the shape. Lattice
// point (x, y) is the top-left corner of pixel (x, y); every pixel chosen
// by the rasterisers has its corner within 1/2 of the exact geometry, so
// a quarter disc of radius 1/2 of the pixel lies inside the band.
// The result is nil for shapes without a meaningful band, and for shapes
// which come close to the canvas edges.
func coverageBand(tc testcases.TestCase, pts []shapes.Point) *image.Alpha {
	const margin = 2
	for _, p := range pts {
		if p.X < margin || int(p.X) >= tc.Width-margin || p.Y < margin || int(p.Y) >= tc.Height-margin {
			return nil
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	r := vector.NewRasterizer(tc.Width, tc.Height)

	segment := func(a, b shapes.Point) {
		r.Reset(tc.Width, tc.Height)
		addSegmentBand(r, a, b, 1)
		r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	}

	switch s := tc.Shape.(type) {
	case shapes.Line:
		segment(s.Start, s.End)
	case shapes.Triangle:
		for _, e := range s.Edges() {
			segment(e.Start, e.End)
		}
	case shapes.Rectangle:
		a, c := s.Corner1, s.Corner2
		b := shapes.Point{X: c.X, Y: a.Y}
		d := shapes.Point{X: a.X, Y: c.Y}
		segment(a, b)
		segment(b, c)
		segment(c, d)
		segment(d, a)
	case shapes.Circle:
		if s.Radius < 2 {
			return nil
		}
		cx, cy := float32(s.Center.X), float32(s.Center.Y)
		rad := float32(s.Radius)
		addCircleToVector(r, cx, cy, rad+1, false)
		addCircleToVector(r, cx, cy, rad-1, true)
		r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	default:
		return nil
	}
	return dst
}

// addSegmentBand adds the rectangle of half-width w around the segment
// from a to b, extended by w at both ends.
func addSegmentBand(r *vector.Rasterizer, a, b shapes.Point, w float64) {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	tx, ty := bx-ax, by-ay
	l := math.Hypot(tx, ty)
	if l == 0 {
		tx, ty = 1, 0
	} else {
		tx, ty = tx/l, ty/l
	}
	tx, ty = tx*w, ty*w
	nx, ny := -ty, tx

	ax, ay = ax-tx, ay-ty
	bx, by = bx+tx, by+ty
	r.MoveTo(float32(ax+nx), float32(ay+ny))
	r.LineTo(float32(bx+nx), float32(by+ny))
	r.LineTo(float32(bx-nx), float32(by-ny))
	r.LineTo(float32(ax-nx), float32(ay-ny))
	r.ClosePath()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

// writeDebugImage writes a 2-panel image into debug/: the drawn pixels
// (left) and the drawn pixels over the coverage band (right; red marks
// pixels outside the band).
func writeDebugImage(name string, rec *shapes.Recorder, band *image.Alpha, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*2, h))
	for y := range h {
		for x := range w {
			b := band.AlphaAt(x, y).A
			img.Set(x+w, y, color.RGBA{R: 0, G: b / 2, B: b / 2, A: 255})
			img.Set(x, y, color.RGBA{A: 255})
		}
	}
	for _, wr := range rec.Writes {
		img.Set(wr.X, wr.Y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		if band.AlphaAt(wr.X, wr.Y).A < minCoverage {
			img.Set(wr.X+w, wr.Y, color.RGBA{R: 255, A: 255})
		} else {
			img.Set(wr.X+w, wr.Y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
