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
	"image"
	"image/color"
)

// Canvas is the pixel sink the shapes draw into.
//
// SetPixel must silently ignore coordinates outside [0, Width()) and
// [0, Height()). The rasterisers rely on this and never clip.
type Canvas interface {
	SetPixel(x, y int, c color.RGBA)
	Width() int
	Height() int
}

// Image is a Canvas backed by an [image.RGBA].
type Image struct {
	img *image.RGBA
}

// NewImage returns a fully transparent canvas of the given size.
// Negative dimensions are treated as zero.
func NewImage(width, height int) *Image {
	return &Image{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Width returns the width of the canvas in pixels.
func (m *Image) Width() int {
	return m.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (m *Image) Height() int {
	return m.img.Rect.Dy()
}

// SetPixel sets the pixel at (x, y). Writes outside the canvas are dropped.
func (m *Image) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= m.Width() || y < 0 || y >= m.Height() {
		return
	}
	m.img.SetRGBA(x, y, c)
}

// RGBAAt returns the color of the pixel at (x, y), or the zero color
// outside the canvas.
func (m *Image) RGBAAt(x, y int) color.RGBA {
	return m.img.RGBAAt(x, y)
}

// Clear fills the whole canvas with c.
func (m *Image) Clear(c color.RGBA) {
	pix := m.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// RGBA returns the underlying image. The canvas and the returned image
// share their pixel data.
func (m *Image) RGBA() *image.RGBA {
	return m.img
}

// Write is a single SetPixel call seen by a [Recorder].
type Write struct {
	X, Y  int
	Color color.RGBA
}

// Recorder is a Canvas which remembers every write, in order.
// Writes outside the canvas are dropped, as required by the Canvas
// contract, and counted in Dropped.
type Recorder struct {
	W, H    int
	Writes  []Write
	Dropped int
}

// NewRecorder returns an empty Recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height}
}

// Width implements [Canvas].
func (r *Recorder) Width() int { return r.W }

// Height implements [Canvas].
func (r *Recorder) Height() int { return r.H }

// SetPixel implements [Canvas].
func (r *Recorder) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		r.Dropped++
		return
	}
	r.Writes = append(r.Writes, Write{X: x, Y: y, Color: c})
}

// Reset discards all recorded writes but keeps the allocated memory.
func (r *Recorder) Reset() {
	r.Writes = r.Writes[:0]
	r.Dropped = 0
}
