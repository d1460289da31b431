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
	"math/rand/v2"
)

// ColorSource hands out the colors for newly constructed shapes.
// Every shape asks for exactly one color, except [Triangle], which asks
// for one color per edge.
type ColorSource interface {
	NextColor() color.RGBA
}

// RandomColors is a ColorSource producing opaque colors with red, green
// and blue drawn uniformly from [0, 255).
//
// A RandomColors is not safe for concurrent use.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors returns a RandomColors which draws from rng.
func NewRandomColors(rng *rand.Rand) *RandomColors {
	return &RandomColors{rng: rng}
}

// NewSeededColors returns a RandomColors with its own generator, seeded
// with seed. The same seed always gives the same sequence of colors.
func NewSeededColors(seed uint64) *RandomColors {
	return NewRandomColors(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NextColor implements [ColorSource].
func (c *RandomColors) NextColor() color.RGBA {
	return color.RGBA{
		R: uint8(c.rng.IntN(255)),
		G: uint8(c.rng.IntN(255)),
		B: uint8(c.rng.IntN(255)),
		A: 255,
	}
}

// Solid is a ColorSource which always returns the same color.
type Solid color.RGBA

// NextColor implements [ColorSource].
func (s Solid) NextColor() color.RGBA {
	return color.RGBA(s)
}

// White is an opaque white ColorSource.
var White = Solid{R: 255, G: 255, B: 255, A: 255}
