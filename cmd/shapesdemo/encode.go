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

package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for output files with an unsupported
// extension.
var ErrUnknownFormat = errors.New("unknown image format")

type format int

const (
	formatPNG format = iota
	formatBMP
	formatTIFF
)

func formatOf(fname string) (format, error) {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		return formatPNG, nil
	case ".bmp":
		return formatBMP, nil
	case ".tif", ".tiff":
		return formatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

func encode(w io.Writer, img image.Image, f format) error {
	switch f {
	case formatBMP:
		return bmp.Encode(w, img)
	case formatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// save writes img to fname, in the format given by the extension.
func save(fname string, img image.Image) (err error) {
	f, err := formatOf(fname)
	if err != nil {
		return err
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if err := encode(out, img, f); err != nil {
		return fmt.Errorf("encoding %s: %w", fname, err)
	}
	return nil
}
