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

// Command shapesdemo draws a random scene of outlined shapes and saves it
// as an image file.
//
// The scene consists of one random line, one random point, a fixed
// rectangle, a fixed triangle and a number of random circles. The output
// format is chosen by the file extension: .png, .bmp, .tif or .tiff.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"seehuhn.de/go/shapes"
)

type config struct {
	Width, Height int
	Output        string
	Seed          uint64
	Circles       int
	Verbose       bool
}

var errBadConfig = errors.New("invalid configuration")

func parseFlags(args []string) (*config, error) {
	conf := &config{}
	fs := flag.NewFlagSet("shapesdemo", flag.ContinueOnError)
	fs.IntVar(&conf.Width, "width", 1000, "image width")
	fs.IntVar(&conf.Height, "height", 1000, "image height")
	fs.StringVar(&conf.Output, "output", "image.png", "output file")
	fs.Uint64Var(&conf.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.IntVar(&conf.Circles, "circles", 49, "number of random circles")
	fs.BoolVar(&conf.Verbose, "v", false, "log every drawn shape")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if conf.Width <= 0 || conf.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", errBadConfig, conf.Width, conf.Height)
	}
	if conf.Width > 1<<16 || conf.Height > 1<<16 {
		return nil, fmt.Errorf("%w: image size %dx%d too large", errBadConfig, conf.Width, conf.Height)
	}
	if conf.Circles < 0 {
		return nil, fmt.Errorf("%w: negative circle count %d", errBadConfig, conf.Circles)
	}
	if _, err := formatOf(conf.Output); err != nil {
		return nil, err
	}
	if conf.Seed == 0 {
		conf.Seed = uint64(time.Now().UnixNano())
	}
	return conf, nil
}

func main() {
	conf, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if conf.Verbose {
		shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(conf); err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %s (%dx%d, seed %d)", conf.Output, conf.Width, conf.Height, conf.Seed)
}

func run(conf *config) error {
	img := shapes.NewImage(conf.Width, conf.Height)
	for _, s := range scene(conf) {
		s.Draw(img)
	}
	return save(conf.Output, img.RGBA())
}

// scene builds the demo shapes. The same configuration always gives the
// same scene.
func scene(conf *config) []shapes.Drawable {
	rng := rand.New(rand.NewPCG(conf.Seed, conf.Seed>>32|conf.Seed<<32))
	colors := shapes.NewRandomColors(rng)
	w, h := int32(conf.Width), int32(conf.Height)

	res := []shapes.Drawable{
		shapes.RandomLine(rng, colors, w, h),
		shapes.RandomDot(rng, colors, w, h),
		shapes.NewRectangle(shapes.NewPoint(150, 150), shapes.NewPoint(50, 50), colors),
		shapes.NewTriangle(
			shapes.NewPoint(500, 500),
			shapes.NewPoint(250, 700),
			shapes.NewPoint(700, 800),
			colors),
	}
	for range conf.Circles {
		res = append(res, shapes.RandomCircle(rng, colors, w, h))
	}
	return res
}
