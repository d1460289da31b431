// Command export writes the test case definitions, together with the pixels
// they rasterise to, as JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

const outFile = "testdata/testcases.json"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		return err
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}
	return nil
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Path   []jsonSegment `json:"path"`
	Pixels [][2]int32    `json:"pixels"`
	Pinned bool          `json:"pinned,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Shape.Outline()),
		Pinned: tc.Want != nil,
	}

	// record what a canvas of the given size actually receives
	rec := shapes.NewRecorder(tc.Width, tc.Height)
	tc.Shape.Draw(rec)
	for _, w := range rec.Writes {
		jtc.Pixels = append(jtc.Pixels, [2]int32{int32(w.X), int32(w.Y)})
	}
	return jtc
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	coordIdx := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		var n int
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i := range n {
			v := p.Coords[coordIdx+i]
			seg.Pts[i] = []float64{v.X, v.Y}
		}
		coordIdx += n
		segs = append(segs, seg)
	}
	return segs
}
