package shapes

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectangleOutline(t *testing.T) {
	corners := [][2]Point{
		{{2, 3}, {9, 7}},
		{{9, 7}, {2, 3}},
		{{9, 3}, {2, 7}},
		{{2, 7}, {9, 3}},
		{{-4, 5}, {4, -5}},
		{{3, 3}, {3, 3}},
		{{0, 4}, {8, 4}},
		{{6, 0}, {6, 9}},
		{{1, 1}, {2, 2}},
	}
	for _, c := range corners {
		r := NewRectangle(c[0], c[1], White)
		pts := r.Points()
		got := pointSet(pts)
		require.Len(t, got, len(pts), "%v: duplicate pixels", c)

		x0, x1 := min(c[0].X, c[1].X), max(c[0].X, c[1].X)
		y0, y1 := min(c[0].Y, c[1].Y), max(c[0].Y, c[1].Y)
		want := make(map[Point]int)
		for x := x0 - 1; x <= x1+1; x++ {
			for y := y0 - 1; y <= y1+1; y++ {
				inside := x >= x0 && x <= x1 && y >= y0 && y <= y1
				onEdge := x == x0 || x == x1 || y == y0 || y == y1
				if inside && onEdge {
					want[Point{x, y}] = 1
				}
			}
		}
		require.True(t, sameSet(got, want), "%v: got %v", c, pts)
	}
}

func TestRectangleDraw(t *testing.T) {
	green := Solid{G: 255, A: 255}
	r := NewRectangle(Point{1, 1}, Point{3, 3}, green)
	img := NewImage(5, 5)
	r.Draw(img)

	for y := range 5 {
		for x := range 5 {
			onEdge := (x == 1 || x == 3) && y >= 1 && y <= 3 ||
				(y == 1 || y == 3) && x >= 1 && x <= 3
			got := img.RGBAAt(x, y)
			if onEdge {
				require.Equal(t, green.NextColor(), got, "pixel (%d,%d)", x, y)
			} else {
				require.Zero(t, got.A, "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestTriangleIsUnionOfEdges(t *testing.T) {
	a, b, c := Point{3, 1}, Point{40, 17}, Point{12, 30}
	tri := NewTriangle(a, b, c, White)

	want := pointSet(nil)
	for _, l := range []Line{{Start: a, End: b}, {Start: b, End: c}, {Start: c, End: a}} {
		for _, p := range l.Points() {
			want[p]++
		}
	}
	require.True(t, sameSet(pointSet(tri.Points()), want))
}

func TestTriangleEdgeColors(t *testing.T) {
	colors := NewSeededColors(7)
	tri := NewTriangle(Point{0, 0}, Point{10, 0}, Point{0, 10}, colors)

	ref := NewSeededColors(7)
	for i, e := range tri.Edges() {
		require.Equal(t, ref.NextColor(), e.Color, "edge %d", i)
	}

	rec := NewRecorder(20, 20)
	tri.Draw(rec)
	require.Len(t, rec.Writes, 30)
	for i, w := range rec.Writes {
		require.Equal(t, tri.Colors[i/10], w.Color, "write %d", i)
	}
}

func TestTriangleCollapsed(t *testing.T) {
	p := Point{5, 5}
	tri := NewTriangle(p, p, p, White)
	require.Equal(t, []Point{p, p, p}, tri.Points())
}

func TestTriangleLiteral(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	tri := Triangle{
		A:      Point{10, 10},
		B:      Point{20, 10},
		C:      Point{10, 20},
		Colors: [3]color.RGBA{red, red, red},
	}

	want := pointSet(nil)
	for _, l := range []Line{
		{Start: tri.A, End: tri.B},
		{Start: tri.B, End: tri.C},
		{Start: tri.C, End: tri.A},
	} {
		for _, p := range l.Points() {
			want[p]++
		}
	}
	require.True(t, sameSet(pointSet(tri.Points()), want))
	require.NotContains(t, pointSet(tri.Points()), Point{0, 0})

	rec := NewRecorder(32, 32)
	tri.Draw(rec)
	require.Len(t, rec.Writes, 30)
	for _, w := range rec.Writes {
		require.Equal(t, red, w.Color)
		require.Contains(t, want, Point{int32(w.X), int32(w.Y)})
	}
}

func TestTriangleMovedVertex(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{8, 0}, Point{0, 8}, White)
	tri.A = Point{2, 2}

	edges := tri.Edges()
	require.Equal(t, Point{2, 2}, edges[0].Start)
	require.Equal(t, Point{2, 2}, edges[2].End)
	require.Contains(t, pointSet(tri.Points()), Point{2, 2})
	require.NotContains(t, pointSet(tri.Points()), Point{0, 0})
}
