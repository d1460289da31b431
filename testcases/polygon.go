package testcases

import "seehuhn.de/go/shapes"

var triangleCases = []TestCase{
	{
		Name:   "right_angle",
		Shape:  triangle(10, 10, 14, 10, 10, 14),
		Width:  32,
		Height: 32,
		Want: []shapes.Point{
			pt(10, 10), pt(11, 10), pt(12, 10), pt(13, 10),
			pt(10, 14), pt(11, 13), pt(12, 12), pt(13, 11),
			pt(10, 11), pt(10, 12), pt(10, 13),
		},
	},
	{
		Name:   "collapsed",
		Shape:  triangle(5, 5, 5, 5, 5, 5),
		Width:  16,
		Height: 16,
		Want:   []shapes.Point{pt(5, 5)},
	},
	{
		Name:   "wide",
		Shape:  triangle(32, 4, 4, 58, 60, 50),
		Width:  64,
		Height: 64,
	},
}

var rectangleCases = []TestCase{
	{
		Name:   "small",
		Shape:  rectangle(10, 10, 13, 12),
		Width:  32,
		Height: 32,
		Want: []shapes.Point{
			pt(10, 10), pt(11, 10), pt(12, 10), pt(13, 10),
			pt(10, 12), pt(11, 12), pt(12, 12), pt(13, 12),
			pt(10, 11), pt(13, 11),
		},
	},
	{
		Name:   "reversed",
		Shape:  rectangle(13, 12, 10, 10),
		Width:  32,
		Height: 32,
		Want: []shapes.Point{
			pt(10, 10), pt(11, 10), pt(12, 10), pt(13, 10),
			pt(10, 12), pt(11, 12), pt(12, 12), pt(13, 12),
			pt(10, 11), pt(13, 11),
		},
	},
	{
		Name:   "flat",
		Shape:  rectangle(2, 7, 6, 7),
		Width:  16,
		Height: 16,
		Want:   []shapes.Point{pt(2, 7), pt(3, 7), pt(4, 7), pt(5, 7), pt(6, 7)},
	},
	{
		Name:   "degenerate",
		Shape:  rectangle(5, 5, 5, 5),
		Width:  16,
		Height: 16,
		Want:   []shapes.Point{pt(5, 5)},
	},
	{
		Name:   "mixed_corners",
		Shape:  rectangle(50, 6, 8, 40),
		Width:  64,
		Height: 64,
	},
}

func triangle(ax, ay, bx, by, cx, cy int32) shapes.Triangle {
	return shapes.NewTriangle(pt(ax, ay), pt(bx, by), pt(cx, cy), ink)
}

func rectangle(x0, y0, x1, y1 int32) shapes.Rectangle {
	return shapes.NewRectangle(pt(x0, y0), pt(x1, y1), ink)
}
