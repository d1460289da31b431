package testcases

import "seehuhn.de/go/shapes"

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Shape:  line(10, 20, 14, 20),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(10, 20), pt(11, 20), pt(12, 20), pt(13, 20)},
	},
	{
		Name:   "horizontal_reversed",
		Shape:  line(14, 20, 10, 20),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(10, 20), pt(11, 20), pt(12, 20), pt(13, 20)},
	},
	{
		Name:   "vertical",
		Shape:  line(5, 5, 5, 9),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(5, 5), pt(5, 6), pt(5, 7), pt(5, 8)},
	},
	{
		Name:   "diagonal",
		Shape:  line(2, 2, 6, 6),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(2, 2), pt(3, 3), pt(4, 4), pt(5, 5)},
	},
	{
		Name:   "anti_diagonal",
		Shape:  line(6, 2, 2, 6),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(2, 6), pt(3, 5), pt(4, 4), pt(5, 3)},
	},
	{
		Name:   "shallow",
		Shape:  line(10, 10, 14, 12),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(10, 10), pt(11, 11), pt(12, 11), pt(13, 12)},
	},
	{
		Name:   "steep",
		Shape:  line(10, 10, 12, 14),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(10, 10), pt(11, 11), pt(11, 12), pt(12, 13)},
	},
	{
		Name:   "steep_up_left",
		Shape:  line(20, 30, 18, 26),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(18, 26), pt(19, 27), pt(19, 28), pt(20, 29)},
	},
	{
		Name:   "degenerate",
		Shape:  line(7, 7, 7, 7),
		Width:  64,
		Height: 64,
		Want:   []shapes.Point{pt(7, 7)},
	},
	{
		Name:   "off_canvas",
		Shape:  line(-5, 3, 5, 3),
		Width:  64,
		Height: 64,
		Want: []shapes.Point{
			pt(-5, 3), pt(-4, 3), pt(-3, 3), pt(-2, 3), pt(-1, 3),
			pt(0, 3), pt(1, 3), pt(2, 3), pt(3, 3), pt(4, 3),
		},
	},
	{
		Name:   "long_shallow",
		Shape:  line(3, 5, 60, 20),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "long_shallow_down",
		Shape:  line(60, 8, 3, 40),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "long_steep",
		Shape:  line(40, 2, 30, 61),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "long_steep_right",
		Shape:  line(5, 60, 25, 3),
		Width:  64,
		Height: 64,
	},
}

func line(x0, y0, x1, y1 int32) shapes.Line {
	return shapes.NewLine(pt(x0, y0), pt(x1, y1), ink)
}
