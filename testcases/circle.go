package testcases

import "seehuhn.de/go/shapes"

var circleCases = []TestCase{
	{
		Name:   "radius_zero",
		Shape:  circle(5, 5, 0),
		Width:  16,
		Height: 16,
		Want:   []shapes.Point{pt(5, 5)},
	},
	{
		Name:   "radius_one",
		Shape:  circle(10, 10, 1),
		Width:  32,
		Height: 32,
		Want: []shapes.Point{
			pt(9, 9), pt(10, 9), pt(11, 9),
			pt(9, 10), pt(11, 10),
			pt(9, 11), pt(10, 11), pt(11, 11),
		},
	},
	{
		Name:   "radius_two",
		Shape:  circle(10, 10, 2),
		Width:  32,
		Height: 32,
		Want: []shapes.Point{
			pt(10, 8), pt(10, 12), pt(8, 10), pt(12, 10),
			pt(9, 8), pt(11, 8), pt(9, 12), pt(11, 12),
			pt(8, 9), pt(8, 11), pt(12, 9), pt(12, 11),
		},
	},
	{
		Name:   "radius_seven",
		Shape:  circle(16, 16, 7),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "medium",
		Shape:  circle(32, 32, 13),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "large",
		Shape:  circle(32, 32, 28),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "clipped",
		Shape:  circle(4, 60, 20),
		Width:  64,
		Height: 64,
	},
}

func circle(x, y, r int32) shapes.Circle {
	return shapes.NewCircle(pt(x, y), r, ink)
}
