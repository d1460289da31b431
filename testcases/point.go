package testcases

import "seehuhn.de/go/shapes"

var pointCases = []TestCase{
	{
		Name:   "single",
		Shape:  shapes.NewDot(pt(3, 4), ink),
		Width:  16,
		Height: 16,
		Want:   []shapes.Point{pt(3, 4)},
	},
	{
		Name:   "outside",
		Shape:  shapes.NewDot(pt(-3, 40), ink),
		Width:  16,
		Height: 16,
		Want:   []shapes.Point{pt(-3, 40)},
	},
}
