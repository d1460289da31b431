// Package shapes rasterises outlines of points, lines, circles, triangles
// and rectangles onto a pixel canvas.
//
// The rasterisers work on integer pixel coordinates only. They never clip:
// every computed pixel is handed to the [Canvas], which drops writes that
// fall outside its bounds.
//
// Each shape gets its color once, at construction time, from a
// [ColorSource]. Use [NewRandomColors] with a fixed seed for reproducible
// output, or [Solid] when all pixels should have the same color.
package shapes

//go:generate go run ./testcases/export
