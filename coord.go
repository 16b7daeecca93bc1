package ggplot

import "github.com/gogpu/ggplot/scene"

// ToMid maps c to the center of its pixel. Strokes use it so that a one
// pixel line at N covers pixel N instead of straddling N-1 and N.
func ToMid(c BackendCoord) scene.Point {
	return scene.Point{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// ToCorner maps c to the top-left corner of its pixel. Fills use it.
func ToCorner(c BackendCoord) scene.Point {
	return scene.Point{X: float64(c.X), Y: float64(c.Y)}
}

// fillRect covers the pixels from ul to br inclusive.
func fillRect(ul, br BackendCoord) scene.Rect {
	p0, p1 := ToCorner(ul), ToCorner(br)
	return scene.Rect{X0: p0.X, Y0: p0.Y, X1: p1.X + 1, Y1: p1.Y + 1}
}

// strokeRect is the outline through the pixel centers of ul and br.
func strokeRect(ul, br BackendCoord) scene.Rect {
	return scene.RectFromPoints(ToMid(ul), ToMid(br))
}
