package ggplot

import (
	"math"

	"github.com/gogpu/ggplot/scene"
)

// TranslateColor converts c to a scene color.
//
// Alpha is clamped to [0, 1], NaN counts as 0, and the 8-bit channel is
// round(alpha*255) with halves rounded away from zero.
func TranslateColor(c BackendColor) scene.Color {
	return scene.Color{R: c.RGB[0], G: c.RGB[1], B: c.RGB[2], A: alpha8(c.Alpha)}
}

func alpha8(a float64) uint8 {
	if !(a > 0) {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(math.Round(a * 255))
}

func brush(c BackendColor) scene.Brush {
	return scene.SolidBrush(TranslateColor(c))
}

// strokeStyle derives the scene stroke for a backend style: its width
// with square end caps.
func strokeStyle(s BackendStyle) *scene.StrokeStyle {
	return scene.NewStrokeStyle(float64(s.StrokeWidth())).WithCap(scene.LineCapSquare)
}
