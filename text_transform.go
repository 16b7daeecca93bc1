package ggplot

import (
	"math"

	"github.com/gogpu/ggplot/scene"
)

// TextTransform places a width x height text box: centered on the
// origin, rotated by t, shifted so that anchor a sits on the origin, then
// moved to pos.
//
// Quarter turns swap the extents used for the anchor shift.
func TextTransform(width, height float64, t FontTransform, a Anchor, pos BackendCoord) scene.Affine {
	m := scene.Translate(-width/2, -height/2)

	switch t {
	case Rotate90:
		width, height = height, width
		m = m.ThenRotate(math.Pi / 2)
	case Rotate180:
		m = m.ThenRotate(math.Pi)
	case Rotate270:
		width, height = height, width
		m = m.ThenRotate(-math.Pi / 2)
	}

	switch a.H {
	case HPosLeft:
		m = m.ThenTranslate(width/2, 0)
	case HPosRight:
		m = m.ThenTranslate(-width/2, 0)
	}
	switch a.V {
	case VPosTop:
		m = m.ThenTranslate(0, height/2)
	case VPosBottom:
		m = m.ThenTranslate(0, -height/2)
	}

	return m.ThenTranslate(float64(pos.X), float64(pos.Y))
}

// textExtent rounds a measured box up to whole pixels, swapping the
// axes for quarter turns.
func textExtent(width, height float64, t FontTransform) (uint32, uint32) {
	w, h := ceilPixels(width), ceilPixels(height)
	if t == Rotate90 || t == Rotate270 {
		return h, w
	}
	return w, h
}

func ceilPixels(v float64) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(math.Ceil(v))
}
