package scene

import "github.com/go-text/typesetting/font"

// Glyph is a positioned glyph inside a GlyphRun.
// X and Y locate the glyph origin on the baseline, in run space (y down).
type Glyph struct {
	ID   font.GID
	X, Y float64
}

// GlyphRun is a sequence of shaped glyphs that share a face and size.
type GlyphRun struct {
	Face   *font.Face
	Size   float64
	Glyphs []Glyph

	// Width and Height give the extent of the run's layout box.
	Width  float64
	Height float64
}

// Bounds returns the layout box of the run in run space.
func (r *GlyphRun) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: r.Width, Y1: r.Height}
}

// IsEmpty reports whether the run has nothing to draw.
func (r *GlyphRun) IsEmpty() bool {
	return r == nil || r.Face == nil || len(r.Glyphs) == 0
}
