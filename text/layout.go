package text

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/ggplot/scene"
)

// Weight is a font weight on the CSS 100..900 scale.
type Weight float32

// Common weights.
const (
	WeightNormal   Weight = 400
	WeightSemiBold Weight = 600
	WeightBold     Weight = 700
)

// Slant selects upright, italic or oblique faces.
type Slant uint8

const (
	SlantNormal Slant = iota
	SlantItalic
	// SlantOblique resolves to the italic face when no oblique face exists.
	SlantOblique
)

// Request describes a single line of text to lay out.
type Request struct {
	Text   string
	Size   float64 // font size in pixels
	Family string  // generic family or a font family name
	Weight Weight  // zero means WeightNormal
	Slant  Slant
}

// Layout is a shaped, positioned line of text.
//
// The layout box spans (0, 0) to (Width, Height), y down, with the
// baseline at y = Ascent.
type Layout struct {
	Width   float64
	Height  float64
	Ascent  float64
	Descent float64
	Glyphs  []scene.Glyph
	Face    *font.Face
	Size    float64
}

// GlyphRun returns the layout as a scene glyph run in layout-box space.
func (l *Layout) GlyphRun() *scene.GlyphRun {
	return &scene.GlyphRun{
		Face:   l.Face,
		Size:   l.Size,
		Glyphs: l.Glyphs,
		Width:  l.Width,
		Height: l.Height,
	}
}
