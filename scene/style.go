package scene

import "image/color"

// FillStyle represents the fill rule for paths.
type FillStyle uint8

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillStyle = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// String returns the fill rule name.
func (f FillStyle) String() string {
	if f == FillEvenOdd {
		return "EvenOdd"
	}
	return "NonZero"
}

// LineCap represents line endpoint shapes.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin represents line join shapes.
type LineJoin uint8

const (
	LineJoinRound LineJoin = iota
	LineJoinMiter
	LineJoinBevel
)

// StrokeStyle contains stroke parameters.
type StrokeStyle struct {
	Width      float64
	MiterLimit float64
	Cap        LineCap
	Join       LineJoin
}

// DefaultStrokeStyle returns a 1px stroke with butt caps and round joins.
func DefaultStrokeStyle() *StrokeStyle {
	return &StrokeStyle{
		Width:      1.0,
		MiterLimit: 4.0,
		Cap:        LineCapButt,
		Join:       LineJoinRound,
	}
}

// NewStrokeStyle returns a stroke of the given width with default caps and joins.
func NewStrokeStyle(width float64) *StrokeStyle {
	s := DefaultStrokeStyle()
	s.Width = width
	return s
}

// WithCap returns a copy of the style with the given end cap.
func (s StrokeStyle) WithCap(c LineCap) *StrokeStyle {
	s.Cap = c
	return &s
}

// Color is an 8-bit per channel, non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
)

// RGBA implements color.Color with premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// BrushKind identifies the type of brush.
type BrushKind uint8

const (
	BrushSolid BrushKind = iota
)

// Brush represents a paint source for fill, stroke and glyph commands.
type Brush struct {
	Kind  BrushKind
	Color Color
}

// SolidBrush creates a solid color brush.
func SolidBrush(c Color) Brush {
	return Brush{Kind: BrushSolid, Color: c}
}
