package ggplot

import "iter"

// BackendCoord is a device pixel position, x right and y down.
type BackendCoord struct {
	X, Y int32
}

// Coord is shorthand for BackendCoord{x, y}.
func Coord(x, y int32) BackendCoord {
	return BackendCoord{X: x, Y: y}
}

// BackendColor is an RGB color with a normalized alpha in [0, 1].
//
// BackendColor implements BackendStyle as a one pixel wide stroke.
type BackendColor struct {
	RGB   [3]uint8
	Alpha float64
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) BackendColor {
	return BackendColor{RGB: [3]uint8{r, g, b}, Alpha: 1}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b uint8, alpha float64) BackendColor {
	return BackendColor{RGB: [3]uint8{r, g, b}, Alpha: alpha}
}

// Palette used by charts.
var (
	White       = RGB(255, 255, 255)
	Black       = RGB(0, 0, 0)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Transparent = RGBA(0, 0, 0, 0)
)

// Mix scales the color's alpha by value.
func (c BackendColor) Mix(value float64) BackendColor {
	c.Alpha *= value
	return c
}

// Filled returns a fill style of this color.
func (c BackendColor) Filled() ShapeStyle {
	return ShapeStyle{Paint: c, Filled: true, Width: 1}
}

// StrokeWidthOf returns a stroke style of this color and width.
func (c BackendColor) StrokeWidthOf(width uint32) ShapeStyle {
	return ShapeStyle{Paint: c, Width: width}
}

// Color implements BackendStyle.
func (c BackendColor) Color() BackendColor { return c }

// StrokeWidth implements BackendStyle.
func (c BackendColor) StrokeWidth() uint32 { return 1 }

// BackendStyle describes how a shape is stroked or filled.
type BackendStyle interface {
	Color() BackendColor
	StrokeWidth() uint32
}

// ShapeStyle is the concrete BackendStyle used by charts.
// Filled is a hint for DrawingArea helpers; backends take the fill
// flag as an explicit argument.
type ShapeStyle struct {
	Paint  BackendColor
	Filled bool
	Width  uint32
}

// Color implements BackendStyle.
func (s ShapeStyle) Color() BackendColor { return s.Paint }

// StrokeWidth implements BackendStyle.
func (s ShapeStyle) StrokeWidth() uint32 { return s.Width }

// DrawingBackend is the set of primitives a chart is drawn with.
//
// Coordinates are device pixels. Every method returns nil or an error
// matching ErrBackend.
type DrawingBackend interface {
	// Size returns the drawing surface size in pixels.
	Size() (width, height uint32)

	// EnsurePrepared is called before a batch of drawing.
	EnsurePrepared() error

	// Present is called after a batch of drawing.
	Present() error

	DrawPixel(p BackendCoord, c BackendColor) error
	DrawLine(from, to BackendCoord, style BackendStyle) error
	DrawRect(upperLeft, bottomRight BackendCoord, style BackendStyle, fill bool) error

	// DrawPath strokes the polyline through path. An empty path is a no-op.
	DrawPath(path iter.Seq[BackendCoord], style BackendStyle) error

	DrawCircle(center BackendCoord, radius uint32, style BackendStyle, fill bool) error

	// FillPolygon fills the closed polygon through vert.
	FillPolygon(vert iter.Seq[BackendCoord], style BackendStyle) error

	// DrawText draws text with its anchor at pos.
	DrawText(text string, style BackendTextStyle, pos BackendCoord) error

	// EstimateTextSize returns the size of text as DrawText would draw it.
	EstimateTextSize(text string, style BackendTextStyle) (width, height uint32, err error)

	// BlitBitmap draws a w x h RGBA8 bitmap with its top-left corner at pos.
	BlitBitmap(pos BackendCoord, w, h uint32, src []byte) error
}
