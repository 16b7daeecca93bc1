package scene

import "math"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFill       CommandType = iota // Fill a shape
	CmdStroke                        // Stroke a shape
	CmdDrawImage                     // Draw an image
	CmdDrawGlyphs                    // Draw a glyph run
)

var commandTypeNames = [...]string{
	CmdFill:       "Fill",
	CmdStroke:     "Stroke",
	CmdDrawImage:  "DrawImage",
	CmdDrawGlyphs: "DrawGlyphs",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// Bounds returns the scene-space bounding box touched by the command.
	Bounds() Rect
}

// FillCommand fills a shape with a brush.
type FillCommand struct {
	Style     FillStyle
	Transform Affine
	Brush     Brush
	Shape     Shape
}

// Type implements Command.
func (c *FillCommand) Type() CommandType { return CmdFill }

// Bounds implements Command.
func (c *FillCommand) Bounds() Rect {
	return transformBounds(c.Shape.Bounds(), c.Transform)
}

// StrokeCommand strokes the outline of a shape.
type StrokeCommand struct {
	Style     StrokeStyle
	Transform Affine
	Brush     Brush
	Shape     Shape
}

// Type implements Command.
func (c *StrokeCommand) Type() CommandType { return CmdStroke }

// Bounds implements Command.
func (c *StrokeCommand) Bounds() Rect {
	pad := c.Style.Width / 2
	if c.Style.Cap == LineCapSquare {
		pad *= math.Sqrt2
	}
	if c.Style.Join == LineJoinMiter {
		pad = max(pad, c.Style.Width*c.Style.MiterLimit/2)
	}
	return transformBounds(c.Shape.Bounds().Inset(pad), c.Transform)
}

// ImageCommand draws an image with its top-left corner at the transformed origin.
type ImageCommand struct {
	Image     *Image
	Transform Affine
}

// Type implements Command.
func (c *ImageCommand) Type() CommandType { return CmdDrawImage }

// Bounds implements Command.
func (c *ImageCommand) Bounds() Rect {
	r := Rect{X1: float64(c.Image.Width()), Y1: float64(c.Image.Height())}
	return transformBounds(r, c.Transform)
}

// GlyphsCommand draws a shaped glyph run.
type GlyphsCommand struct {
	Run       *GlyphRun
	Transform Affine
	Brush     Brush
}

// Type implements Command.
func (c *GlyphsCommand) Type() CommandType { return CmdDrawGlyphs }

// Bounds implements Command.
func (c *GlyphsCommand) Bounds() Rect {
	return transformBounds(c.Run.Bounds(), c.Transform)
}
