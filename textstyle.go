package ggplot

// FontFamily names a font family. The three generic families are
// predefined; any other value names a specific family.
type FontFamily string

// Generic families.
const (
	FamilySerif     FontFamily = "serif"
	FamilySansSerif FontFamily = "sans-serif"
	FamilyMonospace FontFamily = "monospace"
)

// FontStyle selects a face variant. Variants are exclusive: bold text
// is upright.
type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleOblique
	FontStyleItalic
	FontStyleBold
)

// String returns the style name.
func (s FontStyle) String() string {
	switch s {
	case FontStyleOblique:
		return "oblique"
	case FontStyleItalic:
		return "italic"
	case FontStyleBold:
		return "bold"
	default:
		return "normal"
	}
}

// FontTransform is a rotation of the text run around its anchor.
// Rotations are clockwise on screen.
type FontTransform uint8

const (
	TransformNone FontTransform = iota
	Rotate90
	Rotate180
	Rotate270
)

// HPos is the horizontal anchor of a text run.
type HPos uint8

const (
	HPosLeft HPos = iota
	HPosCenter
	HPosRight
)

// VPos is the vertical anchor of a text run.
type VPos uint8

const (
	VPosTop VPos = iota
	VPosCenter
	VPosBottom
)

// Anchor locates the point of a text run that is placed at the draw position.
type Anchor struct {
	H HPos
	V VPos
}

// BackendTextStyle describes how text is drawn.
type BackendTextStyle interface {
	Color() BackendColor
	Size() float64
	Family() FontFamily
	Style() FontStyle
	Transform() FontTransform
	Anchor() Anchor
}

// TextStyle is the concrete BackendTextStyle used by charts.
// The With methods return modified copies.
type TextStyle struct {
	family    FontFamily
	size      float64
	style     FontStyle
	transform FontTransform
	anchor    Anchor
	color     BackendColor
}

// NewTextStyle returns black, upright, unrotated text anchored at its
// top-left corner.
func NewTextStyle(family FontFamily, size float64) TextStyle {
	return TextStyle{family: family, size: size, color: Black}
}

// WithColor returns s drawn in c.
func (s TextStyle) WithColor(c BackendColor) TextStyle {
	s.color = c
	return s
}

// WithStyle returns s with weight and slant fs.
func (s TextStyle) WithStyle(fs FontStyle) TextStyle {
	s.style = fs
	return s
}

// WithTransform returns s rotated by t.
func (s TextStyle) WithTransform(t FontTransform) TextStyle {
	s.transform = t
	return s
}

// WithAnchor returns s anchored at (h, v) of its box.
func (s TextStyle) WithAnchor(h HPos, v VPos) TextStyle {
	s.anchor = Anchor{H: h, V: v}
	return s
}

// Color, Size, Family, Style, Transform and Anchor implement BackendTextStyle.

func (s TextStyle) Color() BackendColor      { return s.color }
func (s TextStyle) Size() float64            { return s.size }
func (s TextStyle) Family() FontFamily       { return s.family }
func (s TextStyle) Style() FontStyle         { return s.style }
func (s TextStyle) Transform() FontTransform { return s.transform }
func (s TextStyle) Anchor() Anchor           { return s.anchor }
