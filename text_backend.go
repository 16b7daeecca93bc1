package ggplot

import (
	"github.com/gogpu/ggplot/scene"
	"github.com/gogpu/ggplot/text"
)

// TextBackend is a SceneBackend that can draw and measure text.
//
// Every primitive other than text is handled by the embedded
// SceneBackend. The text context is borrowed for the same paint pass as
// the scene and is dropped by Release.
type TextBackend struct {
	*SceneBackend
	text *text.Context
}

var _ DrawingBackend = (*TextBackend)(nil)

// NewTextBackend returns a backend that appends to s and lays out text
// with tctx.
func NewTextBackend(width, height uint32, s *scene.Scene, tctx *text.Context, opts ...Option) *TextBackend {
	return &TextBackend{
		SceneBackend: NewSceneBackend(width, height, s, opts...),
		text:         tctx,
	}
}

// Release ends the borrow of the scene and the text context.
func (b *TextBackend) Release() {
	b.SceneBackend.Release()
	b.text = nil
}

// DrawText shapes text and draws the run with its anchor at pos.
func (b *TextBackend) DrawText(s string, style BackendTextStyle, pos BackendCoord) error {
	const op = "draw text"
	if err := b.check(op); err != nil {
		return err
	}
	l, err := b.layout(op, s, style)
	if err != nil {
		return err
	}
	t := TextTransform(l.Width, l.Height, style.Transform(), style.Anchor(), pos)
	b.scene.DrawGlyphs(l.GlyphRun(), t, brush(style.Color()))
	return nil
}

// EstimateTextSize shapes text and returns its size rounded up to whole
// pixels. Width and height are swapped for quarter turns.
func (b *TextBackend) EstimateTextSize(s string, style BackendTextStyle) (uint32, uint32, error) {
	const op = "estimate text size"
	if err := b.check(op); err != nil {
		return 0, 0, err
	}
	l, err := b.layout(op, s, style)
	if err != nil {
		return 0, 0, err
	}
	w, h := textExtent(l.Width, l.Height, style.Transform())
	return w, h, nil
}

func (b *TextBackend) layout(op, s string, style BackendTextStyle) (*text.Layout, error) {
	if b.text == nil {
		return nil, backendError(op, ErrNoTextEngine)
	}
	l, err := b.text.Layout(textRequest(s, style))
	if err != nil {
		return nil, backendError(op, err)
	}
	return l, nil
}

// textRequest maps a backend text style onto a layout request.
// Bold is a weight; the other variants are slants.
func textRequest(s string, style BackendTextStyle) text.Request {
	req := text.Request{
		Text:   s,
		Size:   style.Size(),
		Family: textFamily(style.Family()),
		Weight: text.WeightNormal,
	}
	switch style.Style() {
	case FontStyleOblique:
		req.Slant = text.SlantOblique
	case FontStyleItalic:
		req.Slant = text.SlantItalic
	case FontStyleBold:
		req.Weight = text.WeightBold
	}
	return req
}

func textFamily(f FontFamily) string {
	switch f {
	case FamilySerif:
		return text.FamilySerif
	case FamilySansSerif:
		return text.FamilySansSerif
	case FamilyMonospace:
		return text.FamilyMonospace
	default:
		return string(f)
	}
}
