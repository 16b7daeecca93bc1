package ggplot

import (
	"log/slog"

	"github.com/gogpu/ggplot/scene"
	"github.com/gogpu/ggplot/text"
)

// DrawingArea is the surface a chart is drawn on. It is generic over the
// backend so that calls reach the concrete backend without an interface
// dispatch.
type DrawingArea[B DrawingBackend] struct {
	backend B
}

// NewDrawingArea returns an area covering the whole of b.
func NewDrawingArea[B DrawingBackend](b B) *DrawingArea[B] {
	return &DrawingArea[B]{backend: b}
}

// Backend returns the underlying backend.
func (a *DrawingArea[B]) Backend() B {
	return a.backend
}

// Size returns the area size in pixels.
func (a *DrawingArea[B]) Size() (uint32, uint32) {
	return a.backend.Size()
}

// Fill paints the whole area with c.
func (a *DrawingArea[B]) Fill(c BackendColor) error {
	w, h := a.backend.Size()
	if w == 0 || h == 0 {
		return nil
	}
	return a.backend.DrawRect(Coord(0, 0), Coord(int32(w-1), int32(h-1)), c, true)
}

// DrawText draws s with its anchor at pos.
func (a *DrawingArea[B]) DrawText(s string, style BackendTextStyle, pos BackendCoord) error {
	return a.backend.DrawText(s, style, pos)
}

// Present flushes the backend.
func (a *DrawingArea[B]) Present() error {
	return a.backend.Present()
}

// Paint runs one paint pass: fn draws into s through a text-capable area
// of the given size. The scene and text context are borrowed only while
// fn runs; the backend fails with ErrReleased if it is used afterwards.
func Paint(width, height uint32, s *scene.Scene, tctx *text.Context,
	fn func(*DrawingArea[*TextBackend]) error, opts ...Option) error {
	b := NewTextBackend(width, height, s, tctx, opts...)
	defer b.Release()
	return paint(b, b.log, fn)
}

// PaintScene is Paint without a text engine.
func PaintScene(width, height uint32, s *scene.Scene,
	fn func(*DrawingArea[*SceneBackend]) error, opts ...Option) error {
	b := NewSceneBackend(width, height, s, opts...)
	defer b.Release()
	return paint(b, b.log, fn)
}

func paint[B DrawingBackend](b B, log *slog.Logger, fn func(*DrawingArea[B]) error) error {
	w, h := b.Size()
	log.Debug("ggplot: paint pass", slog.Uint64("width", uint64(w)), slog.Uint64("height", uint64(h)))

	if err := b.EnsurePrepared(); err != nil {
		return err
	}
	if err := fn(NewDrawingArea(b)); err != nil {
		return err
	}
	if err := b.Present(); err != nil {
		return err
	}
	log.Debug("ggplot: paint pass done")
	return nil
}
