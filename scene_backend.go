package ggplot

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/gogpu/ggplot/scene"
)

// SceneBackend draws chart primitives into a scene.
//
// It has no text engine: DrawText draws nothing and EstimateTextSize
// fails with ErrNoTextEngine. Use TextBackend for charts with labels.
//
// A SceneBackend borrows its scene for one paint pass. After Release
// every drawing method returns ErrReleased.
type SceneBackend struct {
	width, height uint32
	scene         *scene.Scene
	log           *slog.Logger
}

var _ DrawingBackend = (*SceneBackend)(nil)

// NewSceneBackend returns a backend of the given pixel size that appends
// to s.
func NewSceneBackend(width, height uint32, s *scene.Scene, opts ...Option) *SceneBackend {
	o := applyOptions(opts)
	return &SceneBackend{width: width, height: height, scene: s, log: o.logger}
}

// Scene returns the borrowed scene, or nil once released.
func (b *SceneBackend) Scene() *scene.Scene {
	return b.scene
}

// Release ends the borrow of the scene.
func (b *SceneBackend) Release() {
	b.scene = nil
}

// Size implements DrawingBackend.
func (b *SceneBackend) Size() (uint32, uint32) {
	return b.width, b.height
}

// EnsurePrepared implements DrawingBackend.
func (b *SceneBackend) EnsurePrepared() error {
	return b.check("ensure prepared")
}

// Present implements DrawingBackend.
func (b *SceneBackend) Present() error {
	return b.check("present")
}

// DrawPixel fills the 1x1 rectangle at p.
func (b *SceneBackend) DrawPixel(p BackendCoord, c BackendColor) error {
	if err := b.check("draw pixel"); err != nil {
		return err
	}
	x, y := float64(p.X), float64(p.Y)
	b.scene.Fill(scene.FillNonZero, scene.Identity(), brush(c), scene.NewRect(x, y, x+1, y+1))
	return nil
}

// DrawLine strokes the segment between the pixel centers of from and to.
func (b *SceneBackend) DrawLine(from, to BackendCoord, style BackendStyle) error {
	if err := b.check("draw line"); err != nil {
		return err
	}
	line := scene.Line{P0: ToMid(from), P1: ToMid(to)}
	b.scene.Stroke(strokeStyle(style), scene.Identity(), brush(style.Color()), line)
	return nil
}

// DrawRect fills the pixels from upperLeft to bottomRight inclusive, or
// strokes the outline through their centers.
func (b *SceneBackend) DrawRect(upperLeft, bottomRight BackendCoord, style BackendStyle, fill bool) error {
	if err := b.check("draw rect"); err != nil {
		return err
	}
	if fill {
		b.scene.Fill(scene.FillNonZero, scene.Identity(), brush(style.Color()), fillRect(upperLeft, bottomRight))
	} else {
		b.scene.Stroke(strokeStyle(style), scene.Identity(), brush(style.Color()), strokeRect(upperLeft, bottomRight))
	}
	return nil
}

// DrawPath strokes the polyline through path.
// Transparent strokes are still recorded.
func (b *SceneBackend) DrawPath(path iter.Seq[BackendCoord], style BackendStyle) error {
	if err := b.check("draw path"); err != nil {
		return err
	}
	p := scene.PathFromElements(PathElements(path))
	if p.IsEmpty() {
		return nil
	}
	b.scene.Stroke(strokeStyle(style), scene.Identity(), brush(style.Color()), p)
	return nil
}

// DrawCircle fills or strokes the circle around the center of the
// center pixel.
func (b *SceneBackend) DrawCircle(center BackendCoord, radius uint32, style BackendStyle, fill bool) error {
	if err := b.check("draw circle"); err != nil {
		return err
	}
	c := scene.Circle{Center: ToMid(center), Radius: float64(radius)}
	if fill {
		b.scene.Fill(scene.FillNonZero, scene.Identity(), brush(style.Color()), c)
	} else {
		b.scene.Stroke(strokeStyle(style), scene.Identity(), brush(style.Color()), c)
	}
	return nil
}

// FillPolygon fills the closed polygon through vert with the non-zero
// rule. A color whose alpha is not positive records nothing.
func (b *SceneBackend) FillPolygon(vert iter.Seq[BackendCoord], style BackendStyle) error {
	if err := b.check("fill polygon"); err != nil {
		return err
	}
	c := style.Color()
	if !(c.Alpha > 0) {
		b.log.Debug("ggplot: transparent polygon skipped")
		return nil
	}
	p := scene.PathFromElements(ClosedPathElements(vert))
	if p.IsEmpty() {
		return nil
	}
	b.scene.Fill(scene.FillNonZero, scene.Identity(), brush(c), p)
	return nil
}

// DrawText draws nothing; SceneBackend has no text engine.
func (b *SceneBackend) DrawText(string, BackendTextStyle, BackendCoord) error {
	return b.check("draw text")
}

// EstimateTextSize always fails with ErrNoTextEngine.
func (b *SceneBackend) EstimateTextSize(string, BackendTextStyle) (uint32, uint32, error) {
	if err := b.check("estimate text size"); err != nil {
		return 0, 0, err
	}
	return 0, 0, backendError("estimate text size", ErrNoTextEngine)
}

// BlitBitmap copies the first w*h*4 bytes of src into a new scene image
// and draws it with its top-left corner at pos. A shorter src fails and
// records nothing.
func (b *SceneBackend) BlitBitmap(pos BackendCoord, w, h uint32, src []byte) error {
	if err := b.check("blit bitmap"); err != nil {
		return err
	}
	if h != 0 && uint64(w) > uint64(len(src))/4/uint64(h) {
		return backendError("blit bitmap", fmt.Errorf("%w: need %dx%dx4 bytes, got %d",
			scene.ErrImageData, w, h, len(src)))
	}
	img, err := scene.NewImage(int(w), int(h), src)
	if err != nil {
		return backendError("blit bitmap", err)
	}
	o := ToCorner(pos)
	b.scene.DrawImage(img, scene.Translate(o.X, o.Y))
	return nil
}

func (b *SceneBackend) check(op string) error {
	if b.scene == nil {
		b.log.Debug("ggplot: call on released backend", slog.String("op", op))
		return backendError(op, ErrReleased)
	}
	return nil
}
