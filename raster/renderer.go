// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggplot/internal/stroke"
	"github.com/gogpu/ggplot/scene"
)

func init() {
	scene.Register("raster", func(width, height int) scene.Renderer {
		return New(width, height, Options{})
	})
}

// Options configures a Renderer.
type Options struct {
	// Background is painted over the whole image before playback.
	// Nil leaves the image transparent.
	Background color.Color

	// GlyphCache is the number of glyph outlines kept between glyph
	// runs. Zero selects a default.
	GlyphCache int
}

// Renderer rasterizes scene commands into an *image.RGBA.
// It implements scene.Renderer.
type Renderer struct {
	img      *image.RGBA
	ras      vector.Rasterizer
	outlines *outlineCache
}

// New creates a renderer with a width x height target image.
// Negative sizes are treated as zero.
func New(width, height int, opts Options) *Renderer {
	r := &Renderer{
		img:      image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		outlines: newOutlineCache(opts.GlyphCache),
	}
	if opts.Background != nil {
		xdraw.Draw(r.img, r.img.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)
	}
	return r
}

// Render plays s back into a new width x height image.
func Render(s *scene.Scene, width, height int, opts Options) (*Renderer, error) {
	r := New(width, height, opts)
	if err := s.Playback(r); err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	return r, nil
}

// Image returns the target image.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// EncodePNG writes the target image as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Fill implements scene.Renderer.
func (r *Renderer) Fill(cmd *scene.FillCommand) error {
	r.fillPath(cmd.Shape.ToPath(), cmd.Transform, brushColor(cmd.Brush))
	return nil
}

// Stroke implements scene.Renderer.
func (r *Renderer) Stroke(cmd *scene.StrokeCommand) error {
	scale := transformScale(cmd.Transform)
	style := cmd.Style
	if !(style.Width > 0) {
		// hairline: one device pixel
		style.Width = 1 / scale
	}
	ex := stroke.NewExpander(style)
	ex.SetTolerance(0.1 / scale)
	r.fillPath(ex.Expand(cmd.Shape.ToPath()), cmd.Transform, brushColor(cmd.Brush))
	return nil
}

// DrawImage implements scene.Renderer.
func (r *Renderer) DrawImage(cmd *scene.ImageCommand) error {
	if cmd.Image.Width() == 0 || cmd.Image.Height() == 0 {
		return nil
	}
	t := cmd.Transform
	s2d := f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
	xdraw.NearestNeighbor.Transform(r.img, s2d, cmd.Image, cmd.Image.Bounds(), xdraw.Over, nil)
	return nil
}

// DrawGlyphs implements scene.Renderer.
func (r *Renderer) DrawGlyphs(cmd *scene.GlyphsCommand) error {
	run := cmd.Run
	c := brushColor(cmd.Brush)
	for _, g := range run.Glyphs {
		p := r.outlines.path(run.Face, g.ID, run.Size)
		if p.IsEmpty() {
			continue
		}
		r.fillPath(p, scene.Translate(g.X, g.Y).Then(cmd.Transform), c)
	}
	return nil
}

// fillPath rasterizes p, transformed by t, with non-zero coverage.
func (r *Renderer) fillPath(p *scene.Path, t scene.Affine, c color.Color) {
	if p.IsEmpty() {
		return
	}
	p = p.Transform(t)
	bounds, ok := r.pixelBounds(p.Bounds())
	if !ok {
		return
	}

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	pt := func(q scene.Point) (float32, float32) {
		return float32(q.X - ox), float32(q.Y - oy)
	}

	r.ras.Reset(bounds.Dx(), bounds.Dy())
	open := false
	for e := range p.Elements() {
		switch e.Verb {
		case scene.VerbMoveTo:
			if open {
				r.ras.ClosePath()
			}
			r.ras.MoveTo(pt(e.Points[0]))
			open = true
		case scene.VerbLineTo:
			r.ras.LineTo(pt(e.Points[0]))
		case scene.VerbQuadTo:
			bx, by := pt(e.Points[0])
			cx, cy := pt(e.Points[1])
			r.ras.QuadTo(bx, by, cx, cy)
		case scene.VerbCubicTo:
			bx, by := pt(e.Points[0])
			cx, cy := pt(e.Points[1])
			dx, dy := pt(e.Points[2])
			r.ras.CubeTo(bx, by, cx, cy, dx, dy)
		case scene.VerbClose:
			r.ras.ClosePath()
			open = false
		}
	}
	if open {
		r.ras.ClosePath()
	}
	r.draw(bounds, c)
}

// pixelBounds clips a scene-space box to the image, in whole pixels.
func (r *Renderer) pixelBounds(b scene.Rect) (image.Rectangle, bool) {
	if math.IsNaN(b.X0) || math.IsNaN(b.Y0) || math.IsNaN(b.X1) || math.IsNaN(b.Y1) || b.X0 > b.X1 || b.Y0 > b.Y1 {
		return image.Rectangle{}, false
	}
	img := r.img.Bounds()
	pb := image.Rect(
		clampInt(math.Floor(b.X0), img.Min.X, img.Max.X),
		clampInt(math.Floor(b.Y0), img.Min.Y, img.Max.Y),
		clampInt(math.Ceil(b.X1), img.Min.X, img.Max.X),
		clampInt(math.Ceil(b.Y1), img.Min.Y, img.Max.Y),
	)
	return pb, !pb.Empty()
}

func (r *Renderer) draw(bounds image.Rectangle, c color.Color) {
	r.ras.DrawOp = xdraw.Over
	r.ras.Draw(r.img, bounds, image.NewUniform(c), image.Point{})
}

func brushColor(b scene.Brush) color.Color {
	return color.NRGBA{R: b.Color.R, G: b.Color.G, B: b.Color.B, A: b.Color.A}
}

func clampInt(v float64, lo, hi int) int {
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

// transformScale estimates how much t magnifies lengths.
func transformScale(t scene.Affine) float64 {
	s := math.Sqrt(math.Abs(t.Determinant()))
	if s == 0 || math.IsNaN(s) {
		return 1
	}
	return s
}
