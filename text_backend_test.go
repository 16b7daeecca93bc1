package ggplot

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/ggplot/scene"
	"github.com/gogpu/ggplot/text"
)

func newTextBackend() (*TextBackend, *scene.Scene, *text.Context) {
	s := scene.NewScene()
	tctx := text.NewContext()
	return NewTextBackend(200, 100, s, tctx), s, tctx
}

func TestTextRequest(t *testing.T) {
	tests := []struct {
		style  FontStyle
		weight text.Weight
		slant  text.Slant
	}{
		{FontStyleNormal, text.WeightNormal, text.SlantNormal},
		{FontStyleOblique, text.WeightNormal, text.SlantOblique},
		{FontStyleItalic, text.WeightNormal, text.SlantItalic},
		{FontStyleBold, text.WeightBold, text.SlantNormal},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			req := textRequest("abc", NewTextStyle(FamilySerif, 14).WithStyle(tt.style))
			if req.Text != "abc" || req.Size != 14 {
				t.Errorf("request text/size = %q/%v, want abc/14", req.Text, req.Size)
			}
			if req.Weight != tt.weight {
				t.Errorf("Weight = %v, want %v", req.Weight, tt.weight)
			}
			if req.Slant != tt.slant {
				t.Errorf("Slant = %v, want %v", req.Slant, tt.slant)
			}
		})
	}
}

func TestTextFamily(t *testing.T) {
	tests := []struct {
		in   FontFamily
		want string
	}{
		{FamilySerif, text.FamilySerif},
		{FamilySansSerif, text.FamilySansSerif},
		{FamilyMonospace, text.FamilyMonospace},
		{FontFamily("Go Mono"), "Go Mono"},
	}
	for _, tt := range tests {
		if got := textFamily(tt.in); got != tt.want {
			t.Errorf("textFamily(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// transformedBox returns the bounds of the w x h box under m.
func transformedBox(m scene.Affine, w, h float64) scene.Rect {
	r := scene.EmptyRect()
	for _, p := range []scene.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}} {
		q := m.TransformPoint(p)
		r = r.Union(scene.Rect{X0: q.X, Y0: q.Y, X1: q.X, Y1: q.Y})
	}
	return r
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTextTransform(t *testing.T) {
	const w, h = 10.0, 4.0
	pos := Coord(50, 20)

	tests := []struct {
		name   string
		tr     FontTransform
		anchor Anchor
		want   scene.Rect
	}{
		{"none top-left", TransformNone, Anchor{HPosLeft, VPosTop}, scene.NewRect(50, 20, 60, 24)},
		{"none center", TransformNone, Anchor{HPosCenter, VPosCenter}, scene.NewRect(45, 18, 55, 22)},
		{"none bottom-right", TransformNone, Anchor{HPosRight, VPosBottom}, scene.NewRect(40, 16, 50, 20)},
		{"90 top-left", Rotate90, Anchor{HPosLeft, VPosTop}, scene.NewRect(50, 20, 54, 30)},
		{"90 center", Rotate90, Anchor{HPosCenter, VPosCenter}, scene.NewRect(48, 15, 52, 25)},
		{"180 top-left", Rotate180, Anchor{HPosLeft, VPosTop}, scene.NewRect(50, 20, 60, 24)},
		{"270 right-bottom", Rotate270, Anchor{HPosRight, VPosBottom}, scene.NewRect(46, 10, 50, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transformedBox(TextTransform(w, h, tt.tr, tt.anchor, pos), w, h)
			if !near(got.X0, tt.want.X0) || !near(got.Y0, tt.want.Y0) ||
				!near(got.X1, tt.want.X1) || !near(got.Y1, tt.want.Y1) {
				t.Errorf("text box = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTextTransformRotationDirection(t *testing.T) {
	// A quarter turn maps the run's baseline direction from +x to +y.
	m := TextTransform(10, 4, Rotate90, Anchor{HPosCenter, VPosCenter}, Coord(0, 0))
	a := m.TransformPoint(scene.Point{X: 0, Y: 2})
	b := m.TransformPoint(scene.Point{X: 10, Y: 2})
	if !near(b.X-a.X, 0) || !near(b.Y-a.Y, 10) {
		t.Errorf("90 degree baseline = (%v, %v), want (0, 10)", b.X-a.X, b.Y-a.Y)
	}

	m = TextTransform(10, 4, Rotate270, Anchor{HPosCenter, VPosCenter}, Coord(0, 0))
	a = m.TransformPoint(scene.Point{X: 0, Y: 2})
	b = m.TransformPoint(scene.Point{X: 10, Y: 2})
	if !near(b.Y-a.Y, -10) {
		t.Errorf("270 degree baseline dy = %v, want -10", b.Y-a.Y)
	}
}

func TestEstimateTextSize(t *testing.T) {
	b, s, tctx := newTextBackend()
	style := NewTextStyle(FamilySansSerif, 16)

	l, err := tctx.Layout(textRequest("Hello, chart", style))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	w, h, err := b.EstimateTextSize("Hello, chart", style)
	if err != nil {
		t.Fatalf("EstimateTextSize: %v", err)
	}
	if w != ceilPixels(l.Width) || h != ceilPixels(l.Height) {
		t.Errorf("size = %dx%d, want %dx%d", w, h, ceilPixels(l.Width), ceilPixels(l.Height))
	}
	if w <= h {
		t.Errorf("horizontal text is %dx%d, want wider than tall", w, h)
	}

	for _, tr := range []FontTransform{Rotate90, Rotate270} {
		rw, rh, err := b.EstimateTextSize("Hello, chart", style.WithTransform(tr))
		if err != nil {
			t.Fatalf("EstimateTextSize(%v): %v", tr, err)
		}
		if rw != h || rh != w {
			t.Errorf("rotated %v size = %dx%d, want %dx%d", tr, rw, rh, h, w)
		}
	}

	hw, hh, err := b.EstimateTextSize("Hello, chart", style.WithTransform(Rotate180))
	if err != nil {
		t.Fatalf("EstimateTextSize(180): %v", err)
	}
	if hw != w || hh != h {
		t.Errorf("half turn size = %dx%d, want %dx%d", hw, hh, w, h)
	}

	if !s.IsEmpty() {
		t.Error("measuring touched the scene")
	}
}

func TestDrawText(t *testing.T) {
	b, s, tctx := newTextBackend()
	style := NewTextStyle(FamilySerif, 20).
		WithColor(Red).
		WithAnchor(HPosCenter, VPosBottom).
		WithTransform(Rotate90)

	if err := b.DrawText("Axis", style, Coord(30, 40)); err != nil {
		t.Fatalf("DrawText: %v", err)
	}

	cmd := onlyCommand[*scene.GlyphsCommand](t, s)
	l, err := tctx.Layout(textRequest("Axis", style))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if len(cmd.Run.Glyphs) != len(l.Glyphs) {
		t.Errorf("run has %d glyphs, want %d", len(cmd.Run.Glyphs), len(l.Glyphs))
	}
	if cmd.Run.Face != l.Face {
		t.Error("run face differs from the layout face")
	}
	want := TextTransform(l.Width, l.Height, Rotate90, Anchor{HPosCenter, VPosBottom}, Coord(30, 40))
	if cmd.Transform != want {
		t.Errorf("transform = %+v, want %+v", cmd.Transform, want)
	}
	if c := (scene.Color{R: 255, A: 255}); cmd.Brush.Color != c {
		t.Errorf("color = %+v, want %+v", cmd.Brush.Color, c)
	}
}

func TestDrawTextEmpty(t *testing.T) {
	b, s, _ := newTextBackend()
	if err := b.DrawText("", NewTextStyle(FamilySansSerif, 12), Coord(0, 0)); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if !s.IsEmpty() {
		t.Error("empty text reached the scene")
	}
}

func TestTextBackendDelegates(t *testing.T) {
	b, s, _ := newTextBackend()
	tri := []BackendCoord{Coord(0, 0), Coord(3, 0), Coord(3, 3)}
	if err := b.DrawPixel(Coord(1, 1), Black); err != nil {
		t.Fatalf("DrawPixel: %v", err)
	}
	if err := b.FillPolygon(coords(tri...), Transparent); err != nil {
		t.Fatalf("FillPolygon transparent: %v", err)
	}
	if err := b.FillPolygon(coords(tri...), Black); err != nil {
		t.Fatalf("FillPolygon: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("scene has %d commands, want 2", s.Len())
	}
	if w, h := b.Size(); w != 200 || h != 100 {
		t.Errorf("Size() = %d, %d, want 200, 100", w, h)
	}
}

func TestTextBackendWithoutContext(t *testing.T) {
	b := NewTextBackend(10, 10, scene.NewScene(), nil)
	_, _, err := b.EstimateTextSize("x", NewTextStyle(FamilySansSerif, 12))
	if !errors.Is(err, ErrNoTextEngine) {
		t.Errorf("EstimateTextSize error = %v, want ErrNoTextEngine", err)
	}
}

func TestReleasedTextBackend(t *testing.T) {
	b, s, _ := newTextBackend()
	b.Release()

	style := NewTextStyle(FamilySansSerif, 12)
	if err := b.DrawText("x", style, Coord(0, 0)); !errors.Is(err, ErrReleased) {
		t.Errorf("DrawText after Release: %v", err)
	}
	if _, _, err := b.EstimateTextSize("x", style); !errors.Is(err, ErrReleased) {
		t.Errorf("EstimateTextSize after Release: %v", err)
	}
	if err := b.DrawPixel(Coord(0, 0), Black); !errors.Is(err, ErrReleased) {
		t.Errorf("DrawPixel after Release: %v", err)
	}
	if !s.IsEmpty() {
		t.Error("released backend recorded commands")
	}
}
