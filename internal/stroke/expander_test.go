package stroke

import (
	"math"
	"testing"

	"github.com/gogpu/ggplot/scene"
)

func style(width float64, c scene.LineCap, j scene.LineJoin) scene.StrokeStyle {
	return scene.StrokeStyle{Width: width, MiterLimit: 4, Cap: c, Join: j}
}

func countVerb(p *scene.Path, v scene.PathVerb) int {
	n := 0
	for _, got := range p.Verbs() {
		if got == v {
			n++
		}
	}
	return n
}

func hasPoint(p *scene.Path, want scene.Point) bool {
	for _, q := range p.Points() {
		if math.Abs(q.X-want.X) < 1e-9 && math.Abs(q.Y-want.Y) < 1e-9 {
			return true
		}
	}
	return false
}

func nearRect(a, b scene.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.X0-b.X0) < eps && math.Abs(a.Y0-b.Y0) < eps &&
		math.Abs(a.X1-b.X1) < eps && math.Abs(a.Y1-b.Y1) < eps
}

func TestSetTolerance(t *testing.T) {
	e := NewExpander(style(1, scene.LineCapButt, scene.LineJoinMiter))
	if e.tolerance != 0.25 {
		t.Errorf("default tolerance = %v, want 0.25", e.tolerance)
	}

	e.SetTolerance(0.1)
	if e.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", e.tolerance)
	}
	e.SetTolerance(0)
	e.SetTolerance(-1)
	if e.tolerance != 0.1 {
		t.Errorf("non-positive tolerance changed it to %v", e.tolerance)
	}
}

func TestExpandLineButt(t *testing.T) {
	e := NewExpander(style(2, scene.LineCapButt, scene.LineJoinMiter))
	out := e.Expand(scene.NewPath().MoveTo(0, 0).LineTo(10, 0))

	if got := countVerb(out, scene.VerbMoveTo); got != 1 {
		t.Errorf("got %d contours, want 1", got)
	}
	if got := countVerb(out, scene.VerbClose); got != 1 {
		t.Errorf("got %d closes, want 1", got)
	}
	want := scene.Rect{X0: 0, Y0: -1, X1: 10, Y1: 1}
	if b := out.Bounds(); !nearRect(b, want) {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}

func TestExpandCaps(t *testing.T) {
	tests := []struct {
		name string
		lc   scene.LineCap
		minX float64
		maxX float64
	}{
		{"butt", scene.LineCapButt, 0, 10},
		{"square", scene.LineCapSquare, -1, 11},
		{"round", scene.LineCapRound, -1, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(style(2, tt.lc, scene.LineJoinMiter))
			b := e.Expand(scene.NewPath().MoveTo(0, 0).LineTo(10, 0)).Bounds()
			if math.Abs(b.X0-tt.minX) > 1e-9 || math.Abs(b.X1-tt.maxX) > 1e-9 {
				t.Errorf("x range = [%v, %v], want [%v, %v]", b.X0, b.X1, tt.minX, tt.maxX)
			}
		})
	}
}

func TestExpandClosedHasTwoContours(t *testing.T) {
	e := NewExpander(style(2, scene.LineCapButt, scene.LineJoinMiter))
	out := e.Expand(scene.NewRect(0, 0, 10, 10).ToPath())

	if got := countVerb(out, scene.VerbMoveTo); got != 2 {
		t.Errorf("got %d contours, want 2", got)
	}
	if got := countVerb(out, scene.VerbClose); got != 2 {
		t.Errorf("got %d closes, want 2", got)
	}
	want := scene.Rect{X0: -1, Y0: -1, X1: 11, Y1: 11}
	if b := out.Bounds(); !nearRect(b, want) {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}

func TestExpandJoins(t *testing.T) {
	corner := scene.NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10)
	tip := scene.Point{X: 11, Y: -1}

	tests := []struct {
		name    string
		join    scene.LineJoin
		limit   float64
		wantTip bool
	}{
		{"miter", scene.LineJoinMiter, 4, true},
		{"miter over limit", scene.LineJoinMiter, 1, false},
		{"bevel", scene.LineJoinBevel, 4, false},
		{"round", scene.LineJoinRound, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := style(2, scene.LineCapButt, tt.join)
			st.MiterLimit = tt.limit
			out := NewExpander(st).Expand(corner)
			if got := hasPoint(out, tip); got != tt.wantTip {
				t.Errorf("miter tip present = %v, want %v", got, tt.wantTip)
			}
		})
	}
}

func TestExpandRoundJoinUsesCurves(t *testing.T) {
	corner := scene.NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10)
	out := NewExpander(style(2, scene.LineCapButt, scene.LineJoinRound)).Expand(corner)
	if countVerb(out, scene.VerbCubicTo) == 0 {
		t.Error("round join produced no arc")
	}
	if b := out.Bounds(); b.X1 > 11+1e-9 || b.Y0 < -1-1e-9 {
		t.Errorf("round join escaped the stroke: %+v", b)
	}
}

func TestExpandCircleStaysOnRing(t *testing.T) {
	c := scene.Circle{Center: scene.Point{X: 0, Y: 0}, Radius: 10}
	e := NewExpander(style(2, scene.LineCapButt, scene.LineJoinBevel))
	e.SetTolerance(0.01)
	out := e.Expand(c.ToPath())

	if got := countVerb(out, scene.VerbMoveTo); got != 2 {
		t.Fatalf("got %d contours, want 2", got)
	}
	for _, q := range out.Points() {
		d := math.Hypot(q.X, q.Y)
		if d < 9-0.05 || d > 11+0.05 {
			t.Fatalf("point %v at distance %v is off the ring", q, d)
		}
	}
}

func TestExpandDot(t *testing.T) {
	dot := scene.NewPath().MoveTo(3, 3).LineTo(3, 3)

	if out := NewExpander(style(2, scene.LineCapButt, scene.LineJoinMiter)).Expand(dot); !out.IsEmpty() {
		t.Errorf("butt cap dot produced %d verbs", len(out.Verbs()))
	}

	out := NewExpander(style(2, scene.LineCapSquare, scene.LineJoinMiter)).Expand(dot)
	want := scene.Rect{X0: 2, Y0: 2, X1: 4, Y1: 4}
	if b := out.Bounds(); !nearRect(b, want) {
		t.Errorf("square dot bounds = %+v, want %+v", b, want)
	}

	out = NewExpander(style(2, scene.LineCapRound, scene.LineJoinMiter)).Expand(dot)
	if countVerb(out, scene.VerbCubicTo) != 4 {
		t.Errorf("round dot verbs = %v", out.Verbs())
	}
}

func TestExpandBareMoveTo(t *testing.T) {
	p := scene.NewPath().MoveTo(3, 3)
	out := NewExpander(style(2, scene.LineCapRound, scene.LineJoinMiter)).Expand(p)
	if !out.IsEmpty() {
		t.Errorf("bare move produced %v", out.Verbs())
	}
}

func TestExpandZeroWidth(t *testing.T) {
	p := scene.NewPath().MoveTo(0, 0).LineTo(10, 0)
	for _, w := range []float64{0, -1, math.NaN()} {
		if out := NewExpander(style(w, scene.LineCapSquare, scene.LineJoinMiter)).Expand(p); !out.IsEmpty() {
			t.Errorf("width %v produced %d verbs", w, len(out.Verbs()))
		}
	}
}

func TestExpandSubpaths(t *testing.T) {
	p := scene.NewPath().
		MoveTo(0, 0).LineTo(10, 0).
		MoveTo(0, 5).LineTo(10, 5)
	out := NewExpander(style(1, scene.LineCapButt, scene.LineJoinMiter)).Expand(p)
	if got := countVerb(out, scene.VerbMoveTo); got != 2 {
		t.Errorf("got %d contours, want 2", got)
	}
}

func TestExpandQuadFlattened(t *testing.T) {
	p := scene.NewPath().MoveTo(0, 0).QuadTo(10, 10, 20, 0)
	e := NewExpander(style(2, scene.LineCapButt, scene.LineJoinBevel))
	e.SetTolerance(0.05)
	out := e.Expand(p)

	if got := countVerb(out, scene.VerbLineTo); got < 10 {
		t.Errorf("curve flattened into %d lines", got)
	}
	if got := countVerb(out, scene.VerbQuadTo); got != 0 {
		t.Errorf("outline kept %d quads", got)
	}
}

func TestDistanceToSegment(t *testing.T) {
	a, b := scene.Point{X: 0, Y: 0}, scene.Point{X: 10, Y: 0}
	tests := []struct {
		p    scene.Point
		want float64
	}{
		{scene.Point{X: 5, Y: 3}, 3},
		{scene.Point{X: -3, Y: 4}, 5},
		{scene.Point{X: 13, Y: 4}, 5},
	}
	for _, tt := range tests {
		if got := distanceToSegment(tt.p, a, b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("distanceToSegment(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := distanceToSegment(scene.Point{X: 3, Y: 4}, a, a); got != 5 {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}
