// Package stroke expands stroked scene paths into fill outlines.
//
// Each subpath is offset to both sides by half the stroke width. An open
// subpath becomes one contour: the forward offset, the end cap, the
// backward offset reversed and the start cap. A closed subpath becomes two
// contours, the forward offset and the reversed backward offset.
//
// The outlines are meant to be filled with the non-zero rule.
package stroke

import (
	"math"

	"github.com/gogpu/ggplot/scene"
)

// maxDepth bounds curve subdivision.
const maxDepth = 16

type vec struct {
	x, y float64
}

func sub(p, q scene.Point) vec {
	return vec{p.X - q.X, p.Y - q.Y}
}

func offset(p scene.Point, v vec) scene.Point {
	return scene.Point{X: p.X + v.x, Y: p.Y + v.y}
}

func (v vec) scale(s float64) vec    { return vec{v.x * s, v.y * s} }
func (v vec) neg() vec               { return vec{-v.x, -v.y} }
func (v vec) dot(w vec) float64      { return v.x*w.x + v.y*w.y }
func (v vec) cross(w vec) float64    { return v.x*w.y - v.y*w.x }
func (v vec) length() float64        { return math.Hypot(v.x, v.y) }
func (v vec) perp() vec              { return vec{-v.y, v.x} }
func (v vec) angle() float64         { return math.Atan2(v.y, v.x) }
func (v vec) lengthSquared() float64 { return v.x*v.x + v.y*v.y }

// contour collects one side of a subpath before it is spliced into the outline.
type contour []scene.PathElement

func (c *contour) moveTo(p scene.Point) { *c = append(*c, scene.MoveTo(p)) }
func (c *contour) lineTo(p scene.Point) { *c = append(*c, scene.LineTo(p)) }

func (c *contour) cubicTo(c1, c2, p scene.Point) {
	*c = append(*c, scene.PathElement{Verb: scene.VerbCubicTo, Points: []scene.Point{c1, c2, p}})
}

func (c contour) end() scene.Point {
	pts := c[len(c)-1].Points
	return pts[len(pts)-1]
}

// Expander converts stroked paths into fill outlines.
//
// An Expander is not safe for concurrent use.
type Expander struct {
	style     scene.StrokeStyle
	hw        float64
	tolerance float64
	joinLimit float64

	out      *scene.Path
	forward  contour
	backward contour

	start     scene.Point
	startNorm vec
	startTan  vec
	last      scene.Point
	lastTan   vec
	lastNorm  vec

	// degenerate marks a subpath that drew something of zero length.
	degenerate bool
}

// NewExpander creates an expander for style with a flattening tolerance of 0.25.
func NewExpander(style scene.StrokeStyle) *Expander {
	return &Expander{
		style:     style,
		hw:        style.Width / 2,
		tolerance: 0.25,
	}
}

// SetTolerance sets the maximum distance between a curve and its
// flattened segments. Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the fill outline of p stroked with the expander's style.
// A style without a positive width yields an empty path.
func (e *Expander) Expand(p *scene.Path) *scene.Path {
	e.out = scene.NewPath()
	if !(e.hw > 0) || p.IsEmpty() {
		return e.out
	}
	e.joinLimit = e.tolerance / e.hw
	e.forward, e.backward = nil, nil
	e.degenerate = false

	for el := range p.Elements() {
		switch el.Verb {
		case scene.VerbMoveTo:
			e.finish()
			e.start = el.Points[0]
			e.last = e.start
		case scene.VerbLineTo:
			e.lineTo(el.Points[0])
		case scene.VerbQuadTo:
			c, end := el.Points[0], el.Points[1]
			pts := []scene.Point{e.last}
			pts = e.flattenQuad(pts, e.last, c, end, 0)
			e.polyline(pts)
		case scene.VerbCubicTo:
			c1, c2, end := el.Points[0], el.Points[1], el.Points[2]
			pts := []scene.Point{e.last}
			pts = e.flattenCubic(pts, e.last, c1, c2, end, 0)
			e.polyline(pts)
		case scene.VerbClose:
			e.lineTo(e.start)
			e.finishClosed()
			e.last = e.start
		}
	}
	e.finish()
	return e.out
}

func (e *Expander) lineTo(p scene.Point) {
	tan := sub(p, e.last)
	if tan.lengthSquared() < 1e-20 {
		e.degenerate = true
		return
	}
	e.join(tan)
	e.lastTan = tan
	e.segment(tan, p)
}

func (e *Expander) polyline(pts []scene.Point) {
	for _, p := range pts[1:] {
		e.lineTo(p)
	}
}

// normal returns the left normal of tan scaled to half the stroke width.
func (e *Expander) normal(tan vec) vec {
	return tan.perp().scale(e.hw / tan.length())
}

func (e *Expander) join(tan vec) {
	p0 := e.last
	norm := e.normal(tan)

	if len(e.forward) == 0 {
		e.forward.moveTo(offset(p0, norm.neg()))
		e.backward.moveTo(offset(p0, norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := ab.cross(cd)
	dot := ab.dot(cd)
	hypot := math.Hypot(cross, dot)

	// nearly straight: connect both sides without a join shape
	if dot > 0 && math.Abs(cross) < hypot*e.joinLimit {
		e.forward.lineTo(offset(p0, norm.neg()))
		e.backward.lineTo(offset(p0, norm))
		return
	}

	switch e.style.Join {
	case scene.LineJoinMiter:
		limit := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limit {
			e.miter(p0, norm, ab, cd, cross)
		}
		e.forward.lineTo(offset(p0, norm.neg()))
		e.backward.lineTo(offset(p0, norm))
	case scene.LineJoinRound:
		lastNorm := e.normal(ab)
		angle := math.Atan2(cross, dot)
		if angle > 0 {
			e.backward.lineTo(offset(p0, norm))
			e.arc(&e.forward, p0, lastNorm.neg(), angle)
		} else {
			e.forward.lineTo(offset(p0, norm.neg()))
			e.arc(&e.backward, p0, lastNorm, angle)
		}
	default:
		e.forward.lineTo(offset(p0, norm.neg()))
		e.backward.lineTo(offset(p0, norm))
	}
}

// miter adds the miter tip on the outer side of the turn at p0.
func (e *Expander) miter(p0 scene.Point, norm, ab, cd vec, cross float64) {
	lastNorm := e.normal(ab)
	if cross > 0 {
		prev := offset(p0, lastNorm.neg())
		next := offset(p0, norm.neg())
		h := ab.cross(sub(next, prev)) / cross
		e.forward.lineTo(offset(next, cd.scale(-h)))
		e.backward.lineTo(p0)
	} else if cross < 0 {
		prev := offset(p0, lastNorm)
		next := offset(p0, norm)
		h := ab.cross(sub(next, prev)) / cross
		e.backward.lineTo(offset(next, cd.scale(-h)))
		e.forward.lineTo(p0)
	}
}

func (e *Expander) segment(tan vec, p1 scene.Point) {
	norm := e.normal(tan)
	e.forward.lineTo(offset(p1, norm.neg()))
	e.backward.lineTo(offset(p1, norm))
	e.last = p1
	e.lastNorm = norm
}

// finish closes an open subpath with its caps.
func (e *Expander) finish() {
	if len(e.forward) == 0 {
		e.dot()
		return
	}
	e.emit(e.forward)
	e.cap(e.last, e.lastNorm.neg(), false)
	e.emitReversed(e.backward)
	e.cap(e.start, e.startNorm, true)
	e.reset()
}

// finishClosed joins a closed subpath back to its start and emits both sides.
func (e *Expander) finishClosed() {
	if len(e.forward) == 0 {
		e.dot()
		return
	}
	e.join(e.startTan)
	e.emit(e.forward)
	e.out.Close()
	e.out.Append(scene.MoveTo(e.backward.end()))
	e.emitReversed(e.backward)
	e.out.Close()
	e.reset()
}

func (e *Expander) reset() {
	e.forward, e.backward = e.forward[:0], e.backward[:0]
	e.degenerate = false
}

// dot strokes a zero-length subpath: a disc for round caps, a square for
// square caps and nothing for butt caps.
func (e *Expander) dot() {
	if !e.degenerate {
		return
	}
	e.degenerate = false
	c := e.start
	switch e.style.Cap {
	case scene.LineCapRound:
		e.out.MoveTo(c.X+e.hw, c.Y)
		var arc contour
		e.arc(&arc, c, vec{e.hw, 0}, 2*math.Pi)
		e.emit(arc)
		e.out.Close()
	case scene.LineCapSquare:
		e.out.MoveTo(c.X-e.hw, c.Y-e.hw).
			LineTo(c.X+e.hw, c.Y-e.hw).
			LineTo(c.X+e.hw, c.Y+e.hw).
			LineTo(c.X-e.hw, c.Y+e.hw).
			Close()
	}
}

// cap adds the cap at center, starting from center+norm. When closing,
// the outline is closed back to its first point.
func (e *Expander) cap(center scene.Point, norm vec, closing bool) {
	switch e.style.Cap {
	case scene.LineCapRound:
		var arc contour
		e.arc(&arc, center, norm, math.Pi)
		e.emit(arc)
		if closing {
			e.out.Close()
		}
	case scene.LineCapSquare:
		// corners in the frame (norm, perp(norm)) around center
		at := func(u, v float64) scene.Point {
			return scene.Point{
				X: center.X + norm.x*u - norm.y*v,
				Y: center.Y + norm.y*u + norm.x*v,
			}
		}
		e.out.Append(scene.LineTo(at(1, 1)))
		e.out.Append(scene.LineTo(at(-1, 1)))
		if closing {
			e.out.Close()
		} else {
			e.out.Append(scene.LineTo(at(-1, 0)))
		}
	default:
		if closing {
			e.out.Close()
		} else {
			e.out.Append(scene.LineTo(offset(center, norm.neg())))
		}
	}
}

// arc appends a circular arc around center, from center+norm, sweeping
// angle radians. Each quarter turn or less is one cubic.
func (e *Expander) arc(c *contour, center scene.Point, norm vec, angle float64) {
	n := max(int(math.Ceil(math.Abs(angle)/(math.Pi/2))), 1)
	step := angle / float64(n)
	r := norm.length()
	a0 := norm.angle()
	k := 4.0 / 3 * math.Tan(step/4)

	for range n {
		a1 := a0 + step
		cos0, sin0 := math.Cos(a0), math.Sin(a0)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		p1 := scene.Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
		c1 := scene.Point{X: center.X + r*(cos0-k*sin0), Y: center.Y + r*(sin0+k*cos0)}
		c2 := scene.Point{X: p1.X + k*r*sin1, Y: p1.Y - k*r*cos1}
		c.cubicTo(c1, c2, p1)
		a0 = a1
	}
}

func (e *Expander) emit(c contour) {
	for _, el := range c {
		e.out.Append(el)
	}
}

// emitReversed appends c walked backwards, assuming the outline currently
// ends at c's last point.
func (e *Expander) emitReversed(c contour) {
	for i := len(c) - 1; i >= 1; i-- {
		prev := c[i-1].Points
		to := prev[len(prev)-1]
		el := c[i]
		if el.Verb == scene.VerbCubicTo {
			e.out.Append(scene.PathElement{
				Verb:   scene.VerbCubicTo,
				Points: []scene.Point{el.Points[1], el.Points[0], to},
			})
			continue
		}
		e.out.Append(scene.LineTo(to))
	}
}

func (e *Expander) flattenQuad(pts []scene.Point, p0, p1, p2 scene.Point, depth int) []scene.Point {
	if depth >= maxDepth || !(distanceToSegment(p1, p0, p2) >= e.tolerance) {
		return append(pts, p2)
	}
	q0, q1 := mid(p0, p1), mid(p1, p2)
	q2 := mid(q0, q1)
	pts = e.flattenQuad(pts, p0, q0, q2, depth+1)
	return e.flattenQuad(pts, q2, q1, p2, depth+1)
}

func (e *Expander) flattenCubic(pts []scene.Point, p0, p1, p2, p3 scene.Point, depth int) []scene.Point {
	d := max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxDepth || !(d >= e.tolerance) {
		return append(pts, p3)
	}
	q0, q1, q2 := mid(p0, p1), mid(p1, p2), mid(p2, p3)
	r0, r1 := mid(q0, q1), mid(q1, q2)
	s := mid(r0, r1)
	pts = e.flattenCubic(pts, p0, q0, r0, s, depth+1)
	return e.flattenCubic(pts, s, r1, q2, p3, depth+1)
}

func mid(p, q scene.Point) scene.Point {
	return scene.Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b scene.Point) float64 {
	ab := sub(b, a)
	l2 := ab.lengthSquared()
	if l2 < 1e-20 {
		return sub(p, a).length()
	}
	t := sub(p, a).dot(ab) / l2
	switch {
	case t <= 0:
		return sub(p, a).length()
	case t >= 1:
		return sub(p, b).length()
	}
	return sub(p, offset(a, ab.scale(t))).length()
}
