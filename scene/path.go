package scene

import "iter"

// PathVerb represents a path construction command.
type PathVerb uint8

const (
	// VerbMoveTo starts a new subpath.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a straight line.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

var verbNames = [...]string{
	VerbMoveTo:  "MoveTo",
	VerbLineTo:  "LineTo",
	VerbQuadTo:  "QuadTo",
	VerbCubicTo: "CubicTo",
	VerbClose:   "Close",
}

// String returns the verb name.
func (v PathVerb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "Unknown"
}

// PointCount returns the number of points consumed by this verb.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// PathElement is a single path command with its points.
//
// The number of points depends on the verb:
//   - MoveTo, LineTo: 1 point (destination)
//   - QuadTo: 2 points (control, destination)
//   - CubicTo: 3 points (control1, control2, destination)
//   - Close: 0 points
type PathElement struct {
	Verb   PathVerb
	Points []Point
}

// MoveTo returns a MoveTo element.
func MoveTo(p Point) PathElement {
	return PathElement{Verb: VerbMoveTo, Points: []Point{p}}
}

// LineTo returns a LineTo element.
func LineTo(p Point) PathElement {
	return PathElement{Verb: VerbLineTo, Points: []Point{p}}
}

// ClosePath returns a Close element.
func ClosePath() PathElement {
	return PathElement{Verb: VerbClose}
}

// Path is a sequence of verbs with their coordinate data.
type Path struct {
	verbs  []PathVerb
	points []Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// PathFromElements collects a sequence of elements into a new path.
func PathFromElements(elems iter.Seq[PathElement]) *Path {
	p := NewPath()
	for e := range elems {
		p.Append(e)
	}
	return p
}

// Append adds an element to the path.
// Elements carrying fewer points than their verb needs are ignored.
func (p *Path) Append(e PathElement) *Path {
	n := e.Verb.PointCount()
	if len(e.Points) < n {
		return p
	}
	p.verbs = append(p.verbs, e.Verb)
	p.points = append(p.points, e.Points[:n]...)
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{x, y})
	return p
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{x, y})
	return p
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{cx, cy}, Point{x, y})
	return p
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// Ellipse adds a closed ellipse made of four cubic arcs.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	// Magic number for approximating circular arcs with cubic beziers
	const k = 0.5522847498
	kx := k * rx
	ky := k * ry

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	return p.Close()
}

// IsEmpty returns true if the path has no verbs.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.verbs) == 0
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the point stream.
func (p *Path) Points() []Point {
	return p.points
}

// Bounds returns the bounding box of all points, control points included.
func (p *Path) Bounds() Rect {
	b := EmptyRect()
	for _, pt := range p.points {
		b = b.Union(Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y})
	}
	return b
}

// ToPath implements Shape.
func (p *Path) ToPath() *Path {
	return p
}

// Transform returns a copy of the path with every point transformed.
func (p *Path) Transform(t Affine) *Path {
	out := &Path{
		verbs:  append([]PathVerb(nil), p.verbs...),
		points: make([]Point, len(p.points)),
	}
	for i, pt := range p.points {
		out.points[i] = t.TransformPoint(pt)
	}
	return out
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		verbs:  append([]PathVerb(nil), p.verbs...),
		points: append([]Point(nil), p.points...),
	}
}

// Elements returns an iterator over all path elements.
//
// Example:
//
//	for elem := range path.Elements() {
//	    switch elem.Verb {
//	    case VerbMoveTo:
//	        fmt.Printf("Move to %v\n", elem.Points[0])
//	    case VerbLineTo:
//	        fmt.Printf("Line to %v\n", elem.Points[0])
//	    case VerbClose:
//	        fmt.Println("Close")
//	    }
//	}
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		idx := 0
		for _, verb := range p.verbs {
			n := verb.PointCount()
			elem := PathElement{Verb: verb}
			if n > 0 {
				elem.Points = p.points[idx : idx+n : idx+n]
			}
			idx += n
			if !yield(elem) {
				return
			}
		}
	}
}
