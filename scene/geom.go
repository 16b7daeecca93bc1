package scene

import "math"

// Point is a position in scene space.
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle spanning (X0, Y0) to (X1, Y1).
// The second corner is exclusive when the rectangle is filled.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect creates a rectangle from two corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectFromPoints creates a rectangle from two corner points.
func RectFromPoints(p0, p1 Point) Rect {
	return Rect{X0: p0.X, Y0: p0.Y, X1: p1.X, Y1: p1.Y}
}

// EmptyRect returns an inverted rectangle suitable as the identity for Union.
func EmptyRect() Rect {
	return Rect{
		X0: math.MaxFloat64,
		Y0: math.MaxFloat64,
		X1: -math.MaxFloat64,
		Y1: -math.MaxFloat64,
	}
}

// Abs returns the rectangle with its corners ordered so that X0 <= X1 and Y0 <= Y1.
func (r Rect) Abs() Rect {
	return Rect{
		X0: math.Min(r.X0, r.X1),
		Y0: math.Min(r.Y0, r.Y1),
		X1: math.Max(r.X0, r.X1),
		Y1: math.Max(r.Y0, r.Y1),
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Inset grows the rectangle by d on every side (shrinks it when d is negative).
func (r Rect) Inset(d float64) Rect {
	return Rect{X0: r.X0 - d, Y0: r.Y0 - d, X1: r.X1 + d, Y1: r.Y1 + d}
}

// Affine represents a 2D affine transformation matrix.
// The matrix is stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// Translate creates a translation transformation.
func Translate(x, y float64) Affine {
	return Affine{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// Scale creates a scaling transformation.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, B: 0, C: 0, D: 0, E: sy, F: 0}
}

// Rotate creates a rotation transformation (angle in radians).
// In the y-down scene space a positive angle turns clockwise on screen.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// Multiply returns the product a * b, which applies b first and then a.
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// Then returns the transformation that applies a first and then next.
func (a Affine) Then(next Affine) Affine {
	return next.Multiply(a)
}

// ThenTranslate appends a translation to a.
func (a Affine) ThenTranslate(x, y float64) Affine {
	return a.Then(Translate(x, y))
}

// ThenRotate appends a rotation (radians) to a.
func (a Affine) ThenRotate(angle float64) Affine {
	return a.Then(Rotate(angle))
}

// TransformPoint transforms a point by the affine matrix.
func (a Affine) TransformPoint(p Point) Point {
	return Point{
		X: a.A*p.X + a.B*p.Y + a.C,
		Y: a.D*p.X + a.E*p.Y + a.F,
	}
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a.A == 1 && a.B == 0 && a.C == 0 &&
		a.D == 0 && a.E == 1 && a.F == 0
}

// Determinant returns A*E - B*D.
func (a Affine) Determinant() float64 {
	return a.A*a.E - a.B*a.D
}

// Invert returns the inverse transformation.
// The second result is false when the matrix is singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.Determinant()
	if det == 0 || math.IsNaN(det) {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		A: a.E * inv,
		B: -a.B * inv,
		C: (a.B*a.F - a.E*a.C) * inv,
		D: -a.D * inv,
		E: a.A * inv,
		F: (a.D*a.C - a.A*a.F) * inv,
	}, true
}

// transformBounds returns the bounding box of a rectangle after transformation.
func transformBounds(r Rect, t Affine) Rect {
	if t.IsIdentity() {
		return r
	}
	out := EmptyRect()
	for _, p := range [4]Point{{r.X0, r.Y0}, {r.X1, r.Y0}, {r.X0, r.Y1}, {r.X1, r.Y1}} {
		q := t.TransformPoint(p)
		out = out.Union(Rect{X0: q.X, Y0: q.Y, X1: q.X, Y1: q.Y})
	}
	return out
}
