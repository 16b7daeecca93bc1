package scene

// Shape is anything that can be filled or stroked.
type Shape interface {
	// ToPath converts the shape to a path.
	ToPath() *Path
	// Bounds returns the geometric bounding box.
	Bounds() Rect
}

// ToPath implements Shape.
func (r Rect) ToPath() *Path {
	return NewPath().
		MoveTo(r.X0, r.Y0).
		LineTo(r.X1, r.Y0).
		LineTo(r.X1, r.Y1).
		LineTo(r.X0, r.Y1).
		Close()
}

// Bounds implements Shape.
func (r Rect) Bounds() Rect {
	return r.Abs()
}

// Line is a single straight segment.
type Line struct {
	P0, P1 Point
}

// ToPath implements Shape.
func (l Line) ToPath() *Path {
	return NewPath().MoveTo(l.P0.X, l.P0.Y).LineTo(l.P1.X, l.P1.Y)
}

// Bounds implements Shape.
func (l Line) Bounds() Rect {
	return RectFromPoints(l.P0, l.P1).Abs()
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// ToPath implements Shape.
func (c Circle) ToPath() *Path {
	return NewPath().Ellipse(c.Center.X, c.Center.Y, c.Radius, c.Radius)
}

// Bounds implements Shape.
func (c Circle) Bounds() Rect {
	return Rect{
		X0: c.Center.X - c.Radius,
		Y0: c.Center.Y - c.Radius,
		X1: c.Center.X + c.Radius,
		Y1: c.Center.Y + c.Radius,
	}
}
