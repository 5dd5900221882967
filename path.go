package caricon

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint reports whether the path has any elements.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Bounds returns the bounding box of all points, control points included.
// An empty path has a zero Rect.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// kappa is 4/3 * (sqrt(2) - 1), the control distance for a quarter circle.
const kappa = 0.5522847498307936

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an axis-aligned ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc from angle1 to angle2 (radians) around (cx, cy).
// The arc is split into segments of at most 90 degrees.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments == 0 {
		return
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, a1, a1+angleStep)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// RoundedRectangle adds a rectangle with rounded corners.
// The radius is clamped to half of the smaller dimension; a non-positive
// radius yields a plain rectangle.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	if maxR := math.Min(w, h) / 2; r > maxR {
		r = maxR
	}
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}
