// Package path flattens curved paths into closed polygons for the scanline
// rasterizer.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance from the curve for flattening.
const Tolerance = 0.1

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the subpath.
type Close struct{}

func (Close) isPathElement() {}

// Polygon is a flattened subpath. The closing edge from the last point back
// to the first is implicit.
type Polygon []Point

// Flatten converts path elements into polygons made only of straight edges.
// Every subpath is treated as closed whether or not it ends with Close, which
// is what a fill needs. Subpaths with fewer than three points are dropped.
func Flatten(elements []PathElement) []Polygon {
	var (
		polys   []Polygon
		cur     Polygon
		current Point
	)
	flush := func() {
		if len(cur) >= 3 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = e.Point
			cur = append(cur, current)

		case LineTo:
			if len(cur) == 0 {
				cur = append(cur, current)
			}
			current = e.Point
			cur = append(cur, current)

		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, current)
			}
			flattenCubicRec(current, e.Control1, e.Control2, e.Point, Tolerance, 0, &cur)
			current = e.Point

		case Close:
			if len(cur) > 0 {
				current = cur[0]
			}
			flush()
		}
	}
	flush()

	return polys
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) length() float64 {
	return math.Hypot(p.X, p.Y)
}

// maxDepth bounds recursion for degenerate control polygons.
const maxDepth = 16

// flattenCubicRec recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm, appending end points of flat-enough pieces.
func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, depth int, points *Polygon) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if dist < tolerance || depth >= maxDepth {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToLine calculates the distance from p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-10 {
		return p.sub(a).length()
	}

	ap := p.sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / (abLen * abLen)
	switch {
	case t < 0:
		return p.sub(a).length()
	case t > 1:
		return p.sub(b).length()
	}
	return p.sub(a.Lerp(b, t)).length()
}
