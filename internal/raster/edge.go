package raster

import "github.com/gogpu/caricon/internal/path"

// Edge represents a non-horizontal line segment, stored top to bottom.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dx     float64 // dx/dy slope
	dir    int     // +1 when the original segment pointed down, -1 otherwise
}

// NewEdge creates a new edge from two points. The winding direction is
// taken before the endpoints are ordered.
func NewEdge(p0, p1 path.Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	var dx float64
	if dy := p1.Y - p0.Y; dy != 0 {
		dx = (p1.X - p0.X) / dy
	}

	return Edge{
		x0:  p0.X,
		y0:  p0.Y,
		x1:  p1.X,
		y1:  p1.Y,
		dx:  dx,
		dir: dir,
	}
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dx
}

// Dir returns the winding direction.
func (e *Edge) Dir() int { return e.dir }
