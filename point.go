package caricon

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle in user space.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Circle is a circle with centre C and radius R.
type Circle struct {
	C Point
	R float64
}
