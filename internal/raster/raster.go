// Package raster provides aliased scanline rasterization for filled polygons.
//
// A pixel is inside a shape when its centre is. Spans are reported through a
// SpanFunc so the caller decides how they are painted.
package raster

import (
	"math"
	"slices"

	"github.com/gogpu/caricon/internal/path"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// SpanFunc receives one horizontal run of covered pixels [x1, x2) on row y.
// x1 < x2 and both lie within the rasterizer width.
type SpanFunc func(y, x1, x2 int)

// Rasterizer performs scanline rasterization. Buffers are reused between
// calls, so a Rasterizer must not be shared between goroutines.
type Rasterizer struct {
	width  int
	height int
	edges  []Edge
	xs     []crossing
}

type crossing struct {
	x   float64
	dir int
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		edges:  make([]Edge, 0, 64),
		xs:     make([]crossing, 0, 16),
	}
}

// Width returns the clip width.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the clip height.
func (r *Rasterizer) Height() int { return r.height }

// Fill rasterizes the union of polys and calls span for each covered run.
func (r *Rasterizer) Fill(polys []path.Polygon, rule FillRule, span SpanFunc) {
	r.edges = r.edges[:0]
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, poly := range polys {
		for i := range poly {
			p0, p1 := poly[i], poly[(i+1)%len(poly)]
			if p0.Y == p1.Y {
				continue
			}
			e := NewEdge(p0, p1)
			yMin = math.Min(yMin, e.y0)
			yMax = math.Max(yMax, e.y1)
			r.edges = append(r.edges, e)
		}
	}
	if len(r.edges) == 0 {
		return
	}

	// Rows whose centre y+0.5 lies in [yMin, yMax).
	first := max(int(math.Ceil(yMin-0.5)), 0)
	last := min(int(math.Ceil(yMax-0.5)), r.height)

	for y := first; y < last; y++ {
		r.scanline(y, rule, span)
	}
}

// scanline processes a single row sampled at its centre.
func (r *Rasterizer) scanline(y int, rule FillRule, span SpanFunc) {
	sy := float64(y) + 0.5

	r.xs = r.xs[:0]
	for i := range r.edges {
		e := &r.edges[i]
		if e.y0 <= sy && sy < e.y1 {
			r.xs = append(r.xs, crossing{x: e.XAtY(sy), dir: e.dir})
		}
	}
	if len(r.xs) < 2 {
		return
	}
	slices.SortFunc(r.xs, func(a, b crossing) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		}
		return 0
	})

	winding := 0
	var start float64
	for _, c := range r.xs {
		wasInside := inside(winding, rule)
		winding += c.dir
		isInside := inside(winding, rule)
		switch {
		case !wasInside && isInside:
			start = c.x
		case wasInside && !isInside:
			r.emit(y, start, c.x, span)
		}
	}
}

func inside(winding int, rule FillRule) bool {
	if rule == FillRuleEvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// emit reports pixels whose centres fall in [x1, x2).
func (r *Rasterizer) emit(y int, x1, x2 float64, span SpanFunc) {
	px1 := max(int(math.Ceil(x1-0.5)), 0)
	px2 := min(int(math.Ceil(x2-0.5)), r.width)
	if px1 < px2 {
		span(y, px1, px2)
	}
}
