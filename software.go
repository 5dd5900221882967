package caricon

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/caricon/internal/path"
	"github.com/gogpu/caricon/internal/raster"
)

// SoftwareRenderer is a CPU-based aliased scanline rasterizer.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

// convertPath converts Path elements to path.PathElement for flattening.
func convertPath(p *Path) []path.PathElement {
	elements := make([]path.PathElement, 0, len(p.Elements()))
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: path.Point(e.Point)})
		case LineTo:
			elements = append(elements, path.LineTo{Point: path.Point(e.Point)})
		case CubicTo:
			elements = append(elements, path.CubicTo{
				Control1: path.Point(e.Control1),
				Control2: path.Point(e.Control2),
				Point:    path.Point(e.Point),
			})
		case Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

// Fill implements Renderer. Covered pixels are replaced by the paint color.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint Paint) error {
	if r.rasterizer.Width() != pixmap.Width() || r.rasterizer.Height() != pixmap.Height() {
		r.rasterizer = raster.NewRasterizer(pixmap.Width(), pixmap.Height())
	}

	rule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		rule = raster.FillRuleEvenOdd
	}

	polys := path.Flatten(convertPath(p))
	r.rasterizer.Fill(polys, rule, func(y, x1, x2 int) {
		pixmap.FillSpan(x1, x2, y, paint.Color)
	})
	return nil
}

// VectorRenderer fills paths with anti-aliased coverage computed by
// golang.org/x/image/vector. The vector rasterizer accumulates signed area,
// so FillRuleEvenOdd is treated as non-zero.
type VectorRenderer struct {
	rasterizer *vector.Rasterizer
	mask       *image.Alpha
}

// NewVectorRenderer creates an anti-aliasing renderer. Buffers are sized on
// first use.
func NewVectorRenderer() *VectorRenderer {
	return &VectorRenderer{}
}

// Fill implements Renderer.
func (r *VectorRenderer) Fill(pixmap *Pixmap, p *Path, paint Paint) error {
	w, h := pixmap.Width(), pixmap.Height()
	if w == 0 || h == 0 {
		return nil
	}
	if r.rasterizer == nil {
		r.rasterizer = vector.NewRasterizer(w, h)
	} else {
		r.rasterizer.Reset(w, h)
	}
	if r.mask == nil || r.mask.Rect.Dx() != w || r.mask.Rect.Dy() != h {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		clear(r.mask.Pix)
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			r.rasterizer.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			r.rasterizer.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			r.rasterizer.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case Close:
			r.rasterizer.ClosePath()
		}
	}
	r.rasterizer.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := r.mask.Pix[y*r.mask.Stride : y*r.mask.Stride+w]
		for x, a := range row {
			pixmap.BlendPixelAlpha(x, y, paint.Color, a)
		}
	}
	return nil
}
