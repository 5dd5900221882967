package caricon

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored non-premultiplied, 4 bytes per pixel in R, G, B, A order.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.put((y*p.width+x)*4, c.NRGBA())
}

func (p *Pixmap) put(i int, n color.NRGBA) {
	p.data[i+0] = n.R
	p.data[i+1] = n.G
	p.data[i+2] = n.B
	p.data[i+3] = n.A
}

// GetPixel returns the color of a single pixel, or Transparent when out of
// bounds.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return FromColor(p.NRGBAAt(x, y))
}

// NRGBAAt returns the stored 8-bit value of a pixel.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// FillSpan sets pixels [x1, x2) on row y to c. The span is clipped to the
// pixmap.
func (p *Pixmap) FillSpan(x1, x2, y int, c RGBA) {
	if y < 0 || y >= p.height {
		return
	}
	x1, x2 = max(x1, 0), min(x2, p.width)
	n := c.NRGBA()
	for i := (y*p.width + x1) * 4; x1 < x2; x1, i = x1+1, i+4 {
		p.put(i, n)
	}
}

// BlendPixelAlpha composites c over the existing pixel with the given
// coverage using source-over.
func (p *Pixmap) BlendPixelAlpha(x, y int, c RGBA, alpha uint8) {
	if alpha == 0 {
		return
	}
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	if alpha == 255 && c.A >= 1 {
		p.SetPixel(x, y, c)
		return
	}

	existing := p.GetPixel(x, y)
	srcAlpha := c.A * float64(alpha) / 255.0
	invSrcAlpha := 1.0 - srcAlpha

	outA := srcAlpha + existing.A*invSrcAlpha
	if outA <= 0 {
		return
	}
	p.SetPixel(x, y, RGBA{
		R: (c.R*srcAlpha + existing.R*existing.A*invSrcAlpha) / outA,
		G: (c.G*srcAlpha + existing.G*existing.A*invSrcAlpha) / outA,
		B: (c.B*srcAlpha + existing.B*existing.A*invSrcAlpha) / outA,
		A: outA,
	})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	n := c.NRGBA()
	for i := 0; i < len(p.data); i += 4 {
		p.put(i, n)
	}
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap as PNG to w.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file, replacing any existing file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
