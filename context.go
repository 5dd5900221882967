package caricon

import (
	"image"
	"image/color"
	"io"
)

// Context is the drawing state for one canvas: a pixmap, the current path
// and the current fill paint.
type Context struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer
	mode     RasterizerMode
	path     *Path
	paint    Paint
}

// NewContext creates a new drawing context with the given dimensions.
// The canvas starts fully transparent and the fill color is opaque black.
func NewContext(width, height int, opts ...ContextOption) *Context {
	var options contextOptions
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = newRenderer(options.mode, pixmap.Width(), pixmap.Height())
	}

	return &Context{
		width:    pixmap.Width(),
		height:   pixmap.Height(),
		pixmap:   pixmap,
		renderer: renderer,
		mode:     options.mode,
		path:     NewPath(),
		paint:    Paint{Color: Black},
	}
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// RasterizerMode returns the mode the context was created with.
func (c *Context) RasterizerMode() RasterizerMode {
	return c.mode
}

// Pixmap returns the backing pixmap.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns the context contents as an image.Image.
func (c *Context) Image() image.Image {
	return c.pixmap
}

// ClearWithColor fills the whole canvas with col, ignoring the current path.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the fill color.
func (c *Context) SetColor(col color.Color) {
	if rgba, ok := col.(RGBA); ok {
		c.paint.Color = rgba
		return
	}
	c.paint.Color = FromColor(col)
}

// SetHexColor sets the fill color from a hex string such as "#6366f1".
func (c *Context) SetHexColor(hex string) {
	c.paint.Color = Hex(hex)
}

// SetFillRule sets the fill rule.
func (c *Context) SetFillRule(rule FillRule) {
	c.paint.FillRule = rule
}

// MoveTo starts a new subpath.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath discards the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// DrawRectangle adds a rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.path.Rectangle(x, y, w, h)
}

// DrawRoundedRectangle adds a rectangle with rounded corners.
func (c *Context) DrawRoundedRectangle(x, y, w, h, r float64) {
	c.path.RoundedRectangle(x, y, w, h, r)
}

// DrawCircle adds a circle.
func (c *Context) DrawCircle(x, y, r float64) {
	c.path.Circle(x, y, r)
}

// DrawEllipse adds an axis-aligned ellipse.
func (c *Context) DrawEllipse(x, y, rx, ry float64) {
	c.path.Ellipse(x, y, rx, ry)
}

// Fill fills the current path and clears it.
// Returns an error if the rendering operation fails.
func (c *Context) Fill() error {
	err := c.FillPreserve()
	c.path.Clear()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	if !c.path.HasCurrentPoint() {
		return nil
	}
	return c.renderer.Fill(c.pixmap, c.path, c.paint)
}

// EncodePNG writes the image as PNG to the given writer.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// SavePNG saves the image to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}
