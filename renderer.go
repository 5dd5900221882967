package caricon

// FillRule specifies how overlapping subpaths decide inside-ness.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint describes how a path is filled.
type Paint struct {
	Color    RGBA
	FillRule FillRule
}

// Renderer is the interface for rendering paths to a pixmap.
type Renderer interface {
	// Fill fills a path with the given paint.
	// Returns an error if the rendering operation fails.
	Fill(pixmap *Pixmap, path *Path, paint Paint) error
}

// newRenderer returns the built-in renderer for mode.
func newRenderer(mode RasterizerMode, width, height int) Renderer {
	if mode == RasterizerAntialiased {
		return NewVectorRenderer()
	}
	return NewSoftwareRenderer(width, height)
}
