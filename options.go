package caricon

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default aliased rendering
//	dc := caricon.NewContext(512, 512)
//
//	// Smooth edges
//	dc := caricon.NewContext(512, 512, caricon.WithRasterizerMode(caricon.RasterizerAntialiased))
type ContextOption func(*contextOptions)

type contextOptions struct {
	renderer Renderer
	pixmap   *Pixmap
	mode     RasterizerMode
}

// WithRenderer sets a custom renderer for the Context, overriding the
// rasterizer mode.
func WithRenderer(r Renderer) ContextOption {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithPixmap draws into an existing pixmap. Its dimensions take precedence
// over the ones passed to NewContext.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithRasterizerMode selects the built-in renderer.
func WithRasterizerMode(mode RasterizerMode) ContextOption {
	return func(o *contextOptions) {
		o.mode = mode
	}
}
