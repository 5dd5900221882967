package caricon

// RasterizerMode controls which rasterization algorithm fills paths.
//
// The mode is per-Context. The zero value is RasterizerAliased, which keeps
// every pixel a flat palette color.
type RasterizerMode int

const (
	// RasterizerAliased samples each pixel at its centre and overwrites it
	// with the fill color. Output contains only palette colors.
	RasterizerAliased RasterizerMode = iota

	// RasterizerAntialiased computes per-pixel coverage with
	// golang.org/x/image/vector and composites source-over.
	RasterizerAntialiased
)

// String returns the rasterizer mode name.
func (m RasterizerMode) String() string {
	switch m {
	case RasterizerAliased:
		return "Aliased"
	case RasterizerAntialiased:
		return "Antialiased"
	default:
		return "Unknown"
	}
}
