// Package caricon draws the car application icon used by the web frontend.
//
// # Overview
//
// caricon is a small Pure Go renderer modelled on the gogpu/gg drawing API.
// It provides just enough of an immediate-mode Context (solid fills of
// rectangles, rounded rectangles, circles and ellipses) to paint the icon,
// plus the icon geometry itself.
//
// # Quick Start
//
//	import "github.com/gogpu/caricon"
//
//	pm, err := caricon.Render(192)
//	if err != nil {
//		return err
//	}
//	err = pm.SavePNG("icon-192x192.png")
//
// # Rasterization
//
// The default rasterizer is aliased: a pixel takes the fill color if and
// only if its centre lies inside the path, and later fills replace earlier
// pixels outright (painter's algorithm, no blending). Output is therefore a
// pure function of the requested size. RasterizerAntialiased trades that
// property for smooth edges using golang.org/x/image/vector coverage.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing towards +Y
package caricon
