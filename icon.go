package caricon

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned by Render for non-positive sizes.
var ErrInvalidSize = errors.New("caricon: invalid size")

// Icon palette.
var (
	BackgroundColor = Hex("#0f172a") // dark navy
	BodyColor       = Hex("#6366f1") // indigo
	WindowColor     = Hex("#1e293b") // dark slate
	TireColor       = Hex("#475569") // slate gray
	HubColor        = Hex("#64748b") // light slate gray
)

// Proportions of the canvas side unless noted otherwise.
const (
	bodyWidthRatio    = 0.70
	bodyHeightRatio   = 0.40
	marginRatio       = 0.05
	bodyRadiusRatio   = 0.05
	windowRadiusRatio = 0.02
	wheelRadiusRatio  = 0.08

	// Relative to the body box.
	windowWidthRatio  = 0.25
	windowHeightRatio = 0.40
	leftWindowX       = 0.15
	rightWindowX      = 0.60
	leftWheelX        = 0.20
	rightWheelX       = 0.80

	hubRatio = 0.5 // of the wheel radius
)

// Layout is the resolved geometry of the icon for one canvas size.
//
// Box is the centred 70%×40% frame all other parts are positioned against.
// The body itself is Box inset vertically by the margin on both sides.
type Layout struct {
	Size int

	Box          Rect
	Margin       float64
	Body         Rect
	BodyRadius   float64
	Windows      [2]Rect
	WindowRadius float64
	Tires        [2]Circle
	Hubs         [2]Circle
}

// NewLayout computes the icon geometry for a size×size canvas.
func NewLayout(size int) Layout {
	s := float64(size)
	w := s * bodyWidthRatio
	h := s * bodyHeightRatio
	box := Rect{X: (s - w) / 2, Y: (s - h) / 2, W: w, H: h}
	m := s * marginRatio

	l := Layout{
		Size:         size,
		Box:          box,
		Margin:       m,
		Body:         Rect{X: box.X, Y: box.Y + m, W: w, H: h - 2*m},
		BodyRadius:   s * bodyRadiusRatio,
		WindowRadius: s * windowRadiusRatio,
	}

	ww, wh := w*windowWidthRatio, h*windowHeightRatio
	wy := box.Y + 2*m
	for i, fx := range [2]float64{leftWindowX, rightWindowX} {
		l.Windows[i] = Rect{X: box.X + w*fx, Y: wy, W: ww, H: wh}
	}

	r := s * wheelRadiusRatio
	cy := box.MaxY() - m - r
	for i, fx := range [2]float64{leftWheelX, rightWheelX} {
		c := Pt(box.X+w*fx, cy)
		l.Tires[i] = Circle{C: c, R: r}
		l.Hubs[i] = Circle{C: c, R: r * hubRatio}
	}
	return l
}

// Draw paints l onto dc in back-to-front order: background, body, windows,
// then each wheel's tire followed by its hub.
func Draw(dc *Context, l Layout) error {
	dc.ClearWithColor(BackgroundColor)

	fillRoundRect := func(col RGBA, r Rect, radius float64) error {
		dc.SetColor(col)
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
		return dc.Fill()
	}
	fillCircle := func(col RGBA, c Circle) error {
		dc.SetColor(col)
		dc.DrawCircle(c.C.X, c.C.Y, c.R)
		return dc.Fill()
	}

	if err := fillRoundRect(BodyColor, l.Body, l.BodyRadius); err != nil {
		return fmt.Errorf("body: %w", err)
	}
	for i, w := range l.Windows {
		if err := fillRoundRect(WindowColor, w, l.WindowRadius); err != nil {
			return fmt.Errorf("window %d: %w", i, err)
		}
	}
	for i := range l.Tires {
		if err := fillCircle(TireColor, l.Tires[i]); err != nil {
			return fmt.Errorf("tire %d: %w", i, err)
		}
		if err := fillCircle(HubColor, l.Hubs[i]); err != nil {
			return fmt.Errorf("hub %d: %w", i, err)
		}
	}
	return nil
}

// Render draws the car icon on a new size×size canvas.
func Render(size int, opts ...ContextOption) (*Pixmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d (must be > 0)", ErrInvalidSize, size)
	}

	dc := NewContext(size, size, opts...)
	if err := Draw(dc, NewLayout(size)); err != nil {
		return nil, fmt.Errorf("caricon: render %dx%d: %w", size, size, err)
	}
	Logger().Debug("icon rendered", "size", size, "mode", dc.RasterizerMode())
	return dc.Pixmap(), nil
}
