// Package iconset renders the PWA icon variants and writes them to disk.
package iconset

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/caricon"
	"github.com/gogpu/caricon/internal/paths"
)

// ErrMissingCapability means PNG encoding does not work in this build.
var ErrMissingCapability = errors.New("iconset: PNG imaging unavailable")

// DefaultSizes are the icon variants the web manifest references.
var DefaultSizes = []int{192, 512}

// Config describes one generation run.
type Config struct {
	// Dir receives the icon files. Created if missing.
	Dir string
	// Sizes to render; DefaultSizes when empty.
	Sizes []int
	// Out receives one status line per written file. Discarded when nil.
	Out io.Writer
	// Options are passed to caricon.Render.
	Options []caricon.ContextOption
}

// Probe checks that a pixmap survives a PNG encode/decode round trip.
// Any failure is reported as ErrMissingCapability.
func Probe() error {
	pm := caricon.NewPixmap(1, 1)
	pm.Clear(caricon.BackgroundColor)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrMissingCapability, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("%w: decode: %v", ErrMissingCapability, err)
	}
	if got := caricon.FromColor(img.At(0, 0)).NRGBA(); got != caricon.BackgroundColor.NRGBA() {
		return fmt.Errorf("%w: round trip changed pixel to %v", ErrMissingCapability, got)
	}
	return nil
}

// Generate renders every configured size into cfg.Dir and returns the
// written paths in order. Existing files are overwritten. Generation stops
// at the first error.
func Generate(cfg Config) ([]string, error) {
	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	if err := os.MkdirAll(cfg.Dir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("create icons directory: %w", err)
	}

	written := make([]string, 0, len(sizes))
	for _, size := range sizes {
		path := filepath.Join(cfg.Dir, paths.IconFileName(size))
		if err := writeIcon(path, size, cfg.Options); err != nil {
			return written, err
		}
		written = append(written, path)
		fmt.Fprintf(out, "Created icon: %s (%dx%d)\n", path, size, size)
	}
	return written, nil
}

func writeIcon(path string, size int, opts []caricon.ContextOption) error {
	pm, err := caricon.Render(size, opts...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	caricon.Logger().Debug("icon written", "path", path, "bytes", buf.Len())
	return nil
}
