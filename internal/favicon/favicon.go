// Package favicon derives the browser favicon set from the site logo.
package favicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // logo may be a JPEG
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/caricon"
	"github.com/gogpu/caricon/internal/paths"
)

// ErrSourceNotFound is returned when the logo file does not exist.
var ErrSourceNotFound = errors.New("favicon: source not found")

// LogoFileName is the logo looked up in the public directory.
const LogoFileName = "logo.png"

// ICOName is the multi-purpose favicon file.
const ICOName = "favicon.ico"

// Variant is one PNG output.
type Variant struct {
	Name string
	Size int
}

// Variants are written in this order, followed by ICOName.
var Variants = []Variant{
	{Name: "favicon-16x16.png", Size: 16},
	{Name: "favicon-32x32.png", Size: 32},
	{Name: "apple-touch-icon.png", Size: 180},
}

// ICOSizes are the frames stored in favicon.ico, smallest first.
var ICOSizes = []int{16, 32}

// Cover scales src to fill a size×size square, keeping its aspect ratio and
// cropping the overflow around the centre.
func Cover(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	b := src.Bounds()
	if b.Empty() || size <= 0 {
		return dst
	}

	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}

// Generate reads the logo at srcPath and writes the favicon set into dir.
// It returns the names of the written files.
func Generate(srcPath, dir string) ([]string, error) {
	src, err := load(srcPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var names []string
	for _, v := range Variants {
		var buf bytes.Buffer
		if err := png.Encode(&buf, Cover(src, v.Size)); err != nil {
			return names, fmt.Errorf("encode %s: %w", v.Name, err)
		}
		if err := paths.AtomicWrite(filepath.Join(dir, v.Name), buf.Bytes()); err != nil {
			return names, fmt.Errorf("write %s: %w", v.Name, err)
		}
		names = append(names, v.Name)
	}

	frames := make([]image.Image, len(ICOSizes))
	for i, size := range ICOSizes {
		frames[i] = Cover(src, size)
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return names, fmt.Errorf("encode %s: %w", ICOName, err)
	}
	if err := paths.AtomicWrite(filepath.Join(dir, ICOName), buf.Bytes()); err != nil {
		return names, fmt.Errorf("write %s: %w", ICOName, err)
	}
	// favicon.ico is reported first, as in the generated set listing.
	names = append([]string{ICOName}, names...)

	caricon.Logger().Debug("favicons written", "dir", dir, "count", len(names))
	return names, nil
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
