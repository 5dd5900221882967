package iconset

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/caricon"
)

func TestProbe(t *testing.T) {
	if err := Probe(); err != nil {
		t.Fatalf("Probe: %v", err)
	}
}

func TestGenerateCreatesDirAndFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "icons")
	var out bytes.Buffer

	written, err := Generate(Config{Dir: dir, Out: &out})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("written = %v, want 2 files", written)
	}

	for i, size := range DefaultSizes {
		want := filepath.Join(dir, []string{"icon-192x192.png", "icon-512x512.png"}[i])
		if written[i] != want {
			t.Errorf("written[%d] = %q, want %q", i, written[i], want)
		}
		f, err := os.Open(want)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", want, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("%s is %dx%d, want %dx%d", want, b.Dx(), b.Dy(), size, size)
		}
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("status lines = %q, want 2", lines)
	}
	if !strings.HasPrefix(lines[0], "Created icon: ") || !strings.HasSuffix(lines[0], "(192x192)") {
		t.Errorf("status line = %q", lines[0])
	}
}

func TestGenerateTwiceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon-192x192.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := Generate(Config{Dir: dir}); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		t.Errorf("file was not replaced with a PNG: %v", err)
	}
}

func TestGenerateMatchesRender(t *testing.T) {
	dir := t.TempDir()
	if _, err := Generate(Config{Dir: dir, Sizes: []int{64}}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "icon-64x64.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	pm, err := caricon.Render(64)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got := caricon.FromColor(img.At(x, y)).NRGBA(); got != pm.NRGBAAt(x, y) {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, pm.NRGBAAt(x, y))
			}
		}
	}
}

func TestGenerateUnwritableDir(t *testing.T) {
	// A regular file where a parent directory should be makes MkdirAll fail
	// regardless of the user's privileges.
	blocker := filepath.Join(t.TempDir(), "public")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(Config{Dir: filepath.Join(blocker, "icons")})
	if err == nil {
		t.Fatal("Generate succeeded with an unwritable directory")
	}
	if !strings.Contains(err.Error(), "create icons directory") {
		t.Errorf("error = %v, want directory diagnostic", err)
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	dir := t.TempDir()
	written, err := Generate(Config{Dir: dir, Sizes: []int{16, 0, 32}})
	if !errors.Is(err, caricon.ErrInvalidSize) {
		t.Fatalf("error = %v, want ErrInvalidSize", err)
	}
	if len(written) != 1 {
		t.Errorf("written = %v, want only the 16px icon", written)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon-32x32.png")); !os.IsNotExist(err) {
		t.Error("generation continued past the failing size")
	}
}
