// Command caricon generates the PWA icons (192x192 and 512x512) for the
// frontend into public/icons.
//
// Usage: caricon
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/gogpu/caricon"
	"github.com/gogpu/caricon/internal/iconset"
	"github.com/gogpu/caricon/internal/paths"
)

const installPath = "github.com/gogpu/caricon/cmd/caricon@latest"

func main() {
	caricon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(run(paths.IconsDir(paths.ProjectDir()), os.Stdout, os.Stderr, iconset.Probe, install))
}

// run generates the icons into dir and returns the process exit code.
func run(dir string, stdout, stderr io.Writer, probe func() error, reinstall func(io.Writer) error) int {
	if err := probe(); err != nil {
		if !errors.Is(err, iconset.ErrMissingCapability) {
			fmt.Fprintf(stderr, "Error generating icons: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "PNG imaging is not available in this build. Installing...")
		if ierr := reinstall(stdout); ierr != nil {
			fmt.Fprintf(stderr, "Error: install failed: %v\n", ierr)
		}
		fmt.Fprintf(stdout, "Please run this tool again. Icons will be written to %s\n", dir)
		return 1
	}

	if _, err := iconset.Generate(iconset.Config{Dir: dir, Out: stdout}); err != nil {
		fmt.Fprintf(stderr, "Error generating icons: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Icons generated successfully!")
	return 0
}

// install rebuilds the tool with the Go toolchain, which fetches the
// imaging dependencies it links against.
func install(out io.Writer) error {
	goBin, err := exec.LookPath("go")
	if err != nil {
		return fmt.Errorf("go toolchain not found: %w", err)
	}
	cmd := exec.Command(goBin, "install", installPath)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}
