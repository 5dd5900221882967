// Command favicons regenerates favicon.ico, favicon-16x16.png,
// favicon-32x32.png and apple-touch-icon.png from public/logo.png.
//
// Usage: favicons
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/caricon"
	"github.com/gogpu/caricon/internal/favicon"
	"github.com/gogpu/caricon/internal/paths"
)

func main() {
	caricon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(run(paths.PublicDir(paths.ProjectDir()), os.Stdout, os.Stderr))
}

func run(public string, stdout, stderr io.Writer) int {
	logo := filepath.Join(public, favicon.LogoFileName)
	names, err := favicon.Generate(logo, public)
	if err != nil {
		if errors.Is(err, favicon.ErrSourceNotFound) {
			fmt.Fprintf(stderr, "Source not found: %s\n", logo)
		} else {
			fmt.Fprintf(stderr, "Error generating favicons: %v\n", err)
		}
		return 1
	}
	fmt.Fprintf(stdout, "Favicons generated: %s\n", strings.Join(names, ", "))
	return 0
}
