// Package paths locates the frontend's asset directories and writes files
// into them.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	PublicDirName = "public"
	IconsDirName  = "icons"
	DirPerm       = 0755
	FilePerm      = 0644
)

// IconFileName returns the file name of the size×size icon variant,
// e.g. "icon-192x192.png".
func IconFileName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// writeFile is swapped in tests to simulate a failed write.
var writeFile = os.WriteFile

// AtomicWrite writes data to path via a temporary file + rename so readers
// never see a partial file. An existing file is replaced.
func AtomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := writeFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// PublicDir returns <project>/public.
func PublicDir(project string) string {
	return filepath.Join(project, PublicDirName)
}

// IconsDir returns <project>/public/icons.
func IconsDir(project string) string {
	return filepath.Join(PublicDir(project), IconsDirName)
}

// ProjectDir returns the frontend project root, derived from where the
// running tool lives:
//   - installed binary: the parent of the executable's directory
//     (tools sit in <project>/bin or <project>/scripts)
//   - `go run`: the module root above the caller's source file, since the
//     binary itself sits in a throwaway build directory
//
// Falls back to the working directory if neither is available.
func ProjectDir() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		if !isBuildCache(exe) {
			return filepath.Dir(filepath.Dir(exe))
		}
	}
	if _, file, _, ok := runtime.Caller(1); ok && file != "" {
		if root, ok := ModuleRoot(filepath.Dir(file)); ok {
			return root
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// ModuleRoot walks up from dir to the nearest directory holding a go.mod.
func ModuleRoot(dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// isBuildCache reports whether exe looks like a `go run` temporary binary.
func isBuildCache(exe string) bool {
	tmp := filepath.Clean(os.TempDir())
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil {
		tmp = resolved
	}
	return strings.HasPrefix(exe, tmp+string(filepath.Separator)) &&
		strings.Contains(exe, "go-build")
}
