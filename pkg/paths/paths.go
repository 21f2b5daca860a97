// Package paths implements include-path resolution for property files.
// A load path is tried literally first, then against an ordered list of
// base directories; the first readable regular file wins.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/propstore/pkg/errors"
)

// EnvIncludePath overrides the include path with a colon-separated
// directory list, highest precedence.
const EnvIncludePath = "PROPSTORE_PATH"

// AppDirName is the subdirectory used under the XDG config directory
const AppDirName = "propstore"

// Resolver resolves property file paths against an include path
type Resolver struct {
	dirs []string
}

// New creates a Resolver. Precedence of the resulting include path:
// PROPSTORE_PATH entries, then the given dirs, then the defaults
// (current directory, XDG config dir).
func New(dirs ...string) *Resolver {
	var all []string

	if env := os.Getenv(EnvIncludePath); env != "" {
		for _, d := range strings.Split(env, string(os.PathListSeparator)) {
			if d != "" {
				all = append(all, d)
			}
		}
	}

	all = append(all, dirs...)
	all = append(all, DefaultDirs()...)

	return &Resolver{dirs: all}
}

// DefaultDirs returns the fallback include path
func DefaultDirs() []string {
	return []string{
		".",
		filepath.Join(xdg.ConfigHome, AppDirName),
	}
}

// Dirs returns the include path in search order
func (r *Resolver) Dirs() []string {
	out := make([]string, len(r.dirs))
	copy(out, r.dirs)
	return out
}

// Resolve locates path. Absolute paths are only checked literally;
// relative paths are tried literally and then under each include
// directory in order. Fails with FILE_NOT_FOUND when nothing matches.
func (r *Resolver) Resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	if filepath.IsAbs(path) {
		if isReadableFile(path) {
			return path, nil
		}
		return "", errors.Newf(errors.ErrFileNotFound, "file not found: %s", path)
	}

	if isReadableFile(path) {
		return path, nil
	}

	for _, dir := range r.dirs {
		candidate := filepath.Join(dir, path)
		if isReadableFile(candidate) {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrFileNotFound, "file not found in include path: %s", path).
		WithDetail("includePath", r.dirs)
}

func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
