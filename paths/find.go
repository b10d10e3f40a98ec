// Package paths locates asset directories and files without requiring the
// caller to spell out where they live. It probes a small list of likely
// locations and returns the first hit.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// possiblePaths returns candidate locations for the named asset, in probe
// order: under $SPRITESHEET_ASSETS, next to the binary, and in the working
// directory.
func possiblePaths(name string) []string {
	var candidates []string

	if env := os.Getenv("SPRITESHEET_ASSETS"); env != "" {
		candidates = append(candidates, filepath.Join(env, name))
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), name))
	}
	candidates = append(candidates, name)

	return candidates
}

// FindDir locates the named asset directory and returns an absolute or
// relative path to it, or "" if it is nowhere to be found.
//
// For example, for "animations" it may return
// "/opt/game/assets/animations".
func FindDir(name string) string {
	for _, path := range possiblePaths(name) {
		if s, err := os.Stat(path); err == nil && s.IsDir() {
			glog.Infof("paths.FindDir(%q)=%s", name, path)
			return path
		}
	}

	return ""
}

// FindFile locates the named asset file in the same locations that FindDir
// would look, or returns "" if it is absent everywhere.
func FindFile(name string) string {
	for _, path := range possiblePaths(name) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.Infof("paths.FindFile(%q)=%s", name, path)
			return path
		}
	}

	return ""
}
