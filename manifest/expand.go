package manifest

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands ~ to its proper path, where appropriate. If the home
// directory cannot be determined the path is returned unchanged.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		path = filepath.Join(home, path[2:])
	}

	return path
}

// resolve makes a read file path usable from anywhere: ~ is expanded, and
// relative local paths are joined to base.
func resolve(path, base string) string {
	if strings.HasPrefix(path, "gs://") {
		return path
	}

	path = ExpandHome(path)
	if base != "" && !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	return path
}
