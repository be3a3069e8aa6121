package config

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// DiscoverModulePath walks from dir upward looking for a go.mod and
// returns its module path. Returns "" when no module is found or the
// file cannot be parsed.
func DiscoverModulePath(dir string) string {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		data, err := os.ReadFile(filepath.Join(abs, "go.mod"))
		if err == nil {
			return modfile.ModulePath(data)
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return ""
		}
		abs = parent
	}
}
