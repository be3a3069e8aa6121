package analyze

import (
	"go/ast"
	"path"
	"path/filepath"
	"strings"
)

// FileFilter decides which source files participate in a run.
type FileFilter struct {
	// Exclude holds glob patterns matched against the slash-separated file
	// path, its base name, and every path suffix, so "*_gen.go" and
	// "internal/legacy/*" both behave as expected.
	Exclude []string
}

// Includes reports whether the named file participates.
func (f *FileFilter) Includes(filename string) bool {
	if filename == "" {
		return true
	}

	slashed := filepath.ToSlash(filename)
	for _, pattern := range f.Exclude {
		if matchPath(pattern, slashed) {
			return false
		}
	}

	return true
}

// IncludedFiles filters the program's files, preserving program order.
func (f *FileFilter) IncludedFiles(prog *Program) []*ast.File {
	var out []*ast.File
	for _, file := range prog.Files() {
		if f.Includes(prog.FileName(file)) {
			out = append(out, file)
		}
	}

	return out
}

// ValidPattern reports whether pattern is a well-formed glob.
func ValidPattern(pattern string) bool {
	_, err := path.Match(pattern, "x")
	return err == nil
}

func matchPath(pattern, slashed string) bool {
	if ok, _ := path.Match(pattern, slashed); ok {
		return true
	}
	if ok, _ := path.Match(pattern, path.Base(slashed)); ok {
		return true
	}

	// Try every suffix so patterns can anchor at any directory level.
	rest := slashed
	for {
		idx := strings.IndexByte(rest, '/')
		if idx < 0 {
			return false
		}
		rest = rest[idx+1:]
		if ok, _ := path.Match(pattern, rest); ok {
			return true
		}
	}
}
