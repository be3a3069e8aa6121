package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileFilterIncludes(t *testing.T) {
	filter := &FileFilter{Exclude: []string{"*_gen.go", "legacy/*"}}

	tests := []struct {
		file string
		want bool
	}{
		{"pkg/a.go", true},
		{"pkg/a_gen.go", false},
		{"a_gen.go", false},
		{"src/legacy/old.go", false},
		{"legacy/old.go", false},
		{"pkg/legacy.go", true},
		{"", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, filter.Includes(tt.file), "Includes(%q)", tt.file)
	}
}

func TestFileFilterEmptyIncludesEverything(t *testing.T) {
	filter := &FileFilter{}

	assert.True(t, filter.Includes("any/file.go"))
}

func TestFileFilterWindowsPaths(t *testing.T) {
	filter := &FileFilter{Exclude: []string{"*_gen.go"}}

	assert.False(t, filter.Includes(`pkg\a_gen.go`))
}

func TestValidPattern(t *testing.T) {
	assert.True(t, ValidPattern("*_gen.go"))
	assert.True(t, ValidPattern("internal/legacy/*"))
	assert.False(t, ValidPattern("[unclosed"))
}
